package registry

import (
	"fmt"

	"github.com/kestrelobs/kestrel/pkg/engine/catalog"
	"github.com/kestrelobs/kestrel/pkg/engine/datatype"
)

// RulePosition is one position of a semantic rule pattern: either a
// wildcard, which matches any query position, or a specific semantic tag,
// which matches only a query position known to carry that tag.
//
// On the wire the catalog encodes a wildcard as the unspecified semantic
// tag; [PatternFromTags] performs the translation.
type RulePosition struct {
	wildcard bool
	value    datatype.SemanticType
}

// Wildcard returns a rule position that matches any query position.
func Wildcard() RulePosition {
	return RulePosition{wildcard: true}
}

// Specific returns a rule position that matches only query positions known
// to carry the semantic tag v.
func Specific(v datatype.SemanticType) RulePosition {
	return RulePosition{value: v}
}

// IsWildcard reports whether the position is a wildcard.
func (p RulePosition) IsWildcard() bool { return p.wildcard }

// Matches reports whether the rule position matches the query position. A
// wildcard matches anything; a specific tag matches only a query position
// known to carry the same tag. A query position whose tag is unknown never
// matches a specific rule position — treating caller ignorance as
// satisfying a concrete tag would fabricate semantic information.
func (p RulePosition) Matches(q QueryPosition) bool {
	if p.wildcard {
		return true
	}
	return q.known && q.value == p.value
}

// String returns the string representation of the rule position.
func (p RulePosition) String() string {
	if p.wildcard {
		return "*"
	}
	return p.value.String()
}

// QueryPosition is one position of a semantic lookup query: either a known
// semantic tag, or unknown when the caller has no semantic information for
// that argument.
type QueryPosition struct {
	known bool
	value datatype.SemanticType
}

// Unknown returns a query position carrying no semantic information.
func Unknown() QueryPosition {
	return QueryPosition{}
}

// Known returns a query position carrying the semantic tag v.
func Known(v datatype.SemanticType) QueryPosition {
	return QueryPosition{known: true, value: v}
}

// String returns the string representation of the query position.
func (q QueryPosition) String() string {
	if !q.known {
		return "?"
	}
	return q.value.String()
}

// PatternFromTags translates a catalog rule pattern into rule positions: the
// unspecified tag becomes a wildcard, any other tag becomes specific.
func PatternFromTags(tags []datatype.SemanticType) []RulePosition {
	pattern := make([]RulePosition, len(tags))
	for i, tag := range tags {
		if tag == datatype.SemanticUnspecified {
			pattern[i] = Wildcard()
		} else {
			pattern[i] = Specific(tag)
		}
	}
	return pattern
}

// QueryFromTags translates argument semantic tags into query positions: the
// unspecified tag becomes unknown, any other tag becomes known.
func QueryFromTags(tags []datatype.SemanticType) []QueryPosition {
	query := make([]QueryPosition, len(tags))
	for i, tag := range tags {
		if tag == datatype.SemanticUnspecified {
			query[i] = Unknown()
		} else {
			query[i] = Known(tag)
		}
	}
	return query
}

type semanticRule struct {
	pattern   []RulePosition
	output    datatype.SemanticType
	wildcards int
}

// SemanticRules is a per-function index of semantic refinement rules. It is
// never authoritative: lookups refine the semantic tag of a call's result
// and failure to match is an expected outcome, not an error of the overall
// resolution.
type SemanticRules struct {
	rules map[string][]semanticRule
}

// NewSemanticRules builds the rule index from a catalog descriptor,
// preserving declaration order per function name.
func NewSemanticRules(desc *catalog.Descriptor) *SemanticRules {
	s := &SemanticRules{rules: make(map[string][]semanticRule)}
	for _, rule := range desc.SemanticRules {
		s.Insert(rule.Name, PatternFromTags(rule.ArgTypes), rule.OutputType)
	}
	return s
}

// Insert appends a rule for the named function. Duplicate and overlapping
// patterns are all retained; ambiguity is resolved at lookup time by
// specificity, never rejected at insert time.
func (s *SemanticRules) Insert(name string, pattern []RulePosition, output datatype.SemanticType) {
	wildcards := 0
	for _, p := range pattern {
		if p.IsWildcard() {
			wildcards++
		}
	}
	s.rules[name] = append(s.rules[name], semanticRule{
		pattern:   pattern,
		output:    output,
		wildcards: wildcards,
	})
}

// Lookup returns the output semantic tag of the most specific rule matching
// the query under the named function. A rule is a candidate iff its pattern
// has the query's length and every position matches (see
// [RulePosition.Matches]). Among candidates the rule with the fewest
// wildcard positions wins; ties are broken by insertion order, first
// registered wins.
//
// It returns [ErrNoMatch] if no candidate matches, including when no rules
// are registered for the name.
func (s *SemanticRules) Lookup(name string, query []QueryPosition) (datatype.SemanticType, error) {
	var (
		found bool
		best  semanticRule
	)

	for _, rule := range s.rules[name] {
		if len(rule.pattern) != len(query) {
			continue
		}
		if !ruleMatches(rule.pattern, query) {
			continue
		}
		if !found || rule.wildcards < best.wildcards {
			found = true
			best = rule
		}
	}

	if !found {
		return datatype.SemanticUnspecified, fmt.Errorf("%w: function %q", ErrNoMatch, name)
	}
	return best.output, nil
}

func ruleMatches(pattern []RulePosition, query []QueryPosition) bool {
	for i, p := range pattern {
		if !p.Matches(query[i]) {
			return false
		}
	}
	return true
}
