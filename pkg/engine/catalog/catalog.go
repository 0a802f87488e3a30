// Package catalog defines the function catalog descriptor consumed by the
// type-resolution core. The descriptor is produced by the platform's
// function-discovery build step and enumerates every scalar function,
// aggregate, table-valued function, and semantic rule known to the engine.
package catalog

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gopkg.in/yaml.v3"

	"github.com/kestrelobs/kestrel/pkg/engine/datatype"
	"github.com/kestrelobs/kestrel/pkg/engine/types"
)

// ScalarFunc describes one overload of a scalar function: its ordered
// argument types and its return type. A name may appear multiple times with
// distinct argument tuples.
type ScalarFunc struct {
	Name       string              `yaml:"name"`
	ArgTypes   []datatype.DataType `yaml:"arg_types"`
	ReturnType datatype.DataType   `yaml:"return_type"`
}

// AggregateFunc describes one overload of an aggregate: the ordered argument
// types of its incremental update step and the type produced by its finalize
// step.
type AggregateFunc struct {
	Name           string              `yaml:"name"`
	UpdateArgTypes []datatype.DataType `yaml:"update_arg_types"`
	FinalizeType   datatype.DataType   `yaml:"finalize_type"`
}

// TableFunctionArg is a named, fully-typed argument of a table-valued
// function.
type TableFunctionArg struct {
	Name     string                `yaml:"name"`
	Type     datatype.DataType     `yaml:"type"`
	Semantic datatype.SemanticType `yaml:"semantic,omitempty"`
}

// Column is one column of a table function's declared output relation.
type Column struct {
	Name string            `yaml:"name"`
	Type datatype.DataType `yaml:"type"`
}

// TableFunction describes a table-valued function: its arguments, the
// executor placement it is bound to, and its declared output relation.
// Table functions are not overloaded.
type TableFunction struct {
	Name      string                  `yaml:"name"`
	Args      []TableFunctionArg      `yaml:"args,omitempty"`
	Placement types.ExecutorPlacement `yaml:"placement"`
	Relation  []Column                `yaml:"relation"`
}

// SemanticRule refines the output semantic tag of a function from the
// semantic tags of its arguments. A pattern position of "unspecified" is a
// wildcard. Multiple rules may share a name with overlapping patterns.
type SemanticRule struct {
	Name       string                  `yaml:"name"`
	ArgTypes   []datatype.SemanticType `yaml:"arg_types"`
	OutputType datatype.SemanticType   `yaml:"output_type"`
}

// Descriptor is the complete function catalog. It is consumed wholesale at
// registry construction and never mutated afterwards.
type Descriptor struct {
	ScalarFuncs   []ScalarFunc    `yaml:"scalar_funcs,omitempty"`
	Aggregates    []AggregateFunc `yaml:"aggregates,omitempty"`
	TableFuncs    []TableFunction `yaml:"table_funcs,omitempty"`
	SemanticRules []SemanticRule  `yaml:"semantic_rules,omitempty"`
}

// Parse decodes a YAML catalog descriptor. Unknown fields and unknown type
// names fail decoding; every declared function is validated before the
// descriptor is returned.
func Parse(data []byte) (*Descriptor, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var desc Descriptor
	if err := dec.Decode(&desc); err != nil {
		return nil, fmt.Errorf("decoding catalog descriptor: %w", err)
	}
	if err := desc.validate(); err != nil {
		return nil, err
	}
	return &desc, nil
}

// Load reads and parses a YAML catalog descriptor from path.
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog descriptor: %w", err)
	}
	return Parse(data)
}

func (d *Descriptor) validate() error {
	for _, fn := range d.ScalarFuncs {
		if fn.Name == "" {
			return fmt.Errorf("scalar function with empty name")
		}
		if fn.ReturnType == datatype.Invalid {
			return fmt.Errorf("scalar function %q: missing return type", fn.Name)
		}
		for i, at := range fn.ArgTypes {
			if at == datatype.Invalid {
				return fmt.Errorf("scalar function %q: invalid argument type at position %d", fn.Name, i)
			}
		}
	}
	for _, fn := range d.Aggregates {
		if fn.Name == "" {
			return fmt.Errorf("aggregate with empty name")
		}
		if fn.FinalizeType == datatype.Invalid {
			return fmt.Errorf("aggregate %q: missing finalize type", fn.Name)
		}
		for i, at := range fn.UpdateArgTypes {
			if at == datatype.Invalid {
				return fmt.Errorf("aggregate %q: invalid update argument type at position %d", fn.Name, i)
			}
		}
	}
	for _, fn := range d.TableFuncs {
		if fn.Name == "" {
			return fmt.Errorf("table function with empty name")
		}
		if fn.Placement == types.PlacementInvalid {
			return fmt.Errorf("table function %q: missing executor placement", fn.Name)
		}
		for _, arg := range fn.Args {
			if arg.Name == "" {
				return fmt.Errorf("table function %q: argument with empty name", fn.Name)
			}
			if arg.Type == datatype.Invalid {
				return fmt.Errorf("table function %q: argument %q has invalid type", fn.Name, arg.Name)
			}
		}
		for _, col := range fn.Relation {
			if col.Name == "" {
				return fmt.Errorf("table function %q: output column with empty name", fn.Name)
			}
			if col.Type == datatype.Invalid {
				return fmt.Errorf("table function %q: output column %q has invalid type", fn.Name, col.Name)
			}
		}
	}
	for _, rule := range d.SemanticRules {
		if rule.Name == "" {
			return fmt.Errorf("semantic rule with empty name")
		}
	}
	return nil
}

// LogSummary logs the composition of the descriptor.
func (d *Descriptor) LogSummary(logger log.Logger) {
	level.Debug(logger).Log(
		"msg", "loaded function catalog",
		"scalar_funcs", len(d.ScalarFuncs),
		"aggregates", len(d.Aggregates),
		"table_funcs", len(d.TableFuncs),
		"semantic_rules", len(d.SemanticRules),
	)
}
