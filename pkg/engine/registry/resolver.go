package registry

import (
	"errors"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kestrelobs/kestrel/pkg/engine/datatype"
)

// ResolverParams holds optional dependencies for constructing a [Resolver].
type ResolverParams struct {
	Logger     log.Logger            // Logger for optional log messages.
	Registerer prometheus.Registerer // Registerer for optional metrics.
}

// Resolver produces one complete, typed result per function call site. It
// composes the authoritative [Registry] with the advisory [SemanticRules]:
// primitive resolution can fail the call, semantic refinement cannot.
type Resolver struct {
	registry *Registry
	rules    *SemanticRules
	logger   log.Logger
	metrics  *metrics
}

// NewResolver creates a Resolver over the given registry and rule index.
func NewResolver(registry *Registry, rules *SemanticRules, params ResolverParams) *Resolver {
	if params.Logger == nil {
		params.Logger = log.NewNopLogger()
	}
	if rules == nil {
		rules = &SemanticRules{rules: map[string][]semanticRule{}}
	}

	m := newMetrics(params.Registerer)
	m.registeredFunctions.Set(float64(len(registry.names)))

	return &Resolver{
		registry: registry,
		rules:    rules,
		logger:   params.Logger,
		metrics:  m,
	}
}

// ResolveCallType resolves the full result type of calling the named
// function with arguments of the given value types.
//
// The primitive component is resolved authoritatively against the registry;
// [ErrNotFound] and [ErrNoMatchingOverload] propagate unchanged and always
// fail the call, regardless of semantic annotations. The semantic component
// is then refined best-effort against the rule index; absence of a matching
// rule is normal and yields an unspecified semantic tag.
//
// ResolveCallType is deterministic and side-effect-free: identical inputs
// always yield an equal result.
func (r *Resolver) ResolveCallType(name string, args []datatype.ValueType) (datatype.ValueType, error) {
	primitives := make([]datatype.DataType, len(args))
	for i, arg := range args {
		primitives[i] = arg.Primitive
	}

	primitive, err := r.registry.ResolvePrimitiveType(name, primitives)
	if err != nil {
		r.metrics.resolutionsTotal.WithLabelValues(resolutionStatus(err)).Inc()
		level.Debug(r.logger).Log("msg", "function call type resolution failed", "function", name, "err", err)
		return datatype.ValueType{}, err
	}

	semantics := make([]datatype.SemanticType, len(args))
	for i, arg := range args {
		semantics[i] = arg.Semantic
	}

	semantic, err := r.rules.Lookup(name, QueryFromTags(semantics))
	if err != nil {
		// No rule matched; the result simply carries no semantic tag.
		semantic = datatype.SemanticUnspecified
	}

	r.metrics.resolutionsTotal.WithLabelValues(statusResolved).Inc()
	return datatype.NewValueType(primitive, semantic), nil
}

func resolutionStatus(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return statusNotFound
	default:
		return statusNoOverload
	}
}
