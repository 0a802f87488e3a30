// Package registry implements the function/type-resolution core of the
// query engine: an authoritative registry of function signatures over
// primitive wire types, a best-effort index of semantic refinement rules,
// and the resolver that composes the two into one fully-typed result per
// call site.
//
// A registry is built once from a catalog descriptor during compiler-session
// setup and is immutable afterwards; concurrent resolution queries require
// no synchronization.
package registry

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kestrelobs/kestrel/pkg/engine/catalog"
	"github.com/kestrelobs/kestrel/pkg/engine/datatype"
	"github.com/kestrelobs/kestrel/pkg/engine/types"
)

// Registry is the authoritative catalog of functions, their calling
// conventions, and their exact primitive-type overloads.
type Registry struct {
	kinds      map[string]types.ExecKind
	scalars    map[string]map[string]datatype.DataType
	aggregates map[string]map[string]datatype.DataType
	tableFuncs []catalog.TableFunction

	names []string // sorted union of all registered names
}

// NewRegistry builds an immutable Registry from a catalog descriptor. It
// returns [ErrDuplicateDefinition] if the descriptor declares the same
// (name, argument tuple) twice, repeats a table function name, or declares
// one name under more than one calling convention.
func NewRegistry(desc *catalog.Descriptor) (*Registry, error) {
	r := &Registry{
		kinds:      make(map[string]types.ExecKind),
		scalars:    make(map[string]map[string]datatype.DataType),
		aggregates: make(map[string]map[string]datatype.DataType),
	}

	for _, fn := range desc.ScalarFuncs {
		if err := r.registerName(fn.Name, types.ExecKindScalar); err != nil {
			return nil, err
		}
		key := tupleKey(fn.ArgTypes)
		overloads := r.scalars[fn.Name]
		if overloads == nil {
			overloads = make(map[string]datatype.DataType)
			r.scalars[fn.Name] = overloads
		}
		if _, ok := overloads[key]; ok {
			return nil, fmt.Errorf("%w: scalar function %q with arguments %s", ErrDuplicateDefinition, fn.Name, formatTuple(fn.ArgTypes))
		}
		overloads[key] = fn.ReturnType
	}

	for _, fn := range desc.Aggregates {
		if err := r.registerName(fn.Name, types.ExecKindAggregate); err != nil {
			return nil, err
		}
		key := tupleKey(fn.UpdateArgTypes)
		overloads := r.aggregates[fn.Name]
		if overloads == nil {
			overloads = make(map[string]datatype.DataType)
			r.aggregates[fn.Name] = overloads
		}
		if _, ok := overloads[key]; ok {
			return nil, fmt.Errorf("%w: aggregate %q with arguments %s", ErrDuplicateDefinition, fn.Name, formatTuple(fn.UpdateArgTypes))
		}
		overloads[key] = fn.FinalizeType
	}

	for _, fn := range desc.TableFuncs {
		// Table functions are not overloaded, so any previous registration
		// of the name is a conflict.
		if _, ok := r.kinds[fn.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateDefinition, fn.Name)
		}
		r.kinds[fn.Name] = types.ExecKindTableFunction
		r.tableFuncs = append(r.tableFuncs, fn)
	}

	r.names = make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		r.names = append(r.names, name)
	}
	slices.Sort(r.names)

	return r, nil
}

func (r *Registry) registerName(name string, kind types.ExecKind) error {
	if existing, ok := r.kinds[name]; ok {
		if existing != kind {
			return fmt.Errorf("%w: %q declared as both %s and %s", ErrDuplicateDefinition, name, existing, kind)
		}
		return nil
	}
	r.kinds[name] = kind
	return nil
}

// GetExecKind returns the calling convention of the named function. It
// returns [ErrNotFound] if the name is not registered under any kind.
func (r *Registry) GetExecKind(name string) (types.ExecKind, error) {
	kind, ok := r.kinds[name]
	if !ok {
		return types.ExecKindInvalid, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return kind, nil
}

// ResolvePrimitiveType resolves the primitive result type of calling the
// named function with the given ordered argument types. For scalar
// functions the registered return type is returned; for aggregates the
// finalize type. Matching is exact equality of the full argument tuple — no
// widening, no coercion, no partial matches.
//
// It returns [ErrNotFound] if the name is unregistered and
// [ErrNoMatchingOverload] if no registered tuple equals argTypes.
func (r *Registry) ResolvePrimitiveType(name string, argTypes []datatype.DataType) (datatype.DataType, error) {
	kind, ok := r.kinds[name]
	if !ok {
		return datatype.Invalid, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	var overloads map[string]datatype.DataType
	switch kind {
	case types.ExecKindScalar:
		overloads = r.scalars[name]
	case types.ExecKindAggregate:
		overloads = r.aggregates[name]
	case types.ExecKindTableFunction:
		return datatype.Invalid, fmt.Errorf("%w: %q is a table-valued function and does not resolve to a primitive type", ErrNoMatchingOverload, name)
	default:
		return datatype.Invalid, fmt.Errorf("unknown calling convention %s for function %q", kind, name)
	}

	ret, ok := overloads[tupleKey(argTypes)]
	if !ok {
		return datatype.Invalid, fmt.Errorf("%w: function %q with arguments %s", ErrNoMatchingOverload, name, formatTuple(argTypes))
	}
	return ret, nil
}

// ListFunctionNames returns the names of all registered functions across
// every calling convention, sorted and free of duplicates.
func (r *Registry) ListFunctionNames() []string {
	return slices.Clone(r.names)
}

// ListTableFunctions returns all table-valued function definitions in
// registration order.
func (r *Registry) ListTableFunctions() []catalog.TableFunction {
	return slices.Clone(r.tableFuncs)
}

// LookupTableFunction returns the definition of the named table-valued
// function. It returns [ErrNotFound] if no table function has that name.
func (r *Registry) LookupTableFunction(name string) (catalog.TableFunction, error) {
	for _, fn := range r.tableFuncs {
		if fn.Name == name {
			return fn, nil
		}
	}
	return catalog.TableFunction{}, fmt.Errorf("%w: table function %q", ErrNotFound, name)
}

// tupleKey returns a canonical key for an ordered argument-type tuple.
func tupleKey(argTypes []datatype.DataType) string {
	var sb strings.Builder
	for i, at := range argTypes {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(at.String())
	}
	return sb.String()
}

// formatTuple formats an argument-type tuple for diagnostics.
func formatTuple(argTypes []datatype.DataType) string {
	return "(" + tupleKey(argTypes) + ")"
}
