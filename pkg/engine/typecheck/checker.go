package typecheck

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/kestrelobs/kestrel/pkg/engine/datatype"
	"github.com/kestrelobs/kestrel/pkg/engine/registry"
)

// Checker assigns value types to expressions. Literals and column
// references carry their declared type; function calls are resolved through
// the type-resolution core.
type Checker struct {
	resolver *registry.Resolver
}

// NewChecker creates a Checker that resolves function calls with resolver.
func NewChecker(resolver *registry.Resolver) *Checker {
	return &Checker{resolver: resolver}
}

// TypeOf returns the full value type of expr. For call expressions the
// argument expressions are checked first; any failure in an argument or in
// the call's own resolution fails the check.
func (c *Checker) TypeOf(expr Expression) (datatype.ValueType, error) {
	switch expr := expr.(type) {
	case *LiteralExpr:
		return expr.ValueType, nil
	case *ColumnExpr:
		return expr.ValueType, nil
	case *CallExpr:
		args := make([]datatype.ValueType, len(expr.Args))
		for i, arg := range expr.Args {
			vt, err := c.TypeOf(arg)
			if err != nil {
				return datatype.ValueType{}, err
			}
			args[i] = vt
		}
		return c.resolver.ResolveCallType(expr.Fn, args)
	default:
		return datatype.ValueType{}, fmt.Errorf("unsupported expression type %T", expr)
	}
}

// ExpandTableFunction expands a reference to the named table-valued
// function into its declared output relation as an Arrow schema. It returns
// [registry.ErrNotFound] if no table function has that name.
func ExpandTableFunction(reg *registry.Registry, name string) (*arrow.Schema, error) {
	fn, err := reg.LookupTableFunction(name)
	if err != nil {
		return nil, err
	}
	return fn.OutputSchema()
}
