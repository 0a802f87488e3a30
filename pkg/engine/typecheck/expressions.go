// Package typecheck implements the expression type-checking surface that the
// plan builder uses while constructing logical plan nodes. It assigns a full
// value type to every expression, delegating function calls to the
// resolution core.
package typecheck

import (
	"fmt"
	"strings"

	"github.com/kestrelobs/kestrel/pkg/engine/datatype"
)

// ExpressionType represents the type of expression being checked.
type ExpressionType uint32

const (
	_ ExpressionType = iota // zero-value is an invalid type

	ExprTypeLiteral
	ExprTypeColumn
	ExprTypeCall
)

// String returns the string representation of the [ExpressionType].
func (t ExpressionType) String() string {
	switch t {
	case ExprTypeLiteral:
		return "LiteralExpression"
	case ExprTypeColumn:
		return "ColumnExpression"
	case ExprTypeCall:
		return "CallExpression"
	default:
		panic(fmt.Sprintf("unknown expression type %d", t))
	}
}

// Expression is the common interface for all checkable expressions.
type Expression interface {
	fmt.Stringer
	Type() ExpressionType
	isExpr()
}

// LiteralExpr is a literal with a known value type.
type LiteralExpr struct {
	// ValueType is the full type of the literal.
	ValueType datatype.ValueType
}

func (*LiteralExpr) isExpr() {}

// Type returns the type of the expression.
func (*LiteralExpr) Type() ExpressionType { return ExprTypeLiteral }

// String returns the string representation of the literal expression.
func (e *LiteralExpr) String() string {
	return fmt.Sprintf("literal<%s>", e.ValueType)
}

// ColumnExpr is a reference to a column with a declared value type, as
// carried by the columnar container between compiled-plan stages.
type ColumnExpr struct {
	// Column is the name of the referenced column.
	Column string
	// ValueType is the declared type of the column.
	ValueType datatype.ValueType
}

func (*ColumnExpr) isExpr() {}

// Type returns the type of the expression.
func (*ColumnExpr) Type() ExpressionType { return ExprTypeColumn }

// String returns the string representation of the column expression.
func (e *ColumnExpr) String() string {
	return fmt.Sprintf("%s<%s>", e.Column, e.ValueType)
}

// CallExpr is a call to a registered scalar function or aggregate.
type CallExpr struct {
	// Fn is the name of the called function.
	Fn string
	// Args are the ordered argument expressions.
	Args []Expression
}

func (*CallExpr) isExpr() {}

// Type returns the type of the expression.
func (*CallExpr) Type() ExpressionType { return ExprTypeCall }

// String returns the string representation of the call expression.
func (e *CallExpr) String() string {
	args := make([]string, len(e.Args))
	for i, arg := range e.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", e.Fn, strings.Join(args, ", "))
}
