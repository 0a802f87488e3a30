package datatype

import "fmt"

// ValueType is the full type of a value: its primitive wire type together
// with its semantic tag. ValueType is an immutable value; two ValueTypes are
// equal iff both fields are equal.
type ValueType struct {
	Primitive DataType
	Semantic  SemanticType
}

// NewValueType creates a ValueType from a primitive type and a semantic tag.
func NewValueType(primitive DataType, semantic SemanticType) ValueType {
	return ValueType{Primitive: primitive, Semantic: semantic}
}

// Equal reports whether v and other are structurally equal.
func (v ValueType) Equal(other ValueType) bool {
	return v == other
}

// String returns the string representation of the ValueType, formatted as
// [PRIMITIVE].[SEMANTIC].
func (v ValueType) String() string {
	return fmt.Sprintf("%s.%s", v.Primitive, v.Semantic)
}
