// Package types defines shared enums used by the function catalog and the
// type-resolution core.
package types

import "fmt"

// ExecKind denotes the calling convention of a registered function.
type ExecKind int

// Recognized values of [ExecKind].
const (
	// ExecKindInvalid indicates an invalid calling convention.
	ExecKindInvalid ExecKind = iota

	ExecKindScalar        // Stateless function evaluated once per row.
	ExecKindAggregate     // Stateful reducer with update and finalize steps.
	ExecKindTableFunction // Produces a relation rather than a scalar value.
)

var execKindStrings = map[ExecKind]string{
	ExecKindInvalid: "invalid",

	ExecKindScalar:        "scalar",
	ExecKindAggregate:     "aggregate",
	ExecKindTableFunction: "table_function",
}

// String returns the string representation of the ExecKind.
func (k ExecKind) String() string {
	if s, ok := execKindStrings[k]; ok {
		return s
	}
	return fmt.Sprintf("ExecKind(%d)", k)
}
