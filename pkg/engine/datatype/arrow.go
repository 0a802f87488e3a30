package datatype

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

var (
	// ArrowType holds the Arrow representation of every engine data type.
	// Uint128 values are carried as 16-byte fixed-size binary, matching the
	// wire layout of unique process identifiers.
	ArrowType = struct {
		Bool         arrow.DataType
		Int64        arrow.DataType
		Uint128      arrow.DataType
		Float64      arrow.DataType
		String       arrow.DataType
		Time64ns     arrow.DataType
		Duration64ns arrow.DataType
	}{
		Bool:         arrow.FixedWidthTypes.Boolean,
		Int64:        arrow.PrimitiveTypes.Int64,
		Uint128:      &arrow.FixedSizeBinaryType{ByteWidth: 16},
		Float64:      arrow.PrimitiveTypes.Float64,
		String:       arrow.BinaryTypes.String,
		Time64ns:     arrow.FixedWidthTypes.Timestamp_ns,
		Duration64ns: arrow.FixedWidthTypes.Duration_ns,
	}

	// ToArrow maps engine data types to their Arrow representation.
	ToArrow = map[DataType]arrow.DataType{
		Bool:         ArrowType.Bool,
		Int64:        ArrowType.Int64,
		Uint128:      ArrowType.Uint128,
		Float64:      ArrowType.Float64,
		String:       ArrowType.String,
		Time64ns:     ArrowType.Time64ns,
		Duration64ns: ArrowType.Duration64ns,
	}
)

// ToArrowType returns the Arrow representation of dt. It returns an error if
// dt has no Arrow representation.
func ToArrowType(dt DataType) (arrow.DataType, error) {
	at, ok := ToArrow[dt]
	if !ok {
		return nil, fmt.Errorf("data type %s has no arrow representation", dt)
	}
	return at, nil
}

// FromArrowType returns the engine data type represented by at. It returns
// an error if at does not represent any engine data type.
func FromArrowType(at arrow.DataType) (DataType, error) {
	for dt, candidate := range ToArrow {
		if arrow.TypeEqual(candidate, at) {
			return dt, nil
		}
	}
	return Invalid, fmt.Errorf("arrow type %s has no engine representation", at)
}
