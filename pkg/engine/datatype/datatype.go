// Package datatype defines the primitive wire types and semantic tags used
// by the query engine, and the mapping between them and Arrow types.
package datatype

import "fmt"

const (
	typeInvalid = "invalid"
)

// DataType represents the primitive wire type of a column or scalar value.
// It describes the physical layout of a value, not its meaning; see
// [SemanticType] for the latter.
type DataType uint32

const (
	Invalid DataType = iota // zero-value is an invalid type

	Bool         // Boolean value
	Int64        // Signed 64bit integer value
	Uint128      // Unsigned 128bit integer value (used for globally unique identifiers)
	Float64      // 64bit floating point value
	String       // String value
	Time64ns     // Signed 64bit nanosecond timestamp
	Duration64ns // Signed 64bit nanosecond duration
)

var dataTypeStrings = map[DataType]string{
	Invalid:      typeInvalid,
	Bool:         "bool",
	Int64:        "int64",
	Uint128:      "uint128",
	Float64:      "float64",
	String:       "string",
	Time64ns:     "time64ns",
	Duration64ns: "duration64ns",
}

var dataTypeValues = map[string]DataType{}

func init() {
	for dt, s := range dataTypeStrings {
		dataTypeValues[s] = dt
	}
}

// String returns the string representation of the DataType.
func (t DataType) String() string {
	if s, ok := dataTypeStrings[t]; ok {
		return s
	}
	return fmt.Sprintf("DataType(%d)", t)
}

// FromString returns the [DataType] for the given string representation. It
// returns an error if the string does not name a known data type.
func FromString(s string) (DataType, error) {
	if dt, ok := dataTypeValues[s]; ok && dt != Invalid {
		return dt, nil
	}
	return Invalid, fmt.Errorf("unknown data type %q", s)
}

// MarshalYAML implements yaml.Marshaler, emitting the string form.
func (t DataType) MarshalYAML() (any, error) {
	if t == Invalid {
		return nil, fmt.Errorf("cannot marshal invalid data type")
	}
	return t.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, accepting the string form.
func (t *DataType) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	dt, err := FromString(s)
	if err != nil {
		return err
	}
	*t = dt
	return nil
}
