package datatype

import "fmt"

// SemanticType is a domain-specific refinement tag layered on top of a
// [DataType]. It describes how a value should be interpreted (for example,
// "this INT64 is a port number"), not how it is stored. SemanticUnspecified
// means the tag is not known.
type SemanticType uint32

const (
	SemanticUnspecified SemanticType = iota // tag not known or not applicable

	SemanticBytes         // Raw byte quantity
	SemanticUPID          // Unique process identifier (node, pid, start time)
	SemanticPodName       // Kubernetes pod name
	SemanticServiceName   // Service name
	SemanticContainerName // Container name
	SemanticNamespaceName // Kubernetes namespace name
	SemanticNodeName      // Node (host) name
	SemanticIPAddress     // IPv4 or IPv6 address
	SemanticPort          // Transport-layer port number
	SemanticDurationNS    // Duration in nanoseconds
	SemanticPercent       // Ratio scaled to [0, 100]
)

var semanticTypeStrings = map[SemanticType]string{
	SemanticUnspecified:   "unspecified",
	SemanticBytes:         "bytes",
	SemanticUPID:          "upid",
	SemanticPodName:       "pod_name",
	SemanticServiceName:   "service_name",
	SemanticContainerName: "container_name",
	SemanticNamespaceName: "namespace_name",
	SemanticNodeName:      "node_name",
	SemanticIPAddress:     "ip_address",
	SemanticPort:          "port",
	SemanticDurationNS:    "duration_ns",
	SemanticPercent:       "percent",
}

var semanticTypeValues = map[string]SemanticType{}

func init() {
	for st, s := range semanticTypeStrings {
		semanticTypeValues[s] = st
	}
}

// String returns the string representation of the SemanticType.
func (t SemanticType) String() string {
	if s, ok := semanticTypeStrings[t]; ok {
		return s
	}
	return fmt.Sprintf("SemanticType(%d)", t)
}

// SemanticFromString returns the [SemanticType] for the given string
// representation. It returns an error if the string does not name a known
// semantic type.
func SemanticFromString(s string) (SemanticType, error) {
	if st, ok := semanticTypeValues[s]; ok {
		return st, nil
	}
	return SemanticUnspecified, fmt.Errorf("unknown semantic type %q", s)
}

// MarshalYAML implements yaml.Marshaler, emitting the string form.
func (t SemanticType) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, accepting the string form.
func (t *SemanticType) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	st, err := SemanticFromString(s)
	if err != nil {
		return err
	}
	*t = st
	return nil
}
