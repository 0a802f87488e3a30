package types

import "fmt"

// ExecutorPlacement denotes where a table-valued function is executed.
// Unlike scalar functions and aggregates, table functions are bound to a
// fixed placement when the catalog is built.
type ExecutorPlacement int

// Recognized values of [ExecutorPlacement].
const (
	// PlacementInvalid indicates an invalid executor placement.
	PlacementInvalid ExecutorPlacement = iota

	PlacementAllAgents    // Runs on every edge agent.
	PlacementSubsetAgents // Runs on the subset of agents selected by its arguments.
	PlacementCoordinator  // Runs once on the query coordinator.
)

var placementStrings = map[ExecutorPlacement]string{
	PlacementInvalid: "invalid",

	PlacementAllAgents:    "all_agents",
	PlacementSubsetAgents: "subset_agents",
	PlacementCoordinator:  "coordinator",
}

var placementValues = map[string]ExecutorPlacement{}

func init() {
	for p, s := range placementStrings {
		placementValues[s] = p
	}
}

// String returns the string representation of the ExecutorPlacement.
func (p ExecutorPlacement) String() string {
	if s, ok := placementStrings[p]; ok {
		return s
	}
	return fmt.Sprintf("ExecutorPlacement(%d)", p)
}

// PlacementFromString returns the [ExecutorPlacement] for the given string
// representation. It returns an error if the string does not name a known
// placement.
func PlacementFromString(s string) (ExecutorPlacement, error) {
	if p, ok := placementValues[s]; ok && p != PlacementInvalid {
		return p, nil
	}
	return PlacementInvalid, fmt.Errorf("unknown executor placement %q", s)
}

// MarshalYAML implements yaml.Marshaler, emitting the string form.
func (p ExecutorPlacement) MarshalYAML() (any, error) {
	if p == PlacementInvalid {
		return nil, fmt.Errorf("cannot marshal invalid executor placement")
	}
	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, accepting the string form.
func (p *ExecutorPlacement) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := PlacementFromString(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
