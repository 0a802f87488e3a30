package registry

import "errors"

var (
	// ErrNotFound is returned when a function name is not registered under
	// any calling convention.
	ErrNotFound = errors.New("function not found")

	// ErrDuplicateDefinition is returned at construction when the catalog
	// declares the same (name, argument tuple) twice, repeats a table
	// function name, or declares one name under more than one calling
	// convention.
	ErrDuplicateDefinition = errors.New("duplicate function definition")

	// ErrNoMatchingOverload is returned when primitive resolution finds no
	// registered overload whose argument tuple exactly equals the call's.
	ErrNoMatchingOverload = errors.New("no matching overload")

	// ErrNoMatch is returned by semantic rule lookup when no candidate rule
	// matches. Callers of [Resolver.ResolveCallType] never observe it; the
	// resolver recovers by defaulting to an unspecified semantic tag.
	ErrNoMatch = errors.New("no matching semantic rule")
)
