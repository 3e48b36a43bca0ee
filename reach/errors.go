package reach

import (
	"errors"
	"fmt"
)

// Sentinel errors for engine configuration and execution.
var (
	// ErrAutomatonNil is returned when a nil automaton is given.
	ErrAutomatonNil = errors.New("reach: automaton is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied
	// (e.g. a non-positive time step), mirroring bfs.ErrOptionViolation.
	ErrOptionViolation = errors.New("reach: invalid option supplied")

	// ErrNoInitialStates is returned when the automaton declares no
	// initial (location, set) pairs — there is nothing to explore.
	ErrNoInitialStates = errors.New("reach: automaton has no initial states")

	// ErrUnknownRepresentation is returned when a Config's
	// Representation value is not one of the recognised constants.
	ErrUnknownRepresentation = errors.New("reach: unknown representation")
)

func reachErrorf(tag string, err error) error {
	return fmt.Errorf("reach.%s: %w", tag, err)
}
