package scenarios

import (
	"sort"

	"github.com/arkweave/hyreach/hybrid"
)

// Factory builds one named scenario automaton.
type Factory func() (*hybrid.Automaton, error)

// registry maps a scenario's name (spec §8's scenario ordering) to the
// factory that builds it. Scenarios 3-5 (box Minkowski-sum closure,
// zonotope-over-approximation, unit-cube vertex enumeration) are pure
// convex-set operations rather than hybrid-automaton fixtures and so
// have no entry here — see DESIGN.md.
var registry = map[string]Factory{
	"bouncing-ball":      BouncingBall,
	"empty-intersection": EmptyIntersection,
}

// Build resolves name against the registry and invokes its factory.
func Build(name string) (*hybrid.Automaton, error) {
	f, ok := registry[name]
	if !ok {
		return nil, scenarioErrorf("Build", ErrUnknownScenario)
	}
	return f()
}

// Names returns every registered scenario name in sorted order, used
// by cmd/hyreach-demo to list choices.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
