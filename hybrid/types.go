package hybrid

import (
	"fmt"
	"sort"

	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/hpolytope"
	"github.com/arkweave/hyreach/matrix"
)

func hybridErrorf(tag string, err error) error {
	return fmt.Errorf("hybrid.%s: %w", tag, err)
}

// Location is Location(n) (spec §3): an identifier, a flow matrix A of
// size (n+1)x(n+1) (the last row/column encoding the affine term), an
// invariant, and a set of outgoing transitions. Identifiers are
// integers unique within one automaton (spec §6).
type Location struct {
	ID          int
	Flow        *matrix.Dense // (n+1) x (n+1)
	Invariant   *hpolytope.HPolytope
	Transitions []*Transition
}

// Dim returns the continuous-state dimension n (Flow is (n+1)x(n+1)).
func (l *Location) Dim() int { return l.Flow.Rows() - 1 }

// Transition is Transition(n) (spec §3): non-owning source/target
// location references, a guard, and a reset affine map x -> Mx+b.
type Transition struct {
	Source int
	Target int
	Guard  *hpolytope.HPolytope
	Reset  geom.AffineMap
}

// InitialState pairs a location with its initial entry set (spec §3
// "an initial-state set {(location, H-polytope)}").
type InitialState struct {
	Location int
	Set      *hpolytope.HPolytope
}

// Automaton is Hybrid automaton(n) (spec §3): a set of locations, a
// set of transitions, and an initial-state set. Locations and
// transitions are created up front and live for the whole run (spec §3
// "Lifecycles").
type Automaton struct {
	Dim     int
	locs    map[int]*Location
	order   []int // insertion order, for spec §4.8's "iterated in insertion order"
	Initial []InitialState
}

// NewAutomaton returns an empty automaton over dimension dim.
func NewAutomaton(dim int) *Automaton {
	return &Automaton{Dim: dim, locs: make(map[int]*Location)}
}

// AddLocation registers loc, preserving insertion order for
// deterministic iteration (spec §4.8 "Determinism: locations and
// transitions are iterated in insertion order").
func (a *Automaton) AddLocation(loc *Location) error {
	if _, exists := a.locs[loc.ID]; exists {
		return hybridErrorf("AddLocation", ErrDuplicateLocation)
	}
	if loc.Flow.Rows() != a.Dim+1 || loc.Flow.Cols() != a.Dim+1 {
		return hybridErrorf("AddLocation", ErrBadFlowMatrix)
	}
	a.locs[loc.ID] = loc
	a.order = append(a.order, loc.ID)
	return nil
}

// Location returns the location registered under id, or nil if absent.
func (a *Automaton) Location(id int) *Location { return a.locs[id] }

// Locations returns every location in insertion order.
func (a *Automaton) Locations() []*Location {
	out := make([]*Location, len(a.order))
	for i, id := range a.order {
		out[i] = a.locs[id]
	}
	return out
}

// AddInitial registers an initial (location, set) pair.
func (a *Automaton) AddInitial(locationID int, set *hpolytope.HPolytope) {
	a.Initial = append(a.Initial, InitialState{Location: locationID, Set: set})
}

// Validate checks every structural invariant spec §7 classes as
// "invalid automaton": every transition's source/target must name a
// registered location, and every invariant/guard/reset must match the
// automaton's declared dimension. It returns a plain error; callers at
// the engine boundary are expected to escalate it to a panic (spec §7:
// "aborts the run with a diagnostic — never caught") via
// MustValidate.
func (a *Automaton) Validate() error {
	for _, is := range a.Initial {
		if _, ok := a.locs[is.Location]; !ok {
			return hybridErrorf("Validate", ErrUnknownLocation)
		}
		if is.Set.Dim() != a.Dim {
			return hybridErrorf("Validate", ErrDimensionMismatch)
		}
	}
	for _, id := range a.order {
		loc := a.locs[id]
		if loc.Dim() != a.Dim {
			return hybridErrorf("Validate", ErrDimensionMismatch)
		}
		if loc.Invariant.Dim() != a.Dim {
			return hybridErrorf("Validate", ErrDimensionMismatch)
		}
		for _, t := range loc.Transitions {
			if t.Source != id {
				return hybridErrorf("Validate", fmt.Errorf("%w: transition source %d does not match owning location %d", ErrDimensionMismatch, t.Source, id))
			}
			if _, ok := a.locs[t.Target]; !ok {
				return hybridErrorf("Validate", ErrUnknownLocation)
			}
			if t.Guard.Dim() != a.Dim {
				return hybridErrorf("Validate", ErrDimensionMismatch)
			}
			if t.Reset.M.Rows() != a.Dim || t.Reset.M.Cols() != a.Dim || len(t.Reset.B) != a.Dim {
				return hybridErrorf("Validate", ErrDimensionMismatch)
			}
		}
	}
	return nil
}

// MustValidate calls Validate and panics with an *InvalidAutomatonError
// on failure, matching spec §7's "aborts the run with a diagnostic —
// never caught" for invalid-automaton errors.
func (a *Automaton) MustValidate() {
	if err := a.Validate(); err != nil {
		panic(&InvalidAutomatonError{Err: err})
	}
}

// SortedLocationIDs returns every registered location ID in ascending
// numeric order, used where a deterministic-but-not-insertion order is
// wanted (e.g. diagnostics).
func (a *Automaton) SortedLocationIDs() []int {
	ids := make([]int, 0, len(a.locs))
	for id := range a.locs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
