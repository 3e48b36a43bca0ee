package scenarios

import (
	"github.com/arkweave/hyreach/box"
	"github.com/arkweave/hyreach/convert"
	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/hybrid"
	"github.com/arkweave/hyreach/matrix"
)

// locDisjoint is the empty-intersection scenario's single location ID.
const locDisjoint = 0

// EmptyIntersection builds spec §8 scenario 2: an initial set disjoint
// from its own location's invariant, so flowpipe construction's step 1
// (spec §4.8: "intersect the entry set with the invariant; if empty,
// return a one-segment empty flowpipe") short-circuits on the very
// first segment and the fixpoint loop never reaches discrete
// post-image — "no further exploration" holds even though the
// location carries an outgoing, always-enabled self-loop, since an
// empty flowpipe never yields an enabling segment for any guard.
//
// Reuses BouncingBall's invariant (0<=h<=20, -20<=v<=20) and flow, with
// an initial set entirely outside the invariant's h-range.
func EmptyIntersection() (*hybrid.Automaton, error) {
	a := hybrid.NewAutomaton(2)

	flow, err := bouncingFlow()
	if err != nil {
		return nil, scenarioErrorf("EmptyIntersection", err)
	}
	invariant, err := bouncingInvariant()
	if err != nil {
		return nil, scenarioErrorf("EmptyIntersection", err)
	}

	loc := &hybrid.Location{
		ID:        locDisjoint,
		Flow:      flow,
		Invariant: invariant,
	}
	loc.Transitions = []*hybrid.Transition{{
		Source: locDisjoint,
		Target: locDisjoint,
		Guard:  invariant, // always enabled within the invariant, never reached
		Reset:  geom.AffineMap{M: identity2, B: matrix.Vector{0, 0}},
	}}
	if err := a.AddLocation(loc); err != nil {
		return nil, scenarioErrorf("EmptyIntersection", err)
	}

	initialBox, err := box.New([]float64{21, 0}, []float64{22, 0})
	if err != nil {
		return nil, scenarioErrorf("EmptyIntersection", err)
	}
	initial, err := convert.BoxToHPolytope(initialBox)
	if err != nil {
		return nil, scenarioErrorf("EmptyIntersection", err)
	}
	a.AddInitial(locDisjoint, initial)

	return a, nil
}

// identity2 is the 2x2 identity, shared by the reset maps in this file
// that leave state unchanged.
var identity2 = mustIdentity(2)

func mustIdentity(n int) *matrix.Dense {
	m, err := matrix.NewIdentity(n)
	if err != nil {
		panic(err)
	}
	return m
}
