package scenarios

import (
	"github.com/arkweave/hyreach/box"
	"github.com/arkweave/hyreach/convert"
	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/hpolytope"
	"github.com/arkweave/hyreach/hybrid"
	"github.com/arkweave/hyreach/matrix"
)

// locBouncing is the bouncing ball's single location ID.
const locBouncing = 0

// BouncingBall builds spec §8 scenario 1: a ball falling under gravity
// in state (h, v), bouncing inelastically off the floor.
//
//	flow:      h' = v, v' = -9.81
//	invariant: 0 <= h <= 20, -20 <= v <= 20
//	initial:   h in [10, 10.2], v in [-0.01, 0.009]
//	guard:     h <= 0 and v <= 0
//	reset:     h := h, v := -0.9*v
//
// The single location self-loops through its own guard/reset, so
// repeated bounces are modeled by repeated discrete post-images of the
// same location rather than by distinct locations (spec §8: "a ball
// falling and bouncing").
func BouncingBall() (*hybrid.Automaton, error) {
	a := hybrid.NewAutomaton(2)

	flow, err := bouncingFlow()
	if err != nil {
		return nil, scenarioErrorf("BouncingBall", err)
	}

	invariant, err := bouncingInvariant()
	if err != nil {
		return nil, scenarioErrorf("BouncingBall", err)
	}

	guard, err := hpolytope.New(2, []geom.Halfspace{
		mustHalfspace(matrix.Vector{1, 0}, 0), // h <= 0
		mustHalfspace(matrix.Vector{0, 1}, 0), // v <= 0
	})
	if err != nil {
		return nil, scenarioErrorf("BouncingBall", err)
	}

	resetM, err := matrix.NewDense(2, 2)
	if err != nil {
		return nil, scenarioErrorf("BouncingBall", err)
	}
	if err := resetM.Set(0, 0, 1); err != nil {
		return nil, scenarioErrorf("BouncingBall", err)
	}
	if err := resetM.Set(1, 1, -0.9); err != nil {
		return nil, scenarioErrorf("BouncingBall", err)
	}
	reset := geom.AffineMap{M: resetM, B: matrix.Vector{0, 0}}

	loc := &hybrid.Location{
		ID:        locBouncing,
		Flow:      flow,
		Invariant: invariant,
	}
	loc.Transitions = []*hybrid.Transition{{
		Source: locBouncing,
		Target: locBouncing,
		Guard:  guard,
		Reset:  reset,
	}}
	if err := a.AddLocation(loc); err != nil {
		return nil, scenarioErrorf("BouncingBall", err)
	}

	initialBox, err := box.New([]float64{10, -0.01}, []float64{10.2, 0.009})
	if err != nil {
		return nil, scenarioErrorf("BouncingBall", err)
	}
	initial, err := convert.BoxToHPolytope(initialBox)
	if err != nil {
		return nil, scenarioErrorf("BouncingBall", err)
	}
	a.AddInitial(locBouncing, initial)

	return a, nil
}

// bouncingFlow builds the augmented 3x3 flow matrix for h' = v,
// v' = -9.81 (hybrid.Location.Flow's "(n+1)x(n+1), last row/column
// encoding the affine term" convention): the top-left 2x2 block is the
// linear part A = [[0,1],[0,0]], the first two entries of the last
// column are the affine term c = [0,-9.81], and the last row is zero
// so that exp(A_aug*t) applied to (x,1) yields (Phi1*x+Phi2, 1).
func bouncingFlow() (*matrix.Dense, error) {
	m, err := matrix.NewDense(3, 3)
	if err != nil {
		return nil, err
	}
	if err := m.Set(0, 1, 1); err != nil {
		return nil, err
	}
	if err := m.Set(1, 2, -9.81); err != nil {
		return nil, err
	}
	return m, nil
}

// bouncingInvariant builds the box 0<=h<=20, -20<=v<=20 as an
// H-polytope (hybrid.Location.Invariant is always H-polytope, per
// hybrid's convention of expressing invariants/guards uniformly).
func bouncingInvariant() (*hpolytope.HPolytope, error) {
	b, err := box.New([]float64{0, -20}, []float64{20, 20})
	if err != nil {
		return nil, err
	}
	return convert.BoxToHPolytope(b)
}

// mustHalfspace panics on a zero normal, which never happens for the
// fixed literal normals used by this file's scenarios.
func mustHalfspace(normal matrix.Vector, offset float64) geom.Halfspace {
	h, err := geom.NewHalfspace(normal, offset)
	if err != nil {
		panic(err)
	}
	return h
}
