package hybrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkweave/hyreach/box"
	"github.com/arkweave/hyreach/convert"
	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/hybrid"
	"github.com/arkweave/hyreach/matrix"
)

func unitSquareInvariant(t *testing.T) *hybrid.Location {
	t.Helper()
	b, err := box.New([]float64{0, 0}, []float64{1, 1})
	assert.NoError(t, err)
	inv, err := convert.BoxToHPolytope(b)
	assert.NoError(t, err)
	flow, err := matrix.NewDense(3, 3)
	assert.NoError(t, err)
	return &hybrid.Location{ID: 0, Flow: flow, Invariant: inv}
}

func TestAutomaton_AddLocation_Duplicate(t *testing.T) {
	a := hybrid.NewAutomaton(2)
	loc := unitSquareInvariant(t)
	assert.NoError(t, a.AddLocation(loc))
	assert.ErrorIs(t, a.AddLocation(loc), hybrid.ErrDuplicateLocation)
}

func TestAutomaton_AddLocation_BadFlowMatrix(t *testing.T) {
	a := hybrid.NewAutomaton(2)
	loc := unitSquareInvariant(t)
	bad, err := matrix.NewDense(2, 2)
	assert.NoError(t, err)
	loc.Flow = bad
	assert.ErrorIs(t, a.AddLocation(loc), hybrid.ErrBadFlowMatrix)
}

func TestAutomaton_Validate_UnknownTransitionTarget(t *testing.T) {
	a := hybrid.NewAutomaton(2)
	loc := unitSquareInvariant(t)
	m, err := matrix.NewIdentity(2)
	assert.NoError(t, err)
	loc.Transitions = []*hybrid.Transition{{
		Source: 0,
		Target: 99,
		Guard:  loc.Invariant,
		Reset:  geom.AffineMap{M: m, B: matrix.Vector{0, 0}},
	}}
	assert.NoError(t, a.AddLocation(loc))
	assert.ErrorIs(t, a.Validate(), hybrid.ErrUnknownLocation)
}

func TestAutomaton_Validate_DimensionMismatch(t *testing.T) {
	a := hybrid.NewAutomaton(2)
	loc := unitSquareInvariant(t)
	assert.NoError(t, a.AddLocation(loc))

	b, err := box.New([]float64{0}, []float64{1})
	assert.NoError(t, err)
	badSet, err := convert.BoxToHPolytope(b)
	assert.NoError(t, err)
	a.AddInitial(0, badSet)

	assert.ErrorIs(t, a.Validate(), hybrid.ErrDimensionMismatch)
}

func TestAutomaton_Validate_Ok(t *testing.T) {
	a := hybrid.NewAutomaton(2)
	loc := unitSquareInvariant(t)
	assert.NoError(t, a.AddLocation(loc))
	a.AddInitial(0, loc.Invariant)
	assert.NoError(t, a.Validate())
	assert.NotPanics(t, func() { a.MustValidate() })
}

func TestAutomaton_MustValidate_Panics(t *testing.T) {
	a := hybrid.NewAutomaton(2)
	a.AddInitial(7, unitSquareInvariant(t).Invariant) // location 7 is never registered
	assert.Panics(t, func() { a.MustValidate() })
}

func TestAutomaton_Locations_InsertionOrder(t *testing.T) {
	a := hybrid.NewAutomaton(2)
	for _, id := range []int{5, 1, 3} {
		loc := unitSquareInvariant(t)
		loc.ID = id
		assert.NoError(t, a.AddLocation(loc))
	}
	got := a.Locations()
	assert.Equal(t, []int{5, 1, 3}, []int{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, []int{1, 3, 5}, a.SortedLocationIDs())
}

func TestLocation_Dim(t *testing.T) {
	loc := unitSquareInvariant(t)
	assert.Equal(t, 2, loc.Dim())
}
