package scenarios_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkweave/hyreach/scenarios"
)

func TestBuild_Unknown(t *testing.T) {
	a, err := scenarios.Build("no-such-scenario")
	assert.Nil(t, a)
	assert.ErrorIs(t, err, scenarios.ErrUnknownScenario)
}

func TestNames_Sorted(t *testing.T) {
	names := scenarios.Names()
	assert.Equal(t, []string{"bouncing-ball", "empty-intersection"}, names)
}

func TestBouncingBall_ValidatesAndHasOneInitial(t *testing.T) {
	a, err := scenarios.Build("bouncing-ball")
	assert.NoError(t, err)
	assert.NotNil(t, a)
	assert.NotPanics(t, func() { a.MustValidate() })
	assert.Len(t, a.Initial, 1)
	assert.Equal(t, 2, a.Dim)

	loc := a.Location(a.Initial[0].Location)
	assert.NotNil(t, loc)
	assert.Len(t, loc.Transitions, 1)
}

func TestBouncingBall_InitialSetNonEmpty(t *testing.T) {
	a, err := scenarios.Build("bouncing-ball")
	assert.NoError(t, err)
	empty, err := a.Initial[0].Set.IsEmpty()
	assert.NoError(t, err)
	assert.False(t, empty)
}

func TestEmptyIntersection_InitialDisjointFromInvariant(t *testing.T) {
	a, err := scenarios.Build("empty-intersection")
	assert.NoError(t, err)
	assert.NotPanics(t, func() { a.MustValidate() })

	is := a.Initial[0]
	loc := a.Location(is.Location)

	inter, err := is.Set.IntersectHalfspaces(loc.Invariant.Halfspaces)
	assert.NoError(t, err)
	empty, err := inter.IsEmpty()
	assert.NoError(t, err)
	assert.True(t, empty, "initial set must not intersect the invariant")
}
