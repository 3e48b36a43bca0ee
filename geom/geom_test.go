package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/matrix"
)

func TestNewHalfspace_ZeroNormal(t *testing.T) {
	_, err := geom.NewHalfspace(matrix.Vector{0, 0}, 1)
	assert.ErrorIs(t, err, geom.ErrZeroNormal)
}

func TestHalfspace_Holds(t *testing.T) {
	h, err := geom.NewHalfspace(matrix.Vector{1, 0}, 5)
	assert.NoError(t, err)

	ok, err := h.Holds(matrix.Vector{3, 100})
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Holds(matrix.Vector{6, 0})
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestHalfspace_Equal_AfterScaling(t *testing.T) {
	h1, err := geom.NewHalfspace(matrix.Vector{1, 0}, 5)
	assert.NoError(t, err)
	h2, err := geom.NewHalfspace(matrix.Vector{2, 0}, 10)
	assert.NoError(t, err)
	assert.True(t, h1.Equal(h2))

	h3, err := geom.NewHalfspace(matrix.Vector{-1, 0}, 5)
	assert.NoError(t, err)
	assert.False(t, h1.Equal(h3))
}

func TestPoint_EqualAndLess(t *testing.T) {
	p := geom.NewPoint(1, 2)
	q := geom.NewPoint(1, 2)
	r := geom.NewPoint(1, 3)
	assert.True(t, p.Equal(q))
	assert.False(t, p.Equal(r))
	assert.True(t, p.Less(r))
	assert.False(t, r.Less(p))
}

func TestPoint_AddSubScaleDot(t *testing.T) {
	p := geom.NewPoint(1, 2)
	q := geom.NewPoint(3, 4)

	sum, err := p.Add(q)
	assert.NoError(t, err)
	assert.Equal(t, geom.NewPoint(4, 6), sum)

	diff, err := q.Sub(p)
	assert.NoError(t, err)
	assert.Equal(t, geom.NewPoint(2, 2), diff)

	assert.Equal(t, geom.NewPoint(2, 4), p.Scale(2))

	dot, err := p.Dot(q)
	assert.NoError(t, err)
	assert.Equal(t, 11.0, dot)
}

func TestPoint_DimensionMismatch(t *testing.T) {
	p := geom.NewPoint(1, 2)
	q := geom.NewPoint(1, 2, 3)
	_, err := p.Add(q)
	assert.ErrorIs(t, err, geom.ErrDimensionMismatch)
}

func TestAffineCombination(t *testing.T) {
	pts := []geom.Point{geom.NewPoint(0, 0), geom.NewPoint(2, 4)}
	out, err := geom.AffineCombination(pts, []float64{0.5, 0.5})
	assert.NoError(t, err)
	assert.Equal(t, geom.NewPoint(1, 2), out)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "feasible", geom.Feasible.String())
	assert.Equal(t, "unbounded", geom.Unbounded.String())
	assert.Equal(t, "infeasible", geom.Infeasible.String())
}
