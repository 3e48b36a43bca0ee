package vpolytope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/matrix"
	"github.com/arkweave/hyreach/vpolytope"
)

func unitSquare(t *testing.T) *vpolytope.VPolytope {
	t.Helper()
	v, err := vpolytope.New(2, []geom.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
	assert.NoError(t, err)
	return v
}

func TestNew_DimensionMismatch(t *testing.T) {
	_, err := vpolytope.New(2, []geom.Point{{0, 0, 0}})
	assert.ErrorIs(t, err, vpolytope.ErrDimensionMismatch)
}

func TestContains(t *testing.T) {
	p := unitSquare(t)
	in, err := p.Contains(matrix.Vector{0.5, 0.5})
	assert.NoError(t, err)
	assert.True(t, in)

	out, err := p.Contains(matrix.Vector{2, 2})
	assert.NoError(t, err)
	assert.False(t, out)
}

func TestSupport(t *testing.T) {
	p := unitSquare(t)
	val, argmax, status, err := p.Support(matrix.Vector{1, 1})
	assert.NoError(t, err)
	assert.Equal(t, geom.Feasible, status)
	assert.InDelta(t, 2.0, val, 1e-9)
	assert.Equal(t, matrix.Vector{1, 1}, argmax)
}

func TestAffineImage(t *testing.T) {
	p := unitSquare(t)
	m, err := matrix.NewIdentity(2)
	assert.NoError(t, err)
	assert.NoError(t, m.Set(0, 0, 2))
	imgRaw, err := p.AffineImage(m, matrix.Vector{1, 0})
	assert.NoError(t, err)
	img := imgRaw.(*vpolytope.VPolytope)
	val, _, _, err := img.Support(matrix.Vector{1, 0})
	assert.NoError(t, err)
	assert.InDelta(t, 3.0, val, 1e-9) // x in [0,1] scaled by 2, shifted by 1 => [1,3]
}

func TestMinkowskiSum(t *testing.T) {
	a, err := vpolytope.New(1, []geom.Point{{0}, {1}})
	assert.NoError(t, err)
	b, err := vpolytope.New(1, []geom.Point{{0}, {2}})
	assert.NoError(t, err)
	sumRaw, err := a.MinkowskiSum(b)
	assert.NoError(t, err)
	sum := sumRaw.(*vpolytope.VPolytope)
	val, _, _, err := sum.Support(matrix.Vector{1})
	assert.NoError(t, err)
	assert.InDelta(t, 3.0, val, 1e-9)
}

func TestIntersect(t *testing.T) {
	a := unitSquare(t)
	bRaw, err := a.AffineImage(mustShift(t), matrix.Vector{0.5, 0})
	assert.NoError(t, err)
	b := bRaw.(*vpolytope.VPolytope)
	inter, err := a.Intersect(b)
	assert.NoError(t, err)
	empty, err := inter.IsEmpty()
	assert.NoError(t, err)
	assert.False(t, empty)
}

func mustShift(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(2)
	assert.NoError(t, err)
	return m
}

func TestUnion(t *testing.T) {
	a, err := vpolytope.New(1, []geom.Point{{0}, {1}})
	assert.NoError(t, err)
	b, err := vpolytope.New(1, []geom.Point{{2}, {3}})
	assert.NoError(t, err)
	u, err := a.Union(b)
	assert.NoError(t, err)
	val, _, _, err := u.Support(matrix.Vector{1})
	assert.NoError(t, err)
	assert.InDelta(t, 3.0, val, 1e-9)
}

func TestReduceRedundancy_DropsInteriorPoint(t *testing.T) {
	p, err := vpolytope.New(1, []geom.Point{{0}, {0.5}, {1}})
	assert.NoError(t, err)
	reduced, err := p.ReduceRedundancy()
	assert.NoError(t, err)
	verts, err := reduced.Vertices()
	assert.NoError(t, err)
	assert.Len(t, verts, 2)
}

func TestIntersectHalfspaces_Unsupported(t *testing.T) {
	p := unitSquare(t)
	_, err := p.IntersectHalfspaces(nil)
	assert.Error(t, err)
}
