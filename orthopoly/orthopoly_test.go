package orthopoly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/matrix"
	"github.com/arkweave/hyreach/orthopoly"
)

// singleCell builds a single Inside lattice point at (1,1) on a step-1
// grid (2D), so a single "pixel" occupying [1,2]x[1,2] in real
// coordinates once its corner cells are considered.
func singleCell(t *testing.T) *orthopoly.OrthogonalPolyhedron {
	t.Helper()
	o := orthopoly.NewEmpty(2, 1.0)
	assert.NoError(t, o.SetInside([]int{1, 1}))
	return o
}

func TestNewEmpty_IsEmpty(t *testing.T) {
	o := orthopoly.NewEmpty(2, 1.0)
	empty, err := o.IsEmpty()
	assert.NoError(t, err)
	assert.True(t, empty)
}

func TestSetInside_DimensionMismatch(t *testing.T) {
	o := orthopoly.NewEmpty(2, 1.0)
	err := o.SetInside([]int{1, 1, 1})
	assert.ErrorIs(t, err, orthopoly.ErrDimensionMismatch)
}

func TestContains(t *testing.T) {
	o := singleCell(t)
	in, err := o.Contains(matrix.Vector{1, 1})
	assert.NoError(t, err)
	assert.True(t, in)

	out, err := o.Contains(matrix.Vector{5, 5})
	assert.NoError(t, err)
	assert.False(t, out)

	_, err = o.Contains(matrix.Vector{1})
	assert.ErrorIs(t, err, orthopoly.ErrDimensionMismatch)
}

func TestHull(t *testing.T) {
	o := orthopoly.NewEmpty(2, 1.0)
	assert.NoError(t, o.SetInside([]int{0, 0}))
	assert.NoError(t, o.SetInside([]int{2, 3}))

	h, err := o.Hull()
	assert.NoError(t, err)
	empty, err := h.IsEmpty()
	assert.NoError(t, err)
	assert.False(t, empty)
	assert.Equal(t, []float64{0, 0}, h.Lo)
	assert.Equal(t, []float64{2, 3}, h.Hi)
}

func TestHull_Empty(t *testing.T) {
	o := orthopoly.NewEmpty(2, 1.0)
	h, err := o.Hull()
	assert.NoError(t, err)
	empty, err := h.IsEmpty()
	assert.NoError(t, err)
	assert.True(t, empty)
}

func TestSupport_DelegatesToHull(t *testing.T) {
	o := orthopoly.NewEmpty(2, 1.0)
	assert.NoError(t, o.SetInside([]int{0, 0}))
	assert.NoError(t, o.SetInside([]int{3, 0}))

	val, _, status, err := o.Support(matrix.Vector{1, 0})
	assert.NoError(t, err)
	assert.Equal(t, geom.Feasible, status)
	assert.InDelta(t, 3.0, val, 1e-9)
}

func TestAffineImage_DiagonalScale(t *testing.T) {
	o := singleCell(t)
	m, err := matrix.NewIdentity(2)
	assert.NoError(t, err)
	assert.NoError(t, m.Set(0, 0, 2))

	imgRaw, err := o.AffineImage(m, matrix.Vector{0, 0})
	assert.NoError(t, err)
	img := imgRaw.(*orthopoly.OrthogonalPolyhedron)
	in, err := img.Contains(matrix.Vector{2, 1})
	assert.NoError(t, err)
	assert.True(t, in)
}

func TestAffineImage_NonDiagonalRejected(t *testing.T) {
	o := singleCell(t)
	m, err := matrix.NewIdentity(2)
	assert.NoError(t, err)
	assert.NoError(t, m.Set(0, 1, 1))

	_, err = o.AffineImage(m, matrix.Vector{0, 0})
	assert.ErrorIs(t, err, orthopoly.ErrNotSupported)
}

func TestMinkowskiSum_Unsupported(t *testing.T) {
	o := singleCell(t)
	_, err := o.MinkowskiSum(o)
	assert.ErrorIs(t, err, orthopoly.ErrNotSupported)
}

func TestIntersectHalfspaces(t *testing.T) {
	o := orthopoly.NewEmpty(2, 1.0)
	assert.NoError(t, o.SetInside([]int{0, 0}))
	assert.NoError(t, o.SetInside([]int{5, 5}))

	hs, err := geom.NewHalfspace(matrix.Vector{1, 0}, 2)
	assert.NoError(t, err)

	resRaw, err := o.IntersectHalfspaces([]geom.Halfspace{hs})
	assert.NoError(t, err)
	res := resRaw.(*orthopoly.OrthogonalPolyhedron)

	in, err := res.Contains(matrix.Vector{0, 0})
	assert.NoError(t, err)
	assert.True(t, in)

	out, err := res.Contains(matrix.Vector{5, 5})
	assert.NoError(t, err)
	assert.False(t, out)
}

func TestIntersect(t *testing.T) {
	a := orthopoly.NewEmpty(2, 1.0)
	assert.NoError(t, a.SetInside([]int{0, 0}))
	assert.NoError(t, a.SetInside([]int{1, 1}))

	b := orthopoly.NewEmpty(2, 1.0)
	assert.NoError(t, b.SetInside([]int{1, 1}))

	inter, err := a.Intersect(b)
	assert.NoError(t, err)
	in, err := inter.Contains(matrix.Vector{1, 1})
	assert.NoError(t, err)
	assert.True(t, in)
	in, err = inter.Contains(matrix.Vector{0, 0})
	assert.NoError(t, err)
	assert.False(t, in)
}

func TestIntersect_StepMismatch(t *testing.T) {
	a := orthopoly.NewEmpty(2, 1.0)
	b := orthopoly.NewEmpty(2, 0.5)
	_, err := a.Intersect(b)
	assert.ErrorIs(t, err, orthopoly.ErrStepMismatch)
}

func TestUnion(t *testing.T) {
	a := orthopoly.NewEmpty(2, 1.0)
	assert.NoError(t, a.SetInside([]int{0, 0}))

	b := orthopoly.NewEmpty(2, 1.0)
	assert.NoError(t, b.SetInside([]int{2, 2}))

	u, err := a.Union(b)
	assert.NoError(t, err)
	in, err := u.Contains(matrix.Vector{0, 0})
	assert.NoError(t, err)
	assert.True(t, in)
	in, err = u.Contains(matrix.Vector{2, 2})
	assert.NoError(t, err)
	assert.True(t, in)
}

func TestVertices_SingleCellHasFourCorners(t *testing.T) {
	o := singleCell(t)
	verts, err := o.Vertices()
	assert.NoError(t, err)
	assert.Len(t, verts, 4)
}
