package hpolytope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/hpolytope"
	"github.com/arkweave/hyreach/matrix"
)

// unitSquare returns 0<=x<=1, 0<=y<=1 as an H-polytope.
func unitSquare(t *testing.T) *hpolytope.HPolytope {
	t.Helper()
	hs := []geom.Halfspace{
		mustHS(t, matrix.Vector{1, 0}, 1),
		mustHS(t, matrix.Vector{-1, 0}, 0),
		mustHS(t, matrix.Vector{0, 1}, 1),
		mustHS(t, matrix.Vector{0, -1}, 0),
	}
	p, err := hpolytope.New(2, hs)
	assert.NoError(t, err)
	return p
}

func mustHS(t *testing.T, n matrix.Vector, offset float64) geom.Halfspace {
	t.Helper()
	h, err := geom.NewHalfspace(n, offset)
	assert.NoError(t, err)
	return h
}

func TestIsEmpty(t *testing.T) {
	p := unitSquare(t)
	empty, err := p.IsEmpty()
	assert.NoError(t, err)
	assert.False(t, empty)

	infeasible, err := hpolytope.New(1, []geom.Halfspace{
		mustHS(t, matrix.Vector{1}, -1),
		mustHS(t, matrix.Vector{-1}, -1),
	})
	assert.NoError(t, err)
	empty, err = infeasible.IsEmpty()
	assert.NoError(t, err)
	assert.True(t, empty)
}

func TestContains(t *testing.T) {
	p := unitSquare(t)
	in, err := p.Contains(matrix.Vector{0.5, 0.5})
	assert.NoError(t, err)
	assert.True(t, in)

	out, err := p.Contains(matrix.Vector{2, 0.5})
	assert.NoError(t, err)
	assert.False(t, out)

	_, err = p.Contains(matrix.Vector{0})
	assert.ErrorIs(t, err, hpolytope.ErrDimensionMismatch)
}

func TestSupport(t *testing.T) {
	p := unitSquare(t)
	val, _, status, err := p.Support(matrix.Vector{1, 1})
	assert.NoError(t, err)
	assert.Equal(t, geom.Feasible, status)
	assert.InDelta(t, 2.0, val, 1e-9)
}

func TestAffineImage_Invertible(t *testing.T) {
	p := unitSquare(t)
	m, err := matrix.NewIdentity(2)
	assert.NoError(t, err)
	assert.NoError(t, m.Set(0, 0, 2))
	imgRaw, err := p.AffineImage(m, matrix.Vector{10, 0})
	assert.NoError(t, err)
	img := imgRaw.(*hpolytope.HPolytope)

	val, _, status, err := img.Support(matrix.Vector{1, 0})
	assert.NoError(t, err)
	assert.Equal(t, geom.Feasible, status)
	assert.InDelta(t, 12.0, val, 1e-9) // x in [0,1] scaled by 2 and shifted by 10
}

func TestMinkowskiSum(t *testing.T) {
	a := unitSquare(t)
	bRaw, err := a.AffineImage(mustIdentity2(t), matrix.Vector{0, 0})
	assert.NoError(t, err)
	b := bRaw.(*hpolytope.HPolytope)

	sumRaw, err := a.MinkowskiSum(b)
	assert.NoError(t, err)
	sum := sumRaw.(*hpolytope.HPolytope)

	val, _, status, err := sum.Support(matrix.Vector{1, 0})
	assert.NoError(t, err)
	assert.Equal(t, geom.Feasible, status)
	assert.InDelta(t, 2.0, val, 1e-9) // [0,1]+[0,1] = [0,2]
}

func mustIdentity2(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(2)
	assert.NoError(t, err)
	return m
}

func TestIntersectHalfspaces(t *testing.T) {
	p := unitSquare(t)
	resRaw, err := p.IntersectHalfspaces([]geom.Halfspace{mustHS(t, matrix.Vector{1, 0}, 0.5)})
	assert.NoError(t, err)
	res := resRaw.(*hpolytope.HPolytope)
	val, _, _, err := res.Support(matrix.Vector{1, 0})
	assert.NoError(t, err)
	assert.InDelta(t, 0.5, val, 1e-9)
}

func TestReduceRedundant(t *testing.T) {
	p := unitSquare(t)
	withExtra, err := p.IntersectHalfspaces([]geom.Halfspace{mustHS(t, matrix.Vector{1, 0}, 5)})
	assert.NoError(t, err)
	reduced, err := withExtra.(*hpolytope.HPolytope).ReduceRedundant()
	assert.NoError(t, err)
	assert.Len(t, reduced.Halfspaces, 4, "the redundant x<=5 constraint must be dropped")
}

func TestVertices_UnitSquare(t *testing.T) {
	p := unitSquare(t)
	verts, err := p.Vertices()
	assert.NoError(t, err)
	assert.Len(t, verts, 4)
	assert.ElementsMatch(t, []geom.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, verts)
}

func TestVertices_UnboundedReturnsError(t *testing.T) {
	// x >= 0 alone, in 1D: a half-line, not a finite vertex set.
	p, err := hpolytope.New(1, []geom.Halfspace{mustHS(t, matrix.Vector{-1}, 0)})
	assert.NoError(t, err)
	_, err = p.Vertices()
	assert.ErrorIs(t, err, hpolytope.ErrUnbounded)
}

// TestAffineImage_SingularReset covers the non-invertible branch of
// AffineImage: a reset matrix that zeroes a variable, the common
// pattern a hybrid automaton's jump resets use, and which has no
// inverse. The unit square collapses onto the line y=0, which the
// facet reconstruction must still represent exactly in y, even though
// a square map on a full-dimensional input can only ever be exact
// along the rank it preserves.
func TestAffineImage_SingularReset(t *testing.T) {
	p := unitSquare(t)
	m, err := matrix.NewDense(2, 2)
	assert.NoError(t, err)
	assert.NoError(t, m.Set(0, 0, 1))
	assert.NoError(t, m.Set(1, 1, 0))

	imgRaw, err := p.AffineImage(m, matrix.Vector{0, 0})
	assert.NoError(t, err)
	img := imgRaw.(*hpolytope.HPolytope)

	onLine, err := img.Contains(matrix.Vector{0.5, 0})
	assert.NoError(t, err)
	assert.True(t, onLine, "a point on the collapsed y=0 line must be contained")

	offLine, err := img.Contains(matrix.Vector{0.5, 1})
	assert.NoError(t, err)
	assert.False(t, offLine, "a point off the collapsed line must not be contained")
}

func TestContainsSet(t *testing.T) {
	p := unitSquare(t)
	smaller, err := hpolytope.New(2, []geom.Halfspace{
		mustHS(t, matrix.Vector{1, 0}, 0.5),
		mustHS(t, matrix.Vector{-1, 0}, 0),
		mustHS(t, matrix.Vector{0, 1}, 0.5),
		mustHS(t, matrix.Vector{0, -1}, 0),
	})
	assert.NoError(t, err)
	ok, err := p.ContainsSet(smaller)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = smaller.ContainsSet(p)
	assert.NoError(t, err)
	assert.False(t, ok)
}
