package vertexenum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/matrix"
	"github.com/arkweave/hyreach/vertexenum"
)

// unitCubeHalfspaces builds {+-e_i.x <= 1, i=1..3} (spec §8 scenario
// 5).
func unitCubeHalfspaces(t *testing.T) []geom.Halfspace {
	t.Helper()
	hs := make([]geom.Halfspace, 0, 6)
	for i := 0; i < 3; i++ {
		pos := make(matrix.Vector, 3)
		pos[i] = 1
		h, err := geom.NewHalfspace(pos, 1)
		assert.NoError(t, err)
		hs = append(hs, h)

		neg := make(matrix.Vector, 3)
		neg[i] = -1
		h, err = geom.NewHalfspace(neg, 1)
		assert.NoError(t, err)
		hs = append(hs, h)
	}
	return hs
}

// TestEnumerate_UnitCube is spec §8 scenario 5: half-spaces
// {+-e_i.x <= 1, i=1..3} yield exactly 8 vertices, every coordinate in
// {-1,+1}.
func TestEnumerate_UnitCube(t *testing.T) {
	pts, rays, err := vertexenum.Enumerate(3, unitCubeHalfspaces(t))
	assert.NoError(t, err)
	assert.Empty(t, rays, "a bounded polytope has no recession rays")
	assert.Len(t, pts, 8)

	seen := make(map[[3]float64]bool)
	for _, p := range pts {
		assert.Len(t, p, 3)
		var key [3]float64
		for i, c := range p {
			assert.True(t, math.Abs(math.Abs(c)-1) < 1e-9, "coordinate %v must be +-1", c)
			key[i] = math.Round(c)
		}
		seen[key] = true
	}
	assert.Len(t, seen, 8, "all 8 corners must be distinct")
}

func TestEnumerate_SingleHalfspace_Unbounded(t *testing.T) {
	h, err := geom.NewHalfspace(matrix.Vector{1}, 5) // x <= 5
	assert.NoError(t, err)

	pts, rays, err := vertexenum.Enumerate(1, []geom.Halfspace{h})
	assert.NoError(t, err)
	assert.Len(t, pts, 1)
	assert.InDelta(t, 5.0, pts[0][0], 1e-9)
	assert.NotEmpty(t, rays, "x <= 5 is unbounded below and has a recession ray")
}

func TestEnumerate_TooFewHalfspaces(t *testing.T) {
	h, err := geom.NewHalfspace(matrix.Vector{1, 0}, 1)
	assert.NoError(t, err)
	pts, rays, err := vertexenum.Enumerate(2, []geom.Halfspace{h})
	assert.NoError(t, err)
	assert.Nil(t, pts)
	assert.Nil(t, rays)
}

// TestNullVector_Dim1 covers the degenerate 1-D case: dim-1 == 0, so
// the cofactor expansion's "minor" is the empty 0x0 determinant (by
// convention, 1) rather than an allocated matrix.
func TestNullVector_Dim1(t *testing.T) {
	d, err := vertexenum.NullVector(1, nil)
	assert.NoError(t, err)
	assert.Equal(t, matrix.Vector{1}, d)
}

func TestEnumerate_Infeasible(t *testing.T) {
	h1, err := geom.NewHalfspace(matrix.Vector{1}, -1) // x <= -1
	assert.NoError(t, err)
	h2, err := geom.NewHalfspace(matrix.Vector{-1}, -1) // x >= 1
	assert.NoError(t, err)

	pts, rays, err := vertexenum.Enumerate(1, []geom.Halfspace{h1, h2})
	assert.NoError(t, err)
	assert.Empty(t, pts)
	assert.Empty(t, rays)
}
