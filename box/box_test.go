package box_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkweave/hyreach/box"
	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/matrix"
)

func TestNew_DimensionMismatch(t *testing.T) {
	_, err := box.New([]float64{0, 0}, []float64{1})
	assert.ErrorIs(t, err, box.ErrDimensionMismatch)
}

func TestNew_InvalidBounds(t *testing.T) {
	_, err := box.New([]float64{1}, []float64{0})
	assert.ErrorIs(t, err, box.ErrInvalidBounds)
}

func TestEmpty(t *testing.T) {
	b := box.Empty(2)
	empty, err := b.IsEmpty()
	assert.NoError(t, err)
	assert.True(t, empty)
	assert.Equal(t, 2, b.Dim())
}

func TestContains(t *testing.T) {
	b, err := box.New([]float64{0, 0}, []float64{1, 1})
	assert.NoError(t, err)

	in, err := b.Contains(matrix.Vector{0.5, 0.5})
	assert.NoError(t, err)
	assert.True(t, in)

	out, err := b.Contains(matrix.Vector{2, 0.5})
	assert.NoError(t, err)
	assert.False(t, out)

	_, err = b.Contains(matrix.Vector{0})
	assert.ErrorIs(t, err, box.ErrDimensionMismatch)
}

func TestSupport(t *testing.T) {
	b, err := box.New([]float64{-1, -2}, []float64{3, 4})
	assert.NoError(t, err)

	val, argmax, status, err := b.Support(matrix.Vector{1, -1})
	assert.NoError(t, err)
	assert.Equal(t, geom.Feasible, status)
	assert.Equal(t, 3.0-(-2.0), val)
	assert.Equal(t, matrix.Vector{3, -2}, argmax)
}

// TestMinkowskiSum_ExactlyClosed is spec §8 scenario 3: A=[0,1]x[0,1],
// B=[-0.5,0.5]x[-0.5,0.5] => A+B = [-0.5,1.5]^2 exactly.
func TestMinkowskiSum_ExactlyClosed(t *testing.T) {
	a, err := box.New([]float64{0, 0}, []float64{1, 1})
	assert.NoError(t, err)
	b, err := box.New([]float64{-0.5, -0.5}, []float64{0.5, 0.5})
	assert.NoError(t, err)

	sumRaw, err := a.MinkowskiSum(b)
	assert.NoError(t, err)
	sum := sumRaw.(*box.Box)
	assert.Equal(t, []float64{-0.5, -0.5}, sum.Lo)
	assert.Equal(t, []float64{1.5, 1.5}, sum.Hi)
}

func TestMinkowskiSum_RequiresBoxOperand(t *testing.T) {
	a, err := box.New([]float64{0}, []float64{1})
	assert.NoError(t, err)
	_, err = a.MinkowskiSum(notABox{})
	assert.Error(t, err)
}

type notABox struct{ geom.Set }

func TestMinkowskiSum_EmptyOperandYieldsEmpty(t *testing.T) {
	a, err := box.New([]float64{0}, []float64{1})
	assert.NoError(t, err)
	sumRaw, err := a.MinkowskiSum(box.Empty(1))
	assert.NoError(t, err)
	empty, err := sumRaw.(*box.Box).IsEmpty()
	assert.NoError(t, err)
	assert.True(t, empty)
}

func TestIntersectHalfspaces_AxisAligned(t *testing.T) {
	b, err := box.New([]float64{0, 0}, []float64{10, 10})
	assert.NoError(t, err)
	h, err := geom.NewHalfspace(matrix.Vector{1, 0}, 4) // x <= 4
	assert.NoError(t, err)

	resRaw, err := b.IntersectHalfspaces([]geom.Halfspace{h})
	assert.NoError(t, err)
	res := resRaw.(*box.Box)
	assert.Equal(t, 4.0, res.Hi[0])
	assert.Equal(t, 10.0, res.Hi[1])
}

func TestIntersectHalfspaces_BecomesEmpty(t *testing.T) {
	b, err := box.New([]float64{0}, []float64{1})
	assert.NoError(t, err)
	h, err := geom.NewHalfspace(matrix.Vector{1}, -5) // x <= -5
	assert.NoError(t, err)

	resRaw, err := b.IntersectHalfspaces([]geom.Halfspace{h})
	assert.NoError(t, err)
	empty, err := resRaw.(*box.Box).IsEmpty()
	assert.NoError(t, err)
	assert.True(t, empty)
}

func TestVertices_UnitSquare(t *testing.T) {
	b, err := box.New([]float64{0, 0}, []float64{1, 1})
	assert.NoError(t, err)
	verts, err := b.Vertices()
	assert.NoError(t, err)
	assert.Len(t, verts, 4)
	assert.ElementsMatch(t, []geom.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, verts)
}

func TestBall(t *testing.T) {
	b := box.Ball(matrix.Vector{1, 1}, 2)
	assert.Equal(t, []float64{-1, -1}, b.Lo)
	assert.Equal(t, []float64{3, 3}, b.Hi)
}

func TestDiameter(t *testing.T) {
	b, err := box.New([]float64{0, 0}, []float64{2, 5})
	assert.NoError(t, err)
	assert.Equal(t, 5.0, b.Diameter())
}
