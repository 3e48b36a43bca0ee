package supportfn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkweave/hyreach/box"
	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/matrix"
	"github.com/arkweave/hyreach/supportfn"
)

func unitSquareLeaf(t *testing.T) *supportfn.Node {
	t.Helper()
	b, err := box.New([]float64{0, 0}, []float64{1, 1})
	assert.NoError(t, err)
	return supportfn.NewLeaf(b)
}

func TestLeaf_Evaluate(t *testing.T) {
	n := unitSquareLeaf(t)
	dim, err := n.Dim()
	assert.NoError(t, err)
	assert.Equal(t, 2, dim)

	val, _, status, err := n.Evaluate(matrix.Vector{1, 1})
	assert.NoError(t, err)
	assert.Equal(t, geom.Feasible, status)
	assert.InDelta(t, 2.0, val, 1e-9)
}

func TestAffine_Evaluate(t *testing.T) {
	leaf := unitSquareLeaf(t)
	m, err := matrix.NewIdentity(2)
	assert.NoError(t, err)
	assert.NoError(t, m.Set(0, 0, 2))
	affine := supportfn.NewAffine(leaf, m, matrix.Vector{10, 0})

	val, _, status, err := affine.Evaluate(matrix.Vector{1, 0})
	assert.NoError(t, err)
	assert.Equal(t, geom.Feasible, status)
	assert.InDelta(t, 12.0, val, 1e-9) // [0,1] scaled by 2 shifted by 10 in x
}

func TestMinkowskiSum_Evaluate(t *testing.T) {
	a := unitSquareLeaf(t)
	b := unitSquareLeaf(t)
	sum := supportfn.NewMinkowskiSum(a, b)

	val, _, status, err := sum.Evaluate(matrix.Vector{1, 0})
	assert.NoError(t, err)
	assert.Equal(t, geom.Feasible, status)
	assert.InDelta(t, 2.0, val, 1e-9) // [0,1]+[0,1] in x = [0,2]
}

func TestUnion_Evaluate(t *testing.T) {
	small, err := box.New([]float64{0, 0}, []float64{1, 1})
	assert.NoError(t, err)
	big, err := box.New([]float64{0, 0}, []float64{5, 5})
	assert.NoError(t, err)
	u := supportfn.NewUnion(supportfn.NewLeaf(small), supportfn.NewLeaf(big))

	val, _, status, err := u.Evaluate(matrix.Vector{1, 0})
	assert.NoError(t, err)
	assert.Equal(t, geom.Feasible, status)
	assert.InDelta(t, 5.0, val, 1e-9)
}

func TestIntersect_Evaluate(t *testing.T) {
	leaf := unitSquareLeaf(t)
	hs, err := geom.NewHalfspace(matrix.Vector{1, 0}, 0.5)
	assert.NoError(t, err)
	inter := supportfn.NewIntersect(leaf, []geom.Halfspace{hs})

	val, _, status, err := inter.Evaluate(matrix.Vector{1, 0})
	assert.NoError(t, err)
	assert.Equal(t, geom.Feasible, status)
	assert.InDelta(t, 0.5, val, 1e-9)
}

func TestIntersect_RequiresLeafChild(t *testing.T) {
	leaf := unitSquareLeaf(t)
	affine := supportfn.NewAffine(leaf, mustIdentity(t), matrix.Vector{0, 0})
	hs, err := geom.NewHalfspace(matrix.Vector{1, 0}, 0.5)
	assert.NoError(t, err)
	inter := supportfn.NewIntersect(affine, []geom.Halfspace{hs})

	_, _, _, err = inter.Evaluate(matrix.Vector{1, 0})
	assert.ErrorIs(t, err, supportfn.ErrUnsupportedIntersectChild)
}

func mustIdentity(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(2)
	assert.NoError(t, err)
	return m
}

func TestMultiEvaluate(t *testing.T) {
	n := unitSquareLeaf(t)
	values, _, statuses, err := n.MultiEvaluate([]matrix.Vector{{1, 0}, {0, 1}})
	assert.NoError(t, err)
	assert.Len(t, values, 2)
	assert.Equal(t, geom.Feasible, statuses[0])
	assert.InDelta(t, 1.0, values[0], 1e-9)
	assert.InDelta(t, 1.0, values[1], 1e-9)
}

func TestTemplateDirections_Dim1(t *testing.T) {
	dirs := supportfn.TemplateDirections(1, 8)
	assert.Equal(t, []matrix.Vector{{1}, {-1}}, dirs)
}

func TestTemplateDirections_HigherDim(t *testing.T) {
	dirs := supportfn.TemplateDirections(2, 4)
	assert.Len(t, dirs, 4)
	for _, d := range dirs {
		assert.Len(t, d, 2)
	}
}

func TestToHPolytope(t *testing.T) {
	leaf := unitSquareLeaf(t)
	dirs := []matrix.Vector{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	poly, err := supportfn.ToHPolytope(leaf, dirs)
	assert.NoError(t, err)

	in, err := poly.Contains(matrix.Vector{0.5, 0.5})
	assert.NoError(t, err)
	assert.True(t, in)

	out, err := poly.Contains(matrix.Vector{2, 0.5})
	assert.NoError(t, err)
	assert.False(t, out)
}
