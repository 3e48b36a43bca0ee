package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkweave/hyreach/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(2, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_SetAtRoundTrip(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	assert.NoError(t, err)
	assert.NoError(t, m.Set(0, 1, 3.5))

	v, err := m.At(0, 1)
	assert.NoError(t, err)
	assert.Equal(t, 3.5, v)

	_, err = m.At(5, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestNewIdentity(t *testing.T) {
	m, err := matrix.NewIdentity(3)
	assert.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			assert.NoError(t, err)
			if i == j {
				assert.Equal(t, 1.0, v)
			} else {
				assert.Equal(t, 0.0, v)
			}
		}
	}
}

func TestMatVec(t *testing.T) {
	m, err := matrix.NewIdentity(2)
	assert.NoError(t, err)
	assert.NoError(t, m.Set(0, 1, 2))

	out, err := matrix.MatVec(m, []float64{1, 3})
	assert.NoError(t, err)
	assert.Equal(t, []float64{7, 3}, out)
}

func TestMatVec_LengthMismatch(t *testing.T) {
	m, err := matrix.NewIdentity(2)
	assert.NoError(t, err)
	_, err = matrix.MatVec(m, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrVectorLengthMismatch)
}

func TestEigen_Asymmetric(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	assert.NoError(t, err)
	assert.NoError(t, m.Set(0, 1, 1))
	assert.NoError(t, m.Set(1, 0, 2))
	_, _, err = matrix.Eigen(m, 1e-9, 100)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestLU_ZeroDiagonalPivotIsSingular(t *testing.T) {
	// [[0,1],[1,0]] is invertible but has no LU decomposition without
	// pivoting: the natural row order leaves a zero on the diagonal.
	m, err := matrix.NewDense(2, 2)
	assert.NoError(t, err)
	assert.NoError(t, m.Set(0, 1, 1))
	assert.NoError(t, m.Set(1, 0, 1))

	_, _, err = matrix.LU(m)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestMul(t *testing.T) {
	a, err := matrix.NewIdentity(2)
	assert.NoError(t, err)
	assert.NoError(t, a.Set(0, 1, 2))
	b, err := matrix.NewIdentity(2)
	assert.NoError(t, err)

	prod, err := matrix.Mul(a, b)
	assert.NoError(t, err)
	v, err := prod.At(0, 1)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestTranspose(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	assert.NoError(t, err)
	assert.NoError(t, m.Set(0, 2, 9))

	tr, err := matrix.Transpose(m)
	assert.NoError(t, err)
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	v, err := tr.At(2, 0)
	assert.NoError(t, err)
	assert.Equal(t, 9.0, v)
}

func TestInverse(t *testing.T) {
	m, err := matrix.NewIdentity(2)
	assert.NoError(t, err)
	assert.NoError(t, m.Set(0, 0, 2))

	inv, err := matrix.Inverse(m)
	assert.NoError(t, err)
	v, err := inv.At(0, 0)
	assert.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-9)
}

func TestInverse_NonSquare(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	assert.NoError(t, err)
	_, err = matrix.Inverse(m)
	assert.Error(t, err)
}

func TestExp_Identity(t *testing.T) {
	m, err := matrix.NewDense(2, 2) // zero matrix: exp(0*delta) = I
	assert.NoError(t, err)

	res, err := matrix.Exp(m, 1.0)
	assert.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := res.At(i, j)
			assert.NoError(t, err)
			if i == j {
				assert.InDelta(t, 1.0, v, 1e-9)
			} else {
				assert.InDelta(t, 0.0, v, 1e-9)
			}
		}
	}
}

func TestExp_NonSquare(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	assert.NoError(t, err)
	_, err = matrix.Exp(m, 1.0)
	assert.Error(t, err)
}

func TestVector_DotAddSub(t *testing.T) {
	v := matrix.Vector{1, 2, 3}
	w := matrix.Vector{4, 5, 6}

	dot, err := v.Dot(w)
	assert.NoError(t, err)
	assert.Equal(t, 32.0, dot)

	sum, err := v.Add(w)
	assert.NoError(t, err)
	assert.Equal(t, matrix.Vector{5, 7, 9}, sum)

	diff, err := w.Sub(v)
	assert.NoError(t, err)
	assert.Equal(t, matrix.Vector{3, 3, 3}, diff)

	_, err = v.Dot(matrix.Vector{1})
	assert.ErrorIs(t, err, matrix.ErrVectorLengthMismatch)
}

func TestVector_ScaleInfNormLess(t *testing.T) {
	v := matrix.Vector{1, -2, 3}
	assert.Equal(t, matrix.Vector{2, -4, 6}, v.Scale(2))
	assert.Equal(t, 3.0, v.InfNorm())

	assert.True(t, matrix.Vector{1, 2}.Less(matrix.Vector{1, 3}))
	assert.False(t, matrix.Vector{1, 3}.Less(matrix.Vector{1, 2}))
}

func TestAffineCombination(t *testing.T) {
	pts := []matrix.Vector{{0, 0}, {2, 4}}
	out, err := matrix.AffineCombination(pts, []float64{0.5, 0.5})
	assert.NoError(t, err)
	assert.Equal(t, matrix.Vector{1, 2}, out)
}

func TestDense_Induced(t *testing.T) {
	m, err := matrix.NewDense(3, 2)
	assert.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.NoError(t, m.Set(i, 0, float64(i)))
		assert.NoError(t, m.Set(i, 1, float64(i*10)))
	}
	sub, err := m.Induced([]int{0, 2}, []int{1})
	assert.NoError(t, err)
	assert.Equal(t, 2, sub.Rows())
	assert.Equal(t, 1, sub.Cols())
	v, err := sub.At(1, 0)
	assert.NoError(t, err)
	assert.Equal(t, 20.0, v)
}
