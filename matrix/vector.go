package matrix

import (
	"fmt"
	"math"
)

// Vector is a flat, dense float64 vector of fixed length. It is the
// computational counterpart of geom.Point: points, direction vectors,
// zonotope generator columns and support-function query directions all
// carry their coordinates as Vector.
type Vector []float64

// opDot, opAffine, opScaleV, opAddV and opSubV name the operations wrapped by
// vectorErrorf, mirroring the opAdd/opSub/... tags in impl_linear_algebra.go.
const (
	opDot    = "Dot"
	opAffine = "AffineCombination"
	opScaleV = "ScaleVector"
	opAddV   = "AddVector"
	opSubV   = "SubVector"
)

// vectorErrorf wraps an underlying error with the given operation tag,
// matching matrixErrorf's convention for the Matrix kernels.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NewVector allocates a zero-valued Vector of the given length.
// Returns ErrInvalidDimensions if n <= 0.
func NewVector(n int) (Vector, error) {
	if n <= 0 {
		return nil, vectorErrorf("NewVector", ErrInvalidDimensions)
	}
	return make(Vector, n), nil
}

// Dim returns the number of coordinates in v.
func (v Vector) Dim() int { return len(v) }

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	cp := make(Vector, len(v))
	copy(cp, v)
	return cp
}

// Dot returns the inner product of v and w.
// Returns ErrVectorLengthMismatch if the lengths differ.
//
// Complexity: O(n).
func (v Vector) Dot(w Vector) (float64, error) {
	if len(v) != len(w) {
		return 0, vectorErrorf(opDot, ErrVectorLengthMismatch)
	}
	sum := ZeroSum
	for i := 0; i < len(v); i++ { // deterministic 0..n-1
		sum += v[i] * w[i]
	}
	return sum, nil
}

// InfNorm returns the infinity norm (max absolute coordinate) of v.
// Returns 0 for the empty vector.
//
// Complexity: O(n).
func (v Vector) InfNorm() float64 {
	max := NormZero
	for i := 0; i < len(v); i++ {
		if a := math.Abs(v[i]); a > max {
			max = a
		}
	}
	return max
}

// Add returns v + w element-wise.
// Returns ErrVectorLengthMismatch if the lengths differ.
func (v Vector) Add(w Vector) (Vector, error) {
	if len(v) != len(w) {
		return nil, vectorErrorf(opAddV, ErrVectorLengthMismatch)
	}
	res := make(Vector, len(v))
	for i := 0; i < len(v); i++ {
		res[i] = v[i] + w[i]
	}
	return res, nil
}

// Sub returns v - w element-wise.
// Returns ErrVectorLengthMismatch if the lengths differ.
func (v Vector) Sub(w Vector) (Vector, error) {
	if len(v) != len(w) {
		return nil, vectorErrorf(opSubV, ErrVectorLengthMismatch)
	}
	res := make(Vector, len(v))
	for i := 0; i < len(v); i++ {
		res[i] = v[i] - w[i]
	}
	return res, nil
}

// Scale returns v scaled by the scalar k.
func (v Vector) Scale(k float64) Vector {
	res := make(Vector, len(v))
	for i := 0; i < len(v); i++ {
		res[i] = v[i] * k
	}
	return res
}

// AffineCombination returns sum(weights[i] * points[i]), the affine (or,
// when weights sum to 1, convex) combination of points under weights.
// Every point must share the same dimension as the first, and
// len(points) must equal len(weights); violations return
// ErrVectorLengthMismatch.
//
// geom.AffineCombination wraps it for Points.
//
// Complexity: O(len(points) * n).
func AffineCombination(points []Vector, weights []float64) (Vector, error) {
	if len(points) == 0 || len(points) != len(weights) {
		return nil, vectorErrorf(opAffine, ErrVectorLengthMismatch)
	}
	n := points[0].Dim()
	res := make(Vector, n)
	for i, p := range points {
		if p.Dim() != n {
			return nil, vectorErrorf(opAffine, ErrVectorLengthMismatch)
		}
		for j := 0; j < n; j++ {
			res[j] += weights[i] * p[j]
		}
	}
	return res, nil
}

// Less implements a fixed lexicographic ordering over vectors of equal
// length, used to give H-polytope/V-polytope vertex lists and orthogonal
// polyhedron grid cells a deterministic canonical order. Vectors of
// differing length compare by length first (shorter is "less").
func (v Vector) Less(w Vector) bool {
	if len(v) != len(w) {
		return len(v) < len(w)
	}
	for i := 0; i < len(v); i++ {
		if v[i] != w[i] {
			return v[i] < w[i]
		}
	}
	return false
}

// ToDense lays v out as a single-column Dense matrix, for interop with
// the Matrix kernels (e.g. MatVec, matrix exponential application).
func (v Vector) ToDense() (*Dense, error) {
	d, err := NewDense(len(v), 1)
	if err != nil {
		return nil, vectorErrorf("ToDense", err)
	}
	for i, x := range v {
		if err := d.Set(i, 0, x); err != nil {
			return nil, vectorErrorf("ToDense", err)
		}
	}
	return d, nil
}

// VectorFromColumn extracts column col of m as a Vector.
// Returns ErrOutOfRange if col is outside [0, m.Cols()).
func VectorFromColumn(m Matrix, col int) (Vector, error) {
	if col < 0 || col >= m.Cols() {
		return nil, vectorErrorf("VectorFromColumn", ErrOutOfRange)
	}
	rows := m.Rows()
	res := make(Vector, rows)
	for i := 0; i < rows; i++ {
		x, err := m.At(i, col)
		if err != nil {
			return nil, vectorErrorf("VectorFromColumn", err)
		}
		res[i] = x
	}
	return res, nil
}
