// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks.
//   - Avoid logic duplication - each facade delegates to the canonical
//     implementation in impl_statistics.go / ops_elementwise.go.
package matrix

import "math"

// NewZeros allocates an r×c zero matrix. Thin alias over NewDense, kept for
// call-site clarity at construction sites that want to name the zero-fill
// intent explicitly (e.g. allocating a fresh generator matrix).
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity allocates an n×n identity matrix.
// Returns ErrInvalidDimensions if n <= 0.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf("NewIdentity", err)
	}
	for i := 0; i < n; i++ {
		if err := m.Set(i, i, 1); err != nil {
			return nil, matrixErrorf("NewIdentity", err)
		}
	}
	return m, nil
}

// ---------- Sanitization & numeric compare (thin wrappers -> ew*) ----------

// Clip returns a copy of m with elements clamped into [lo, hi].
// out[i,j] = min(max(m[i,j], lo), hi). Time O(r*c).
func Clip(m Matrix, lo, hi float64) (Matrix, error) {
	return ewClipRange(m, lo, hi)
}

// ReplaceInfNaN returns a copy of m where any {+-Inf, NaN} are replaced by
// val (which must be finite). Time O(r*c).
func ReplaceInfNaN(m Matrix, val float64) (Matrix, error) {
	return ewReplaceInfNaN(m, val)
}

// AllClose checks element-wise |a-b| <= atol + rtol*|b| for identical shapes.
// Negative tolerances are normalized to their absolute value.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	rtol = math.Abs(rtol)
	atol = math.Abs(atol)
	return ewAllClose(a, b, rtol, atol)
}

// ---------- Statistics (public surface -> internal implementations) ----------

// CenterColumns returns Xc = X - mean(X, by columns) and the column means.
func CenterColumns(X Matrix) (Matrix, []float64, error) { return centerColumns(X) }

// CenterRows returns Xc[i,*] = X[i,*] - mean(X[i,*]) for each row, and the
// row means.
func CenterRows(X Matrix) (Matrix, []float64, error) { return centerRows(X) }

// NormalizeRowsL1 scales each row to L1-norm 1 where possible; degenerate
// (zero) rows remain zero. Also returns the per-row norms.
func NormalizeRowsL1(X Matrix) (Matrix, []float64, error) { return normalizeRowsL1(X) }

// NormalizeRowsL2 scales each row to L2-norm 1 where possible; degenerate
// rows remain zero. Also returns the per-row norms.
func NormalizeRowsL2(X Matrix) (Matrix, []float64, error) { return normalizeRowsL2(X) }

// Covariance computes the sample covariance of columns: Cov = (Xc^T Xc)/(n-1).
// Requires r >= 2; returns ErrDimensionMismatch otherwise.
func Covariance(X Matrix) (Matrix, []float64, error) { return covariance(X) }

// Correlation computes the Pearson correlation of columns via z-scoring.
// Degenerate (zero-variance) columns are zeroed rather than divided by zero.
func Correlation(X Matrix) (Matrix, []float64, []float64, error) { return correlation(X) }
