package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// opExp names the operation tag for matrixErrorf wrapping in this file.
const opExp = "Exp"

// Exp returns exp(a * delta), the matrix exponential of a scaled by delta,
// evaluated via gonum's scaling-and-squaring-with-Padé-approximant
// implementation (mat.Dense.Exp). This is the bridge the reach package
// uses to turn a location's flow matrix A and a time step delta into the
// discrete-time transition matrix exp(A*delta) applied to a flowpipe
// segment's generator/constraint representation.
//
// Contract:
//   - a must be non-nil and square; a nil a returns a wrapped ErrNilMatrix
//     and a non-square a a wrapped ErrDimensionMismatch (from ValidateSquare).
//
// Complexity: O(n^3) per gonum's Padé-approximant algorithm, n = a.Rows().
func Exp(a Matrix, delta float64) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opExp, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opExp, err)
	}

	n := a.Rows()
	raw := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opExp, err)
			}
			raw.Set(i, j, v*delta)
		}
	}

	var out mat.Dense
	out.Exp(raw)

	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opExp, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := res.Set(i, j, out.At(i, j)); err != nil {
				return nil, matrixErrorf(opExp, fmt.Errorf("element (%d,%d): %w", i, j, err))
			}
		}
	}
	return res, nil
}
