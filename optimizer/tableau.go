package optimizer

import "math"

// pivotTol is the numeric tolerance used throughout the simplex
// routines to treat near-zero reduced costs and pivot elements as zero,
// matching the matrix package's epsilon-based equality checks.
const pivotTol = 1e-9

// tableau is a dense simplex tableau: rows rows of variable
// coefficients plus a trailing rhs column, a separate objective row,
// and a basis slice mapping row -> basic variable column index.
type tableau struct {
	rows  [][]float64 // rows[i] has len cols+1 (last entry is rhs)
	obj   []float64   // len cols+1; obj[j] is the reduced cost of column j, obj[cols] is -z
	cols  int
	basis []int // basis[i] = column index of the basic variable in row i
}

func newTableau(nRows, nCols int) *tableau {
	rows := make([][]float64, nRows)
	for i := range rows {
		rows[i] = make([]float64, nCols+1)
	}
	return &tableau{
		rows:  rows,
		obj:   make([]float64, nCols+1),
		cols:  nCols,
		basis: make([]int, nRows),
	}
}

// pivot performs Gauss-Jordan elimination making column col the basic
// variable of row, i.e. rows[row][col] becomes 1 and every other row
// (including obj) becomes 0 in that column.
func (t *tableau) pivot(row, col int) {
	pv := t.rows[row][col]
	rr := t.rows[row]
	for j := range rr {
		rr[j] /= pv
	}
	for i, r := range t.rows {
		if i == row {
			continue
		}
		factor := r[col]
		if factor == 0 {
			continue
		}
		for j := range r {
			r[j] -= factor * rr[j]
		}
	}
	factor := t.obj[col]
	if factor != 0 {
		for j := range t.obj {
			t.obj[j] -= factor * rr[j]
		}
	}
	t.basis[row] = col
}

// simplexStatus is the tableau-level outcome of run; Solver.Evaluate
// translates it to geom.Status at the package boundary.
type simplexStatus int

const (
	optimal simplexStatus = iota
	unboundedTableau
)

// run drives the tableau to optimality (maximizing, reduced costs in
// obj with obj[cols] holding -z) using Bland's rule for both entering
// and leaving variable selection, guaranteeing termination even on
// degenerate inputs (spec §4.1 "deterministic... free from cycles").
// maxIter bounds pathological inputs; it is generous relative to
// problem size and is never hit on well-formed polytopes.
func (t *tableau) run(maxIter int) simplexStatus {
	for iter := 0; iter < maxIter; iter++ {
		// Bland's rule: smallest-index column with a positive reduced cost.
		enter := -1
		for j := 0; j < t.cols; j++ {
			if t.obj[j] > pivotTol {
				enter = j
				break
			}
		}
		if enter == -1 {
			return optimal
		}

		// Ratio test, ties broken by smallest basis index (Bland's rule).
		leave := -1
		bestRatio := math.Inf(1)
		for i, r := range t.rows {
			a := r[enter]
			if a <= pivotTol {
				continue
			}
			ratio := r[t.cols] / a
			if ratio < bestRatio-pivotTol ||
				(ratio < bestRatio+pivotTol && (leave == -1 || t.basis[i] < t.basis[leave])) {
				bestRatio = ratio
				leave = i
			}
		}
		if leave == -1 {
			return unboundedTableau
		}
		t.pivot(leave, enter)
	}
	return optimal
}

// value returns the current value of variable column j: its rhs if
// basic, else 0.
func (t *tableau) value(j int) float64 {
	for i, b := range t.basis {
		if b == j {
			return t.rows[i][t.cols]
		}
	}
	return 0
}
