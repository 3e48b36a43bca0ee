package optimizer

import (
	"math"

	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/matrix"
	"github.com/arkweave/hyreach/scalar"
)

// Solver is the single entry point for direction-maximisation over a
// fixed Problem (spec §4.1). It owns its internal state exclusively
// (spec §5: "the optimiser instance is exclusively owned by the
// thread that uses it") and caches the phase-1 feasible basis across
// repeated Evaluate calls against the same constraint system, since
// flowpipe construction calls Evaluate once per segment per template
// direction with an unchanged (A, b) (original_source's
// Optimizer.h warm-start behavior — see DESIGN.md).
type Solver struct {
	problem *Problem
	n, m    int
	cache   *phase1Result
}

// phase1Result is the cached outcome of phase 1: whether the problem
// is feasible and, if so, the truncated tableau (artificial columns
// dropped) ready for a phase-2 objective to be installed.
type phase1Result struct {
	feasible bool
	rows     [][]float64 // copies, safe to reuse by cloning per Evaluate
	basis    []int
	cols     int // 2n + m (real columns only, artificial already dropped)
}

// NewSolver returns a Solver exclusively owning problem. Problem is
// treated as immutable for the Solver's lifetime; callers that need to
// evaluate a modified constraint system should build a new Solver.
func NewSolver(problem *Problem) *Solver {
	return &Solver{problem: problem, n: problem.Dim(), m: problem.NumConstraints()}
}

// ensurePhase1 builds (or returns the cached) feasible basis for the
// solver's constraint system, independent of any evaluation direction.
func (s *Solver) ensurePhase1() (*phase1Result, error) {
	if s.cache != nil {
		return s.cache, nil
	}
	if s.m == 0 {
		// No constraints: trivially feasible, x = 0 is a valid (if not
		// unique) basic point; phase 2 still needs a tableau shape, so
		// synthesize one with 2n real columns and zero rows handled
		// specially by Evaluate.
		s.cache = &phase1Result{feasible: true, rows: nil, basis: nil, cols: 2 * s.n}
		return s.cache, nil
	}

	realCols := 2*s.n + s.m // xp(n), xn(n), slack(m)
	artRows := make([]int, 0)
	for i := 0; i < s.m; i++ {
		if s.problem.B[i] < 0 {
			artRows = append(artRows, i)
		}
	}
	totalCols := realCols + len(artRows)
	t := newTableau(s.m, totalCols)

	artCol := make(map[int]int, len(artRows)) // row -> artificial column index
	for k, r := range artRows {
		artCol[r] = realCols + k
	}

	for i := 0; i < s.m; i++ {
		negate := s.problem.B[i] < 0
		row := t.rows[i]
		for j := 0; j < s.n; j++ {
			a, err := s.problem.A.At(i, j)
			if err != nil {
				return nil, optErrorf("ensurePhase1", err)
			}
			if negate {
				a = -a
			}
			row[j] = a    // xp_j
			row[s.n+j] = -a // xn_j
		}
		slackCoef := 1.0
		if negate {
			slackCoef = -1.0
		}
		row[2*s.n+i] = slackCoef
		rhs := s.problem.B[i]
		if negate {
			rhs = -rhs
		}
		row[t.cols] = rhs

		if ac, needsArt := artCol[i]; needsArt {
			row[ac] = 1
			t.basis[i] = ac
		} else {
			t.basis[i] = 2*s.n + i
		}
	}

	if len(artRows) > 0 {
		// Phase-1 objective: maximize -sum(artificial vars).
		for _, ac := range artCol {
			t.obj[ac] = -1
		}
		// Canonicalize: basic artificial variables must have zero reduced cost.
		for i, b := range t.basis {
			if t.obj[b] != 0 {
				factor := t.obj[b]
				for j := range t.obj {
					t.obj[j] -= factor * t.rows[i][j]
				}
			}
		}
		t.run(maxIterFor(t.cols))

		artSum := 0.0
		for _, ac := range artCol {
			artSum += t.value(ac)
		}
		if artSum > pivotTol {
			s.cache = &phase1Result{feasible: false}
			return s.cache, nil
		}
	}

	// Truncate to real columns only; rows whose basic variable is a
	// (now zero-valued) artificial column are left as harmless
	// dependent rows.
	rows := make([][]float64, s.m)
	for i, r := range t.rows {
		rows[i] = append([]float64(nil), r[:realCols]...)
		rows[i] = append(rows[i], r[t.cols])
	}
	s.cache = &phase1Result{feasible: true, rows: rows, basis: append([]int(nil), t.basis...), cols: realCols}
	return s.cache, nil
}

func maxIterFor(cols int) int {
	if cols < 50 {
		return 500
	}
	return 10 * cols
}

// IsFeasible reports whether any x satisfies A*x <= B.
func (s *Solver) IsFeasible() (bool, error) {
	r, err := s.ensurePhase1()
	if err != nil {
		return false, err
	}
	return r.feasible, nil
}

// Contains reports whether point satisfies every constraint row
// directly (spec §4.1: "equivalent to evaluating each row"), a
// closed-form check requiring no simplex call.
func (s *Solver) Contains(point matrix.Vector) (bool, error) {
	if len(point) != s.n {
		return false, optErrorf("Contains", ErrDimensionMismatch)
	}
	for i := 0; i < s.m; i++ {
		v, err := rowDot(s.problem.A, i, point)
		if err != nil {
			return false, optErrorf("Contains", err)
		}
		if v > s.problem.B[i]+pivotTol {
			return false, nil
		}
	}
	return true, nil
}

func rowDot(a *matrix.Dense, row int, x matrix.Vector) (float64, error) {
	sum := 0.0
	for j := 0; j < a.Cols(); j++ {
		v, err := a.At(row, j)
		if err != nil {
			return 0, err
		}
		sum += v * x[j]
	}
	return sum, nil
}

// Evaluate solves evaluate(direction) -> (value, argmax, status) over
// the solver's problem (spec §4.1).
func (s *Solver) Evaluate(direction matrix.Vector) (float64, matrix.Vector, geom.Status, error) {
	if len(direction) != s.n {
		return 0, nil, geom.Infeasible, optErrorf("Evaluate", ErrDimensionMismatch)
	}
	r, err := s.ensurePhase1()
	if err != nil {
		return 0, nil, geom.Infeasible, err
	}
	if !r.feasible {
		return 0, nil, geom.Infeasible, nil
	}
	if s.m == 0 {
		// Unconstrained: every direction with a nonzero component is
		// unbounded; the zero direction has value 0 at the origin.
		allZero := true
		for _, d := range direction {
			if d != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			return 0, make(matrix.Vector, s.n), geom.Feasible, nil
		}
		return math.Inf(1), nil, geom.Unbounded, nil
	}

	t := newTableau(s.m, r.cols)
	for i, row := range r.rows {
		copy(t.rows[i], row)
	}
	copy(t.basis, r.basis)
	for j := 0; j < s.n; j++ {
		t.obj[j] = direction[j]
		t.obj[s.n+j] = -direction[j]
	}
	// Canonicalize objective against the inherited basis.
	for i, b := range t.basis {
		if b < t.cols && t.obj[b] != 0 {
			factor := t.obj[b]
			for j := range t.obj {
				t.obj[j] -= factor * t.rows[i][j]
			}
		}
	}

	status := t.run(maxIterFor(t.cols))
	if status == unboundedTableau {
		return math.Inf(1), nil, geom.Unbounded, nil
	}

	x := make(matrix.Vector, s.n)
	value := 0.0
	for j := 0; j < s.n; j++ {
		x[j] = t.value(j) - t.value(s.n+j)
		value += direction[j] * x[j]
	}
	return value, x, geom.Feasible, nil
}

// RedundantRows returns the indices of constraint rows whose removal
// does not change the feasible set (spec §4.1 "redundant_rows"): row i
// is redundant iff maximizing A_i . x over the system without row i
// never exceeds B[i].
func (s *Solver) RedundantRows() ([]int, error) {
	redundant := make([]int, 0)
	for i := 0; i < s.m; i++ {
		sub, err := s.problem.WithoutRow(i)
		if err != nil {
			return nil, optErrorf("RedundantRows", err)
		}
		subSolver := NewSolver(sub)
		dir := make(matrix.Vector, s.n)
		for j := 0; j < s.n; j++ {
			v, err := s.problem.A.At(i, j)
			if err != nil {
				return nil, optErrorf("RedundantRows", err)
			}
			dir[j] = v
		}
		value, _, status, err := subSolver.Evaluate(dir)
		if err != nil {
			return nil, optErrorf("RedundantRows", err)
		}
		if status == geom.Feasible && value <= s.problem.B[i]+pivotTol {
			redundant = append(redundant, i)
		}
	}
	return redundant, nil
}

// EvaluateExact re-verifies a float64 Evaluate result against the
// exact rational constraint system. It recomputes rowDot in
// scalar.Rational arithmetic for the returned argmax and reports
// whether every constraint holds exactly. It does not re-solve the
// problem when a constraint fails; it returns false.
func (s *Solver) EvaluateExact(argmax matrix.Vector) (bool, error) {
	if len(argmax) != s.n {
		return false, optErrorf("EvaluateExact", ErrDimensionMismatch)
	}
	for i := 0; i < s.m; i++ {
		sum := scalar.RationalFromFloat(0)
		for j := 0; j < s.n; j++ {
			a, err := s.problem.A.At(i, j)
			if err != nil {
				return false, optErrorf("EvaluateExact", err)
			}
			term := scalar.RationalFromFloat(a).Mul(scalar.RationalFromFloat(argmax[j]))
			sum = sum.Add(term)
		}
		b := scalar.RationalFromFloat(s.problem.B[i])
		if sum.Cmp(b) > 0 {
			return false, nil
		}
	}
	return true, nil
}
