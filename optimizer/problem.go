package optimizer

import (
	"fmt"

	"github.com/arkweave/hyreach/matrix"
)

// Problem is a linear constraint system A*x <= B over free (unrestricted
// sign) variables x in R^n (spec §4.1: "a problem given by (A, b) with
// constraint Ax <= b").
type Problem struct {
	A *matrix.Dense
	B matrix.Vector
}

func optErrorf(tag string, err error) error {
	return fmt.Errorf("optimizer.%s: %w", tag, err)
}

// NewProblem validates that A.Rows() == len(b) and returns the Problem.
// A zero-row A (no constraints) is valid: the feasible set is all of
// R^A.Cols().
func NewProblem(a *matrix.Dense, b matrix.Vector) (*Problem, error) {
	if a.Rows() != len(b) {
		return nil, optErrorf("NewProblem", ErrDimensionMismatch)
	}
	return &Problem{A: a, B: b}, nil
}

// Dim returns the number of free variables n.
func (p *Problem) Dim() int { return p.A.Cols() }

// NumConstraints returns the number of rows m.
func (p *Problem) NumConstraints() int { return p.A.Rows() }

// WithoutRow returns a copy of p with row i removed, used by
// RedundantRows to test each constraint's removability in isolation.
func (p *Problem) WithoutRow(i int) (*Problem, error) {
	rows := make([]int, 0, p.A.Rows()-1)
	for r := 0; r < p.A.Rows(); r++ {
		if r != i {
			rows = append(rows, r)
		}
	}
	cols := make([]int, p.A.Cols())
	for c := range cols {
		cols[c] = c
	}
	sub, err := p.A.Induced(rows, cols)
	if err != nil {
		return nil, optErrorf("WithoutRow", err)
	}
	b := make(matrix.Vector, len(rows))
	for k, r := range rows {
		b[k] = p.B[r]
	}
	return &Problem{A: sub, B: b}, nil
}
