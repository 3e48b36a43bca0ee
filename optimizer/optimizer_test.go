package optimizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/matrix"
	"github.com/arkweave/hyreach/optimizer"
)

// unitSquareProblem builds 0<=x<=1, 0<=y<=1 as A*x<=b.
func unitSquareProblem(t *testing.T) *optimizer.Problem {
	t.Helper()
	a, err := matrix.NewDense(4, 2)
	assert.NoError(t, err)
	rows := [][]float64{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for i, row := range rows {
		for j, v := range row {
			assert.NoError(t, a.Set(i, j, v))
		}
	}
	p, err := optimizer.NewProblem(a, matrix.Vector{1, 0, 1, 0})
	assert.NoError(t, err)
	return p
}

func TestNewProblem_DimensionMismatch(t *testing.T) {
	a, err := matrix.NewDense(2, 2)
	assert.NoError(t, err)
	_, err = optimizer.NewProblem(a, matrix.Vector{1})
	assert.ErrorIs(t, err, optimizer.ErrDimensionMismatch)
}

func TestProblem_DimAndNumConstraints(t *testing.T) {
	p := unitSquareProblem(t)
	assert.Equal(t, 2, p.Dim())
	assert.Equal(t, 4, p.NumConstraints())
}

func TestProblem_WithoutRow(t *testing.T) {
	p := unitSquareProblem(t)
	sub, err := p.WithoutRow(0)
	assert.NoError(t, err)
	assert.Equal(t, 3, sub.NumConstraints())
	assert.Equal(t, 2, sub.Dim())
}

func TestSolver_IsFeasible(t *testing.T) {
	p := unitSquareProblem(t)
	s := optimizer.NewSolver(p)
	ok, err := s.IsFeasible()
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestSolver_IsFeasible_Infeasible(t *testing.T) {
	a, err := matrix.NewDense(2, 1)
	assert.NoError(t, err)
	assert.NoError(t, a.Set(0, 0, 1))
	assert.NoError(t, a.Set(1, 0, -1))
	p, err := optimizer.NewProblem(a, matrix.Vector{-1, -1}) // x<=-1 and x>=1
	assert.NoError(t, err)
	s := optimizer.NewSolver(p)
	ok, err := s.IsFeasible()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestSolver_Contains(t *testing.T) {
	p := unitSquareProblem(t)
	s := optimizer.NewSolver(p)

	in, err := s.Contains(matrix.Vector{0.5, 0.5})
	assert.NoError(t, err)
	assert.True(t, in)

	out, err := s.Contains(matrix.Vector{2, 0.5})
	assert.NoError(t, err)
	assert.False(t, out)

	_, err = s.Contains(matrix.Vector{0})
	assert.ErrorIs(t, err, optimizer.ErrDimensionMismatch)
}

func TestSolver_Evaluate_Feasible(t *testing.T) {
	p := unitSquareProblem(t)
	s := optimizer.NewSolver(p)

	val, argmax, status, err := s.Evaluate(matrix.Vector{1, 1})
	assert.NoError(t, err)
	assert.Equal(t, geom.Feasible, status)
	assert.InDelta(t, 2.0, val, 1e-9)
	assert.InDelta(t, 1.0, argmax[0], 1e-9)
	assert.InDelta(t, 1.0, argmax[1], 1e-9)
}

func TestSolver_Evaluate_DimensionMismatch(t *testing.T) {
	p := unitSquareProblem(t)
	s := optimizer.NewSolver(p)
	_, _, status, err := s.Evaluate(matrix.Vector{1})
	assert.ErrorIs(t, err, optimizer.ErrDimensionMismatch)
	assert.Equal(t, geom.Infeasible, status)
}

func TestSolver_Evaluate_Infeasible(t *testing.T) {
	a, err := matrix.NewDense(2, 1)
	assert.NoError(t, err)
	assert.NoError(t, a.Set(0, 0, 1))
	assert.NoError(t, a.Set(1, 0, -1))
	p, err := optimizer.NewProblem(a, matrix.Vector{-1, -1})
	assert.NoError(t, err)
	s := optimizer.NewSolver(p)

	_, _, status, err := s.Evaluate(matrix.Vector{1})
	assert.NoError(t, err)
	assert.Equal(t, geom.Infeasible, status)
}

func TestSolver_RedundantRows(t *testing.T) {
	// Build a 5-row system: unit square plus a redundant x<=5 row.
	a, err := matrix.NewDense(5, 2)
	assert.NoError(t, err)
	rows := [][]float64{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 0}}
	for i, row := range rows {
		for j, v := range row {
			assert.NoError(t, a.Set(i, j, v))
		}
	}
	redundantProblem, err := optimizer.NewProblem(a, matrix.Vector{1, 0, 1, 0, 5})
	assert.NoError(t, err)
	s := optimizer.NewSolver(redundantProblem)

	redundant, err := s.RedundantRows()
	assert.NoError(t, err)
	assert.Contains(t, redundant, 4)
}

func TestSolver_EvaluateExact(t *testing.T) {
	p := unitSquareProblem(t)
	s := optimizer.NewSolver(p)

	ok, err := s.EvaluateExact(matrix.Vector{1, 1})
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.EvaluateExact(matrix.Vector{2, 1})
	assert.NoError(t, err)
	assert.False(t, ok)

	_, err = s.EvaluateExact(matrix.Vector{1})
	assert.ErrorIs(t, err, optimizer.ErrDimensionMismatch)
}
