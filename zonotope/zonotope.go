// Package zonotope implements the Zonotope(n) representation (spec
// §3, §4.5): a center point plus a generator matrix, representing
// {c + G·α | α ∈ [-1,1]^k}. Minkowski sum concatenates generator
// columns; affine image multiplies center and generators; point
// containment reduces to an LP in α-space.
package zonotope

import (
	"errors"
	"fmt"
	"math"

	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/matrix"
	"github.com/arkweave/hyreach/optimizer"
)

// ErrDimensionMismatch indicates mismatched dimensions between the
// zonotope and an auxiliary input.
var ErrDimensionMismatch = errors.New("zonotope: dimension mismatch")

func zonoErrorf(tag string, err error) error {
	return fmt.Errorf("zonotope.%s: %w", tag, err)
}

// Zonotope is a center c plus an n x k generator matrix G (spec §3
// "Zonotope(n)"); its value is {c + G.alpha | alpha in [-1,1]^k}.
type Zonotope struct {
	Center     matrix.Vector
	Generators *matrix.Dense // n rows, k columns
}

var _ geom.Set = (*Zonotope)(nil)

// New returns the zonotope with the given center and generator
// columns. Every generator must share center's dimension.
func New(center matrix.Vector, generators *matrix.Dense) (*Zonotope, error) {
	if generators != nil && generators.Rows() != len(center) {
		return nil, zonoErrorf("New", ErrDimensionMismatch)
	}
	return &Zonotope{Center: center.Clone(), Generators: generators}, nil
}

// Dim returns the ambient dimension.
func (z *Zonotope) Dim() int { return len(z.Center) }

// NumGenerators returns k, the generator count.
func (z *Zonotope) NumGenerators() int {
	if z.Generators == nil {
		return 0
	}
	return z.Generators.Cols()
}

// IsEmpty is always false: a zonotope with zero generators is the
// single point Center, never empty.
func (z *Zonotope) IsEmpty() (bool, error) { return false, nil }

// Support evaluates sup { d.x | x in Z } = d.c + sum_j |d.g_j|, the
// closed form for a zonotope's support function (spec §4.5's
// "closed-form" box treatment generalizes directly: each generator
// contributes independently since alpha_j ranges over [-1,1]
// unconstrained by the others).
func (z *Zonotope) Support(d matrix.Vector) (float64, matrix.Vector, geom.Status, error) {
	if len(d) != z.Dim() {
		return 0, nil, geom.Infeasible, zonoErrorf("Support", ErrDimensionMismatch)
	}
	value, err := d.Dot(z.Center)
	if err != nil {
		return 0, nil, geom.Infeasible, zonoErrorf("Support", err)
	}
	k := z.NumGenerators()
	alpha := make([]float64, k)
	for j := 0; j < k; j++ {
		col, err := matrix.VectorFromColumn(z.Generators, j)
		if err != nil {
			return 0, nil, geom.Infeasible, zonoErrorf("Support", err)
		}
		dot, err := d.Dot(col)
		if err != nil {
			return 0, nil, geom.Infeasible, zonoErrorf("Support", err)
		}
		if dot >= 0 {
			alpha[j] = 1
		} else {
			alpha[j] = -1
		}
		value += math.Abs(dot)
	}
	argmax, err := z.pointAt(alpha)
	if err != nil {
		return 0, nil, geom.Infeasible, zonoErrorf("Support", err)
	}
	return value, argmax, geom.Feasible, nil
}

func (z *Zonotope) pointAt(alpha []float64) (matrix.Vector, error) {
	x := z.Center.Clone()
	for j, a := range alpha {
		col, err := matrix.VectorFromColumn(z.Generators, j)
		if err != nil {
			return nil, err
		}
		scaled := col.Scale(a)
		x, err = x.Add(scaled)
		if err != nil {
			return nil, err
		}
	}
	return x, nil
}

// Contains decides membership by solving the LP feasibility problem
// "exists alpha in [-1,1]^k with c + G.alpha = x" (spec §4.5 "zonotope
// containment of a point reduces to an LP in alpha-space").
func (z *Zonotope) Contains(x matrix.Vector) (bool, error) {
	if len(x) != z.Dim() {
		return false, zonoErrorf("Contains", ErrDimensionMismatch)
	}
	k := z.NumGenerators()
	if k == 0 {
		eq := true
		for i := range x {
			if x[i] != z.Center[i] {
				eq = false
				break
			}
		}
		return eq, nil
	}
	n := z.Dim()
	rows := 2*n + 2*k
	a, err := matrix.NewDense(rows, k)
	if err != nil {
		return false, zonoErrorf("Contains", err)
	}
	b := make(matrix.Vector, rows)

	r := 0
	for d := 0; d < n; d++ {
		for j := 0; j < k; j++ {
			g, err := z.Generators.At(d, j)
			if err != nil {
				return false, zonoErrorf("Contains", err)
			}
			if err := a.Set(r, j, g); err != nil {
				return false, err
			}
		}
		b[r] = x[d] - z.Center[d]
		r++
		for j := 0; j < k; j++ {
			g, err := z.Generators.At(d, j)
			if err != nil {
				return false, zonoErrorf("Contains", err)
			}
			if err := a.Set(r, j, -g); err != nil {
				return false, err
			}
		}
		b[r] = -(x[d] - z.Center[d])
		r++
	}
	for j := 0; j < k; j++ {
		if err := a.Set(r, j, 1); err != nil {
			return false, err
		}
		b[r] = 1
		r++
		if err := a.Set(r, j, -1); err != nil {
			return false, err
		}
		b[r] = 1
		r++
	}

	prob, err := optimizer.NewProblem(a, b)
	if err != nil {
		return false, zonoErrorf("Contains", err)
	}
	return optimizer.NewSolver(prob).IsFeasible()
}

// AffineImage returns (M*c + b, M*G) (spec §4.5 "affine image multiplies
// center and generators").
func (z *Zonotope) AffineImage(m *matrix.Dense, bias matrix.Vector) (geom.Set, error) {
	if m.Cols() != z.Dim() {
		return nil, zonoErrorf("AffineImage", ErrDimensionMismatch)
	}
	newCenterRaw, err := matrix.MatVec(m, z.Center)
	if err != nil {
		return nil, zonoErrorf("AffineImage", err)
	}
	newCenter, err := matrix.Vector(newCenterRaw).Add(bias)
	if err != nil {
		return nil, zonoErrorf("AffineImage", err)
	}
	k := z.NumGenerators()
	var newGen *matrix.Dense
	if k > 0 {
		raw, err := matrix.Mul(m, z.Generators)
		if err != nil {
			return nil, zonoErrorf("AffineImage", err)
		}
		dense, ok := raw.(*matrix.Dense)
		if !ok {
			return nil, zonoErrorf("AffineImage", errors.New("zonotope: Mul did not return a *Dense"))
		}
		newGen = dense
	}
	return New(newCenter, newGen)
}

// MinkowskiSum concatenates generator columns and sums centers (spec
// §4.5 "Minkowski-sum concatenates generator columns").
func (z *Zonotope) MinkowskiSum(other geom.Set) (geom.Set, error) {
	o, ok := other.(*Zonotope)
	if !ok {
		return nil, zonoErrorf("MinkowskiSum", errors.New("zonotope: MinkowskiSum requires a *Zonotope operand (convert first)"))
	}
	if o.Dim() != z.Dim() {
		return nil, zonoErrorf("MinkowskiSum", ErrDimensionMismatch)
	}
	newCenter, err := z.Center.Add(o.Center)
	if err != nil {
		return nil, zonoErrorf("MinkowskiSum", err)
	}
	k1, k2 := z.NumGenerators(), o.NumGenerators()
	if k1+k2 == 0 {
		return New(newCenter, nil)
	}
	n := z.Dim()
	gen, err := matrix.NewDense(n, k1+k2)
	if err != nil {
		return nil, zonoErrorf("MinkowskiSum", err)
	}
	for j := 0; j < k1; j++ {
		for i := 0; i < n; i++ {
			v, err := z.Generators.At(i, j)
			if err != nil {
				return nil, zonoErrorf("MinkowskiSum", err)
			}
			if err := gen.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}
	for j := 0; j < k2; j++ {
		for i := 0; i < n; i++ {
			v, err := o.Generators.At(i, j)
			if err != nil {
				return nil, zonoErrorf("MinkowskiSum", err)
			}
			if err := gen.Set(i, k1+j, v); err != nil {
				return nil, err
			}
		}
	}
	return New(newCenter, gen)
}

// IntersectHalfspaces is not a closed-form zonotope operation; the
// result of intersecting a zonotope with arbitrary half-spaces is not
// in general a zonotope (spec §4.5 only names Minkowski-sum and affine
// image as zonotope-native). Callers needing this should convert to
// H-polytope first (spec §4.7).
func (z *Zonotope) IntersectHalfspaces(hs []geom.Halfspace) (geom.Set, error) {
	return nil, zonoErrorf("IntersectHalfspaces", errors.New("zonotope: not a native operation, convert to hpolytope first"))
}

// Vertices enumerates all 2^k sign combinations of alpha and returns
// the resulting (non-necessarily-extreme) candidate points' convex
// hull vertex set, per spec §4.7 "Zonotope -> H: exact by enumerating
// 2^k vertex signs then convex hull." This method returns the raw 2^k
// candidate set; callers wanting only extreme points should route
// through vpolytope.ReduceRedundancy.
func (z *Zonotope) Vertices() ([]geom.Point, error) {
	k := z.NumGenerators()
	if k == 0 {
		return []geom.Point{geom.Point(z.Center.Clone())}, nil
	}
	total := 1 << uint(k)
	out := make([]geom.Point, 0, total)
	for mask := 0; mask < total; mask++ {
		alpha := make([]float64, k)
		for j := 0; j < k; j++ {
			if mask&(1<<uint(j)) != 0 {
				alpha[j] = 1
			} else {
				alpha[j] = -1
			}
		}
		x, err := z.pointAt(alpha)
		if err != nil {
			return nil, zonoErrorf("Vertices", err)
		}
		out = append(out, geom.Point(x))
	}
	return out, nil
}

// Order returns k/n, the generator-to-dimension ratio commonly used as
// a reduction trigger in zonotope-based reachability engines.
func (z *Zonotope) Order() float64 {
	if z.Dim() == 0 {
		return 0
	}
	return float64(z.NumGenerators()) / float64(z.Dim())
}
