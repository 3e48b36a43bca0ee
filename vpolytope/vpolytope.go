// Package vpolytope implements the V-polytope(n) representation (spec
// §3, §4.4): a finite set of points interpreted as their convex hull.
// Containment and redundancy reduction reduce to linear feasibility
// checks over the optimizer package.
package vpolytope

import (
	"errors"
	"fmt"
	"math"

	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/matrix"
	"github.com/arkweave/hyreach/optimizer"
)

// ErrDimensionMismatch indicates mismatched dimensions between the
// V-polytope and an auxiliary input.
var ErrDimensionMismatch = errors.New("vpolytope: dimension mismatch")

// ErrEmptyVertexSet indicates an operation requiring at least one
// vertex was given none.
var ErrEmptyVertexSet = errors.New("vpolytope: empty vertex set")

func vpErrorf(tag string, err error) error {
	return fmt.Errorf("vpolytope.%s: %w", tag, err)
}

// VPolytope is a finite set of points; its value is their convex hull
// (spec §3 "V-polytope(n)").
type VPolytope struct {
	dim     int
	pts     []geom.Point
	reduced bool
}

var _ geom.Set = (*VPolytope)(nil)

// New returns the V-polytope that is the convex hull of pts. Every
// point must share dim.
func New(dim int, pts []geom.Point) (*VPolytope, error) {
	for _, p := range pts {
		if p.Dim() != dim {
			return nil, vpErrorf("New", ErrDimensionMismatch)
		}
	}
	cp := make([]geom.Point, len(pts))
	for i, p := range pts {
		cp[i] = p.Clone()
	}
	return &VPolytope{dim: dim, pts: cp}, nil
}

// Dim returns the ambient dimension.
func (p *VPolytope) Dim() int { return p.dim }

// IsEmpty reports whether the vertex set is empty.
func (p *VPolytope) IsEmpty() (bool, error) { return len(p.pts) == 0, nil }

// Contains reports whether x is a convex combination of the vertices,
// tested via the LP "coefficients >= 0, sum = 1, combination = point"
// (spec §4.4 "contains(P, point)").
func (p *VPolytope) Contains(x matrix.Vector) (bool, error) {
	if len(x) != p.dim {
		return false, vpErrorf("Contains", ErrDimensionMismatch)
	}
	if len(p.pts) == 0 {
		return false, nil
	}
	return convexCombinationFeasible(p.pts, x)
}

// convexCombinationFeasible decides whether target is a convex
// combination of pts by building the LP over weights w in R^k:
//
//	sum_i w_i        = 1        (as two <= inequalities)
//	sum_i w_i*pts_i  = target   (as two <= inequalities per coordinate)
//	w_i >= 0                    (as -w_i <= 0)
func convexCombinationFeasible(pts []geom.Point, target matrix.Vector) (bool, error) {
	k := len(pts)
	n := len(target)
	rows := 2 + 2*n + k
	a, err := matrix.NewDense(rows, k)
	if err != nil {
		return false, vpErrorf("convexCombinationFeasible", err)
	}
	b := make(matrix.Vector, rows)

	r := 0
	for i := 0; i < k; i++ {
		if err := a.Set(r, i, 1); err != nil {
			return false, err
		}
	}
	b[r] = 1
	r++
	for i := 0; i < k; i++ {
		if err := a.Set(r, i, -1); err != nil {
			return false, err
		}
	}
	b[r] = -1
	r++

	for d := 0; d < n; d++ {
		for i := 0; i < k; i++ {
			if err := a.Set(r, i, pts[i][d]); err != nil {
				return false, err
			}
		}
		b[r] = target[d]
		r++
		for i := 0; i < k; i++ {
			if err := a.Set(r, i, -pts[i][d]); err != nil {
				return false, err
			}
		}
		b[r] = -target[d]
		r++
	}

	for i := 0; i < k; i++ {
		if err := a.Set(r, i, -1); err != nil {
			return false, err
		}
		b[r] = 0
		r++
	}

	prob, err := optimizer.NewProblem(a, b)
	if err != nil {
		return false, vpErrorf("convexCombinationFeasible", err)
	}
	return optimizer.NewSolver(prob).IsFeasible()
}

// Support evaluates sup { d.x | x in hull(vertices) } by maximizing
// over the finite vertex set directly (no LP needed: the support of a
// finite point set's hull is attained at a vertex).
func (p *VPolytope) Support(d matrix.Vector) (float64, matrix.Vector, geom.Status, error) {
	if len(p.pts) == 0 {
		return 0, nil, geom.Infeasible, nil
	}
	if d.Dim() != p.dim {
		return 0, nil, geom.Infeasible, vpErrorf("Support", ErrDimensionMismatch)
	}
	best := math.Inf(-1)
	var argmax matrix.Vector
	for _, v := range p.pts {
		val, err := matrix.Vector(v).Dot(d)
		if err != nil {
			return 0, nil, geom.Infeasible, vpErrorf("Support", err)
		}
		if val > best {
			best = val
			argmax = matrix.Vector(v)
		}
	}
	return best, argmax, geom.Feasible, nil
}

// AffineImage applies (M, b) to every vertex (spec §4.4 "affine_image").
func (p *VPolytope) AffineImage(m *matrix.Dense, b matrix.Vector) (geom.Set, error) {
	if m.Cols() != p.dim {
		return nil, vpErrorf("AffineImage", ErrDimensionMismatch)
	}
	out := make([]geom.Point, len(p.pts))
	for i, v := range p.pts {
		y, err := matrix.MatVec(m, matrix.Vector(v))
		if err != nil {
			return nil, vpErrorf("AffineImage", err)
		}
		yb, err := matrix.Vector(y).Add(b)
		if err != nil {
			return nil, vpErrorf("AffineImage", err)
		}
		out[i] = geom.Point(yb)
	}
	return New(m.Rows(), out)
}

// MinkowskiSum computes the pointwise sum of vertex sets, then reduces
// to extreme points (spec §4.4).
func (p *VPolytope) MinkowskiSum(other geom.Set) (geom.Set, error) {
	o, ok := other.(*VPolytope)
	if !ok {
		return nil, vpErrorf("MinkowskiSum", errors.New("vpolytope: MinkowskiSum requires a *VPolytope operand (convert first)"))
	}
	if o.dim != p.dim {
		return nil, vpErrorf("MinkowskiSum", ErrDimensionMismatch)
	}
	candidates := make([]geom.Point, 0, len(p.pts)*len(o.pts))
	for _, v := range p.pts {
		for _, w := range o.pts {
			s, err := v.Add(w)
			if err != nil {
				return nil, vpErrorf("MinkowskiSum", err)
			}
			candidates = append(candidates, s)
		}
	}
	sum, err := New(p.dim, candidates)
	if err != nil {
		return nil, vpErrorf("MinkowskiSum", err)
	}
	return sum.ReduceRedundancy()
}

// Intersect computes candidate vertices as (a) the originals of each
// side and (b) pairwise componentwise maxima, keeping each candidate
// iff it lies in both sides (spec §4.4 "intersect(P, Q)").
func (p *VPolytope) Intersect(other *VPolytope) (*VPolytope, error) {
	if other.dim != p.dim {
		return nil, vpErrorf("Intersect", ErrDimensionMismatch)
	}
	candidates := make([]geom.Point, 0)
	candidates = append(candidates, p.pts...)
	candidates = append(candidates, other.pts...)
	for _, v := range p.pts {
		for _, w := range other.pts {
			cm := make(geom.Point, p.dim)
			for i := 0; i < p.dim; i++ {
				cm[i] = math.Max(v[i], w[i])
			}
			candidates = append(candidates, cm)
		}
	}
	kept := make([]geom.Point, 0, len(candidates))
	for _, c := range candidates {
		inP, err := p.Contains(matrix.Vector(c))
		if err != nil {
			return nil, vpErrorf("Intersect", err)
		}
		inQ, err := other.Contains(matrix.Vector(c))
		if err != nil {
			return nil, vpErrorf("Intersect", err)
		}
		if inP && inQ {
			kept = append(kept, c)
		}
	}
	return New(p.dim, kept)
}

// IntersectHalfspaces is not a native V-polytope operation (spec §4.4
// lists only Intersect(P,Q)); callers intersecting a V-polytope with
// raw half-spaces should convert to H-polytope first (spec §4.7).
func (p *VPolytope) IntersectHalfspaces(hs []geom.Halfspace) (geom.Set, error) {
	return nil, vpErrorf("IntersectHalfspaces", errors.New("vpolytope: not a native operation, convert to hpolytope first"))
}

// Union returns the convex hull of the union of both vertex sets (spec
// §4.4 "union(P, Q)").
func (p *VPolytope) Union(other *VPolytope) (*VPolytope, error) {
	if other.dim != p.dim {
		return nil, vpErrorf("Union", ErrDimensionMismatch)
	}
	merged := append(append([]geom.Point(nil), p.pts...), other.pts...)
	u, err := New(p.dim, merged)
	if err != nil {
		return nil, vpErrorf("Union", err)
	}
	return u.ReduceRedundancy()
}

// ReduceRedundancy drops any vertex expressible as a convex combination
// of the remaining vertices (spec §4.4 "reduce_redundancy").
func (p *VPolytope) ReduceRedundancy() (*VPolytope, error) {
	if p.reduced || len(p.pts) <= 1 {
		return p, nil
	}
	kept := make([]geom.Point, 0, len(p.pts))
	for i, v := range p.pts {
		others := make([]geom.Point, 0, len(p.pts)-1)
		for j, w := range p.pts {
			if j != i {
				others = append(others, w)
			}
		}
		redundant, err := convexCombinationFeasible(others, matrix.Vector(v))
		if err != nil {
			return nil, vpErrorf("ReduceRedundancy", err)
		}
		if !redundant {
			kept = append(kept, v)
		}
	}
	out, err := New(p.dim, kept)
	if err != nil {
		return nil, vpErrorf("ReduceRedundancy", err)
	}
	out.reduced = true
	return out, nil
}

// ReduceNumberRepresentation snaps each vertex away from the centroid
// to integer-coefficient coordinates scaled by limit, rounding away
// from the centroid so the reduced hull still contains the original
// (spec §4.4 "reduce_number_representation").
func (p *VPolytope) ReduceNumberRepresentation(limit float64) (*VPolytope, error) {
	if len(p.pts) == 0 || limit <= 0 {
		return p, nil
	}
	centroid := make(geom.Point, p.dim)
	for _, v := range p.pts {
		for i := range centroid {
			centroid[i] += v[i]
		}
	}
	for i := range centroid {
		centroid[i] /= float64(len(p.pts))
	}

	out := make([]geom.Point, len(p.pts))
	for vi, v := range p.pts {
		snapped := make(geom.Point, p.dim)
		for i := range v {
			delta := v[i] - centroid[i]
			scaled := delta * limit
			rounded := roundAwayFromZero(scaled)
			snapped[i] = centroid[i] + rounded/limit
		}
		out[vi] = snapped
	}
	return New(p.dim, out)
}

func roundAwayFromZero(x float64) float64 {
	if x >= 0 {
		return math.Ceil(x)
	}
	return math.Floor(x)
}

// Vertices returns the stored point set (already the extreme points
// after ReduceRedundancy).
func (p *VPolytope) Vertices() ([]geom.Point, error) {
	return p.pts, nil
}
