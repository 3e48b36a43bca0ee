// Package hpolytope implements the H-polytope(n) representation (spec
// §3, §4.2): a finite intersection of half-spaces. Emptiness and
// directional queries delegate to the optimizer package; vertex
// enumeration delegates to vertexenum.
package hpolytope

import (
	"errors"
	"fmt"

	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/matrix"
	"github.com/arkweave/hyreach/optimizer"
	"github.com/arkweave/hyreach/vertexenum"
)

// ErrDimensionMismatch indicates two H-polytopes, or an H-polytope and
// an auxiliary input, disagreed on dimension.
var ErrDimensionMismatch = errors.New("hpolytope: dimension mismatch")

// ErrEmptyPolytope indicates an operation that requires at least one
// half-space was given none (an H-polytope with zero constraints is
// R^n, which most operations below handle explicitly instead).
var ErrEmptyPolytope = errors.New("hpolytope: zero half-spaces given with no declared dimension")

// ErrUnbounded indicates an operation that requires a finite vertex
// set (the polytope's extreme points alone, with no recession-cone
// rays) was given an unbounded polytope instead.
var ErrUnbounded = errors.New("hpolytope: polytope is unbounded")

func hpErrorf(tag string, err error) error {
	return fmt.Errorf("hpolytope.%s: %w", tag, err)
}

// HPolytope is a finite set of half-spaces; its value is their
// intersection (spec §3 "H-polytope(n)"). dim is carried explicitly so
// the zero-constraint case (the whole space) still knows its ambient
// dimension.
type HPolytope struct {
	dim        int
	Halfspaces []geom.Halfspace
	reduced    bool // whether reduce_redundant has been applied since the last mutation
}

var _ geom.Set = (*HPolytope)(nil)

// New returns the H-polytope that is the intersection of hs. Every
// half-space must share dim; pass dim explicitly since hs may be empty.
func New(dim int, hs []geom.Halfspace) (*HPolytope, error) {
	for _, h := range hs {
		if h.Dim() != dim {
			return nil, hpErrorf("New", ErrDimensionMismatch)
		}
	}
	cp := make([]geom.Halfspace, len(hs))
	copy(cp, hs)
	return &HPolytope{dim: dim, Halfspaces: cp}, nil
}

// Dim returns the ambient dimension.
func (p *HPolytope) Dim() int { return p.dim }

func (p *HPolytope) toProblem() (*optimizer.Problem, error) {
	m := len(p.Halfspaces)
	a, err := matrix.NewDense(maxOne(m), p.dim)
	if err != nil {
		return nil, err
	}
	b := make(matrix.Vector, maxOne(m))
	for i, h := range p.Halfspaces {
		for j, c := range h.Normal {
			if err := a.Set(i, j, c); err != nil {
				return nil, err
			}
		}
		b[i] = h.Offset
	}
	if m == 0 {
		// Encode "no constraints" as a single always-true row 0*x <= 1.
		b[0] = 1
	}
	return optimizer.NewProblem(a, b)
}

func maxOne(m int) int {
	if m == 0 {
		return 1
	}
	return m
}

func (p *HPolytope) solver() (*optimizer.Solver, error) {
	prob, err := p.toProblem()
	if err != nil {
		return nil, err
	}
	return optimizer.NewSolver(prob), nil
}

// IsEmpty decides emptiness via the optimiser's feasibility check
// (spec §4.2 "is_empty(P) - via optimiser feasibility").
func (p *HPolytope) IsEmpty() (bool, error) {
	s, err := p.solver()
	if err != nil {
		return false, hpErrorf("IsEmpty", err)
	}
	feasible, err := s.IsFeasible()
	if err != nil {
		return false, hpErrorf("IsEmpty", err)
	}
	return !feasible, nil
}

// Contains reports whether every half-space holds at x (spec §4.2
// "contains(P, point) - all half-spaces hold").
func (p *HPolytope) Contains(x matrix.Vector) (bool, error) {
	if len(x) != p.dim {
		return false, hpErrorf("Contains", ErrDimensionMismatch)
	}
	for _, h := range p.Halfspaces {
		ok, err := h.Holds(x)
		if err != nil {
			return false, hpErrorf("Contains", err)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// ContainsSet reports Q subseteq P, tested half-space by half-space:
// for every half-space (n, c) of P, the support of Q in direction n
// must be <= c (spec §4.2 "contains(P, Q)").
func (p *HPolytope) ContainsSet(q geom.Set) (bool, error) {
	for _, h := range p.Halfspaces {
		val, _, status, err := q.Support(h.Normal)
		if err != nil {
			return false, hpErrorf("ContainsSet", err)
		}
		if status == geom.Infeasible {
			continue // Q is empty: vacuously contained
		}
		if status == geom.Unbounded || val > h.Offset {
			return false, nil
		}
	}
	return true, nil
}

// Support evaluates the polytope's support function via the optimiser.
func (p *HPolytope) Support(d matrix.Vector) (float64, matrix.Vector, geom.Status, error) {
	if len(d) != p.dim {
		return 0, nil, geom.Infeasible, hpErrorf("Support", ErrDimensionMismatch)
	}
	s, err := p.solver()
	if err != nil {
		return 0, nil, geom.Infeasible, hpErrorf("Support", err)
	}
	return s.Evaluate(d)
}

// AffineImage returns {M*x+b | x in P} (spec §4.2): computed by
// substitution x = M^-1(y-b) when M is square and invertible, else by
// mapping every vertex through (M, b) and reconstructing the exact
// facets of the mapped point set's convex hull. P must be bounded in
// the latter case — ErrUnbounded propagates from Vertices otherwise,
// since a reset with a singular matrix (a realistic case: e.g. a reset
// that zeroes a variable) is the common path into this branch, not an
// edge case.
func (p *HPolytope) AffineImage(m *matrix.Dense, b matrix.Vector) (geom.Set, error) {
	if m.Cols() != p.dim {
		return nil, hpErrorf("AffineImage", ErrDimensionMismatch)
	}
	if m.Rows() == m.Cols() {
		if inv, err := matrix.Inverse(m); err == nil {
			return p.affineImageBySubstitution(inv.(*matrix.Dense), b)
		}
	}
	return p.affineImageByVertices(m, b)
}

// affineImageBySubstitution handles the invertible square case: P's
// half-space (n, c) becomes, under y = Mx+b i.e. x = M^-1(y-b):
// n . M^-1 y <= c + n . M^-1 b.
func (p *HPolytope) affineImageBySubstitution(invM *matrix.Dense, b matrix.Vector) (geom.Set, error) {
	out := make([]geom.Halfspace, len(p.Halfspaces))
	for i, h := range p.Halfspaces {
		invMT, err := matrix.Transpose(invM)
		if err != nil {
			return nil, hpErrorf("affineImageBySubstitution", err)
		}
		newNormal, err := matrix.MatVec(invMT, h.Normal)
		if err != nil {
			return nil, hpErrorf("affineImageBySubstitution", err)
		}
		offset := h.Offset
		shift, err := matrix.Vector(newNormal).Dot(b)
		if err != nil {
			return nil, hpErrorf("affineImageBySubstitution", err)
		}
		offset += shift
		hs, err := geom.NewHalfspace(newNormal, offset)
		if err != nil {
			return nil, hpErrorf("affineImageBySubstitution", err)
		}
		out[i] = hs
	}
	return New(invM.Rows(), out)
}

// affineImageByVertices maps every vertex of P through (M, b) and
// reconstructs an H-polytope as the mapped point set's exact convex
// hull facets, via the same facet-from-points construction
// convert.VPolytopeToHPolytope uses for V-to-H conversion
// (vertexenum.FacetsFromPoints).
func (p *HPolytope) affineImageByVertices(m *matrix.Dense, b matrix.Vector) (geom.Set, error) {
	verts, err := p.Vertices()
	if err != nil {
		return nil, hpErrorf("affineImageByVertices", err)
	}
	n := m.Rows()
	mapped := make([]geom.Point, len(verts))
	for i, v := range verts {
		y, err := matrix.MatVec(m, matrix.Vector(v))
		if err != nil {
			return nil, hpErrorf("affineImageByVertices", err)
		}
		yb, err := matrix.Vector(y).Add(b)
		if err != nil {
			return nil, hpErrorf("affineImageByVertices", err)
		}
		mapped[i] = geom.Point(yb)
	}
	return hullAsExactHalfspaces(n, mapped)
}

// hullAsExactHalfspaces reconstructs the exact convex hull facets of
// pts (vertexenum.FacetsFromPoints), falling back to the bounding
// box's exact H-form only when pts is too low-dimensional to span a
// full-dimensional hull (fewer than n+1 points) — the same degenerate
// case convert.VPolytopeToHPolytope falls back on.
func hullAsExactHalfspaces(n int, pts []geom.Point) (*HPolytope, error) {
	if len(pts) == 0 {
		return New(n, nil)
	}
	if len(pts) < n+1 {
		lo := make([]float64, n)
		hi := make([]float64, n)
		copy(lo, pts[0])
		copy(hi, pts[0])
		for _, p := range pts[1:] {
			for i := 0; i < n; i++ {
				if p[i] < lo[i] {
					lo[i] = p[i]
				}
				if p[i] > hi[i] {
					hi[i] = p[i]
				}
			}
		}
		hs := make([]geom.Halfspace, 0, 2*n)
		for i := 0; i < n; i++ {
			upper := make(matrix.Vector, n)
			upper[i] = 1
			h, err := geom.NewHalfspace(upper, hi[i])
			if err != nil {
				return nil, err
			}
			hs = append(hs, h)
			lower := make(matrix.Vector, n)
			lower[i] = -1
			h2, err := geom.NewHalfspace(lower, -lo[i])
			if err != nil {
				return nil, err
			}
			hs = append(hs, h2)
		}
		return New(n, hs)
	}
	facets, err := vertexenum.FacetsFromPoints(n, pts)
	if err != nil {
		return nil, err
	}
	return New(n, facets)
}

// MinkowskiSum evaluates both operands' support in a fixed template of
// directions (the polytope's own facet normals from both sides) and
// takes the sum of offsets (spec §4.2 "minkowski_sum(P, Q)").
func (p *HPolytope) MinkowskiSum(other geom.Set) (geom.Set, error) {
	if other.Dim() != p.dim {
		return nil, hpErrorf("MinkowskiSum", ErrDimensionMismatch)
	}
	directions := make([]matrix.Vector, 0, len(p.Halfspaces))
	for _, h := range p.Halfspaces {
		directions = append(directions, h.Normal)
	}
	if oh, ok := other.(*HPolytope); ok {
		for _, h := range oh.Halfspaces {
			directions = append(directions, h.Normal)
		}
	}
	out := make([]geom.Halfspace, 0, len(directions))
	for _, d := range directions {
		v1, _, st1, err := p.Support(d)
		if err != nil {
			return nil, hpErrorf("MinkowskiSum", err)
		}
		v2, _, st2, err := other.Support(d)
		if err != nil {
			return nil, hpErrorf("MinkowskiSum", err)
		}
		if st1 != geom.Feasible || st2 != geom.Feasible {
			continue // unbounded or empty in this direction: drop the facet
		}
		h, err := geom.NewHalfspace(d, v1+v2)
		if err != nil {
			return nil, hpErrorf("MinkowskiSum", err)
		}
		out = append(out, h)
	}
	return New(p.dim, out)
}

// IntersectHalfspaces appends rows; reduce_redundant is left to the
// caller (spec §4.2: "append rows, then optional redundancy removal").
func (p *HPolytope) IntersectHalfspaces(hs []geom.Halfspace) (geom.Set, error) {
	for _, h := range hs {
		if h.Dim() != p.dim {
			return nil, hpErrorf("IntersectHalfspaces", ErrDimensionMismatch)
		}
	}
	merged := append(append([]geom.Halfspace(nil), p.Halfspaces...), hs...)
	return New(p.dim, merged)
}

// ReduceRedundant removes half-spaces whose removal does not change the
// feasible set (spec §4.2 "reduce_redundant").
func (p *HPolytope) ReduceRedundant() (*HPolytope, error) {
	if p.reduced || len(p.Halfspaces) == 0 {
		return p, nil
	}
	s, err := p.solver()
	if err != nil {
		return nil, hpErrorf("ReduceRedundant", err)
	}
	redundant, err := s.RedundantRows()
	if err != nil {
		return nil, hpErrorf("ReduceRedundant", err)
	}
	drop := make(map[int]bool, len(redundant))
	for _, r := range redundant {
		drop[r] = true
	}
	kept := make([]geom.Halfspace, 0, len(p.Halfspaces)-len(redundant))
	for i, h := range p.Halfspaces {
		if !drop[i] {
			kept = append(kept, h)
		}
	}
	out, err := New(p.dim, kept)
	if err != nil {
		return nil, hpErrorf("ReduceRedundant", err)
	}
	out.reduced = true
	return out, nil
}

// Vertices returns the polytope's extreme points by delegating to
// vertexenum's enumeration of tight half-space combinations (spec §4.2
// "vertices(P) - delegates to §4.3"). It returns ErrUnbounded if the
// polytope has a non-trivial recession cone: the extreme points alone
// would silently omit the set's unbounded directions, which is unsound
// rather than merely imprecise.
func (p *HPolytope) Vertices() ([]geom.Point, error) {
	pts, rays, err := vertexenum.Enumerate(p.dim, p.Halfspaces)
	if err != nil {
		return nil, hpErrorf("Vertices", err)
	}
	if len(rays) > 0 {
		return nil, hpErrorf("Vertices", ErrUnbounded)
	}
	return pts, nil
}
