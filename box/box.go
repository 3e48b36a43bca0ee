// Package box implements the axis-aligned Box(n) representation (spec
// §3, §4.5): an n-tuple of intervals [lo_i, hi_i]. Every Box operation
// is closed-form — no optimiser call is ever needed, which is the
// representation's whole appeal for the reachability engine's bloating
// step (spec §4.8 step 4, the "ball-over-approximating box of radius r").
package box

import (
	"errors"
	"fmt"
	"math"

	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/matrix"
	"github.com/arkweave/hyreach/numeric"
)

// ErrDimensionMismatch indicates two boxes of differing dimension were
// combined.
var ErrDimensionMismatch = errors.New("box: dimension mismatch")

// ErrInvalidBounds indicates lo_i > hi_i was supplied for a non-empty box.
var ErrInvalidBounds = errors.New("box: lo must be <= hi on every axis")

// Box is an n-tuple of closed intervals [Lo[i], Hi[i]]. A Box with
// empty == true represents the empty set regardless of Lo/Hi contents
// (spec §3 invariant: "lo_i <= hi_i or the box is marked empty").
type Box struct {
	Lo, Hi []float64
	empty  bool
}

var _ geom.Set = (*Box)(nil)

func boxErrorf(tag string, err error) error {
	return fmt.Errorf("box.%s: %w", tag, err)
}

// New returns the box [lo_i, hi_i] for each axis i.
// Returns ErrDimensionMismatch if len(lo) != len(hi), ErrInvalidBounds
// if any lo_i > hi_i.
func New(lo, hi []float64) (*Box, error) {
	if len(lo) != len(hi) {
		return nil, boxErrorf("New", ErrDimensionMismatch)
	}
	for i := range lo {
		if lo[i] > hi[i] {
			return nil, boxErrorf("New", ErrInvalidBounds)
		}
	}
	L := make([]float64, len(lo))
	H := make([]float64, len(hi))
	copy(L, lo)
	copy(H, hi)
	return &Box{Lo: L, Hi: H}, nil
}

// Empty returns the empty box of the given dimension.
func Empty(n int) *Box {
	return &Box{Lo: make([]float64, n), Hi: make([]float64, n), empty: true}
}

// Ball returns the axis-aligned box of radius r centered at c, i.e. the
// over-approximation of the infinity-norm ball used by the engine's
// Hausdorff-bloating step (spec §4.8 step 4).
func Ball(c matrix.Vector, r float64) *Box {
	n := len(c)
	lo := make([]float64, n)
	hi := make([]float64, n)
	for i := 0; i < n; i++ {
		lo[i] = c[i] - r
		hi[i] = c[i] + r
	}
	return &Box{Lo: lo, Hi: hi}
}

// Dim returns the number of axes.
func (b *Box) Dim() int { return len(b.Lo) }

// IsEmpty reports whether b is marked empty.
func (b *Box) IsEmpty() (bool, error) { return b.empty, nil }

// Contains reports whether every coordinate of x lies within its axis
// interval. Returns ErrDimensionMismatch if len(x) != b.Dim().
func (b *Box) Contains(x matrix.Vector) (bool, error) {
	if b.empty {
		return false, nil
	}
	if len(x) != b.Dim() {
		return false, boxErrorf("Contains", ErrDimensionMismatch)
	}
	for i, xi := range x {
		if xi < b.Lo[i] || xi > b.Hi[i] {
			return false, nil
		}
	}
	return true, nil
}

// Support evaluates sup { d.x | x in b } in closed form: each axis
// independently picks Hi[i] if d[i] >= 0 else Lo[i].
func (b *Box) Support(d matrix.Vector) (float64, matrix.Vector, geom.Status, error) {
	if b.empty {
		return 0, nil, geom.Infeasible, nil
	}
	if len(d) != b.Dim() {
		return 0, nil, geom.Infeasible, boxErrorf("Support", ErrDimensionMismatch)
	}
	value := 0.0
	argmax := make(matrix.Vector, b.Dim())
	for i, di := range d {
		if di >= 0 {
			argmax[i] = b.Hi[i]
		} else {
			argmax[i] = b.Lo[i]
		}
		value += di * argmax[i]
	}
	return value, argmax, geom.Feasible, nil
}

// AffineImage returns {M*x+b | x in box}. Exact when M is diagonal
// (spec §4.7 "Box <-> H,V,zonotope: exact" relies on the axis-aligned
// shape being preserved); for a general M the result over-approximates.
// Both cases take the same path: the bounding box of the images of the
// box's 2^n vertices.
func (b *Box) AffineImage(m *matrix.Dense, bias matrix.Vector) (geom.Set, error) {
	if b.empty {
		return Empty(m.Rows()), nil
	}
	if m.Cols() != b.Dim() {
		return nil, boxErrorf("AffineImage", ErrDimensionMismatch)
	}
	verts, err := b.Vertices()
	if err != nil {
		return nil, boxErrorf("AffineImage", err)
	}
	n := m.Rows()
	lo := make([]float64, n)
	hi := make([]float64, n)
	for i := range lo {
		lo[i] = math.Inf(1)
		hi[i] = math.Inf(-1)
	}
	for _, v := range verts {
		img, err := matrix.MatVec(m, matrix.Vector(v))
		if err != nil {
			return nil, boxErrorf("AffineImage", err)
		}
		y, err := matrix.Vector(img).Add(bias)
		if err != nil {
			return nil, boxErrorf("AffineImage", err)
		}
		for i := 0; i < n; i++ {
			lo[i] = numeric.Min(lo[i], y[i])
			hi[i] = numeric.Max(hi[i], y[i])
		}
	}
	return New(lo, hi)
}

// MinkowskiSum returns the interval-wise sum b + other (spec §8
// scenario 3: "Box Minkowski-sum closure ... exactly"). other must also
// be a *Box; any other Set is first converted via the convert package
// at the call site.
func (b *Box) MinkowskiSum(other geom.Set) (geom.Set, error) {
	o, ok := other.(*Box)
	if !ok {
		return nil, boxErrorf("MinkowskiSum", errors.New("box: MinkowskiSum requires a *Box operand (convert first)"))
	}
	be, _ := b.IsEmpty()
	oe, _ := o.IsEmpty()
	if be || oe {
		return Empty(b.Dim()), nil
	}
	if b.Dim() != o.Dim() {
		return nil, boxErrorf("MinkowskiSum", ErrDimensionMismatch)
	}
	n := b.Dim()
	lo := make([]float64, n)
	hi := make([]float64, n)
	for i := 0; i < n; i++ {
		lo[i] = b.Lo[i] + o.Lo[i]
		hi[i] = b.Hi[i] + o.Hi[i]
	}
	return New(lo, hi)
}

// IntersectHalfspaces intersects b with each half-space; since the
// general result need not be axis-aligned, this is an over-approximation
// that clips each axis independently against axis-aligned half-spaces
// and otherwise leaves the box unchanged, then the caller is expected
// to tighten further via hpolytope if exactness is required (spec §4.2
// is the exact operation; Box offers the closed-form fast path only).
func (b *Box) IntersectHalfspaces(hs []geom.Halfspace) (geom.Set, error) {
	if b.empty {
		return b, nil
	}
	lo := append([]float64(nil), b.Lo...)
	hi := append([]float64(nil), b.Hi...)
	for _, h := range hs {
		axis := -1
		for i, c := range h.Normal {
			if c != 0 {
				if axis != -1 {
					axis = -2 // not axis-aligned; skip below
					break
				}
				axis = i
			}
		}
		if axis < 0 {
			continue // non-axis-aligned half-space: skip (over-approximation)
		}
		bound := h.Offset / h.Normal[axis]
		if h.Normal[axis] > 0 {
			if bound < hi[axis] {
				hi[axis] = bound
			}
		} else {
			if bound > lo[axis] {
				lo[axis] = bound
			}
		}
	}
	for i := range lo {
		if lo[i] > hi[i] {
			return Empty(b.Dim()), nil
		}
	}
	return New(lo, hi)
}

// Vertices returns all 2^n corners of the box in a fixed, deterministic
// order (binary counting over axes).
func (b *Box) Vertices() ([]geom.Point, error) {
	if b.empty {
		return nil, nil
	}
	n := b.Dim()
	count := 1 << uint(n)
	verts := make([]geom.Point, 0, count)
	for mask := 0; mask < count; mask++ {
		p := make(geom.Point, n)
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				p[i] = b.Hi[i]
			} else {
				p[i] = b.Lo[i]
			}
		}
		verts = append(verts, p)
	}
	return verts, nil
}

// Diameter returns the support of b evaluated on the infinity-norm unit
// ball, an upper bound on the box's diameter (spec §4.8 step 4's "|.|").
func (b *Box) Diameter() float64 {
	max := 0.0
	for i := range b.Lo {
		w := b.Hi[i] - b.Lo[i]
		if w > max {
			max = w
		}
	}
	return max
}
