// Package orthopoly implements the Orthogonal polyhedron(n)
// representation (spec §3, §4.5): a finite colour map from grid points
// (rational coordinates, represented here as integer lattice indices
// scaled by a fixed Step) to {inside, outside}, together with a
// boundary box. The grid carries set-membership colour rather than
// graph adjacency, and is an n-dimensional sparse map keyed by lattice
// index rather than a fixed-size 2D array, since reachability automata
// are not bounded to the plane.
package orthopoly

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arkweave/hyreach/box"
	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/matrix"
)

// ErrDimensionMismatch indicates mismatched dimensions between the
// polyhedron and an auxiliary input.
var ErrDimensionMismatch = errors.New("orthopoly: dimension mismatch")

// ErrStepMismatch indicates two polyhedra with different grid spacing
// were combined without first merging their grids.
var ErrStepMismatch = errors.New("orthopoly: grid step mismatch")

// ErrNotSupported marks an operation this package deliberately leaves
// unimplemented (spec §9 Open Question: "orthogonal polyhedron's
// Minkowski sum is unimplemented in the source ... left as a future
// extension, not a core operation").
var ErrNotSupported = errors.New("orthopoly: operation not supported")

func orthoErrorf(tag string, err error) error {
	return fmt.Errorf("orthopoly.%s: %w", tag, err)
}

// Color is the membership colour of a grid point.
type Color int

const (
	// Outside marks a grid point not in the polyhedron.
	Outside Color = iota
	// Inside marks a grid point in the polyhedron.
	Inside
)

// OrthogonalPolyhedron is a coloured lattice (spec §3 "Orthogonal
// polyhedron(n)"). Grid points absent from Cells are implicitly
// Outside; Step is the rational grid spacing shared by every axis.
type OrthogonalPolyhedron struct {
	dim   int
	Step  float64
	Cells map[string]Color // key: encodeIndex(idx)

	// neighborhood memoizes, per queried lattice point, the colours of
	// its 2^dim corner-adjacent cells (the per-axis predecessor/successor
	// set Vertices/isVertex consult). Built lazily per point rather than
	// eagerly for the whole grid, since most callers only ever query the
	// boundary a Vertices() pass visits once (original_source's
	// NeighborhoodContainer — see DESIGN.md).
	neighborhood map[string][]Color
}

var _ geom.Set = (*OrthogonalPolyhedron)(nil)

// NewEmpty returns the all-Outside polyhedron over a dim-dimensional
// grid with the given spacing.
func NewEmpty(dim int, step float64) *OrthogonalPolyhedron {
	return &OrthogonalPolyhedron{dim: dim, Step: step, Cells: make(map[string]Color), neighborhood: make(map[string][]Color)}
}

func encodeIndex(idx []int) string {
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// SetInside marks the lattice point idx as Inside.
func (o *OrthogonalPolyhedron) SetInside(idx []int) error {
	if len(idx) != o.dim {
		return orthoErrorf("SetInside", ErrDimensionMismatch)
	}
	o.Cells[encodeIndex(idx)] = Inside
	// Coloring a cell can change any cached neighborhood that bordered
	// it; drop the whole lazy cache rather than tracking which entries
	// it touches.
	if len(o.neighborhood) > 0 {
		o.neighborhood = make(map[string][]Color)
	}
	return nil
}

func (o *OrthogonalPolyhedron) colorAt(idx []int) Color {
	c, ok := o.Cells[encodeIndex(idx)]
	if !ok {
		return Outside
	}
	return c
}

// Dim returns the ambient dimension.
func (o *OrthogonalPolyhedron) Dim() int { return o.dim }

// IsEmpty reports whether no lattice point is Inside.
func (o *OrthogonalPolyhedron) IsEmpty() (bool, error) {
	for _, c := range o.Cells {
		if c == Inside {
			return false, nil
		}
	}
	return true, nil
}

func (o *OrthogonalPolyhedron) indexOf(x matrix.Vector) []int {
	idx := make([]int, o.dim)
	for i, v := range x {
		idx[i] = int(math.Round(v / o.Step))
	}
	return idx
}

func (o *OrthogonalPolyhedron) realCoord(idx []int) matrix.Vector {
	x := make(matrix.Vector, len(idx))
	for i, v := range idx {
		x[i] = float64(v) * o.Step
	}
	return x
}

// Contains reports whether x's nearest lattice point is coloured
// Inside.
func (o *OrthogonalPolyhedron) Contains(x matrix.Vector) (bool, error) {
	if len(x) != o.dim {
		return false, orthoErrorf("Contains", ErrDimensionMismatch)
	}
	return o.colorAt(o.indexOf(x)) == Inside, nil
}

// Hull returns the smallest axis-aligned box covering every Inside
// grid point (spec §4.5 "Hull is the smallest axis-aligned box
// covering all inside grid points").
func (o *OrthogonalPolyhedron) Hull() (*box.Box, error) {
	lo := make([]float64, o.dim)
	hi := make([]float64, o.dim)
	for i := range lo {
		lo[i] = math.Inf(1)
		hi[i] = math.Inf(-1)
	}
	any := false
	for key, c := range o.Cells {
		if c != Inside {
			continue
		}
		any = true
		idx := decodeIndex(key)
		for i, v := range idx {
			coord := float64(v) * o.Step
			if coord < lo[i] {
				lo[i] = coord
			}
			if coord > hi[i] {
				hi[i] = coord
			}
		}
	}
	if !any {
		return box.Empty(o.dim), nil
	}
	return box.New(lo, hi)
}

func decodeIndex(key string) []int {
	parts := strings.Split(key, ",")
	idx := make([]int, len(parts))
	for i, p := range parts {
		v, _ := strconv.Atoi(p)
		idx[i] = v
	}
	return idx
}

// Support over-approximates via the bounding Hull's support function,
// since an orthogonal polyhedron is not in general convex (spec §4.5:
// "Hull is the smallest axis-aligned box covering all inside grid
// points" — the natural closed-form stand-in for a direct support
// query on a possibly-disconnected, non-convex colour map).
func (o *OrthogonalPolyhedron) Support(d matrix.Vector) (float64, matrix.Vector, geom.Status, error) {
	h, err := o.Hull()
	if err != nil {
		return 0, nil, geom.Infeasible, orthoErrorf("Support", err)
	}
	return h.Support(d)
}

// AffineImage supports only diagonal scaling plus translation: the
// lattice structure does not survive a general (non-axis-preserving)
// linear map. Non-diagonal M is rejected.
func (o *OrthogonalPolyhedron) AffineImage(m *matrix.Dense, b matrix.Vector) (geom.Set, error) {
	if m.Rows() != o.dim || m.Cols() != o.dim {
		return nil, orthoErrorf("AffineImage", ErrDimensionMismatch)
	}
	scale := make([]float64, o.dim)
	for i := 0; i < o.dim; i++ {
		for j := 0; j < o.dim; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, orthoErrorf("AffineImage", err)
			}
			if i == j {
				scale[i] = v
			} else if v != 0 {
				return nil, orthoErrorf("AffineImage", fmt.Errorf("%w: non-diagonal affine map not representable on a lattice", ErrNotSupported))
			}
		}
	}
	out := NewEmpty(o.dim, o.Step)
	for key, c := range o.Cells {
		if c != Inside {
			continue
		}
		idx := decodeIndex(key)
		real := o.realCoord(idx)
		newReal := make(matrix.Vector, o.dim)
		for i := range real {
			newReal[i] = real[i]*scale[i] + b[i]
		}
		newIdx := out.indexOf(newReal)
		if err := out.SetInside(newIdx); err != nil {
			return nil, orthoErrorf("AffineImage", err)
		}
	}
	return out, nil
}

// MinkowskiSum is deliberately unimplemented (spec §9 Open Question:
// unimplemented in the source, left as a future extension, not core).
func (o *OrthogonalPolyhedron) MinkowskiSum(other geom.Set) (geom.Set, error) {
	return nil, orthoErrorf("MinkowskiSum", ErrNotSupported)
}

// IntersectHalfspaces keeps an Inside cell only if its real coordinate
// also satisfies every half-space.
func (o *OrthogonalPolyhedron) IntersectHalfspaces(hs []geom.Halfspace) (geom.Set, error) {
	out := NewEmpty(o.dim, o.Step)
	for key, c := range o.Cells {
		if c != Inside {
			continue
		}
		idx := decodeIndex(key)
		real := o.realCoord(idx)
		ok := true
		for _, h := range hs {
			holds, err := h.Holds(real)
			if err != nil {
				return nil, orthoErrorf("IntersectHalfspaces", err)
			}
			if !holds {
				ok = false
				break
			}
		}
		if ok {
			out.Cells[key] = Inside
		}
	}
	return out, nil
}

// Intersect combines two polyhedra over the same grid step: a merged
// cell is Inside iff it is Inside in both operands (spec §4.5's
// "colour-dominance rule," resolved here as the logically consistent
// choice for intersection — see DESIGN.md).
func (o *OrthogonalPolyhedron) Intersect(other *OrthogonalPolyhedron) (*OrthogonalPolyhedron, error) {
	if other.dim != o.dim || other.Step != o.Step {
		return nil, orthoErrorf("Intersect", ErrStepMismatch)
	}
	out := NewEmpty(o.dim, o.Step)
	for key, c := range o.Cells {
		if c == Inside && other.colorAtKey(key) == Inside {
			out.Cells[key] = Inside
		}
	}
	return out, nil
}

// Union combines two polyhedra over the same grid step: a merged cell
// is Inside iff it is Inside in either operand.
func (o *OrthogonalPolyhedron) Union(other *OrthogonalPolyhedron) (*OrthogonalPolyhedron, error) {
	if other.dim != o.dim || other.Step != o.Step {
		return nil, orthoErrorf("Union", ErrStepMismatch)
	}
	out := NewEmpty(o.dim, o.Step)
	for key, c := range o.Cells {
		if c == Inside {
			out.Cells[key] = Inside
		}
	}
	for key, c := range other.Cells {
		if c == Inside {
			out.Cells[key] = Inside
		}
	}
	return out, nil
}

func (o *OrthogonalPolyhedron) colorAtKey(key string) Color {
	c, ok := o.Cells[key]
	if !ok {
		return Outside
	}
	return c
}

// Vertices returns the grid points qualifying as vertices: a point p
// is a vertex iff the 2^dim cells cornered at p do not all share the
// same colour (spec §4.5: "A grid point p is a vertex iff for each
// axis i the colours of p and its i-predecessor differ on some
// i-neighbour pair" — implemented here as the standard marching-cube
// corner-non-uniformity test, which is the natural generalisation of
// that per-axis predecessor-difference condition to n dimensions).
func (o *OrthogonalPolyhedron) Vertices() ([]geom.Point, error) {
	candidates := make(map[string]bool)
	for key, c := range o.Cells {
		if c != Inside {
			continue
		}
		idx := decodeIndex(key)
		for mask := 0; mask < (1 << uint(o.dim)); mask++ {
			corner := make([]int, o.dim)
			for i := range corner {
				corner[i] = idx[i]
				if mask&(1<<uint(i)) != 0 {
					corner[i]++
				}
			}
			candidates[encodeIndex(corner)] = true
		}
	}
	out := make([]geom.Point, 0, len(candidates))
	for key := range candidates {
		idx := decodeIndex(key)
		if o.isVertex(idx) {
			out = append(out, geom.Point(o.realCoord(idx)))
		}
	}
	sortPoints(out)
	return out, nil
}

// neighborhoodColors returns the colours of p's 2^dim corner-adjacent
// cells (the "i-predecessor/i-successor" set spec §4.5 refers to),
// computing and caching them on first query for this point.
func (o *OrthogonalPolyhedron) neighborhoodColors(p []int) []Color {
	key := encodeIndex(p)
	if cached, ok := o.neighborhood[key]; ok {
		return cached
	}
	colors := make([]Color, 1<<uint(o.dim))
	for mask := 0; mask < (1 << uint(o.dim)); mask++ {
		corner := make([]int, o.dim)
		for i := range corner {
			corner[i] = p[i]
			if mask&(1<<uint(i)) == 0 {
				corner[i]--
			}
		}
		colors[mask] = o.colorAt(corner)
	}
	if o.neighborhood == nil {
		o.neighborhood = make(map[string][]Color)
	}
	o.neighborhood[key] = colors
	return colors
}

func (o *OrthogonalPolyhedron) isVertex(p []int) bool {
	colors := o.neighborhoodColors(p)
	first := colors[0]
	for _, c := range colors[1:] {
		if c != first {
			return true
		}
	}
	return false
}

func sortPoints(pts []geom.Point) {
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0 && pts[j].Less(pts[j-1]); j-- {
			pts[j], pts[j-1] = pts[j-1], pts[j]
		}
	}
}
