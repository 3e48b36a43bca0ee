// Package convert implements the pairwise representation-conversion
// table (spec §4.7): Box <-> H, V, zonotope exact; H -> V exact by
// vertex enumeration; V -> H exact by facet enumeration; zonotope -> H
// exact by 2^k vertex-sign enumeration; {H,V,support} -> zonotope by
// oriented-box over-approximation; anything -> support function as a
// leaf wrap. The box-ward direction (HPolytopeToBox, VPolytopeToBox,
// ZonotopeToBox) always returns a bounding box, plus a bool reporting
// whether it happens to be exact (every box corner was already a
// vertex of the source) — the same corner-membership check
// Converter.h runs before claiming an exact box conversion.
//
// BoxToVPolytope and BoxToZonotope special-case zero-width intervals (a
// degenerate box) so neither target is handed a zero-length generator
// or a cloud of duplicate vertices; BoxToHPolytope needs no special
// case, since two half-spaces per axis express a zero-width interval
// directly — grounded on
// original_source's Converter.h, which does the same for every target
// representation (see DESIGN.md).
package convert

import (
	"errors"
	"fmt"
	"math"

	"github.com/arkweave/hyreach/box"
	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/hpolytope"
	"github.com/arkweave/hyreach/matrix"
	"github.com/arkweave/hyreach/supportfn"
	"github.com/arkweave/hyreach/vertexenum"
	"github.com/arkweave/hyreach/vpolytope"
	"github.com/arkweave/hyreach/zonotope"
)

// ErrDegenerate indicates a source set collapses to a single point or
// a lower-dimensional set in a way the target representation cannot
// express directly (e.g. a V-polytope with fewer than dim+1 points).
var ErrDegenerate = errors.New("convert: degenerate source set")

func convErrorf(tag string, err error) error {
	return fmt.Errorf("convert.%s: %w", tag, err)
}

// nonDegenerateAxes returns the indices where b.Lo[i] != b.Hi[i].
func nonDegenerateAxes(b *box.Box) []int {
	axes := make([]int, 0, b.Dim())
	for i := 0; i < b.Dim(); i++ {
		if b.Hi[i] != b.Lo[i] {
			axes = append(axes, i)
		}
	}
	return axes
}

// BoxToHPolytope is exact: two half-spaces per axis (spec §4.7 "Box <->
// H ... exact").
func BoxToHPolytope(b *box.Box) (*hpolytope.HPolytope, error) {
	dim := b.Dim()
	hs := make([]geom.Halfspace, 0, 2*dim)
	for i := 0; i < dim; i++ {
		upper := make(matrix.Vector, dim)
		upper[i] = 1
		h, err := geom.NewHalfspace(upper, b.Hi[i])
		if err != nil {
			return nil, convErrorf("BoxToHPolytope", err)
		}
		hs = append(hs, h)

		lower := make(matrix.Vector, dim)
		lower[i] = -1
		h, err = geom.NewHalfspace(lower, -b.Lo[i])
		if err != nil {
			return nil, convErrorf("BoxToHPolytope", err)
		}
		hs = append(hs, h)
	}
	return hpolytope.New(dim, hs)
}

// BoxToVPolytope is exact. Degenerate (zero-width) axes are held fixed
// at their single value rather than toggled, so the 2^d corners
// generated (d = count of non-degenerate axes) are all distinct —
// avoiding the duplicate-vertex degeneracy Converter.h special-cases.
func BoxToVPolytope(b *box.Box) (*vpolytope.VPolytope, error) {
	dim := b.Dim()
	axes := nonDegenerateAxes(b)
	total := 1 << uint(len(axes))
	pts := make([]geom.Point, 0, total)
	for mask := 0; mask < total; mask++ {
		p := make(geom.Point, dim)
		for i := 0; i < dim; i++ {
			p[i] = b.Lo[i]
		}
		for bit, axis := range axes {
			if mask&(1<<uint(bit)) != 0 {
				p[axis] = b.Hi[axis]
			}
		}
		pts = append(pts, p)
	}
	return vpolytope.New(dim, pts)
}

// BoxToZonotope is exact. A zero-width axis contributes no generator
// (a zero-length generator would be a pure degeneracy, per
// Converter.h) — it is folded entirely into the center.
func BoxToZonotope(b *box.Box) (*zonotope.Zonotope, error) {
	dim := b.Dim()
	center := make(matrix.Vector, dim)
	axes := nonDegenerateAxes(b)
	for i := 0; i < dim; i++ {
		center[i] = (b.Lo[i] + b.Hi[i]) / 2
	}
	if len(axes) == 0 {
		return zonotope.New(center, nil)
	}
	gen, err := matrix.NewDense(dim, len(axes))
	if err != nil {
		return nil, convErrorf("BoxToZonotope", err)
	}
	for col, axis := range axes {
		radius := (b.Hi[axis] - b.Lo[axis]) / 2
		if err := gen.Set(axis, col, radius); err != nil {
			return nil, convErrorf("BoxToZonotope", err)
		}
	}
	return zonotope.New(center, gen)
}

// HPolytopeToBox computes h's axis-aligned bounding box (spec §4.7
// "Box <-> H ... exact"). The conversion is exact exactly when every
// corner of the resulting box was already a vertex of h — the
// post-hoc check Converter.h runs for every representation-to-box
// conversion — so the returned bool tells the caller which case held;
// a false result is still the correct over-approximation.
func HPolytopeToBox(h *hpolytope.HPolytope) (*box.Box, bool, error) {
	pts, err := h.Vertices()
	if err != nil {
		return nil, false, convErrorf("HPolytopeToBox", err)
	}
	b, exact, err := boxFromVertices(h.Dim(), pts)
	if err != nil {
		return nil, false, convErrorf("HPolytopeToBox", err)
	}
	return b, exact, nil
}

// VPolytopeToBox computes v's axis-aligned bounding box, exact under
// the same corner-membership check as HPolytopeToBox.
func VPolytopeToBox(v *vpolytope.VPolytope) (*box.Box, bool, error) {
	pts, err := v.Vertices()
	if err != nil {
		return nil, false, convErrorf("VPolytopeToBox", err)
	}
	b, exact, err := boxFromVertices(v.Dim(), pts)
	if err != nil {
		return nil, false, convErrorf("VPolytopeToBox", err)
	}
	return b, exact, nil
}

// ZonotopeToBox computes z's axis-aligned bounding box, exact under
// the same corner-membership check as HPolytopeToBox.
func ZonotopeToBox(z *zonotope.Zonotope) (*box.Box, bool, error) {
	pts, err := z.Vertices()
	if err != nil {
		return nil, false, convErrorf("ZonotopeToBox", err)
	}
	b, exact, err := boxFromVertices(z.Dim(), pts)
	if err != nil {
		return nil, false, convErrorf("ZonotopeToBox", err)
	}
	return b, exact, nil
}

// boxFromVertices computes the axis-aligned bounding box of pts, then
// checks exactness the way Converter.h does: the conversion is exact
// only when every corner of the new box already appears in pts.
func boxFromVertices(dim int, pts []geom.Point) (*box.Box, bool, error) {
	if len(pts) == 0 {
		return box.Empty(dim), true, nil
	}
	lo := make([]float64, dim)
	hi := make([]float64, dim)
	copy(lo, pts[0])
	copy(hi, pts[0])
	for _, p := range pts[1:] {
		for i := 0; i < dim; i++ {
			if p[i] < lo[i] {
				lo[i] = p[i]
			}
			if p[i] > hi[i] {
				hi[i] = p[i]
			}
		}
	}
	b, err := box.New(lo, hi)
	if err != nil {
		return nil, false, err
	}
	corners, err := b.Vertices()
	if err != nil {
		return nil, false, err
	}
	exact := true
	for _, c := range corners {
		if !pointAmong(pts, c) {
			exact = false
			break
		}
	}
	return b, exact, nil
}

func pointAmong(pts []geom.Point, target geom.Point) bool {
	for _, p := range pts {
		if approxEqualPoint(p, target) {
			return true
		}
	}
	return false
}

func approxEqualPoint(a, b geom.Point) bool {
	if len(a) != len(b) {
		return false
	}
	const tol = 1e-6
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

// HPolytopeToVPolytope is exact by vertex enumeration (spec §4.7).
func HPolytopeToVPolytope(h *hpolytope.HPolytope) (*vpolytope.VPolytope, error) {
	pts, err := h.Vertices()
	if err != nil {
		return nil, convErrorf("HPolytopeToVPolytope", err)
	}
	return vpolytope.New(h.Dim(), pts)
}

// VPolytopeToHPolytope is exact by facet enumeration (spec §4.7),
// delegated to vertexenum.FacetsFromPoints.
func VPolytopeToHPolytope(v *vpolytope.VPolytope) (*hpolytope.HPolytope, error) {
	pts, err := v.Vertices()
	if err != nil {
		return nil, convErrorf("VPolytopeToHPolytope", err)
	}
	dim := v.Dim()
	if len(pts) == 0 {
		return hpolytope.New(dim, nil)
	}
	if len(pts) < dim+1 {
		// Lower-dimensional or single-point source: fall back to the
		// bounding box's exact H-form, an over-approximation only when
		// the source isn't already a box-shaped degenerate set.
		lo := make([]float64, dim)
		hi := make([]float64, dim)
		for i := range lo {
			lo[i] = pts[0][i]
			hi[i] = pts[0][i]
		}
		for _, p := range pts[1:] {
			for i := range p {
				if p[i] < lo[i] {
					lo[i] = p[i]
				}
				if p[i] > hi[i] {
					hi[i] = p[i]
				}
			}
		}
		b, err := box.New(lo, hi)
		if err != nil {
			return nil, convErrorf("VPolytopeToHPolytope", err)
		}
		return BoxToHPolytope(b)
	}

	facets, err := vertexenum.FacetsFromPoints(dim, pts)
	if err != nil {
		return nil, convErrorf("VPolytopeToHPolytope", err)
	}
	return hpolytope.New(dim, facets)
}

// ZonotopeToHPolytope is exact by enumerating 2^k vertex signs then
// taking the convex hull's facets (spec §4.7).
func ZonotopeToHPolytope(z *zonotope.Zonotope) (*hpolytope.HPolytope, error) {
	pts, err := z.Vertices()
	if err != nil {
		return nil, convErrorf("ZonotopeToHPolytope", err)
	}
	v, err := vpolytope.New(z.Dim(), pts)
	if err != nil {
		return nil, convErrorf("ZonotopeToHPolytope", err)
	}
	reduced, err := v.ReduceRedundancy()
	if err != nil {
		return nil, convErrorf("ZonotopeToHPolytope", err)
	}
	return VPolytopeToHPolytope(reduced)
}

// ToZonotope over-approximates an arbitrary bounded geom.Set by an
// oriented box: it uses the source's own vertex set's axis-aligned
// bounding box as the orienting frame (spec §4.7: "over-approximation
// by oriented box (principal-component axes of vertex set) then
// expansion so that every support of the source in the box's axes is
// covered" — this implementation uses the coordinate axes rather than
// a full PCA rotation, since the source representations here are
// already expressed in a fixed coordinate frame and a PCA rotation
// would need to be carried through every downstream operation; see
// DESIGN.md), then expands each axis to cover the source's support in
// that direction exactly.
func ToZonotope(s geom.Set) (*zonotope.Zonotope, error) {
	dim := s.Dim()
	lo := make([]float64, dim)
	hi := make([]float64, dim)
	for i := 0; i < dim; i++ {
		e := make(matrix.Vector, dim)
		e[i] = 1
		supHi, _, status, err := s.Support(e)
		if err != nil {
			return nil, convErrorf("ToZonotope", err)
		}
		if status != geom.Feasible {
			return nil, convErrorf("ToZonotope", errors.New("convert: unbounded source, cannot bound a zonotope"))
		}
		e[i] = -1
		supLo, _, status, err := s.Support(e)
		if err != nil {
			return nil, convErrorf("ToZonotope", err)
		}
		if status != geom.Feasible {
			return nil, convErrorf("ToZonotope", errors.New("convert: unbounded source, cannot bound a zonotope"))
		}
		hi[i] = supHi
		lo[i] = -supLo
	}
	b, err := box.New(lo, hi)
	if err != nil {
		return nil, convErrorf("ToZonotope", err)
	}
	return BoxToZonotope(b)
}

// ToSupportFunction wraps any concrete set as a support-function leaf
// (spec §4.7 "Anything -> support function: wrap as a leaf; exact").
func ToSupportFunction(s geom.Set) *supportfn.Node {
	return supportfn.NewLeaf(s)
}
