package vertexenum

import (
	"fmt"
	"math"

	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/matrix"
)

const tol = 1e-9

func enumErrorf(tag string, err error) error {
	return fmt.Errorf("vertexenum.%s: %w", tag, err)
}

// Enumerate returns the extreme points and a generating set of
// recession-cone rays for the polyhedron {x | hs[i].Normal . x <=
// hs[i].Offset for all i} (spec §4.3). Points are returned in
// lexicographic order (geom.Point.Less) for determinism.
func Enumerate(dim int, hs []geom.Halfspace) ([]geom.Point, []matrix.Vector, error) {
	if len(hs) < dim {
		return nil, nil, nil
	}

	verts := make([]geom.Point, 0)
	seen := func(p geom.Point) bool {
		for _, v := range verts {
			if approxEqual(v, p) {
				return true
			}
		}
		return false
	}

	combo := make([]int, dim)
	var walk func(start, slot int) error
	walk = func(start, slot int) error {
		if slot == dim {
			candidate, ok, err := solveTight(dim, hs, combo)
			if err != nil {
				return err
			}
			if ok && !seen(candidate) {
				verts = append(verts, candidate)
			}
			return nil
		}
		for i := start; i < len(hs); i++ {
			combo[slot] = i
			if err := walk(i+1, slot+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(0, 0); err != nil {
		return nil, nil, enumErrorf("Enumerate", err)
	}

	rays := make([]matrix.Vector, 0)
	if dim >= 1 {
		rayCombo := make([]int, dim-1)
		var walkRays func(start, slot int) error
		walkRays = func(start, slot int) error {
			if slot == dim-1 {
				d, ok, err := solveRay(dim, hs, rayCombo)
				if err != nil {
					return err
				}
				if ok && !rayAlreadyFound(rays, d) {
					rays = append(rays, d)
				}
				return nil
			}
			for i := start; i < len(hs); i++ {
				rayCombo[slot] = i
				if err := walkRays(i+1, slot+1); err != nil {
					return err
				}
			}
			return nil
		}
		if dim >= 2 || len(hs) > 0 {
			if err := walkRays(0, 0); err != nil {
				return nil, nil, enumErrorf("Enumerate", err)
			}
		}
	}

	sortPoints(verts)
	return verts, rays, nil
}

func approxEqual(a, b geom.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-6 {
			return false
		}
	}
	return true
}

func sortPoints(pts []geom.Point) {
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0 && pts[j].Less(pts[j-1]); j-- {
			pts[j], pts[j-1] = pts[j-1], pts[j]
		}
	}
}

// solveTight solves the dim x dim linear system formed by treating the
// chosen half-spaces as equalities (Normal . x == Offset), then checks
// the result against every half-space. A singular system (the chosen
// normals aren't linearly independent) is reported as !ok, not an error.
func solveTight(dim int, hs []geom.Halfspace, idx []int) (geom.Point, bool, error) {
	a, err := matrix.NewDense(dim, dim)
	if err != nil {
		return nil, false, err
	}
	b := make(matrix.Vector, dim)
	for r, i := range idx {
		for c, v := range hs[i].Normal {
			if err := a.Set(r, c, v); err != nil {
				return nil, false, err
			}
		}
		b[r] = hs[i].Offset
	}
	x, ok, err := solveSquare(a, b)
	if err != nil || !ok {
		return nil, false, err
	}
	for _, h := range hs {
		holds, err := h.Holds(x)
		if err != nil {
			return nil, false, err
		}
		if !holds {
			return nil, false, nil
		}
	}
	return geom.Point(x), true, nil
}

// solveRay finds the (up to scale) null-space direction orthogonal to
// dim-1 chosen normals via cofactor expansion, then keeps it, or its
// negation, only if it lies in the recession cone (Normal . d <= 0 for
// every half-space) and is not the zero vector — i.e. it is a genuine
// unbounded direction of the feasible region.
func solveRay(dim int, hs []geom.Halfspace, idx []int) (matrix.Vector, bool, error) {
	rows := make([]matrix.Vector, len(idx))
	for i, ix := range idx {
		rows[i] = hs[ix].Normal
	}
	d, err := cofactorNull(dim, rows)
	if err != nil {
		return nil, false, err
	}
	norm := matrix.Vector(d).InfNorm()
	if norm < tol {
		return nil, false, nil
	}
	d = matrix.Vector(d).Scale(1 / norm)
	for _, cand := range []matrix.Vector{d, d.Scale(-1)} {
		inCone := true
		for _, h := range hs {
			dot, err := h.Normal.Dot(cand)
			if err != nil {
				return nil, false, err
			}
			if dot > tol {
				inCone = false
				break
			}
		}
		if inCone {
			return cand, true, nil
		}
	}
	return nil, false, nil
}

func rayAlreadyFound(rays []matrix.Vector, d matrix.Vector) bool {
	for _, r := range rays {
		same := true
		opp := true
		for i := range d {
			if math.Abs(r[i]-d[i]) > 1e-6 {
				same = false
			}
			if math.Abs(r[i]+d[i]) > 1e-6 {
				opp = false
			}
		}
		if same || opp {
			return true
		}
	}
	return false
}

// solveSquare solves a*x = b for square a via LU-based forward/backward
// substitution, reusing matrix.Inverse; returns ok=false (not an error)
// when a is singular, matching the spec's "degenerate linear system ...
// skipping that candidate" failure semantics (§7).
func solveSquare(a *matrix.Dense, b matrix.Vector) (matrix.Vector, bool, error) {
	inv, err := matrix.Inverse(a)
	if err != nil {
		return nil, false, nil // singular: not a hard error, just no candidate
	}
	x, err := matrix.MatVec(inv, b)
	if err != nil {
		return nil, false, err
	}
	return matrix.Vector(x), true, nil
}

// NullVector exposes cofactorNull for callers outside this package that
// need the same generalized-cross-product construction — e.g. the
// convert package's facet enumeration for V-to-H conversion, which
// needs the hyperplane normal orthogonal to dim-1 edge vectors through
// a candidate facet's points, exactly the same computation this
// package uses for recession-cone rays.
func NullVector(dim int, rows []matrix.Vector) (matrix.Vector, error) {
	return cofactorNull(dim, rows)
}

// cofactorNull returns the vector d with d[j] = (-1)^j * det(rows with
// column j removed), the standard generalization of the 3D cross
// product: d is orthogonal to every vector in rows whenever rows has
// exactly dim-1 linearly independent rows in R^dim.
func cofactorNull(dim int, rows []matrix.Vector) (matrix.Vector, error) {
	d := make(matrix.Vector, dim)
	for j := 0; j < dim; j++ {
		var minor *matrix.Dense
		if dim > 1 {
			var err error
			minor, err = matrix.NewDense(dim-1, dim-1)
			if err != nil {
				return nil, err
			}
			for r, row := range rows {
				c := 0
				for k := 0; k < dim; k++ {
					if k == j {
						continue
					}
					if err := minor.Set(r, c, row[k]); err != nil {
						return nil, err
					}
					c++
				}
			}
		}
		// dim == 1: the "minor" is the 0x0 determinant, which
		// determinant() defines as 1 — matrix.NewDense rejects a 0x0
		// request, so that degenerate case is handled directly here
		// instead of round-tripping through an allocated matrix.
		det, err := determinant(minor)
		if err != nil {
			return nil, err
		}
		sign := 1.0
		if j%2 == 1 {
			sign = -1
		}
		d[j] = sign * det
	}
	return d, nil
}

// determinant computes det(m) as the product of U's diagonal from
// matrix.LU's Doolittle (no-pivoting) decomposition. A singular input
// yields a zero or near-zero product, which cofactorNull's callers
// treat as "no null space direction from this combination."
func determinant(m *matrix.Dense) (float64, error) {
	if m == nil || m.Rows() == 0 {
		return 1, nil
	}
	_, u, err := matrix.LU(m)
	if err != nil {
		return 0, nil // singular: zero determinant, not an error
	}
	det := 1.0
	for i := 0; i < u.Rows(); i++ {
		v, err := u.At(i, i)
		if err != nil {
			return 0, err
		}
		det *= v
	}
	return det, nil
}
