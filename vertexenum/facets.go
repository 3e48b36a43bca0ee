package vertexenum

import (
	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/matrix"
)

// FacetsFromPoints reconstructs the facet half-spaces of the convex
// hull of pts: for every combination of dim affinely-spanning points,
// the hyperplane through them is computed via the same cofactor-
// expansion null-space construction used for recession-cone rays
// (NullVector), oriented outward by checking every other point lies on
// its inner side. Shared by the V-to-H conversion (spec §4.7) and
// H-polytope's vertex-based affine image (spec §4.2), both of which
// need the exact facet reconstruction of a mapped point set rather
// than its bounding box.
//
// Callers with fewer than dim+1 points (a lower-dimensional or
// single-point source) must handle that degenerate case themselves;
// this function assumes a full-dimensional point set.
func FacetsFromPoints(dim int, pts []geom.Point) ([]geom.Halfspace, error) {
	facets := make([]geom.Halfspace, 0)
	combo := make([]int, dim)
	var walk func(start, slot int) error
	walk = func(start, slot int) error {
		if slot == dim {
			h, ok, err := facetFromCombo(dim, pts, combo)
			if err != nil {
				return err
			}
			if ok && !containsEquivalentHalfspace(facets, h) {
				facets = append(facets, h)
			}
			return nil
		}
		for i := start; i < len(pts); i++ {
			combo[slot] = i
			if err := walk(i+1, slot+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(0, 0); err != nil {
		return nil, enumErrorf("FacetsFromPoints", err)
	}
	return facets, nil
}

func facetFromCombo(dim int, pts []geom.Point, idx []int) (geom.Halfspace, bool, error) {
	base := matrix.Vector(pts[idx[0]])
	rows := make([]matrix.Vector, dim-1)
	for i := 1; i < dim; i++ {
		diff, err := matrix.Vector(pts[idx[i]]).Sub(base)
		if err != nil {
			return geom.Halfspace{}, false, err
		}
		rows[i-1] = diff
	}
	normal, err := cofactorNull(dim, rows)
	if err != nil {
		return geom.Halfspace{}, false, err
	}
	if normal.InfNorm() < 1e-9 {
		return geom.Halfspace{}, false, nil
	}
	offset, err := normal.Dot(base)
	if err != nil {
		return geom.Halfspace{}, false, err
	}

	const tol = 1e-7
	sawPositive, sawNegative := false, false
	for _, p := range pts {
		val, err := normal.Dot(matrix.Vector(p))
		if err != nil {
			return geom.Halfspace{}, false, err
		}
		d := val - offset
		if d > tol {
			sawPositive = true
		} else if d < -tol {
			sawNegative = true
		}
	}
	if sawPositive && sawNegative {
		return geom.Halfspace{}, false, nil // not a supporting hyperplane
	}
	if sawPositive {
		normal = normal.Scale(-1)
		offset = -offset
	}
	h, err := geom.NewHalfspace(normal, offset)
	if err != nil {
		return geom.Halfspace{}, false, err
	}
	return h, true, nil
}

func containsEquivalentHalfspace(hs []geom.Halfspace, h geom.Halfspace) bool {
	for _, existing := range hs {
		if existing.Equal(h) {
			return true
		}
	}
	return false
}
