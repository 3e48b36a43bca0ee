package supportfn

import (
	"math"

	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/hpolytope"
	"github.com/arkweave/hyreach/matrix"
)

// TemplateDirections returns count uniformly sampled unit vectors in
// 2D, lifted to higher dimensions by axis permutation over every
// coordinate pair (spec §4.6: "a uniformly sampled set of unit vectors
// in 2D, lifted to higher dimensions by axis permutation"). For dim ==
// 1 it returns the two signed unit vectors; for dim <= 0 it returns nil.
func TemplateDirections(dim int, count int) []matrix.Vector {
	if dim <= 0 {
		return nil
	}
	if dim == 1 {
		return []matrix.Vector{{1}, {-1}}
	}
	dirs := make([]matrix.Vector, 0, count*dim*(dim-1)/2)
	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			for k := 0; k < count; k++ {
				theta := 2 * math.Pi * float64(k) / float64(count)
				d := make(matrix.Vector, dim)
				d[i] = math.Cos(theta)
				d[j] = math.Sin(theta)
				dirs = append(dirs, d)
			}
		}
	}
	return dirs
}

// ToHPolytope evaluates n on templateDirs and assembles the resulting
// half-spaces into an H-polytope (spec §4.6 "Conversion back to a
// concrete set is by evaluating on a template of directions ...
// assembling an H-polytope from the resulting half-spaces"). Unbounded
// or infeasible directions are skipped, matching spec §7's "callers
// that needed a bound ... return their input unchanged" guidance
// generalised to "omit that facet."
func ToHPolytope(n *Node, templateDirs []matrix.Vector) (*hpolytope.HPolytope, error) {
	dim, err := n.Dim()
	if err != nil {
		return nil, sfErrorf("ToHPolytope", err)
	}
	hs := make([]geom.Halfspace, 0, len(templateDirs))
	for _, d := range templateDirs {
		value, _, status, err := n.Evaluate(d)
		if err != nil {
			return nil, sfErrorf("ToHPolytope", err)
		}
		if status != geom.Feasible {
			continue
		}
		h, err := geom.NewHalfspace(d, value)
		if err != nil {
			return nil, sfErrorf("ToHPolytope", err)
		}
		hs = append(hs, h)
	}
	return hpolytope.New(dim, hs)
}
