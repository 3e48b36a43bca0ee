package reach

import (
	"github.com/arkweave/hyreach/convert"
	"github.com/arkweave/hyreach/geom"
	"github.com/arkweave/hyreach/hpolytope"
	"github.com/arkweave/hyreach/vpolytope"
)

// convexHullOfSets returns the H-polytope that is the convex hull of
// every given set's vertices — the "convex hull of X0' and Phi*X0'"
// of spec §4.8 step 4, and the "convex hull in R" used to build a
// target location's entry set from collected transition-enabling
// points.
func convexHullOfSets(sets ...geom.Set) (*hpolytope.HPolytope, error) {
	if len(sets) == 0 {
		return hpolytope.New(0, nil)
	}
	dim := sets[0].Dim()
	var pts []geom.Point
	for _, s := range sets {
		v, err := s.Vertices()
		if err != nil {
			return nil, err
		}
		pts = append(pts, v...)
	}
	vp, err := vpolytope.New(dim, pts)
	if err != nil {
		return nil, err
	}
	reduced, err := vp.ReduceRedundancy()
	if err != nil {
		return nil, err
	}
	return convert.VPolytopeToHPolytope(reduced)
}

// convexHullOfHPolytopes adapts convexHullOfSets to a slice of
// concrete *hpolytope.HPolytope, the common case inside the engine.
func convexHullOfHPolytopes(hs []*hpolytope.HPolytope) (*hpolytope.HPolytope, error) {
	sets := make([]geom.Set, len(hs))
	for i, h := range hs {
		sets[i] = h
	}
	return convexHullOfSets(sets...)
}
