package reach

import (
	"fmt"

	"github.com/arkweave/hyreach/convert"
	"github.com/arkweave/hyreach/hpolytope"
	"github.com/arkweave/hyreach/supportfn"
)

// convertSegment converts an internally-computed H-polytope segment
// into the Config's output Representation (doc.go's "internal
// arithmetic is always H-polytope; Representation controls only the
// returned type").
func convertSegment(seg *hpolytope.HPolytope, rep Representation) (interface{}, error) {
	switch rep {
	case RepHPolytope:
		return seg, nil
	case RepBox:
		b, _, err := convert.HPolytopeToBox(seg)
		return b, err
	case RepVPolytope:
		return convert.HPolytopeToVPolytope(seg)
	case RepZonotope:
		return convert.ToZonotope(seg)
	case RepSupportFunction:
		return convert.ToSupportFunction(seg), nil
	default:
		return nil, fmt.Errorf("reach.convertSegment: %w: %v", ErrUnknownRepresentation, rep)
	}
}

// simplify applies cfg.SimplificationStrategy to seg (spec §4.2's
// reduction strategies, applied after each flowpipe segment per spec
// §6's "simplification.strategy"). The reduced output always contains
// the input (spec §9's "reduced output >= input" resolution — see
// DESIGN.md).
func (e *engine) simplify(seg *hpolytope.HPolytope) (*hpolytope.HPolytope, error) {
	switch e.cfg.SimplificationStrategy {
	case SimplifyNone:
		return seg, nil
	case SimplifyReduceRedundant:
		return seg.ReduceRedundant()
	case SimplifyTemplate:
		leaf := supportfn.NewLeaf(seg)
		dirs := supportfn.TemplateDirections(seg.Dim(), e.cfg.SimplificationDirections)
		return supportfn.ToHPolytope(leaf, dirs)
	default:
		return seg, nil
	}
}
