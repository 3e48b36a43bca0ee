package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/arkweave/hyreach/matrix"
)

// ErrZeroNormal is returned when a Halfspace is constructed with a
// zero normal vector, which spec §3 declares invalid ("normal != 0").
var ErrZeroNormal = errors.New("geom: half-space normal must be non-zero")

// Halfspace is the pair (Normal, Offset) representing
// {x | Normal . x <= Offset} (spec §3 "Half-space(n)").
type Halfspace struct {
	Normal matrix.Vector
	Offset float64
}

// NewHalfspace validates Normal != 0 and returns the half-space
// {x | normal.x <= offset}.
func NewHalfspace(normal matrix.Vector, offset float64) (Halfspace, error) {
	zero := true
	for _, c := range normal {
		if c != 0 {
			zero = false
			break
		}
	}
	if zero {
		return Halfspace{}, fmt.Errorf("geom.NewHalfspace: %w", ErrZeroNormal)
	}
	return Halfspace{Normal: normal.Clone(), Offset: offset}, nil
}

// Dim returns the half-space's ambient dimension.
func (h Halfspace) Dim() int { return len(h.Normal) }

// Holds reports whether point x satisfies Normal.x <= Offset.
func (h Halfspace) Holds(x matrix.Vector) (bool, error) {
	d, err := h.Normal.Dot(x)
	if err != nil {
		return false, fmt.Errorf("geom.Halfspace.Holds: %w", err)
	}
	return d <= h.Offset, nil
}

// normalized returns (Normal, Offset) scaled so the normal has unit
// infinity-norm and a canonical sign (first non-zero coordinate
// positive), used by Equal to compare half-spaces "after normalising
// sign" per spec §3.
func (h Halfspace) normalized() (matrix.Vector, float64) {
	norm := h.Normal.InfNorm()
	if norm == 0 {
		return h.Normal, h.Offset
	}
	sign := 1.0
	for _, c := range h.Normal {
		if c != 0 {
			if c < 0 {
				sign = -1
			}
			break
		}
	}
	scale := sign / norm
	n := h.Normal.Scale(scale)
	return n, h.Offset * scale
}

// Equal reports whether h and g represent the same half-space, i.e.
// their (normal, offset) pairs agree after normalising sign and scale.
func (h Halfspace) Equal(g Halfspace) bool {
	if h.Dim() != g.Dim() {
		return false
	}
	hn, ho := h.normalized()
	gn, go_ := g.normalized()
	const eps = 1e-9
	if math.Abs(ho-go_) > eps {
		return false
	}
	for i := range hn {
		if math.Abs(hn[i]-gn[i]) > eps {
			return false
		}
	}
	return true
}

// AffineMap is the pair (M, b) of a reset or affine-image operation:
// x -> M*x + b (spec §3 "Transition(n) ... reset (affine map x -> Mx+b)").
type AffineMap struct {
	M *matrix.Dense
	B matrix.Vector
}

// Apply returns M*x + b.
func (f AffineMap) Apply(x matrix.Vector) (matrix.Vector, error) {
	y, err := matrix.MatVec(f.M, x)
	if err != nil {
		return nil, fmt.Errorf("geom.AffineMap.Apply: %w", err)
	}
	out, err := matrix.Vector(y).Add(f.B)
	if err != nil {
		return nil, fmt.Errorf("geom.AffineMap.Apply: %w", err)
	}
	return out, nil
}
