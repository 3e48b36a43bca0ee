package geom

import (
	"errors"
	"fmt"

	"github.com/arkweave/hyreach/matrix"
)

// ErrDimensionMismatch indicates two geom values of differing dimension
// were combined (e.g. Point.Add against a Point of different length).
var ErrDimensionMismatch = errors.New("geom: dimension mismatch")

// Point is an n-vector of scalars (spec §3 "Point(n)"). Equality is
// exact; Less gives the lexicographic order used throughout the
// convex-set packages for deterministic tie-breaking (vertex lists,
// orthogonal-polyhedron grid cells, template-direction sampling).
type Point matrix.Vector

// NewPoint copies coords into a new Point.
func NewPoint(coords ...float64) Point {
	p := make(Point, len(coords))
	copy(p, coords)
	return p
}

// Dim returns the number of coordinates.
func (p Point) Dim() int { return len(p) }

// Equal reports whether p and q have identical coordinates. Points of
// differing dimension are never equal.
func (p Point) Equal(q Point) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Less gives the lexicographic order: compare coordinate 0, then 1, ...
// Points of differing dimension compare shorter-is-less, mirroring
// matrix.Vector.Less.
func (p Point) Less(q Point) bool {
	return matrix.Vector(p).Less(matrix.Vector(q))
}

// Add returns p + q coordinate-wise.
func (p Point) Add(q Point) (Point, error) {
	v, err := matrix.Vector(p).Add(matrix.Vector(q))
	if err != nil {
		return nil, fmt.Errorf("geom.Point.Add: %w", ErrDimensionMismatch)
	}
	return Point(v), nil
}

// Sub returns p - q coordinate-wise.
func (p Point) Sub(q Point) (Point, error) {
	v, err := matrix.Vector(p).Sub(matrix.Vector(q))
	if err != nil {
		return nil, fmt.Errorf("geom.Point.Sub: %w", ErrDimensionMismatch)
	}
	return Point(v), nil
}

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point {
	return Point(matrix.Vector(p).Scale(k))
}

// Dot returns the inner product of p and q.
func (p Point) Dot(q Point) (float64, error) {
	v, err := matrix.Vector(p).Dot(matrix.Vector(q))
	if err != nil {
		return 0, fmt.Errorf("geom.Point.Dot: %w", ErrDimensionMismatch)
	}
	return v, nil
}

// Clone returns an independent copy of p.
func (p Point) Clone() Point { return Point(matrix.Vector(p).Clone()) }

// AffineCombination returns sum(weights[i]*points[i]).
func AffineCombination(points []Point, weights []float64) (Point, error) {
	vecs := make([]matrix.Vector, len(points))
	for i, p := range points {
		vecs[i] = matrix.Vector(p)
	}
	v, err := matrix.AffineCombination(vecs, weights)
	if err != nil {
		return nil, fmt.Errorf("geom.AffineCombination: %w", err)
	}
	return Point(v), nil
}
