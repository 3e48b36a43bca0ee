package geom

import "github.com/arkweave/hyreach/matrix"

// Status is the outcome of a directional query against a convex set,
// mirroring the optimiser's evaluate() status (spec §4.1).
type Status int

const (
	// Feasible means the direction has a finite supremum.
	Feasible Status = iota
	// Unbounded means the supremum in this direction is +Inf.
	Unbounded
	// Infeasible means the set is empty.
	Infeasible
)

func (s Status) String() string {
	switch s {
	case Feasible:
		return "feasible"
	case Unbounded:
		return "unbounded"
	case Infeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Set is the common capability every convex-set representation in this
// module implements (spec §9 "Polymorphism over representations"):
// emptiness, affine image, Minkowski sum, intersect-half-space,
// support-in-direction, contains-point, vertices. The reachability
// engine and the support-function tree's leaves are written against
// this interface; the concrete representations (box, hpolytope,
// vpolytope, zonotope, orthopoly) satisfy it. supportfn.Node does not:
// its Dim also returns an error and it offers Evaluate, not Support.
//
// IsEmpty, Contains and Support must never panic on a well-formed set;
// Dim mismatches across operands are reported as an error, per the
// "Invalid automaton ... is a programming error" carve-out in spec §7
// only applying to the automaton model, not set arithmetic.
type Set interface {
	// Dim returns the set's ambient dimension.
	Dim() int

	// IsEmpty reports whether the set has no points.
	IsEmpty() (bool, error)

	// Contains reports whether x lies in the set.
	Contains(x matrix.Vector) (bool, error)

	// Support evaluates the set's support function in direction d:
	// sup { d.x | x in set }.
	Support(d matrix.Vector) (value float64, argmax matrix.Vector, status Status, err error)

	// AffineImage returns {M*x + b | x in set}.
	AffineImage(m *matrix.Dense, b matrix.Vector) (Set, error)

	// MinkowskiSum returns {x + y | x in set, y in other}.
	MinkowskiSum(other Set) (Set, error)

	// IntersectHalfspaces returns set intersected with every given
	// half-space.
	IntersectHalfspaces(hs []Halfspace) (Set, error)

	// Vertices returns the set's extreme points. Representations for
	// which vertex enumeration is not a native operation convert
	// through H-polytope first (spec §4.7).
	Vertices() ([]Point, error)
}
