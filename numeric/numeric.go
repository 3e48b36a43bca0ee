// Package numeric holds the handful of generic ordered-field helpers
// shared across the geometry packages (bounding-box min/max tracking),
// kept separate from scalar's field abstraction since these operate on
// plain ordered types rather than the Scalar interface.
package numeric

import "golang.org/x/exp/constraints"

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
