package optimizer

import "errors"

// ErrDimensionMismatch indicates A's column count does not match the
// direction or point vector's length.
var ErrDimensionMismatch = errors.New("optimizer: dimension mismatch")

// ErrNoConstraints names the zero-row case. No function in this package
// returns it: NewProblem accepts a zero-row A, and the Solver treats the
// feasible set of such a Problem as all of R^n.
var ErrNoConstraints = errors.New("optimizer: problem has no constraints")
