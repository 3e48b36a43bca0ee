// Package scalar provides the ordered-field abstraction the engine is
// parameterised over: machine float64 for speed and exact big.Rat for
// correctness-critical comparisons (spec §3 "Scalar"). The geometry and
// reachability packages in this module are written directly against
// float64 for the common path; the optimizer package additionally
// re-verifies a float64 result against scalar.Rational
// (Solver.EvaluateExact checks the constraints exactly and does not
// re-solve), which is the one place the
// parametrisation is load-bearing.
package scalar

import (
	"errors"
	"fmt"
)

// ErrDivideByZero is returned by Div when the divisor is the field's
// additive identity.
var ErrDivideByZero = errors.New("scalar: division by zero")

// ErrNoSqrt is returned by Sqrt implementations (Rational) for which an
// exact square root does not exist in the field; callers that need a
// square root for an over-approximation should fall back to Float64.
var ErrNoSqrt = errors.New("scalar: exact square root does not exist in field")

// Scalar is an ordered field: the four arithmetic operations, exact
// comparison, and square root where the field supports it. Sign returns
// -1, 0 or +1; it is used instead of Cmp against a zero value so that
// Rational never has to construct one.
type Scalar[S any] interface {
	Add(S) S
	Sub(S) S
	Mul(S) S
	Div(S) (S, error)
	Cmp(S) int
	Sign() int
	Sqrt() (S, error)
	Float64() float64
	String() string
}

// scalarErrorf wraps an underlying error with the given operation tag,
// mirroring matrix.matrixErrorf.
func scalarErrorf(tag string, err error) error {
	return fmt.Errorf("scalar.%s: %w", tag, err)
}
