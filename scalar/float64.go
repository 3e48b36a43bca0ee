package scalar

import (
	"math"
	"strconv"
)

// Float64 implements Scalar over the machine double-precision field.
// It never returns ErrDivideByZero or ErrNoSqrt verbatim from IEEE-754
// semantics (division by zero produces +-Inf, Sqrt of a negative
// produces NaN); instead it surfaces those as errors so callers that
// switch between Float64 and Rational see a uniform contract.
type Float64 float64

var _ Scalar[Float64] = Float64(0)

func (a Float64) Add(b Float64) Float64 { return a + b }
func (a Float64) Sub(b Float64) Float64 { return a - b }
func (a Float64) Mul(b Float64) Float64 { return a * b }

// Div returns a/b, or ErrDivideByZero if b == 0.
func (a Float64) Div(b Float64) (Float64, error) {
	if b == 0 {
		return 0, scalarErrorf("Float64.Div", ErrDivideByZero)
	}
	return a / b, nil
}

// Cmp returns -1, 0, or +1 as a<b, a==b, a>b.
func (a Float64) Cmp(b Float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Sign returns -1, 0, or +1 as a<0, a==0, a>0.
func (a Float64) Sign() int { return a.Cmp(0) }

// Sqrt returns the non-negative square root. Returns ErrNoSqrt if a < 0.
func (a Float64) Sqrt() (Float64, error) {
	if a < 0 {
		return 0, scalarErrorf("Float64.Sqrt", ErrNoSqrt)
	}
	return Float64(math.Sqrt(float64(a))), nil
}

// Float64 returns a as a float64 (identity).
func (a Float64) Float64() float64 { return float64(a) }

func (a Float64) String() string { return strconv.FormatFloat(float64(a), 'g', -1, 64) }
