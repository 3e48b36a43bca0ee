package scalar

import "math/big"

// Rational implements Scalar over the exact-rational field via
// math/big.Rat, used by the optimizer's exact re-verification pass
// (spec §4.1) and anywhere a comparison must be bit-exact rather than
// within floating-point tolerance.
type Rational struct {
	r *big.Rat
}

var _ Scalar[Rational] = Rational{}

// NewRational returns the exact value num/den. Panics if den == 0, as
// big.Rat.SetFrac does — callers that accept user-controlled
// denominators must check for zero first.
func NewRational(num, den int64) Rational {
	return Rational{r: new(big.Rat).SetFrac64(num, den)}
}

// RationalFromFloat returns the exact rational equal to f's IEEE-754
// bit pattern (not a decimal approximation).
func RationalFromFloat(f float64) Rational {
	return Rational{r: new(big.Rat).SetFloat64(f)}
}

func (a Rational) rat() *big.Rat {
	if a.r == nil {
		return new(big.Rat) // zero value behaves as exact 0
	}
	return a.r
}

func (a Rational) Add(b Rational) Rational {
	return Rational{r: new(big.Rat).Add(a.rat(), b.rat())}
}

func (a Rational) Sub(b Rational) Rational {
	return Rational{r: new(big.Rat).Sub(a.rat(), b.rat())}
}

func (a Rational) Mul(b Rational) Rational {
	return Rational{r: new(big.Rat).Mul(a.rat(), b.rat())}
}

// Div returns a/b, or ErrDivideByZero if b is exactly zero.
func (a Rational) Div(b Rational) (Rational, error) {
	if b.rat().Sign() == 0 {
		return Rational{}, scalarErrorf("Rational.Div", ErrDivideByZero)
	}
	return Rational{r: new(big.Rat).Quo(a.rat(), b.rat())}, nil
}

// Cmp returns -1, 0, or +1 as a<b, a==b, a>b.
func (a Rational) Cmp(b Rational) int { return a.rat().Cmp(b.rat()) }

// Sign returns -1, 0, or +1 as a<0, a==0, a>0.
func (a Rational) Sign() int { return a.rat().Sign() }

// Sqrt returns ErrNoSqrt unconditionally: the rationals are not closed
// under square root (e.g. sqrt(2) is irrational). Callers needing a
// square root under the exact scalar (Hausdorff bloat radii, zonotope
// L2 normalization) must fall back to Float64 for that one step, which
// is exactly the contract spec §3 allows ("rounding is permitted only
// where the operation is documented as an over-approximation").
func (a Rational) Sqrt() (Rational, error) {
	return Rational{}, scalarErrorf("Rational.Sqrt", ErrNoSqrt)
}

// Float64 returns the nearest float64 to the exact value.
func (a Rational) Float64() float64 {
	f, _ := a.rat().Float64()
	return f
}

func (a Rational) String() string { return a.rat().RatString() }
