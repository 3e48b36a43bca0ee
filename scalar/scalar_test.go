package scalar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkweave/hyreach/scalar"
)

func TestFloat64_Arithmetic(t *testing.T) {
	a, b := scalar.Float64(3), scalar.Float64(2)
	assert.Equal(t, scalar.Float64(5), a.Add(b))
	assert.Equal(t, scalar.Float64(1), a.Sub(b))
	assert.Equal(t, scalar.Float64(6), a.Mul(b))

	q, err := a.Div(b)
	assert.NoError(t, err)
	assert.Equal(t, scalar.Float64(1.5), q)

	_, err = a.Div(scalar.Float64(0))
	assert.ErrorIs(t, err, scalar.ErrDivideByZero)
}

func TestFloat64_CmpSignSqrt(t *testing.T) {
	assert.Equal(t, -1, scalar.Float64(1).Cmp(2))
	assert.Equal(t, 0, scalar.Float64(1).Cmp(1))
	assert.Equal(t, 1, scalar.Float64(2).Cmp(1))
	assert.Equal(t, -1, scalar.Float64(-4).Sign())

	root, err := scalar.Float64(4).Sqrt()
	assert.NoError(t, err)
	assert.Equal(t, scalar.Float64(2), root)

	_, err = scalar.Float64(-1).Sqrt()
	assert.ErrorIs(t, err, scalar.ErrNoSqrt)
}

func TestRational_Arithmetic(t *testing.T) {
	half := scalar.NewRational(1, 2)
	third := scalar.NewRational(1, 3)

	sum := half.Add(third)
	assert.Equal(t, scalar.NewRational(5, 6).String(), sum.String())

	q, err := half.Div(third)
	assert.NoError(t, err)
	assert.Equal(t, scalar.NewRational(3, 2).String(), q.String())

	_, err = half.Div(scalar.NewRational(0, 1))
	assert.ErrorIs(t, err, scalar.ErrDivideByZero)
}

func TestRational_Cmp(t *testing.T) {
	a := scalar.NewRational(1, 3)
	b := scalar.NewRational(2, 3)
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(scalar.NewRational(2, 6)))
}

func TestRational_NoSqrt(t *testing.T) {
	_, err := scalar.NewRational(2, 1).Sqrt()
	assert.ErrorIs(t, err, scalar.ErrNoSqrt)
}

func TestRational_FromFloat_RoundTrips(t *testing.T) {
	r := scalar.RationalFromFloat(0.5)
	assert.InDelta(t, 0.5, r.Float64(), 1e-12)
}

func TestRational_ZeroValueIsZero(t *testing.T) {
	var z scalar.Rational
	assert.Equal(t, 0, z.Sign())
}
