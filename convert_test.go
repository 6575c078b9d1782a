// Copyright 2026 Tavenem. All rights reserved.

package hugenum

import (
	"fmt"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInt64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		n        Number
		expected int64
		err      error
	}{
		{Zero, 0, nil},
		{NegativeZero, 0, nil},
		{New(123, 0), 123, nil},
		{Ten, 10, nil},
		{New(99, -1), 9, nil},
		{New(-99, -1), -9, nil},
		{NewRational(7, 2, 0), 3, nil},
		{New(maxMantissa, 0), maxMantissa, nil},
		{NaN, 0, ErrNaN},
		{PositiveInfinity, 0, ErrRange},
		{NegativeInfinity, 0, ErrRange},
		{New(1, 19), 0, ErrRange},
		{MaxValue, 0, ErrRange},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := test.n.Int64()
			if test.err == nil {
				if a.NoError(err) {
					a.Equal(test.expected, v)
				}
			} else {
				a.ErrorIs(err, test.err)
			}
		})
	}
}

func TestUint64(t *testing.T) {
	a := assert.New(t)

	v, err := New(123, 0).Uint64()
	a.NoError(err)
	a.EqualValues(123, v)

	v, err = New(1, 19).Uint64()
	a.NoError(err)
	a.EqualValues(uint64(10_000_000_000_000_000_000), v)

	_, err = NegativeOne.Uint64()
	a.ErrorIs(err, ErrRange)
	_, err = NaN.Uint64()
	a.ErrorIs(err, ErrNaN)
	_, err = New(1, 20).Uint64()
	a.ErrorIs(err, ErrRange)
}

func TestFloat64(t *testing.T) {
	a := assert.New(t)

	a.Equal(1.0, One.Float64())
	a.Equal(1.5, New(15, -1).Float64())
	a.Equal(0.5, NewRational(1, 2, 0).Float64())
	a.Equal(-2.5, New(-25, -1).Float64())
	a.True(math.IsNaN(NaN.Float64()))
	a.True(math.IsInf(PositiveInfinity.Float64(), 1))
	a.True(math.IsInf(NegativeInfinity.Float64(), -1))
	a.Equal(0.0, Zero.Float64())
	a.True(math.Signbit(NegativeZero.Float64()))

	// the conversion rounds exactly once, so full-width mantissas and
	// fractions land on the nearest float64
	a.Equal(math.E, E.Float64())
	a.Equal(math.Pi, Pi.Float64())
	a.Equal(1.0/3.0, NewRational(1, 3, 0).Float64())

	// beyond the float64 range
	a.True(math.IsInf(MaxValue.Float64(), 1))
	a.Equal(0.0, Epsilon.Float64())
}

func TestFromInt64(t *testing.T) {
	a := assert.New(t)

	a.Equal(One, FromInt64(1))
	a.Equal(New(-42, 0), FromInt64(-42))
	a.Equal(Number{mant: 922337203685477580, exp: 1}, FromInt64(math.MaxInt64))
	a.Equal(Number{mant: -922337203685477580, exp: 1}, FromInt64(math.MinInt64))
}

func TestFromUint64(t *testing.T) {
	a := assert.New(t)

	a.Equal(Zero, FromUint64(0))
	a.Equal(New(123, 0), FromUint64(123))
	a.Equal(Number{mant: 184467440737095516, exp: 2}, FromUint64(math.MaxUint64))
}

func TestFromFloat64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f        float64
		expected Number
	}{
		{0, Zero},
		{math.Copysign(0, -1), NegativeZero},
		{1, One},
		{-1, NegativeOne},
		{1.5, New(15, -1)},
		{0.1, New(1, -1)},
		{-2.5, New(-25, -1)},
		{1e100, New(1, 100)},
		{math.MaxFloat64, Number{mant: 17976931348623157, exp: 292}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.expected, FromFloat64(test.f))
		})
	}

	a.True(FromFloat64(math.NaN()).IsNaN())
	a.Equal(PositiveInfinity, FromFloat64(math.Inf(1)))
	a.Equal(NegativeInfinity, FromFloat64(math.Inf(-1)))
}

func TestFromGenerics(t *testing.T) {
	a := assert.New(t)

	a.Equal(New(42, 0), FromInteger(42))
	a.Equal(New(-5, 0), FromInteger(int8(-5)))
	a.Equal(New(65535, 0), FromInteger(uint16(65535)))
	a.Equal(New(25, -2), FromFloat(float32(0.25)))
	a.Equal(New(15, -1), FromFloat(1.5))
}

func TestDecimal(t *testing.T) {
	a := assert.New(t)

	d, err := New(15, -1).Decimal()
	a.NoError(err)
	a.Equal("1.5", d.String())

	d, err = NewRational(1, 4, 0).Decimal()
	a.NoError(err)
	a.Equal("0.25", d.String())

	_, err = NaN.Decimal()
	a.ErrorIs(err, ErrNaN)
	_, err = PositiveInfinity.Decimal()
	a.ErrorIs(err, ErrRange)
}

func TestFromDecimal(t *testing.T) {
	a := assert.New(t)

	a.Equal(Zero, FromDecimal(decimal.Zero))
	a.Equal(New(15, -1), FromDecimal(decimal.New(15, -1)))
	a.Equal(New(-123, 2), FromDecimal(decimal.New(-123, 2)))

	// a coefficient wider than the mantissa truncates toward zero
	wide := decimal.RequireFromString("123456789012345678901")
	a.Equal(Number{mant: 123456789012345678, exp: 3}, FromDecimal(wide))

	roundTrip, err := New(271828, -5).Decimal()
	a.NoError(err)
	a.Equal(New(271828, -5), FromDecimal(roundTrip))
}
