// Copyright 2026 Tavenem. All rights reserved.

package hugenum

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		mant int64
		exp  int16
		v    Number
	}{
		{0, 0, Zero},
		{0, -1, NegativeZero},
		{1, 0, One},
		{-1, 0, NegativeOne},
		{1, 1, Ten},
		{123450000, 0, Number{mant: 123450000}},
		{100, -2, One},
		{12300, -2, Number{mant: 123}},
		{-500, -2, Number{mant: -5}},
		{maxMantissa, 0, Number{mant: maxMantissa}},
		{math.MaxInt64, 0, Number{mant: 922337203685477580, exp: 1}},
		{math.MinInt64, 0, Number{mant: -922337203685477580, exp: 1}},
		{1, maxExponent, Number{mant: 1, exp: maxExponent}},
		{1, minExponent, Epsilon},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.v, New(test.mant, test.exp))
		})
	}
}

func TestNewRational(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		mant int64
		den  uint16
		exp  int16
		v    Number
	}{
		{1, 3, 0, Number{mant: 1, den: 3}},
		{2, 4, 0, Number{mant: 1, den: 2}},
		{10, 4, 0, Number{mant: 5, den: 2}},
		{3, 3, 0, One},
		{-2, 6, 0, Number{mant: -1, den: 3}},
		{7, 0, 0, Number{mant: 7}},
		{7, 1, 0, Number{mant: 7}},
		{1, 3, -2, Number{mant: 1, den: 3, exp: -2}},
		{1, maxDenominator, 0, Number{mant: 1, den: maxDenominator}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.v, NewRational(test.mant, test.den, test.exp))
		})
	}
}

func TestPredicates(t *testing.T) {
	a := assert.New(t)

	a.True(NaN.IsNaN())
	a.False(NaN.IsFinite())
	a.False(NaN.IsInfinite())
	a.False(NaN.IsNegative())
	a.False(NaN.IsPositive())
	a.False(NaN.IsZero())

	a.True(PositiveInfinity.IsPositiveInfinity())
	a.True(PositiveInfinity.IsInfinite())
	a.False(PositiveInfinity.IsFinite())
	a.True(PositiveInfinity.IsPositive())
	a.True(NegativeInfinity.IsNegativeInfinity())
	a.True(NegativeInfinity.IsNegative())

	a.True(Zero.IsZero())
	a.True(NegativeZero.IsZero())
	a.False(Zero.IsNegative())
	a.True(NegativeZero.IsNegative())
	a.True(Zero.IsPositive()) // the sign convention covers positive zero
	a.False(NegativeZero.IsPositive())

	a.True(One.IsFinite())
	a.True(One.IsPositive())
	a.True(NegativeOne.IsNegative())
}

func TestIsRational(t *testing.T) {
	a := assert.New(t)

	a.True(One.IsRational())
	a.True(Zero.IsRational())
	a.True(New(123, 0).IsRational())
	a.True(NewRational(1, 3, 0).IsRational())
	a.True(NewRational(1, 3, 5).IsRational())

	a.False(Ten.IsRational()) // carried as 1e1, not as an integer mantissa
	a.False(New(15, -1).IsRational())
	a.False(NaN.IsRational())
	a.False(PositiveInfinity.IsRational())

	a.True(Ten.IsNotRational())
	a.False(One.IsNotRational())
	a.False(NaN.IsNotRational()) // NaN is neither
}

func TestIsInteger(t *testing.T) {
	a := assert.New(t)

	a.True(Zero.IsInteger())
	a.True(One.IsInteger())
	a.True(Ten.IsInteger())
	a.True(New(-42, 0).IsInteger())
	a.False(New(15, -1).IsInteger())
	a.False(NewRational(1, 3, 0).IsInteger())
	a.False(NaN.IsInteger())
	a.False(PositiveInfinity.IsInteger())
}

func TestSign(t *testing.T) {
	a := assert.New(t)

	a.Equal(0, NaN.Sign())
	a.Equal(0, Zero.Sign())
	a.Equal(0, NegativeZero.Sign())
	a.Equal(1, One.Sign())
	a.Equal(-1, NegativeOne.Sign())
	a.Equal(1, PositiveInfinity.Sign())
	a.Equal(-1, NegativeInfinity.Sign())
	a.Equal(-1, NewRational(-1, 3, 0).Sign())
}

func TestAccessors(t *testing.T) {
	a := assert.New(t)

	v := NewRational(5, 2, -1)
	a.EqualValues(5, v.Mantissa())
	a.EqualValues(2, v.Denominator())
	a.EqualValues(-1, v.Exponent())

	a.EqualValues(1, One.Denominator())
	a.EqualValues(1, Zero.Denominator())
}

func TestZeroValueIsZero(t *testing.T) {
	a := assert.New(t)
	var n Number
	a.True(n.IsZero())
	a.True(n.Equal(Zero))
	a.Equal("0", n.String())
}
