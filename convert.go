// Copyright 2026 Tavenem. All rights reserved.

package hugenum

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	"github.com/tavenem/hugenum/internal/mathutil"
)

// Int64 returns n truncated toward zero as an int64. NaN reports ErrNaN;
// infinities and magnitudes beyond the int64 range report ErrRange.
func (n Number) Int64() (int64, error) {
	if n.IsNaN() {
		return 0, ErrNaN
	}
	if n.IsInfinite() {
		return 0, ErrRange
	}
	t := n.Truncate()
	if t.mant == 0 {
		return 0, nil
	}
	v := t.mant
	for i := int16(0); i < t.exp; i++ {
		next := v * 10
		if next/10 != v {
			return 0, ErrRange
		}
		v = next
	}
	return v, nil
}

// Uint64 returns n truncated toward zero as a uint64. NaN reports ErrNaN;
// infinities, negative values and magnitudes beyond the uint64 range report
// ErrRange.
func (n Number) Uint64() (uint64, error) {
	if n.IsNaN() {
		return 0, ErrNaN
	}
	if n.IsInfinite() || n.mant < 0 {
		return 0, ErrRange
	}
	t := n.Truncate()
	v := uint64(t.mant)
	if v == 0 {
		return 0, nil
	}
	for i := int16(0); i < t.exp; i++ {
		next := v * 10
		if next/10 != v {
			return 0, ErrRange
		}
		v = next
	}
	return v, nil
}

// Float64 returns the nearest float64 to n. Sentinels map to their IEEE 754
// counterparts, including the negative zero.
func (n Number) Float64() float64 {
	switch {
	case n.IsNaN():
		return math.NaN()
	case n.IsPositiveInfinity():
		return math.Inf(1)
	case n.IsNegativeInfinity():
		return math.Inf(-1)
	case n.mant == 0:
		if n.IsNegative() {
			return math.Copysign(0, -1)
		}
		return 0
	}
	// exact rational intermediate, so the only rounding is the final one
	num := big.NewInt(n.mant)
	den := big.NewInt(int64(n.Denominator()))
	if n.exp != 0 {
		p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs64(int64(n.exp)))), nil)
		if n.exp > 0 {
			num.Mul(num, p)
		} else {
			den.Mul(den, p)
		}
	}
	f, _ := new(big.Rat).SetFrac(num, den).Float64()
	return f
}

// FromInt64 returns the Number nearest to v. Values beyond the mantissa
// range lose their least significant digits.
func FromInt64(v int64) Number {
	e := 0
	for v > maxMantissa || v < minMantissa {
		v /= 10
		e++
	}
	return norm(v, 1, e)
}

// FromUint64 returns the Number nearest to v.
func FromUint64(v uint64) Number {
	e := 0
	for v > uint64(maxMantissa) {
		v /= 10
		e++
	}
	return norm(int64(v), 1, e)
}

// FromFloat64 returns the Number nearest to f, preserving NaN, infinities
// and the sign of zero.
func FromFloat64(f float64) Number {
	switch {
	case math.IsNaN(f):
		return NaN
	case math.IsInf(f, 1):
		return PositiveInfinity
	case math.IsInf(f, -1):
		return NegativeInfinity
	case f == 0:
		return signedZero(math.Signbit(f))
	}
	return FromDecimal(decimal.NewFromFloat(f))
}

// FromInteger converts any integer type.
func FromInteger[T constraints.Integer](v T) Number {
	if v >= 0 {
		return FromUint64(uint64(v))
	}
	return FromInt64(int64(v))
}

// FromFloat converts any floating-point type.
func FromFloat[T constraints.Float](v T) Number {
	return FromFloat64(float64(v))
}

// Decimal returns n as a shopspring decimal. NaN reports ErrNaN and
// infinities report ErrRange; fractions collapse to their decimal form
// first.
func (n Number) Decimal() (decimal.Decimal, error) {
	if n.IsNaN() {
		return decimal.Decimal{}, ErrNaN
	}
	if n.IsInfinite() {
		return decimal.Decimal{}, ErrRange
	}
	v := n.collapse()
	return decimal.New(v.mant, int32(v.exp)), nil
}

// FromDecimal returns the Number nearest to d. Coefficients wider than the
// mantissa truncate toward zero, adjusting the exponent.
func FromDecimal(d decimal.Decimal) Number {
	if d.Sign() == 0 {
		return Zero
	}
	coef := new(big.Int).Abs(d.Coefficient())
	e := int(d.Exponent())
	if digits := len(coef.Text(10)); digits > MaxDigits {
		excess := digits - MaxDigits
		// Pow10 tops out before big-int widths do, so peel in steps
		for excess > MaxDigits {
			coef.Quo(coef, new(big.Int).SetUint64(mathutil.Pow10(MaxDigits)))
			excess -= MaxDigits
			e += MaxDigits
		}
		coef.Quo(coef, new(big.Int).SetUint64(mathutil.Pow10(excess)))
		e += excess
	}
	m := int64(coef.Uint64())
	if d.Sign() < 0 {
		m = -m
	}
	return norm(m, 1, e)
}
