// Copyright 2026 Tavenem. All rights reserved.

package hugenum

import (
	"errors"
	"math"

	"github.com/tavenem/hugenum/internal/mathutil"
)

const (
	// MaxDigits is the number of significant decimal digits a Number holds.
	MaxDigits = 18

	maxMantissa = int64(999_999_999_999_999_999)
	minMantissa = -maxMantissa
	infMantissa = maxMantissa + 1
	nanMantissa = math.MaxInt64

	maxExponent = math.MaxInt16
	minExponent = math.MinInt16

	maxDenominator = math.MaxUint16
)

var (
	// ErrRange reports a finite value outside the representable range of the
	// conversion target.
	ErrRange = errors.New("hugenum: value out of range")
	// ErrNaN reports a conversion applied to NaN, which has no numeric value.
	ErrNaN = errors.New("hugenum: not a number")
)

// Number is an immutable decimal floating-point value with up to MaxDigits
// significant digits, a 16-bit power-of-ten exponent, and an optional exact
// rational form: when the denominator is greater than 1 the value is
// (mantissa/denominator) × 10^exponent, kept in lowest terms.
//
// The zero Number is 0. Every operation returns a new value; a Number is
// never mutated and is safe to share between goroutines.
//
// Two Numbers representing the same mathematical value may differ in their
// field encodings, so compare with Equal or Cmp rather than ==.
type Number struct {
	mant int64
	den  uint16 // 0 and 1 both mean "no fraction"
	exp  int16
}

// Named values. E, Pi and Tau carry the full digit precision.
var (
	Zero         = Number{}
	NegativeZero = Number{exp: -1}
	One          = Number{mant: 1}
	NegativeOne  = Number{mant: -1}
	Ten          = Number{mant: 1, exp: 1}

	NaN              = Number{mant: nanMantissa}
	PositiveInfinity = Number{mant: infMantissa}
	NegativeInfinity = Number{mant: -infMantissa}

	MaxValue = Number{mant: maxMantissa, exp: maxExponent}
	MinValue = Number{mant: minMantissa, exp: maxExponent}
	// Epsilon is the smallest representable positive value.
	Epsilon = Number{mant: 1, exp: minExponent}

	E   = Number{mant: 271_828_182_845_904_524, exp: -17}
	Pi  = Number{mant: 314_159_265_358_979_324, exp: -17}
	Tau = Number{mant: 628_318_530_717_958_648, exp: -17}

	ln10  = Number{mant: 230_258_509_299_404_568, exp: -17}
	two   = Number{mant: 2}
	three = Number{mant: 3}
)

// New returns the Number mant × 10^exp.
func New(mant int64, exp int16) Number {
	return norm(mant, 1, int(exp))
}

// NewRational returns the Number (mant/den) × 10^exp, reduced to lowest
// terms. A denominator of 0 is treated as 1.
func NewRational(mant int64, den uint16, exp int16) Number {
	return norm(mant, uint64(den), int(exp))
}

// norm builds a normalized Number from an unreduced (mantissa, denominator,
// exponent) triple: the fraction is reduced (or collapsed to decimal if the
// reduced denominator is unrepresentable), excess digits beyond MaxDigits are
// truncated, trailing zeros are folded into a negative exponent, and exponent
// overflow saturates to signed infinity while underflow flushes to signed
// zero.
func norm(m int64, d uint64, e int) Number {
	if m == 0 {
		return signedZero(e < 0)
	}
	neg := m < 0
	um := uint64(m)
	if neg {
		um = -um
	}
	if d > 1 {
		if g := mathutil.GCD(um, d); g > 1 {
			um /= g
			d /= g
		}
		if d > maxDenominator {
			q, shift, _ := mathutil.DivScaled(um, d)
			um, d = q, 1
			e -= shift
		}
	}
	for um > uint64(maxMantissa) {
		um /= 10
		e++
	}
	for e < 0 && um%10 == 0 {
		um /= 10
		e++
	}
	if e > maxExponent {
		for e > maxExponent && um <= uint64(maxMantissa)/10 {
			um *= 10
			e--
		}
		if e > maxExponent {
			return signedInf(neg)
		}
	}
	for e < minExponent {
		um /= 10
		e++
		if um == 0 {
			return signedZero(neg)
		}
	}
	m = int64(um)
	if neg {
		m = -m
	}
	if d <= 1 {
		d = 0
	}
	return Number{mant: m, den: uint16(d), exp: int16(e)}
}

func signedZero(neg bool) Number {
	if neg {
		return NegativeZero
	}
	return Zero
}

func signedInf(neg bool) Number {
	if neg {
		return NegativeInfinity
	}
	return PositiveInfinity
}

// Mantissa returns the significant digits of the value as a signed integer.
func (n Number) Mantissa() int64 {
	return n.mant
}

// Exponent returns the power-of-ten scale factor.
func (n Number) Exponent() int16 {
	return n.exp
}

// Denominator returns the fraction denominator; it is 1 unless the value is
// an exact rational fraction.
func (n Number) Denominator() uint16 {
	if n.den <= 1 {
		return 1
	}
	return n.den
}

// IsNaN reports whether the value is the not-a-number sentinel.
func (n Number) IsNaN() bool {
	return n.mant == nanMantissa
}

// IsPositiveInfinity reports whether the value is +Inf.
func (n Number) IsPositiveInfinity() bool {
	return n.mant == infMantissa
}

// IsNegativeInfinity reports whether the value is -Inf.
func (n Number) IsNegativeInfinity() bool {
	return n.mant == -infMantissa
}

// IsInfinite reports whether the value is an infinity of either sign.
func (n Number) IsInfinite() bool {
	return n.mant == infMantissa || n.mant == -infMantissa
}

// IsFinite reports whether the value is neither NaN nor infinite.
func (n Number) IsFinite() bool {
	return !n.IsNaN() && !n.IsInfinite()
}

// IsZero reports whether the value is zero of either sign.
func (n Number) IsZero() bool {
	return n.mant == 0
}

// IsNegative reports whether the value is negative. Negative zero counts as
// negative; NaN does not.
func (n Number) IsNegative() bool {
	return (n.mant < 0 || n.mant == 0 && n.exp < 0) && !n.IsNaN()
}

// IsPositive reports whether the value is positive or positive zero.
func (n Number) IsPositive() bool {
	return !n.IsNaN() && !n.IsNegative()
}

// IsRational reports whether the value is cleanly rational: an exact fraction
// or an integral value with exponent zero. Finite values outside that set may
// carry accumulated decimal imprecision.
func (n Number) IsRational() bool {
	return n.IsFinite() && (n.den > 1 || n.exp == 0)
}

// IsNotRational reports whether the value is finite but not cleanly
// rational. NaN and the infinities are neither rational nor not-rational.
func (n Number) IsNotRational() bool {
	return n.IsFinite() && !n.IsRational()
}

// IsInteger reports whether the value is finite and integer-valued.
func (n Number) IsInteger() bool {
	return n.IsFinite() && n.den <= 1 && n.exp >= 0
}

// Sign returns -1 if the value is negative, +1 if positive, and 0 for zero of
// either sign or NaN.
func (n Number) Sign() int {
	switch {
	case n.IsNaN() || n.mant == 0:
		return 0
	case n.mant < 0:
		return -1
	}
	return 1
}

// isOdd reports whether an integer-valued n has an odd units digit.
func (n Number) isOdd() bool {
	return n.IsInteger() && n.exp == 0 && n.mant%2 != 0
}

func absMant(n Number) uint64 {
	u := uint64(n.mant)
	if n.mant < 0 {
		u = -u
	}
	return u
}

// adjExp returns exponent + digitCount - 1: the decimal order of magnitude of
// the most significant digit. Finite non-zero values only; the denominator is
// ignored.
func (n Number) adjExp() int {
	return int(n.exp) + mathutil.DecimalDigits(absMant(n)) - 1
}
