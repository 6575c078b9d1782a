// Copyright 2026 Tavenem. All rights reserved.

package hugenum

import (
	"github.com/shopspring/decimal"

	"github.com/tavenem/hugenum/internal/mathutil"
)

// Neg returns -n. Negating NaN is a no-op; the sign of zero and infinity
// flips.
func (n Number) Neg() Number {
	switch {
	case n.IsNaN():
		return NaN
	case n.mant == 0:
		return signedZero(n.exp >= 0)
	}
	return Number{mant: -n.mant, den: n.den, exp: n.exp}
}

// Abs returns the absolute value of n.
func (n Number) Abs() Number {
	if n.IsNegative() {
		return n.Neg()
	}
	return n
}

// CopySign returns a value with the magnitude of n and the sign of sign.
func (n Number) CopySign(sign Number) Number {
	if n.IsNaN() || sign.IsNaN() {
		return NaN
	}
	if sign.IsNegative() != n.IsNegative() {
		return n.Neg()
	}
	return n
}

// Add returns n + other.
//
// NaN operands dominate. A finite value added to an infinity leaves the
// infinity; opposite-signed infinities cancel to Zero. Fractions are aligned
// over the LCM of their denominators when it is representable, and collapse
// to decimal form otherwise. An operand entirely below the other's
// representable precision leaves the larger operand unchanged, and mantissa
// overflow saturates to signed infinity only past the exponent range.
func (n Number) Add(other Number) Number {
	if n.IsNaN() || other.IsNaN() {
		return NaN
	}
	if n.IsInfinite() {
		if other.IsInfinite() && n.mant != other.mant {
			return Zero
		}
		return n
	}
	if other.IsInfinite() {
		return other
	}
	if n.mant == 0 {
		if other.mant == 0 {
			return signedZero(n.IsNegative() && other.IsNegative())
		}
		return other
	}
	if other.mant == 0 {
		return n
	}

	x, y := n, other
	den := uint64(1)
	d1, d2 := x.Denominator(), y.Denominator()
	switch {
	case d1 == d2:
		den = uint64(d1)
	default:
		l, ok := LCM(d1, d2)
		if ok {
			lx, ly := x.ToDenominator(l), y.ToDenominator(l)
			if lx.Denominator() == l && ly.Denominator() == l {
				x, y, den = lx, ly, uint64(l)
				break
			}
		}
		x, y = x.collapse(), y.collapse()
	}
	return addAligned(x, y, den)
}

// addAligned sums two finite non-zero values sharing one denominator. The
// operand with the larger exponent grows into its unused digit slots; any
// remaining gap costs the smaller operand its trailing digits.
func addAligned(x, y Number, den uint64) Number {
	m1, e1 := x.mant, int(x.exp)
	m2, e2 := y.mant, int(y.exp)
	orig := x
	if e2 > e1 {
		m1, e1, m2, e2 = m2, e2, m1, e1
		orig = y
	}
	for e1 > e2 && mathutil.DecimalDigits(abs64(m1)) < MaxDigits {
		m1 *= 10
		e1--
	}
	if diff := e1 - e2; diff > 0 {
		if diff >= MaxDigits {
			return orig.Reduce() // below representable precision
		}
		m2 /= int64(mathutil.Pow10(diff))
		if m2 == 0 {
			return orig.Reduce()
		}
	}
	sum := m1 + m2
	if sum == 0 { // exact cancellation is positive zero
		return Zero
	}
	e := e1
	if sum > maxMantissa || sum < minMantissa {
		// drop one digit, rounding the remainder away from zero
		r := sum % 10
		sum /= 10
		if r >= 5 {
			sum++
		} else if r <= -5 {
			sum--
		}
		e++
	}
	return norm(sum, den, e)
}

// Sub returns n - other.
func (n Number) Sub(other Number) Number {
	return n.Add(other.Neg())
}

// Mul returns n × other. Zero times an infinity is NaN; mantissa overflow is
// absorbed by the exponent and saturates to signed infinity only past the
// exponent range.
func (n Number) Mul(other Number) Number {
	if n.IsNaN() || other.IsNaN() {
		return NaN
	}
	neg := n.IsNegative() != other.IsNegative()
	if n.IsInfinite() || other.IsInfinite() {
		if n.mant == 0 || other.mant == 0 {
			return NaN
		}
		return signedInf(neg)
	}
	if n.mant == 0 || other.mant == 0 {
		return signedZero(neg)
	}

	// cross-reduce the fractions before multiplying
	d1, d2 := uint64(n.Denominator()), uint64(other.Denominator())
	m1, m2 := absMant(n), absMant(other)
	if g := mathutil.GCD(m1, d2); g > 1 {
		m1 /= g
		d2 /= g
	}
	if g := mathutil.GCD(m2, d1); g > 1 {
		m2 /= g
		d1 /= g
	}
	den := d1 * d2
	e := int(n.exp) + int(other.exp)
	m, shift := mathutil.Mul64(m1, m2)
	if den > 1 && (shift > 0 || m > uint64(maxMantissa)) {
		// the exact product does not fit alongside a fraction
		return n.collapse().Mul(other.collapse())
	}
	e += shift
	for m > uint64(maxMantissa) {
		m /= 10
		e++
	}
	mm := int64(m)
	if neg {
		mm = -mm
	}
	return norm(mm, den, e)
}

// Div returns n / other. An exact reduced fraction is returned whenever
// numerator, denominator and exponent all stay representable; otherwise the
// quotient falls back to decimal form. Division by zero yields a signed
// infinity, and 0/0 is NaN.
func (n Number) Div(other Number) Number {
	if n.IsNaN() || other.IsNaN() {
		return NaN
	}
	neg := n.IsNegative() != other.IsNegative()
	if n.IsInfinite() {
		if other.IsInfinite() {
			return NaN
		}
		return signedInf(neg)
	}
	if other.IsInfinite() {
		return signedZero(neg)
	}
	if other.mant == 0 {
		if n.mant == 0 {
			return NaN
		}
		return signedInf(neg)
	}
	if n.mant == 0 {
		return signedZero(neg)
	}

	e := int(n.exp) - int(other.exp)
	m1, d1 := absMant(n), uint64(n.Denominator())
	m2, d2 := absMant(other), uint64(other.Denominator())
	// exact rational path: (m1/d1) / (m2/d2) = (m1·d2) / (m2·d1)
	if num, ok := mulU64(m1, d2); ok {
		if den, ok := mulU64(m2, d1); ok {
			if g := mathutil.GCD(num, den); g > 1 {
				num /= g
				den /= g
			}
			if den <= maxDenominator && num <= uint64(maxMantissa) {
				mm := int64(num)
				if neg {
					mm = -mm
				}
				return norm(mm, den, e)
			}
		}
	}
	x, y := n.collapse(), other.collapse()
	q, shift, _ := mathutil.DivScaled(absMant(x), absMant(y))
	mm := int64(q)
	if neg {
		mm = -mm
	}
	return norm(mm, 1, int(x.exp)-int(y.exp)-shift)
}

// Mod returns the remainder n - Trunc(n/other)·other; the result carries the
// sign of n. An infinite dividend or zero divisor is NaN, and an infinite
// divisor leaves n unchanged.
func (n Number) Mod(other Number) Number {
	if n.IsNaN() || other.IsNaN() || n.IsInfinite() || other.mant == 0 {
		return NaN
	}
	if other.IsInfinite() {
		return n
	}
	if n.mant == 0 {
		return n
	}
	q := n.Div(other).Truncate()
	r := n.Sub(q.Mul(other))
	if r.mant == 0 { // exact multiples keep the dividend's sign
		return signedZero(n.mant < 0)
	}
	return r
}

// Inv returns 1/n. Inversion is exact when the mantissa fits the denominator
// range and the exponent is non-negative: mantissa and denominator swap and
// the exponent negates. Other values go through the general division path.
func (n Number) Inv() Number {
	if n.IsNaN() {
		return NaN
	}
	if n.IsInfinite() {
		return signedZero(n.mant < 0)
	}
	if n.mant == 0 {
		return signedInf(n.IsNegative())
	}
	if m := absMant(n); m <= maxDenominator && n.exp >= 0 {
		mm := int64(n.Denominator())
		if n.mant < 0 {
			mm = -mm
		}
		return norm(mm, m, -int(n.exp))
	}
	return One.Div(n)
}

// FMA returns (n × y) + z with a single rounding: the product is carried at
// full precision in a wide decimal intermediate before the addition, unlike
// Mul followed by Add, which rounds twice.
func (n Number) FMA(y, z Number) Number {
	if n.IsNaN() || y.IsNaN() || z.IsNaN() {
		return NaN
	}
	if !n.IsFinite() || !y.IsFinite() || !z.IsFinite() ||
		n.den > 1 || y.den > 1 || z.den > 1 ||
		n.mant == 0 || y.mant == 0 {
		// sentinel combinations keep the ordinary multiply and add rules,
		// and exact fractions already multiply without rounding
		return n.Mul(y).Add(z)
	}
	p := decimal.New(n.mant, int32(n.exp)).Mul(decimal.New(y.mant, int32(y.exp)))
	return FromDecimal(p.Add(decimal.New(z.mant, int32(z.exp))))
}

func abs64(v int64) uint64 {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	return u
}

// mulU64 multiplies two uint64 values, reporting failure on overflow.
func mulU64(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}
