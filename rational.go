// Copyright 2026 Tavenem. All rights reserved.

package hugenum

import "github.com/tavenem/hugenum/internal/mathutil"

// GCD returns the greatest common divisor of a and b.
func GCD(a, b uint64) uint64 {
	return mathutil.GCD(a, b)
}

// LCM returns the least common multiple of two denominators, and false if it
// has no representable value.
func LCM(a, b uint16) (uint16, bool) {
	if a == 0 {
		a = 1
	}
	if b == 0 {
		b = 1
	}
	l := uint64(a) / mathutil.GCD(uint64(a), uint64(b)) * uint64(b)
	if l > maxDenominator {
		return 0, false
	}
	return uint16(l), true
}

// ToDenominator re-expresses n over the given denominator, without reducing
// the resulting fraction. When the current denominator does not divide den,
// n collapses to decimal form first and the rounded decimal is re-expressed
// over den. If scaling the mantissa would overflow, the decimal form is
// returned as is. It never fails.
func (n Number) ToDenominator(den uint16) Number {
	if !n.IsFinite() || n.mant == 0 {
		return n
	}
	if den <= 1 {
		return n.collapse()
	}
	cur := uint64(n.Denominator())
	if cur == uint64(den) {
		return n
	}
	if uint64(den)%cur == 0 {
		if m, ok := scaleMant(n.mant, uint64(den)/cur); ok {
			return Number{mant: m, den: den, exp: n.exp}
		}
		return n.collapse()
	}
	c := n.collapse()
	if m, ok := scaleMant(c.mant, uint64(den)); ok {
		return Number{mant: m, den: den, exp: c.exp}
	}
	return c
}

// Reduce returns n with its fraction in lowest terms. Arithmetic results are
// already reduced; Reduce matters only for values built by ToDenominator.
func (n Number) Reduce() Number {
	if !n.IsFinite() || n.den <= 1 {
		return n
	}
	return norm(n.mant, uint64(n.den), int(n.exp))
}

// collapse re-expresses an exact fraction in pure decimal form through a
// scaled higher-precision division.
func (n Number) collapse() Number {
	if n.den <= 1 || !n.IsFinite() {
		return n
	}
	q, shift, _ := mathutil.DivScaled(absMant(n), uint64(n.den))
	m := int64(q)
	if n.mant < 0 {
		m = -m
	}
	return norm(m, 1, int(n.exp)-shift)
}

// scaleMant multiplies a mantissa by an unsigned factor, reporting failure if
// the product exceeds the mantissa range.
func scaleMant(m int64, f uint64) (int64, bool) {
	neg := m < 0
	um := uint64(m)
	if neg {
		um = -um
	}
	if f != 0 && um > uint64(maxMantissa)/f {
		return 0, false
	}
	um *= f
	r := int64(um)
	if neg {
		r = -r
	}
	return r, true
}
