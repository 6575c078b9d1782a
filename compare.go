// Copyright 2026 Tavenem. All rights reserved.

package hugenum

import (
	"github.com/shopspring/decimal"

	"github.com/tavenem/hugenum/internal/mathutil"
)

// Cmp compares n and other, returning -1, 0 or +1. The order is total: NaN
// sorts below every other value and compares equal to itself, infinities
// compare by sign, and zeros of either sign are equal. Equal, by contrast,
// never reports NaN equal to anything; sorted collections rely on Cmp's
// contract even though equality disagrees with it.
func (n Number) Cmp(other Number) int {
	nan1, nan2 := n.IsNaN(), other.IsNaN()
	switch {
	case nan1 && nan2:
		return 0
	case nan1:
		return -1
	case nan2:
		return 1
	}
	if n.IsInfinite() || other.IsInfinite() {
		return intCmp(infRank(n), infRank(other))
	}
	s1, s2 := n.Sign(), other.Sign()
	if s1 != s2 {
		return intCmp(s1, s2)
	}
	if s1 == 0 {
		return 0
	}
	return n.cmpMagnitude(other) * s1
}

// Equal reports whether n and other represent the same mathematical value.
// NaN is not equal to anything, including itself.
func (n Number) Equal(other Number) bool {
	if n.IsNaN() || other.IsNaN() {
		return false
	}
	return n.Cmp(other) == 0
}

// cmpMagnitude compares |n| and |other| for finite non-zero values.
func (n Number) cmpMagnitude(other Number) int {
	d1, d2 := n.Denominator(), other.Denominator()
	if d1 != d2 {
		return cmpExact(n, other)
	}
	// a shared denominator scales both sides equally, so the adjusted
	// exponents decide directly
	a1, a2 := n.adjExp(), other.adjExp()
	if a1 != a2 {
		return intCmp(a1, a2)
	}
	m1, m2 := absMant(n), absMant(other)
	e1, e2 := int(n.exp), int(other.exp)
	switch {
	case e1 > e2:
		return mathutil.CmpShifted(m1, e1-e2, m2)
	case e2 > e1:
		return -mathutil.CmpShifted(m2, e2-e1, m1)
	case m1 > m2:
		return 1
	case m1 < m2:
		return -1
	}
	return 0
}

// cmpExact cross-multiplies |x|/d1 and |y|/d2 in exact wide decimals.
func cmpExact(x, y Number) int {
	a := decimal.New(int64(absMant(x)), int32(x.exp)).
		Mul(decimal.New(int64(y.Denominator()), 0))
	b := decimal.New(int64(absMant(y)), int32(y.exp)).
		Mul(decimal.New(int64(x.Denominator()), 0))
	return a.Cmp(b)
}

func infRank(n Number) int {
	switch {
	case n.IsPositiveInfinity():
		return 1
	case n.IsNegativeInfinity():
		return -1
	}
	return 0
}

func intCmp(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	}
	return 0
}

// Max returns the larger of x and y, or NaN if either is NaN.
func Max(x, y Number) Number {
	if x.IsNaN() || y.IsNaN() {
		return NaN
	}
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Min returns the smaller of x and y, or NaN if either is NaN.
func Min(x, y Number) Number {
	if x.IsNaN() || y.IsNaN() {
		return NaN
	}
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi Number) Number {
	if x.IsNaN() || lo.IsNaN() || hi.IsNaN() {
		return NaN
	}
	if x.Cmp(lo) < 0 {
		return lo
	}
	if x.Cmp(hi) > 0 {
		return hi
	}
	return x
}
