// Copyright 2026 Tavenem. All rights reserved.

package hugenum

import "github.com/tavenem/hugenum/internal/mathutil"

const expMaxIterations = 10000

// overflow bounds for Exp: e^x exceeds the representable range above
// expUpperBound and vanishes below expLowerBound.
var (
	expUpperBound = Number{mant: 75492, exp: 0}
	expLowerBound = Number{mant: -75453, exp: 0}
)

// Exp returns e raised to the power n. The argument splits into its integer
// and fractional parts: the integer power is computed by squaring and the
// fractional remainder by its Taylor series, which converges quickly once
// the remainder is below one. Results are always decimal, never fractions.
func (n Number) Exp() Number {
	switch {
	case n.IsNaN():
		return NaN
	case n.IsPositiveInfinity():
		return PositiveInfinity
	case n.IsNegativeInfinity():
		return Zero
	case n.mant == 0:
		return One
	case n.Cmp(expUpperBound) >= 0:
		return PositiveInfinity
	case n.Cmp(expLowerBound) <= 0:
		return Zero
	}
	x := n.collapse()
	i := x.Truncate()
	r := x.Sub(i)
	result := expSeries(r)
	if k, err := i.Int64(); err == nil && k != 0 {
		result = powInt(E, k).Mul(result)
	}
	return result.collapse()
}

// expSeries sums the Taylor series of e^r for |r| < 1, stopping when a term
// no longer changes the sum.
func expSeries(r Number) Number {
	sum, term := One, One
	for i := int64(1); i < expMaxIterations; i++ {
		term = term.Mul(r).Div(FromInt64(i)).collapse()
		next := sum.Add(term)
		if next.Equal(sum) {
			break
		}
		sum = next
	}
	return sum
}

// Log returns the natural logarithm of n. Negative arguments are NaN and
// zero arguments are negative infinity. The argument is reduced to
// m̂·10^k with m̂ near one, m̂ handled by the atanh series
// ln(m̂) = 2(z + z³/3 + z⁵/5 + …) with z = (m̂-1)/(m̂+1), and the decade
// count recombined as k·ln 10.
func (n Number) Log() Number {
	switch {
	case n.IsNaN() || n.mant < 0:
		return NaN
	case n.mant == 0:
		return NegativeInfinity
	case n.IsPositiveInfinity():
		return PositiveInfinity
	case n.Equal(One):
		return Zero
	}
	x := n.collapse()
	k := x.adjExp()
	d := mathutil.DecimalDigits(absMant(x))
	m := Number{mant: x.mant, exp: int16(1 - d)}
	if m.Cmp(three) > 0 {
		m = Number{mant: m.mant, exp: m.exp - 1}
		k++
	}
	z := m.Sub(One).Div(m.Add(One)).collapse()
	z2 := z.Mul(z)
	sum, term := z, z
	for i := int64(3); i < expMaxIterations; i += 2 {
		term = term.Mul(z2).collapse()
		next := sum.Add(term.Div(FromInt64(i)))
		if next.Equal(sum) {
			break
		}
		sum = next
	}
	result := sum.Mul(two)
	if k != 0 {
		result = result.Add(FromInt64(int64(k)).Mul(ln10))
	}
	return result.collapse()
}

// Log10 returns the base-10 logarithm of n.
func (n Number) Log10() Number {
	return n.Log().Div(ln10)
}

// Pow returns n raised to the power y. NaN operands propagate; otherwise any
// value to the power zero is one, one to any power is one, a negative base
// demands an integer exponent, and zeros and infinities honor the parity of
// integer exponents.
func (n Number) Pow(y Number) Number {
	switch {
	case n.IsNaN() || y.IsNaN():
		return NaN
	case n.Equal(One) || y.mant == 0:
		return One
	case y.Equal(One):
		return n
	}
	if y.IsInfinite() {
		switch n.Abs().Cmp(One) {
		case 0:
			return One
		case 1:
			if y.mant > 0 {
				return PositiveInfinity
			}
			return Zero
		default:
			if y.mant > 0 {
				return Zero
			}
			return PositiveInfinity
		}
	}
	if n.mant == 0 {
		neg := n.IsNegative() && y.isOdd()
		if y.IsNegative() {
			return signedInf(neg)
		}
		return signedZero(neg)
	}
	if n.IsInfinite() {
		neg := n.mant < 0 && y.isOdd()
		if y.IsNegative() {
			return signedZero(neg)
		}
		return signedInf(neg)
	}
	if n.mant < 0 {
		if !y.IsInteger() {
			return NaN
		}
		r := n.Neg().Pow(y)
		if y.isOdd() {
			return r.Neg()
		}
		return r
	}
	if k, err := y.Int64(); err == nil && y.IsInteger() && k > -1000 && k < 1000 {
		return powInt(n, k)
	}
	return y.Mul(n.Log()).Exp()
}

// powInt raises base to an integer power by binary exponentiation. Rational
// bases stay exact as long as the intermediate products fit.
func powInt(base Number, k int64) Number {
	if k < 0 {
		return powInt(base, -k).Inv()
	}
	result := One
	for k > 0 {
		if k&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		k >>= 1
	}
	return result
}

// Sqrt returns the square root of n. Negative arguments other than negative
// zero are NaN.
func (n Number) Sqrt() Number {
	switch {
	case n.IsNaN():
		return NaN
	case n.mant == 0:
		return n
	case n.IsNegative():
		return NaN
	case n.IsPositiveInfinity():
		return PositiveInfinity
	}
	return n.Log().Div(two).Exp()
}

// Cbrt returns the cube root of n. Unlike Sqrt it is defined for negative
// arguments.
func (n Number) Cbrt() Number {
	switch {
	case n.IsNaN():
		return NaN
	case n.mant == 0:
		return n
	case n.IsNegative():
		return n.Neg().Cbrt().Neg()
	case n.IsPositiveInfinity():
		return PositiveInfinity
	}
	return n.Log().Div(three).Exp()
}
