// Copyright 2026 Tavenem. All rights reserved.

package hugenum

import "github.com/tavenem/hugenum/internal/mathutil"

// ULP returns the distance from n to the nearest representable value of
// greater magnitude: one unit in the last place of the mantissa at n's
// scale. Zero reports Epsilon, infinities report Zero and NaN reports NaN.
func (n Number) ULP() Number {
	switch {
	case n.IsNaN():
		return NaN
	case n.IsInfinite():
		return Zero
	case n.mant == 0:
		return Epsilon
	}
	v := n.collapse()
	e := int(v.exp) - (MaxDigits - mathutil.DecimalDigits(absMant(v)))
	if e < minExponent {
		e = minExponent
	}
	return Number{mant: 1, exp: int16(e)}
}

// Increment returns n plus the larger of one and its ULP, stepping integer
// values by whole units and very large values by their representable grain.
func (n Number) Increment() Number {
	return n.Add(Max(One, n.ULP()))
}

// Decrement returns n minus the larger of one and its ULP.
func (n Number) Decrement() Number {
	return n.Sub(Max(One, n.ULP()))
}

// BitIncrement returns the next representable value above n.
func (n Number) BitIncrement() Number {
	return n.Add(n.ULP())
}

// BitDecrement returns the next representable value below n.
func (n Number) BitDecrement() Number {
	return n.Sub(n.ULP())
}
