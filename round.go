// Copyright 2026 Tavenem. All rights reserved.

package hugenum

import (
	"fmt"

	"github.com/tavenem/hugenum/internal/mathutil"
)

// RoundingMode selects how RoundTo resolves discarded digits.
type RoundingMode uint8

const (
	// ToNearestEven rounds to the nearest value, ties to the even digit.
	ToNearestEven RoundingMode = iota
	// ToNearestAway rounds to the nearest value, ties away from zero.
	ToNearestAway
	// ToZero truncates toward zero.
	ToZero
	// ToNegativeInf rounds toward negative infinity.
	ToNegativeInf
	// ToPositiveInf rounds toward positive infinity.
	ToPositiveInf

	numModes
)

func (m RoundingMode) String() string {
	switch m {
	case ToNearestEven:
		return "ToNearestEven"
	case ToNearestAway:
		return "ToNearestAway"
	case ToZero:
		return "ToZero"
	case ToNegativeInf:
		return "ToNegativeInf"
	case ToPositiveInf:
		return "ToPositiveInf"
	}
	return fmt.Sprintf("RoundingMode(%d)", uint8(m))
}

// RoundTo rounds n to the given number of fractional digits using mode.
// digits must lie in [0, MaxDigits] and mode must be a defined RoundingMode;
// either violation reports ErrRange. Non-finite values round to themselves,
// fractions collapse to decimal form first, and a value that rounds to
// nothing keeps its sign as a signed zero.
func (n Number) RoundTo(digits int, mode RoundingMode) (Number, error) {
	if digits < 0 || digits > MaxDigits {
		return NaN, fmt.Errorf("%w: round to %d digits", ErrRange, digits)
	}
	if mode >= numModes {
		return NaN, fmt.Errorf("%w: rounding mode %d", ErrRange, mode)
	}
	if !n.IsFinite() {
		return n, nil
	}
	v := n.collapse()
	if int(v.exp) >= -digits {
		return v, nil
	}
	neg := v.IsNegative()
	m := abs64(v.mant)
	drop := -digits - int(v.exp)
	var q uint64
	var roundUp bool
	if drop > MaxDigits {
		// every digit is discarded; only directed modes can produce one
		switch mode {
		case ToNegativeInf:
			roundUp = neg
		case ToPositiveInf:
			roundUp = !neg
		}
	} else {
		p := mathutil.Pow10(drop)
		q = m / p
		rem := m % p
		half := p / 2
		switch mode {
		case ToNearestEven:
			if rem > half || rem == half && q%2 != 0 {
				roundUp = true
			}
		case ToNearestAway:
			roundUp = rem >= half
		case ToZero:
		case ToNegativeInf:
			roundUp = neg && rem != 0
		case ToPositiveInf:
			roundUp = !neg && rem != 0
		}
	}
	if roundUp {
		q++
	}
	if q == 0 {
		return signedZero(neg), nil
	}
	mm := int64(q)
	if neg {
		mm = -mm
	}
	return norm(mm, 1, -digits), nil
}

// Round rounds n to the nearest integer, ties to even.
func (n Number) Round() Number {
	v, _ := n.RoundTo(0, ToNearestEven)
	return v
}

// Truncate discards the fractional part of n, rounding toward zero.
func (n Number) Truncate() Number {
	v, _ := n.RoundTo(0, ToZero)
	return v
}

// Ceiling returns the smallest integer value not less than n.
func (n Number) Ceiling() Number {
	v, _ := n.RoundTo(0, ToPositiveInf)
	return v
}

// Floor returns the largest integer value not greater than n.
func (n Number) Floor() Number {
	v, _ := n.RoundTo(0, ToNegativeInf)
	return v
}
