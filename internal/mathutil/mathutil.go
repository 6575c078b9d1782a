// Copyright 2026 Tavenem. All rights reserved.

package mathutil

import (
	"math/bits"
	"unsafe"
)

const maxDigits = 18

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}
)

// Pow10 returns 10^pow, or 0 if the result does not fit a uint64.
func Pow10(pow int) uint64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

func binaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}

	digits := digitsHelper[binaryDigits(value)]
	if value >= decimalFactorTable[digits] {
		digits++
	}
	return digits
}

// GCD returns the greatest common divisor of a and b. GCD(0, b) is b.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Mul64 multiplies two 64-bit values. If the product exceeds 64 bits, it is
// divided by a power of ten until it fits again, and that power is returned
// as shift, so that a*b ~= m * 10^shift (low digits truncated).
func Mul64(a, b uint64) (m uint64, shift int) {
	hi, lo := bits.Mul64(a, b)
	if hi > 0 {
		dd := DecimalDigits(hi)
		lo, _ = bits.Div64(hi, lo, Pow10(dd))
		shift = dd
	}
	return lo, shift
}

// DivScaled divides a by b, scaling the quotient up to maxDigits significant
// digits: a/b ~= q * 10^(-shift). The final digit is rounded half away from
// zero; exact reports that no digits were discarded.
// b must not exceed 10^18.
func DivScaled(a, b uint64) (q uint64, shift int, exact bool) {
	q = a / b
	r := a % b
	for r != 0 && q < decimalFactorTable[maxDigits-1] {
		q = q*10 + r*10/b
		r = r * 10 % b
		shift++
	}
	if r == 0 {
		return q, shift, true
	}
	if r*2 >= b {
		q++
	}
	return q, shift, false
}

// CmpShifted compares a*10^shift with b. shift must be non-negative.
func CmpShifted(a uint64, shift int, b uint64) int {
	if a == 0 {
		if b == 0 {
			return 0
		}
		return -1
	}
	p := Pow10(shift)
	if p == 0 { // a*10^shift exceeds the uint64 range entirely
		return 1
	}
	hi, lo := bits.Mul64(a, p)
	if hi > 0 || lo > b {
		return 1
	}
	if lo < b {
		return -1
	}
	return 0
}
