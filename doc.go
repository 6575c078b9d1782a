// Copyright 2026 Tavenem. All rights reserved.

/*
Package hugenum implements a fixed-width decimal number with an extended
exponent range and exact small fractions.

A Number holds an 18-digit signed mantissa, a signed 16-bit decimal
exponent, and a 16-bit denominator. The value of a
Number is mantissa / denominator × 10^exponent. The representable magnitude
range runs from 1e-32768 up to just under 1e32786, far beyond float64, while
every value stays an exact decimal (or an exact small rational) rather than
a binary approximation.

Sentinel values round out the domain: NaN, positive and negative infinity,
and a signed zero. Arithmetic follows the usual IEEE 754 conventions for
these, with one deliberate exception: the sum of opposite-signed infinities
is Zero rather than NaN.

Numbers are immutable values. All operations return new Numbers and the
zero value of the type is a usable Zero.
*/
package hugenum
