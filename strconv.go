// Copyright 2026 Tavenem. All rights reserved.

package hugenum

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const delim = '.'

var manyZeros = bytes.Repeat([]byte{'0'}, 256)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.pos += offset
	return pe
}

// String renders n in the shortest unambiguous form: "NaN", "+Inf" or
// "-Inf" for sentinels, "p/q" (optionally "p/qe±x") for fractions, plain
// decimal notation when the magnitude is moderate, and scientific notation
// otherwise.
func (n Number) String() string {
	switch {
	case n.IsNaN():
		return "NaN"
	case n.IsPositiveInfinity():
		return "+Inf"
	case n.IsNegativeInfinity():
		return "-Inf"
	case n.mant == 0:
		if n.IsNegative() {
			return "-0"
		}
		return "0"
	}
	var b strings.Builder
	if n.mant < 0 {
		b.WriteByte('-')
	}
	m := absMant(n)
	if n.den > 1 {
		b.WriteString(strconv.FormatUint(m, 10))
		b.WriteByte('/')
		b.WriteString(strconv.FormatUint(uint64(n.den), 10))
		if n.exp != 0 {
			b.WriteByte('e')
			b.WriteString(strconv.FormatInt(int64(n.exp), 10))
		}
		return b.String()
	}
	if adj := n.adjExp(); adj <= -7 || adj > 20 {
		formatScientific(m, adj, &b)
	} else {
		formatAsDecimal(m, int32(n.exp), &b)
	}
	return b.String()
}

// formatAsDecimal writes mant·10^exp in plain positional notation.
func formatAsDecimal(mant uint64, exp int32, b *strings.Builder) {
	mString := strconv.FormatUint(mant, 10)
	switch {
	case exp >= 0:
		b.WriteString(mString)
		if exp > 0 {
			b.Write(zeroBytes(int(exp)))
		}
	default:
		if diff := len(mString) + int(exp); diff <= 0 { // add leading zeros and a delimiter
			b.WriteByte('0')
			b.WriteByte(delim)
			b.Write(zeroBytes(-diff))
			b.WriteString(mString)
		} else { // insert a delimiter
			b.WriteString(mString[:diff])
			b.WriteByte(delim)
			b.WriteString(mString[diff:])
		}
	}
}

// formatScientific writes mant as d.ddd with the adjusted exponent.
func formatScientific(mant uint64, adj int, b *strings.Builder) {
	mString := strconv.FormatUint(mant, 10)
	b.WriteByte(mString[0])
	if len(mString) > 1 {
		b.WriteByte(delim)
		b.WriteString(mString[1:])
	}
	b.WriteByte('e')
	if adj >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(adj))
}

func zeroBytes(count int) []byte {
	if count <= len(manyZeros) {
		return manyZeros[:count]
	}
	result := bytes.Repeat(manyZeros, count/len(manyZeros))
	if rem := count % len(manyZeros); rem > 0 {
		result = append(result, manyZeros[:rem]...)
	}
	return result
}

// Parse converts a string to a Number. It accepts the forms produced by
// String: "NaN" and "±Inf"/"±Infinity" (case-insensitive), fractions
// "p/q" with an optional trailing exponent, and decimal notation with an
// optional fractional part and exponent. Surrounding quotes and spaces are
// tolerated.
func Parse(s string) (Number, error) {
	body, offset, neg := prepareString(s)
	if len(body) == 0 {
		return NaN, fmt.Errorf("parsing failed: empty input")
	}
	switch strings.ToLower(body) {
	case "nan":
		return NaN, nil
	case "inf", "infinity":
		return signedInf(neg), nil
	}
	var (
		n   Number
		err error
	)
	if strings.ContainsRune(body, '/') {
		n, err = parseFraction(body, neg)
	} else {
		n, err = parseDecimal(body, neg)
	}
	if err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		return NaN, fmt.Errorf("parsing failed: %w", addPosErrorOffset(err, offset+1))
	}
	return n, nil
}

func parseDecimal(s string, neg bool) (Number, error) {
	digits, delimPos, e, err := removeLeadingZeros(s)
	if err != nil {
		return NaN, err
	}
	digits, eFromDelim := removeTrailingZerosString(digits, delimPos)
	e += eFromDelim
	if len(digits) == 0 { // a zero-only string
		return signedZero(neg), nil
	}
	if cut := len(digits) - MaxDigits; cut > 0 {
		digits = digits[:MaxDigits]
		e += cut
	}
	m, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return NaN, newPosError("error parsing mantissa: "+err.Error(), 0)
	}
	mm := int64(m)
	if neg {
		mm = -mm
	}
	return norm(mm, 1, e), nil
}

func parseFraction(s string, neg bool) (Number, error) {
	slash := strings.IndexByte(s, '/')
	num, err := strconv.ParseUint(s[:slash], 10, 64)
	if err != nil {
		return NaN, newPosError("error parsing numerator: "+err.Error(), 0)
	}
	rest := s[slash+1:]
	e := 0
	if i := strings.IndexAny(rest, "eE"); i >= 0 {
		parsed, err := strconv.ParseInt(rest[i+1:], 10, 64)
		if err != nil {
			return NaN, newPosError("error parsing exponent: "+err.Error(), slash+1+i+1)
		}
		e = int(parsed)
		rest = rest[:i]
	}
	den, err := strconv.ParseUint(rest, 10, 16)
	if err != nil {
		return NaN, newPosError("error parsing denominator: "+err.Error(), slash+1)
	}
	if den == 0 {
		return NaN, newPosError("zero denominator", slash+1)
	}
	if num > uint64(maxMantissa) {
		return NaN, newPosError("numerator out of range", 0)
	}
	mm := int64(num)
	if neg {
		mm = -mm
	}
	return norm(mm, den, e), nil
}

// prepareString cleans the string from ",-,+ symbols, and spaces.
func prepareString(s string) (prepared string, offset int, neg bool) {
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '"' {
		s = s[1:]
		offset++
	}
	if len(s) == 0 {
		return "", 0, false
	}
	if s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '-' {
		neg = true
		offset++
		s = s[1:]
	} else if s[0] == '+' {
		offset++
		s = s[1:]
	}
	return s, offset, neg
}

func removeLeadingZeros(s string) (result string, delimPos int, e int, err error) {
	var b strings.Builder
	delimPos, firstNonZeroPos := -1, -1
outer:
	for i, r := range s {
		switch {
		case '0' <= r && r <= '9':
			if b.Len() == 0 {
				if r == '0' { // trim leading zeros
					continue
				}
				firstNonZeroPos = i
			}
			b.WriteRune(r)
		case r == 'e' || r == 'E':
			parsed, err := strconv.ParseInt(s[i+1:], 10, 64)
			if err != nil {
				return "", 0, 0, newPosError("error parsing exponent: "+err.Error(), i+1)
			}
			e = int(parsed)
			break outer
		case r == delim:
			if delimPos != -1 {
				return "", 0, 0, newPosError("unexpected delimeter", i)
			}
			delimPos = i
		default:
			return "", 0, 0, newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	if firstNonZeroPos == -1 { // a zero-only string
		return "", 0, 0, nil
	}

	result = b.String()

	// move delimPos to the beginning of the trimmed string
	if delimPos >= 0 {
		if delimPos < firstNonZeroPos {
			firstNonZeroPos--
		}
		delimPos -= firstNonZeroPos
	} else { // if there is no delim, add one at the end of the string 123 --> 123.
		delimPos = len(result)
	}

	return result, delimPos, e, nil
}

func removeTrailingZerosString(s string, delimPos int) (result string, e int) {
	for {
		l := len(s)
		if l == 0 || s[l-1] != '0' {
			break
		}
		s = s[:l-1]
	}
	return s, delimPos - len(s)
}

// MarshalJSON encodes n as a quoted string in the String format.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(n.String())), nil
}

// UnmarshalJSON accepts either a string or bare number in any form Parse
// understands, or an object {"m": mantissa, "d": denominator, "e": exponent}.
func (n *Number) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var parts struct {
			M int64  `json:"m"`
			D uint16 `json:"d"`
			E int16  `json:"e"`
		}
		if err := json.Unmarshal(trimmed, &parts); err != nil {
			return err
		}
		d := uint64(parts.D)
		if d == 0 {
			d = 1
		}
		*n = norm(parts.M, d, int(parts.E))
		return nil
	}
	parsed, err := Parse(string(trimmed))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
