// Copyright 2026 Tavenem. All rights reserved.

package hugenum

// Sum adds all values left to right. The empty sum is Zero.
func Sum(values ...Number) Number {
	total := Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Average returns the arithmetic mean of the values, or NaN when there are
// none.
func Average(values ...Number) Number {
	if len(values) == 0 {
		return NaN
	}
	return Sum(values...).Div(FromInt64(int64(len(values))))
}

// MaxOf returns the greatest of the values; any NaN makes the result NaN.
// The empty call returns NaN.
func MaxOf(values ...Number) Number {
	if len(values) == 0 {
		return NaN
	}
	result := values[0]
	for _, v := range values[1:] {
		result = Max(result, v)
	}
	return result
}

// MinOf returns the least of the values; any NaN makes the result NaN.
// The empty call returns NaN.
func MinOf(values ...Number) Number {
	if len(values) == 0 {
		return NaN
	}
	result := values[0]
	for _, v := range values[1:] {
		result = Min(result, v)
	}
	return result
}
