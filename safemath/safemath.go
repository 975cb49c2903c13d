// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package safemath provides overflow-checked integer arithmetic for
// calendrical computations. Every operation returns an error wrapping
// ErrOverflow when the mathematical result is not representable in the
// target width, rather than wrapping silently.
package safemath

import (
	"errors"
	"fmt"
	"math"
)

var ErrOverflow = errors.New("integer overflow")

// AddInt64 returns a + b, or an error if the sum overflows an int64.
func AddInt64(a, b int64) (int64, error) {
	r := a + b
	if (a^r) < 0 && (a^b) >= 0 {
		return 0, fmt.Errorf("%d + %d overflows int64: %w", a, b, ErrOverflow)
	}
	return r, nil
}

// SubInt64 returns a - b, or an error if the difference overflows an int64.
func SubInt64(a, b int64) (int64, error) {
	r := a - b
	if (a^r) < 0 && (a^b) < 0 {
		return 0, fmt.Errorf("%d - %d overflows int64: %w", a, b, ErrOverflow)
	}
	return r, nil
}

// MulInt64 returns a * b, or an error if the product overflows an int64.
func MulInt64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, fmt.Errorf("%d * %d overflows int64: %w", a, b, ErrOverflow)
	}
	r := a * b
	if r/b != a {
		return 0, fmt.Errorf("%d * %d overflows int64: %w", a, b, ErrOverflow)
	}
	return r, nil
}

// NegateInt64 returns -a, or an error for math.MinInt64 which has no
// representable negation.
func NegateInt64(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, fmt.Errorf("-(%d) overflows int64: %w", a, ErrOverflow)
	}
	return -a, nil
}

// AddInt32 returns a + b, or an error if the sum overflows an int32.
func AddInt32(a, b int32) (int32, error) {
	r := int64(a) + int64(b)
	if r < math.MinInt32 || r > math.MaxInt32 {
		return 0, fmt.Errorf("%d + %d overflows int32: %w", a, b, ErrOverflow)
	}
	return int32(r), nil
}

// SubInt32 returns a - b, or an error if the difference overflows an int32.
func SubInt32(a, b int32) (int32, error) {
	r := int64(a) - int64(b)
	if r < math.MinInt32 || r > math.MaxInt32 {
		return 0, fmt.Errorf("%d - %d overflows int32: %w", a, b, ErrOverflow)
	}
	return int32(r), nil
}

// MulInt32 returns a * b, or an error if the product overflows an int32.
func MulInt32(a, b int32) (int32, error) {
	r := int64(a) * int64(b)
	if r < math.MinInt32 || r > math.MaxInt32 {
		return 0, fmt.Errorf("%d * %d overflows int32: %w", a, b, ErrOverflow)
	}
	return int32(r), nil
}

// NegateInt32 returns -a, or an error for math.MinInt32.
func NegateInt32(a int32) (int32, error) {
	if a == math.MinInt32 {
		return 0, fmt.Errorf("-(%d) overflows int32: %w", a, ErrOverflow)
	}
	return -a, nil
}

// ToInt32 narrows an int64 to an int32, or returns an error if the value
// is outside the int32 range.
func ToInt32(a int64) (int32, error) {
	if a < math.MinInt32 || a > math.MaxInt32 {
		return 0, fmt.Errorf("%d does not fit in an int32: %w", a, ErrOverflow)
	}
	return int32(a), nil
}

// FloorDiv returns the largest integer q such that q*b <= a, i.e. division
// rounding towards negative infinity. Calendrical conversions (for example
// splitting a signed nanosecond-of-day into hour, minute and second) require
// floor rather than truncating semantics for negative operands.
// b must be non-zero.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns a - FloorDiv(a, b)*b. The result has the same sign as b
// and magnitude less than the magnitude of b. b must be non-zero.
func FloorMod(a, b int64) int64 {
	r := a % b
	if r != 0 && ((r < 0) != (b < 0)) {
		r += b
	}
	return r
}
