// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package safemath_test

import (
	"errors"
	"math"
	"testing"

	"cloudeng.io/chronology/safemath"
)

func TestAddInt64(t *testing.T) {
	for _, tc := range []struct {
		a, b, want int64
		overflow   bool
	}{
		{1, 2, 3, false},
		{-1, -2, -3, false},
		{math.MaxInt64 - 1, 1, math.MaxInt64, false},
		{math.MaxInt64 - 1, 2, 0, true},
		{math.MaxInt64, 1, 0, true},
		{math.MinInt64, -1, 0, true},
		{math.MinInt64 + 1, -1, math.MinInt64, false},
		{math.MaxInt64, math.MinInt64, -1, false},
	} {
		got, err := safemath.AddInt64(tc.a, tc.b)
		if tc.overflow {
			if !errors.Is(err, safemath.ErrOverflow) {
				t.Errorf("%d + %d: expected overflow, got %v, %v", tc.a, tc.b, got, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("%d + %d: got %v, %v, want %v", tc.a, tc.b, got, err, tc.want)
		}
	}
}

func TestSubInt64(t *testing.T) {
	for _, tc := range []struct {
		a, b, want int64
		overflow   bool
	}{
		{3, 2, 1, false},
		{math.MinInt64, 1, 0, true},
		{math.MinInt64 + 1, 1, math.MinInt64, false},
		{math.MaxInt64, -1, 0, true},
		{0, math.MinInt64, 0, true},
	} {
		got, err := safemath.SubInt64(tc.a, tc.b)
		if tc.overflow {
			if !errors.Is(err, safemath.ErrOverflow) {
				t.Errorf("%d - %d: expected overflow, got %v, %v", tc.a, tc.b, got, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("%d - %d: got %v, %v, want %v", tc.a, tc.b, got, err, tc.want)
		}
	}
}

func TestMulInt64(t *testing.T) {
	for _, tc := range []struct {
		a, b, want int64
		overflow   bool
	}{
		{3, 2, 6, false},
		{-3, 2, -6, false},
		{0, math.MaxInt64, 0, false},
		{math.MaxInt64, 2, 0, true},
		{math.MinInt64, -1, 0, true},
		{-1, math.MinInt64, 0, true},
		{math.MinInt64, 1, math.MinInt64, false},
		{math.MaxInt64 / 2, 2, math.MaxInt64 - 1, false},
	} {
		got, err := safemath.MulInt64(tc.a, tc.b)
		if tc.overflow {
			if !errors.Is(err, safemath.ErrOverflow) {
				t.Errorf("%d * %d: expected overflow, got %v, %v", tc.a, tc.b, got, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("%d * %d: got %v, %v, want %v", tc.a, tc.b, got, err, tc.want)
		}
	}
}

func TestNegate(t *testing.T) {
	if _, err := safemath.NegateInt64(math.MinInt64); !errors.Is(err, safemath.ErrOverflow) {
		t.Errorf("expected overflow, got %v", err)
	}
	if got, err := safemath.NegateInt64(math.MaxInt64); err != nil || got != math.MinInt64+1 {
		t.Errorf("got %v, %v", got, err)
	}
	if _, err := safemath.NegateInt32(math.MinInt32); !errors.Is(err, safemath.ErrOverflow) {
		t.Errorf("expected overflow, got %v", err)
	}
}

func TestInt32(t *testing.T) {
	if got, err := safemath.AddInt32(math.MaxInt32-1, 1); err != nil || got != math.MaxInt32 {
		t.Errorf("got %v, %v", got, err)
	}
	if _, err := safemath.AddInt32(math.MaxInt32-1, 2); !errors.Is(err, safemath.ErrOverflow) {
		t.Errorf("expected overflow, got %v", err)
	}
	if _, err := safemath.SubInt32(math.MinInt32, 1); !errors.Is(err, safemath.ErrOverflow) {
		t.Errorf("expected overflow, got %v", err)
	}
	if _, err := safemath.MulInt32(math.MinInt32, -1); !errors.Is(err, safemath.ErrOverflow) {
		t.Errorf("expected overflow, got %v", err)
	}
	if got, err := safemath.ToInt32(math.MaxInt32); err != nil || got != math.MaxInt32 {
		t.Errorf("got %v, %v", got, err)
	}
	if _, err := safemath.ToInt32(math.MaxInt32 + 1); !errors.Is(err, safemath.ErrOverflow) {
		t.Errorf("expected overflow, got %v", err)
	}
	if _, err := safemath.ToInt32(math.MinInt32 - 1); !errors.Is(err, safemath.ErrOverflow) {
		t.Errorf("expected overflow, got %v", err)
	}
}

func TestFloorDivMod(t *testing.T) {
	for _, tc := range []struct {
		a, b, div, mod int64
	}{
		{7, 3, 2, 1},
		{-7, 3, -3, 2},
		{7, -3, -3, -2},
		{-7, -3, 2, -1},
		{6, 3, 2, 0},
		{-6, 3, -2, 0},
		{0, 5, 0, 0},
	} {
		if got := safemath.FloorDiv(tc.a, tc.b); got != tc.div {
			t.Errorf("FloorDiv(%d, %d): got %v, want %v", tc.a, tc.b, got, tc.div)
		}
		if got := safemath.FloorMod(tc.a, tc.b); got != tc.mod {
			t.Errorf("FloorMod(%d, %d): got %v, want %v", tc.a, tc.b, got, tc.mod)
		}
	}
}
