// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package period

import (
	"fmt"

	"cloudeng.io/chronology/safemath"
)

// Days, Weeks, Months and Years are single-unit spans with
// overflow-checked arithmetic. Their zero values are the canonical zero
// instances.
type (
	Days   int64
	Weeks  int64
	Months int64
	Years  int64
)

func add[T ~int64](a, b T) (T, error) {
	v, err := safemath.AddInt64(int64(a), int64(b))
	return T(v), err
}

func sub[T ~int64](a, b T) (T, error) {
	v, err := safemath.SubInt64(int64(a), int64(b))
	return T(v), err
}

func mul[T ~int64](a T, k int64) (T, error) {
	v, err := safemath.MulInt64(int64(a), k)
	return T(v), err
}

func div[T ~int64](a T, k int64) (T, error) {
	if k == 0 {
		return 0, fmt.Errorf("%d / 0: %w", int64(a), ErrDivideByZero)
	}
	if k == -1 {
		return neg(a)
	}
	return a / T(k), nil
}

func neg[T ~int64](a T) (T, error) {
	v, err := safemath.NegateInt64(int64(a))
	return T(v), err
}

func (d Days) Plus(o Days) (Days, error) { return add(d, o) }
func (d Days) Minus(o Days) (Days, error) { return sub(d, o) }
func (d Days) MultipliedBy(k int64) (Days, error) { return mul(d, k) }
func (d Days) DividedBy(k int64) (Days, error) { return div(d, k) }
func (d Days) Negated() (Days, error) { return neg(d) }
func (d Days) Period() Period { return Period{days: int64(d)} }
func (d Days) String() string { return fmt.Sprintf("P%dD", int64(d)) }

func (w Weeks) Plus(o Weeks) (Weeks, error) { return add(w, o) }
func (w Weeks) Minus(o Weeks) (Weeks, error) { return sub(w, o) }
func (w Weeks) MultipliedBy(k int64) (Weeks, error) { return mul(w, k) }
func (w Weeks) DividedBy(k int64) (Weeks, error) { return div(w, k) }
func (w Weeks) Negated() (Weeks, error) { return neg(w) }

// Period converts to days, the fundamental date unit of a week.
func (w Weeks) Period() (Period, error) {
	d, err := mul(w, 7)
	if err != nil {
		return Zero, err
	}
	return Period{days: int64(d)}, nil
}
func (w Weeks) String() string { return fmt.Sprintf("P%dW", int64(w)) }

func (m Months) Plus(o Months) (Months, error) { return add(m, o) }
func (m Months) Minus(o Months) (Months, error) { return sub(m, o) }
func (m Months) MultipliedBy(k int64) (Months, error) { return mul(m, k) }
func (m Months) DividedBy(k int64) (Months, error) { return div(m, k) }
func (m Months) Negated() (Months, error) { return neg(m) }
func (m Months) Period() Period { return Period{months: int64(m)} }
func (m Months) String() string { return fmt.Sprintf("P%dM", int64(m)) }

func (y Years) Plus(o Years) (Years, error) { return add(y, o) }
func (y Years) Minus(o Years) (Years, error) { return sub(y, o) }
func (y Years) MultipliedBy(k int64) (Years, error) { return mul(y, k) }
func (y Years) DividedBy(k int64) (Years, error) { return div(y, k) }
func (y Years) Negated() (Years, error) { return neg(y) }
func (y Years) Period() Period { return Period{years: int64(y)} }
func (y Years) String() string { return fmt.Sprintf("P%dY", int64(y)) }
