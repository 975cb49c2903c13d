// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package period provides immutable value types for human-scale spans of
// time expressed in calendar and clock units (years, months, days,
// hours, minutes, seconds, nanoseconds), with overflow-checked
// arithmetic. Unlike a duration of elapsed nanoseconds, a period of one
// month means a different number of days depending on the date it is
// added to.
package period

import (
	"errors"
	"fmt"
	"strings"

	"cloudeng.io/chronology/safemath"
)

// ErrDivideByZero is returned by DividedBy for a zero divisor.
var ErrDivideByZero = errors.New("period division by zero")

// Period is an immutable span of years, months, days, hours, minutes,
// seconds and nanoseconds. Components carry independent signs and are
// not normalized on construction; use Normalized. The zero value is the
// canonical zero period.
type Period struct {
	years   int64
	months  int64
	days    int64
	hours   int64
	minutes int64
	seconds int64
	nanos   int64
}

// Zero is the canonical zero period.
var Zero = Period{}

// Of returns a date-based period.
func Of(years, months, days int64) Period {
	return Period{years: years, months: months, days: days}
}

// OfTime returns a time-based period.
func OfTime(hours, minutes, seconds, nanos int64) Period {
	return Period{hours: hours, minutes: minutes, seconds: seconds, nanos: nanos}
}

// New returns a period with all seven components specified.
func New(years, months, days, hours, minutes, seconds, nanos int64) Period {
	return Period{
		years: years, months: months, days: days,
		hours: hours, minutes: minutes, seconds: seconds, nanos: nanos,
	}
}

func (p Period) Years() int64 { return p.years }
func (p Period) Months() int64 { return p.months }
func (p Period) Days() int64 { return p.days }
func (p Period) Hours() int64 { return p.hours }
func (p Period) Minutes() int64 { return p.minutes }
func (p Period) Seconds() int64 { return p.seconds }
func (p Period) Nanos() int64 { return p.nanos }

// IsZero returns true if all components are zero.
func (p Period) IsZero() bool {
	return p == Zero
}

// IsDateOnly returns true if all time components are zero.
func (p Period) IsDateOnly() bool {
	return p.hours == 0 && p.minutes == 0 && p.seconds == 0 && p.nanos == 0
}

func (p Period) apply(o Period, op func(a, b int64) (int64, error)) (Period, error) {
	var r Period
	var err error
	for _, c := range []struct {
		dst  *int64
		a, b int64
	}{
		{&r.years, p.years, o.years},
		{&r.months, p.months, o.months},
		{&r.days, p.days, o.days},
		{&r.hours, p.hours, o.hours},
		{&r.minutes, p.minutes, o.minutes},
		{&r.seconds, p.seconds, o.seconds},
		{&r.nanos, p.nanos, o.nanos},
	} {
		if *c.dst, err = op(c.a, c.b); err != nil {
			return Zero, err
		}
	}
	return r, nil
}

// Plus returns the component-wise sum of the two periods.
func (p Period) Plus(o Period) (Period, error) {
	return p.apply(o, safemath.AddInt64)
}

// Minus returns the component-wise difference of the two periods.
func (p Period) Minus(o Period) (Period, error) {
	return p.apply(o, safemath.SubInt64)
}

// MultipliedBy scales every component by k.
func (p Period) MultipliedBy(k int64) (Period, error) {
	return p.apply(Period{}, func(a, _ int64) (int64, error) {
		return safemath.MulInt64(a, k)
	})
}

// DividedBy divides every component by k, truncating towards zero.
func (p Period) DividedBy(k int64) (Period, error) {
	if k == 0 {
		return Zero, fmt.Errorf("%v / 0: %w", p, ErrDivideByZero)
	}
	return p.apply(Period{}, func(a, _ int64) (int64, error) {
		if k == -1 {
			return safemath.NegateInt64(a)
		}
		return a / k, nil
	})
}

// Negated returns the period with every component negated.
func (p Period) Negated() (Period, error) {
	return p.apply(Period{}, func(a, _ int64) (int64, error) {
		return safemath.NegateInt64(a)
	})
}

// Normalized carries excess months into years and excess nanoseconds,
// seconds and minutes up into minutes and hours, preserving sign.
// Hours are never carried into days: the length of a day varies with
// calendar and time zone, so that conversion requires the caller's
// explicit assertion via NormalizedWith24HourDays.
func (p Period) Normalized() (Period, error) {
	totalMonths, err := totalOf(p.years, p.months, 12)
	if err != nil {
		return Zero, err
	}
	totalNanos, err := timeTotalNanos(p)
	if err != nil {
		return Zero, err
	}
	r := Period{years: totalMonths / 12, months: totalMonths % 12}
	r.hours = totalNanos / 3_600_000_000_000
	r.minutes = totalNanos / 60_000_000_000 % 60
	r.seconds = totalNanos / 1_000_000_000 % 60
	r.nanos = totalNanos % 1_000_000_000
	r.days = p.days
	return r, nil
}

// NormalizedWith24HourDays is Normalized with hours additionally carried
// into days, for use only when the caller asserts fixed 24 hour days.
func (p Period) NormalizedWith24HourDays() (Period, error) {
	r, err := p.Normalized()
	if err != nil {
		return Zero, err
	}
	days, err := safemath.AddInt64(r.days, r.hours/24)
	if err != nil {
		return Zero, err
	}
	r.days = days
	r.hours %= 24
	return r, nil
}

func totalOf(hi, lo, base int64) (int64, error) {
	t, err := safemath.MulInt64(hi, base)
	if err != nil {
		return 0, err
	}
	return safemath.AddInt64(t, lo)
}

func timeTotalNanos(p Period) (int64, error) {
	totalSeconds, err := totalOf(p.hours, p.minutes, 60)
	if err != nil {
		return 0, err
	}
	totalSeconds, err = totalOf(totalSeconds, p.seconds, 60)
	if err != nil {
		return 0, err
	}
	return totalOf(totalSeconds, p.nanos, 1_000_000_000)
}

// String formats the period in ISO 8601 form, eg. 'P1Y2M3DT4H5M6S'.
// The zero period formats as 'PT0S'. Components are formatted with
// their individual signs.
func (p Period) String() string {
	if p.IsZero() {
		return "PT0S"
	}
	var out strings.Builder
	out.WriteString("P")
	writePart(&out, p.years, "Y")
	writePart(&out, p.months, "M")
	writePart(&out, p.days, "D")
	if !p.IsDateOnly() {
		out.WriteString("T")
		writePart(&out, p.hours, "H")
		writePart(&out, p.minutes, "M")
		writeSeconds(&out, p.seconds, p.nanos)
	}
	return out.String()
}

func writePart(out *strings.Builder, v int64, designator string) {
	if v == 0 {
		return
	}
	fmt.Fprintf(out, "%d%s", v, designator)
}

func writeSeconds(out *strings.Builder, seconds, nanos int64) {
	// Borrow across the two components so a single signed decimal can be
	// printed when they disagree in sign.
	if seconds > 0 && nanos < 0 {
		seconds--
		nanos += 1_000_000_000
	} else if seconds < 0 && nanos > 0 {
		seconds++
		nanos -= 1_000_000_000
	}
	if nanos == 0 {
		writePart(out, seconds, "S")
		return
	}
	sign := ""
	if seconds < 0 || nanos < 0 {
		sign = "-"
		seconds = -seconds
		nanos = -nanos
	}
	frac := strings.TrimRight(fmt.Sprintf("%09d", nanos), "0")
	fmt.Fprintf(out, "%s%d.%sS", sign, seconds, frac)
}
