// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chronology

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/chronology/safemath"
)

// Chronology defines the per-calendar-system rules required to convert
// between (year, month, day) fields and the calendar-independent epoch
// day count (days since 1970-01-01 in the ISO calendar). Years are
// proleptic: a signed, continuous numbering with no era discontinuity.
// Implementations must be pure with respect to their inputs and safe for
// concurrent use once constructed.
type Chronology interface {
	// Name returns the calendar system identifier, eg. "iso" or "hijrah".
	Name() string

	IsLeapYear(year int) bool

	// LengthOfMonth returns the number of days in the given month, or an
	// error if the month or year is out of range for the calendar.
	LengthOfMonth(year, month int) (int, error)

	// LengthOfYear returns 365 or 366 for solar calendars and 354 or 355
	// for the Hijrah calendar. Out of range years report the common length.
	LengthOfYear(year int) int

	// EpochDay converts a validated date to its epoch day, or returns an
	// error if the combination does not denote a real date.
	EpochDay(year, month, day int) (int64, error)

	// FromEpochDay is the exact inverse of EpochDay for every epoch day
	// within the calendar's supported range.
	FromEpochDay(epochDay int64) (year, month, day int, err error)

	// ProlepticYear maps an era and year-of-era to a proleptic year.
	ProlepticYear(era, yearOfEra int) (int, error)

	// Era maps a proleptic year to its era and year-of-era.
	Era(year int) (era, yearOfEra int)
}

// Weekday numbers the days of the week 1 (Monday) to 7 (Sunday), as in
// ISO 8601.
type Weekday int

const (
	Monday Weekday = 1 + iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w-1]
}

// WeekdayOfEpochDay returns the day of the week for an epoch day.
// Epoch day zero, 1970-01-01, was a Thursday.
func WeekdayOfEpochDay(epochDay int64) Weekday {
	return Weekday(safemath.FloorMod(epochDay+3, 7) + 1)
}

// Date is a validated date in a specific calendar system. The zero value
// is not a usable date; Dates are constructed only through NewDate,
// DateFromEpochDay or DateFromYearDay so that year, month and day have
// been checked against the calendar's rules before the value exists.
// Dates are immutable; the epoch day is the canonical cross-calendar key.
type Date struct {
	chrono   Chronology
	year     int
	month    int
	day      int
	epochDay int64
}

// NewDate returns the validated date for year, month, day in the given
// calendar, or an error wrapping ErrInvalidField if the combination does
// not denote a real date.
func NewDate(c Chronology, year, month, day int) (Date, error) {
	ed, err := c.EpochDay(year, month, day)
	if err != nil {
		return Date{}, err
	}
	return Date{chrono: c, year: year, month: month, day: day, epochDay: ed}, nil
}

// DateFromEpochDay returns the date for the given epoch day in the given
// calendar.
func DateFromEpochDay(c Chronology, epochDay int64) (Date, error) {
	y, m, d, err := c.FromEpochDay(epochDay)
	if err != nil {
		return Date{}, err
	}
	return Date{chrono: c, year: y, month: m, day: d, epochDay: epochDay}, nil
}

// DateFromYearDay returns the date for the given day of the year,
// 1-365/366 for solar calendars.
func DateFromYearDay(c Chronology, year, dayOfYear int) (Date, error) {
	if dayOfYear < 1 || dayOfYear > c.LengthOfYear(year) {
		return Date{}, fmt.Errorf("day-of-year %d not in 1 - %d for year %d: %w",
			dayOfYear, c.LengthOfYear(year), year, ErrInvalidField)
	}
	start, err := c.EpochDay(year, 1, 1)
	if err != nil {
		return Date{}, err
	}
	return DateFromEpochDay(c, start+int64(dayOfYear)-1)
}

// Chronology returns the calendar system the date belongs to.
func (d Date) Chronology() Chronology { return d.chrono }

func (d Date) Year() int { return d.year }
func (d Date) Month() int { return d.month }
func (d Date) Day() int { return d.day }
func (d Date) EpochDay() int64 { return d.epochDay }

// Era returns the era and year-of-era for the date.
func (d Date) Era() (era, yearOfEra int) {
	return d.chrono.Era(d.year)
}

// DayOfYear returns the one-based day of the year.
func (d Date) DayOfYear() int {
	start, err := d.chrono.EpochDay(d.year, 1, 1)
	if err != nil {
		panic(fmt.Sprintf("%v: year %d no longer valid: %v", d.chrono.Name(), d.year, err))
	}
	return int(d.epochDay-start) + 1
}

// Weekday returns the ISO day of the week, which is shared by all
// calendar systems.
func (d Date) Weekday() Weekday {
	return WeekdayOfEpochDay(d.epochDay)
}

// AddDays returns the date n days after d (or before, for negative n).
func (d Date) AddDays(n int64) (Date, error) {
	ed, err := safemath.AddInt64(d.epochDay, n)
	if err != nil {
		return Date{}, err
	}
	return DateFromEpochDay(d.chrono, ed)
}

// Convert returns the same day expressed in the target calendar.
func (d Date) Convert(target Chronology) (Date, error) {
	if d.chrono.Name() == target.Name() {
		return d, nil
	}
	return DateFromEpochDay(target, d.epochDay)
}

// Equal returns true if the two dates denote the same day in the same
// calendar system.
func (d Date) Equal(o Date) bool {
	return d.chrono.Name() == o.chrono.Name() && d.epochDay == o.epochDay
}

// EqualObject implements the equality used by Store.AddObject.
func (d Date) EqualObject(o any) bool {
	od, ok := o.(Date)
	return ok && d.Equal(od)
}

// Before returns true if d is earlier than o, irrespective of calendar
// system.
func (d Date) Before(o Date) bool {
	return d.epochDay < o.epochDay
}

// String formats the date as year-month-day, prefixed with the calendar
// name for non-ISO calendars.
func (d Date) String() string {
	ymd := fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
	if d.year < 0 {
		ymd = fmt.Sprintf("%05d-%02d-%02d", d.year, d.month, d.day)
	}
	if d.chrono.Name() == "iso" {
		return ymd
	}
	return d.chrono.Name() + " " + ymd
}

// Parse a date in the format used by String, eg. '2012-03-01', for the
// given calendar.
func (d *Date) Parse(c Chronology, val string) error {
	v := strings.TrimSpace(val)
	if prefix, rest, ok := strings.Cut(v, " "); ok {
		if prefix != c.Name() {
			return fmt.Errorf("calendar %q does not match %q", prefix, c.Name())
		}
		v = rest
	}
	neg := false
	if strings.HasPrefix(v, "-") {
		neg, v = true, v[1:]
	}
	parts := strings.Split(v, "-")
	if len(parts) != 3 {
		return fmt.Errorf("invalid date %q, expected 'year-month-day'", val)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid year: %s", parts[0])
	}
	if neg {
		year = -year
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid month: %s", parts[1])
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return fmt.Errorf("invalid day: %s", parts[2])
	}
	nd, err := NewDate(c, year, month, day)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}
