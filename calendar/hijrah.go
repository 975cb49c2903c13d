// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"

	"cloudeng.io/chronology"
	"cloudeng.io/chronology/internal/cache"
)

const (
	hijrahMinYear = 1
	hijrahMaxYear = 9999

	// Epoch day of 1 Muharram AH 1 in the civil tabular calendar,
	// Friday 16 July 622 in the Julian calendar.
	hijrahEpochDay = -492_148

	// A 30 year cycle has 19 years of 354 days and 11 of 355.
	daysPer30Years = 10_631
)

// Leap years within the 30 year cycle, one-based.
var hijrahLeap = [31]bool{
	2: true, 5: true, 7: true, 10: true, 13: true, 16: true,
	18: true, 21: true, 24: true, 26: true, 29: true,
}

// cycleDays[i] is the number of days in the first i years of a cycle.
var cycleDays [31]int64

func init() {
	for i := 1; i <= 30; i++ {
		cycleDays[i] = cycleDays[i-1] + 354
		if hijrahLeap[i] {
			cycleDays[i]++
		}
	}
}

// Hijrah is the civil (tabular) Hijrah calendar: months alternate 30 and
// 29 days starting with Muharram at 30, with a 30th day added to the
// final month in the 11 leap years of each 30 year cycle. An optional
// deviation table adjusts individual month boundaries to match observed
// or officially decreed month starts; the table is fixed at construction
// and applied consistently to the forward and inverse conversions.
type Hijrah struct {
	devs  *DeviationTable
	years *cache.Table[hijrahYear]
}

// hijrahYear carries the pre-computed epoch days of the month starts of
// one year; starts[12] is the start of the following year.
type hijrahYear struct {
	starts [13]int64
}

// HijrahOption represents options for NewHijrah.
type HijrahOption func(*Hijrah)

// WithDeviations overlays a deviation table on the arithmetic base
// calendar.
func WithDeviations(dt *DeviationTable) HijrahOption {
	return func(h *Hijrah) {
		h.devs = dt
	}
}

// NewHijrah returns a Hijrah calendar system. The returned value is
// immutable and safe for concurrent use.
func NewHijrah(opts ...HijrahOption) *Hijrah {
	h := &Hijrah{years: cache.New[hijrahYear](512)}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Hijrah) Name() string { return "hijrah" }

// baseYearStart returns the epoch day of 1 Muharram of the given year,
// before deviations.
func baseYearStart(year int) int64 {
	cycles := (year - 1) / 30
	rem := (year - 1) % 30
	if rem < 0 {
		cycles--
		rem += 30
	}
	return hijrahEpochDay + int64(cycles)*daysPer30Years + cycleDays[rem]
}

// baseDaysBeforeMonth returns the days from the start of the year to the
// start of month m. Only the final month's length depends on leap years,
// so the starts within a year do not.
func baseDaysBeforeMonth(m int) int64 {
	n := int64(m - 1)
	return n/2*59 + n%2*30
}

// year returns the cached month-start table for the given year, with
// deviations applied.
func (h *Hijrah) year(y int) hijrahYear {
	return h.years.Get(int64(y), func(int64) hijrahYear {
		var hy hijrahYear
		start := baseYearStart(y)
		for m := 1; m <= 12; m++ {
			hy.starts[m-1] = start + baseDaysBeforeMonth(m) + h.devs.offset(y, m)
		}
		hy.starts[12] = baseYearStart(y+1) + h.devs.offset(y+1, 1)
		return hy
	})
}

func (h *Hijrah) monthStart(year, month int) int64 {
	return h.year(year).starts[month-1]
}

func (h *Hijrah) LengthOfYear(year int) int {
	if year < hijrahMinYear || year > hijrahMaxYear {
		return 354
	}
	hy := h.year(year)
	return int(hy.starts[12] - hy.starts[0])
}

func (h *Hijrah) IsLeapYear(year int) bool {
	return h.LengthOfYear(year) > 354
}

func (h *Hijrah) LengthOfMonth(year, month int) (int, error) {
	if year < hijrahMinYear || year > hijrahMaxYear {
		return 0, fmt.Errorf("hijrah: year %d not in %d - %d: %w",
			year, hijrahMinYear, hijrahMaxYear, chronology.ErrInvalidField)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("hijrah: month %d not in 1 - 12: %w", month, chronology.ErrInvalidField)
	}
	hy := h.year(year)
	return int(hy.starts[month] - hy.starts[month-1]), nil
}

func (h *Hijrah) EpochDay(year, month, day int) (int64, error) {
	if err := checkDate(h, year, month, day); err != nil {
		return 0, err
	}
	return h.monthStart(year, month) + int64(day-1), nil
}

func (h *Hijrah) FromEpochDay(epochDay int64) (year, month, day int, err error) {
	if epochDay < h.monthStart(hijrahMinYear, 1) || epochDay >= h.monthStart(hijrahMaxYear+1, 1) {
		return 0, 0, 0, fmt.Errorf("hijrah: epoch day %d before year %d or after year %d: %w",
			epochDay, hijrahMinYear, hijrahMaxYear, chronology.ErrInvalidField)
	}
	// Estimate from the arithmetic base; deviations move year boundaries
	// by a few days at most, so a short adjustment walk suffices.
	y := int(((epochDay-hijrahEpochDay)*30)/daysPer30Years) + 1
	if y < hijrahMinYear {
		y = hijrahMinYear
	}
	if y > hijrahMaxYear {
		y = hijrahMaxYear
	}
	for y > hijrahMinYear && epochDay < h.monthStart(y, 1) {
		y--
	}
	for y < hijrahMaxYear && epochDay >= h.monthStart(y+1, 1) {
		y++
	}
	hy := h.year(y)
	m := 1
	for m < 12 && epochDay >= hy.starts[m] {
		m++
	}
	return y, m, int(epochDay-hy.starts[m-1]) + 1, nil
}

// ProlepticYear maps the single AH era (value 1) to the proleptic year.
func (h *Hijrah) ProlepticYear(era, yearOfEra int) (int, error) {
	if era != 1 {
		return 0, fmt.Errorf("hijrah: era %d is not AH (1): %w", era, chronology.ErrInvalidField)
	}
	return yearOfEra, nil
}

func (h *Hijrah) Era(year int) (era, yearOfEra int) {
	return 1, year
}
