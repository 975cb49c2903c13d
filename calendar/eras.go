// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"

	"cloudeng.io/chronology"
)

// offsetChronology adapts the ISO calendar for systems that differ only
// in their year numbering: Minguo (ISO minus 1911) and Thai Buddhist
// (ISO plus 543). Month and day structure is shared with ISO.
type offsetChronology struct {
	name string
	// isoOffset is added to the proleptic year to obtain the ISO year.
	isoOffset int
}

// Minguo returns the Minguo (Republic of China) calendar system, whose
// year 1 is ISO year 1912.
func Minguo() chronology.Chronology {
	return &offsetChronology{name: "minguo", isoOffset: 1911}
}

// ThaiBuddhist returns the Thai Buddhist calendar system, whose year 1
// is ISO year -542.
func ThaiBuddhist() chronology.Chronology {
	return &offsetChronology{name: "thaibuddhist", isoOffset: -543}
}

func (c *offsetChronology) Name() string { return c.name }

func (c *offsetChronology) IsLeapYear(year int) bool {
	return iso{}.IsLeapYear(year + c.isoOffset)
}

func (c *offsetChronology) LengthOfMonth(year, month int) (int, error) {
	n, err := iso{}.LengthOfMonth(year+c.isoOffset, month)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", c.name, err)
	}
	return n, nil
}

func (c *offsetChronology) LengthOfYear(year int) int {
	return iso{}.LengthOfYear(year + c.isoOffset)
}

func (c *offsetChronology) EpochDay(year, month, day int) (int64, error) {
	ed, err := iso{}.EpochDay(year+c.isoOffset, month, day)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", c.name, err)
	}
	return ed, nil
}

func (c *offsetChronology) FromEpochDay(epochDay int64) (year, month, day int, err error) {
	y, m, d, err := iso{}.FromEpochDay(epochDay)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%s: %w", c.name, err)
	}
	return y - c.isoOffset, m, d, nil
}

func (c *offsetChronology) ProlepticYear(era, yearOfEra int) (int, error) {
	switch era {
	case 1:
		return yearOfEra, nil
	case 0:
		return 1 - yearOfEra, nil
	}
	return 0, fmt.Errorf("%s: era %d not in 0 - 1: %w", c.name, era, chronology.ErrInvalidField)
}

func (c *offsetChronology) Era(year int) (era, yearOfEra int) {
	if year >= 1 {
		return 1, year
	}
	return 0, 1 - year
}
