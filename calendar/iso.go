// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar implements the chronology.Chronology interface for
// the ISO, Hijrah, Minguo and Thai Buddhist calendar systems.
package calendar

import (
	"fmt"

	"cloudeng.io/chronology"
)

const (
	minYear = -999_999_999
	maxYear = 999_999_999

	// Epoch day limits corresponding to minYear-01-01 and maxYear-12-31.
	minEpochDay = -365_243_219_162
	maxEpochDay = 365_241_780_471

	// Days from 0000-01-01 to the 1970-01-01 epoch.
	days0000To1970 = 719_528
	// Days in a 400 year Gregorian cycle.
	daysPerCycle = 146_097
)

type iso struct{}

// ISO returns the ISO-8601 proleptic Gregorian calendar system.
func ISO() chronology.Chronology { return iso{} }

func (iso) Name() string { return "iso" }

func (iso) IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func (c iso) LengthOfMonth(year, month int) (int, error) {
	if err := checkYearMonth(c, year, month); err != nil {
		return 0, err
	}
	switch month {
	case 2:
		if c.IsLeapYear(year) {
			return 29, nil
		}
		return 28, nil
	case 4, 6, 9, 11:
		return 30, nil
	}
	return 31, nil
}

func (c iso) LengthOfYear(year int) int {
	if c.IsLeapYear(year) {
		return 366
	}
	return 365
}

func (c iso) EpochDay(year, month, day int) (int64, error) {
	if err := checkDate(c, year, month, day); err != nil {
		return 0, err
	}
	y := int64(year)
	total := 365 * y
	if y >= 0 {
		total += (y+3)/4 - (y+99)/100 + (y+399)/400
	} else {
		total -= y/-4 - y/-100 + y/-400
	}
	total += int64((367*month - 362) / 12)
	total += int64(day - 1)
	if month > 2 {
		total--
		if !c.IsLeapYear(year) {
			total--
		}
	}
	return total - days0000To1970, nil
}

func (c iso) FromEpochDay(epochDay int64) (year, month, day int, err error) {
	if epochDay < minEpochDay || epochDay > maxEpochDay {
		return 0, 0, 0, fmt.Errorf("iso: epoch day %d not in %d - %d: %w",
			epochDay, int64(minEpochDay), int64(maxEpochDay), chronology.ErrInvalidField)
	}
	// Shift to a cycle starting 0000-03-01 so leap days fall at the end.
	zeroDay := epochDay + days0000To1970 - 60
	var adjust int64
	if zeroDay < 0 {
		adjustCycles := (zeroDay+1)/daysPerCycle - 1
		adjust = adjustCycles * 400
		zeroDay += -adjustCycles * daysPerCycle
	}
	yearEst := (400*zeroDay + 591) / daysPerCycle
	doyEst := zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	if doyEst < 0 {
		yearEst--
		doyEst = zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	}
	yearEst += adjust
	marchMonth0 := (doyEst*5 + 2) / 153
	month = int((marchMonth0+2)%12) + 1
	day = int(doyEst - (marchMonth0*306+5)/10 + 1)
	yearEst += marchMonth0 / 10
	return int(yearEst), month, day, nil
}

func (iso) ProlepticYear(era, yearOfEra int) (int, error) {
	switch era {
	case 1:
		return yearOfEra, nil
	case 0:
		return 1 - yearOfEra, nil
	}
	return 0, fmt.Errorf("iso: era %d not in 0 - 1: %w", era, chronology.ErrInvalidField)
}

func (iso) Era(year int) (era, yearOfEra int) {
	if year >= 1 {
		return 1, year
	}
	return 0, 1 - year
}

func checkYearMonth(c chronology.Chronology, year, month int) error {
	if year < minYear || year > maxYear {
		return fmt.Errorf("%s: year %d not in %d - %d: %w",
			c.Name(), year, minYear, maxYear, chronology.ErrInvalidField)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("%s: month %d not in 1 - 12: %w",
			c.Name(), month, chronology.ErrInvalidField)
	}
	return nil
}

func checkDate(c chronology.Chronology, year, month, day int) error {
	n, err := c.LengthOfMonth(year, month)
	if err != nil {
		return err
	}
	if day < 1 || day > n {
		return fmt.Errorf("%s: day %d not in 1 - %d for %d-%02d: %w",
			c.Name(), day, n, year, month, chronology.ErrInvalidField)
	}
	return nil
}
