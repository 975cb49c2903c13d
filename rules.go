// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chronology

import (
	"fmt"

	"cloudeng.io/chronology/safemath"
)

// The resolution rules below rewrite redundant field combinations in
// terms of the fundamental fields year, month-of-year, day-of-month,
// hour-of-day, minute-of-hour, second-of-minute and nano-of-second.
// Each consumes the fields it reduces and leaves the fields it merely
// reads, so that a rule can fire at most once; re-derivation with a
// different value is flagged by Resolution.Put.

func resolveNanoOfDay(rc *Resolution) (bool, error) {
	vals, err := rc.Take(NanoOfDay)
	if err != nil {
		return false, err
	}
	v := vals[0]
	if err := rc.Put(HourOfDay, safemath.FloorDiv(v, 3600_000_000_000)); err != nil {
		return false, err
	}
	if err := rc.Put(MinuteOfHour, safemath.FloorMod(safemath.FloorDiv(v, 60_000_000_000), 60)); err != nil {
		return false, err
	}
	if err := rc.Put(SecondOfMinute, safemath.FloorMod(safemath.FloorDiv(v, 1_000_000_000), 60)); err != nil {
		return false, err
	}
	return true, rc.Put(NanoOfSecond, safemath.FloorMod(v, 1_000_000_000))
}

func resolveMicroOfDay(rc *Resolution) (bool, error) {
	vals, err := rc.Take(MicroOfDay)
	if err != nil {
		return false, err
	}
	if err := rc.Put(SecondOfDay, safemath.FloorDiv(vals[0], 1_000_000)); err != nil {
		return false, err
	}
	return true, rc.Put(MicroOfSecond, safemath.FloorMod(vals[0], 1_000_000))
}

func resolveMilliOfDay(rc *Resolution) (bool, error) {
	vals, err := rc.Take(MilliOfDay)
	if err != nil {
		return false, err
	}
	if err := rc.Put(SecondOfDay, safemath.FloorDiv(vals[0], 1000)); err != nil {
		return false, err
	}
	return true, rc.Put(MilliOfSecond, safemath.FloorMod(vals[0], 1000))
}

func resolveSecondOfDay(rc *Resolution) (bool, error) {
	vals, err := rc.Take(SecondOfDay)
	if err != nil {
		return false, err
	}
	v := vals[0]
	if err := rc.Put(HourOfDay, safemath.FloorDiv(v, 3600)); err != nil {
		return false, err
	}
	if err := rc.Put(MinuteOfHour, safemath.FloorMod(safemath.FloorDiv(v, 60), 60)); err != nil {
		return false, err
	}
	return true, rc.Put(SecondOfMinute, safemath.FloorMod(v, 60))
}

func resolveMinuteOfDay(rc *Resolution) (bool, error) {
	vals, err := rc.Take(MinuteOfDay)
	if err != nil {
		return false, err
	}
	if err := rc.Put(HourOfDay, safemath.FloorDiv(vals[0], 60)); err != nil {
		return false, err
	}
	return true, rc.Put(MinuteOfHour, safemath.FloorMod(vals[0], 60))
}

func resolveMicroOfSecond(rc *Resolution) (bool, error) {
	vals, err := rc.Take(MicroOfSecond)
	if err != nil {
		return false, err
	}
	return true, rc.Put(NanoOfSecond, vals[0]*1000)
}

func resolveMilliOfSecond(rc *Resolution) (bool, error) {
	vals, err := rc.Take(MilliOfSecond)
	if err != nil {
		return false, err
	}
	return true, rc.Put(NanoOfSecond, vals[0]*1_000_000)
}

// clock-hour-of-day runs 1-24 with 24 denoting midnight.
func resolveClockHourOfDay(rc *Resolution) (bool, error) {
	vals, err := rc.Take(ClockHourOfDay)
	if err != nil {
		return false, err
	}
	v := vals[0]
	if v == 24 {
		v = 0
	}
	return true, rc.Put(HourOfDay, v)
}

// clock-hour-of-am-pm runs 1-12 with 12 denoting the zeroth hour of the
// half day.
func resolveClockHourOfAMPM(rc *Resolution) (bool, error) {
	vals, err := rc.Take(ClockHourOfAMPM)
	if err != nil {
		return false, err
	}
	v := vals[0]
	if v == 12 {
		v = 0
	}
	return true, rc.Put(HourOfAMPM, v)
}

func resolveAMPM(rc *Resolution) (bool, error) {
	if !rc.Has(HourOfAMPM, AMPMOfDay) {
		return false, nil
	}
	vals, err := rc.Take(HourOfAMPM, AMPMOfDay)
	if err != nil {
		return false, err
	}
	return true, rc.Put(HourOfDay, vals[1]*12+vals[0])
}

func resolveEpochDay(rc *Resolution) (bool, error) {
	vals, err := rc.Take(EpochDay)
	if err != nil {
		return false, err
	}
	y, m, d, err := rc.Chronology().FromEpochDay(vals[0])
	if err != nil {
		return false, err
	}
	if err := rc.Put(Year, int64(y)); err != nil {
		return false, err
	}
	if err := rc.Put(MonthOfYear, int64(m)); err != nil {
		return false, err
	}
	return true, rc.Put(DayOfMonth, int64(d))
}

func resolveProlepticMonth(rc *Resolution) (bool, error) {
	vals, err := rc.Take(ProlepticMonth)
	if err != nil {
		return false, err
	}
	if err := rc.Put(Year, safemath.FloorDiv(vals[0], 12)); err != nil {
		return false, err
	}
	return true, rc.Put(MonthOfYear, safemath.FloorMod(vals[0], 12)+1)
}

func resolveYearOfEra(rc *Resolution) (bool, error) {
	if !rc.Has(Era, YearOfEra) {
		return false, nil
	}
	vals, err := rc.Take(Era, YearOfEra)
	if err != nil {
		return false, err
	}
	y, err := rc.Chronology().ProlepticYear(int(vals[0]), int(vals[1]))
	if err != nil {
		return false, err
	}
	return true, rc.Put(Year, int64(y))
}

func resolveOffsetSeconds(rc *Resolution) (bool, error) {
	vals, err := rc.Take(OffsetSeconds)
	if err != nil {
		return false, err
	}
	off, err := NewOffset(int(vals[0]))
	if err != nil {
		return false, err
	}
	return true, rc.PutObject(off)
}

// resolveDateCombinations reduces the redundant date field combinations
// one step at a time; the work list re-invokes it until none applies.
// The order mirrors the reduction chains: aligned week and day fields
// reduce to day-of-year or day-of-month, day-of-year reduces to month
// and day, and a complete year, month, day triple becomes a validated
// Date.
func resolveDateCombinations(rc *Resolution) (bool, error) {
	for _, combo := range []func(*Resolution) (bool, error){
		resolveAlignedYear,
		resolveAlignedMonth,
		resolveWeekdayInYear,
		resolveWeekdayInMonth,
		resolveDayOfYear,
		resolveDate,
	} {
		fired, err := combo(rc)
		if fired || err != nil {
			return fired, err
		}
	}
	return false, nil
}

// (year, aligned-week-of-year, aligned-day-of-week-in-year) denotes the
// ((aw-1)*7 + ad)'th day of the year, with weeks pinned to January 1st.
func resolveAlignedYear(rc *Resolution) (bool, error) {
	if !rc.Has(Year, AlignedWeekOfYear, AlignedDayOfWeekInYear) {
		return false, nil
	}
	vals, err := rc.Take(AlignedWeekOfYear, AlignedDayOfWeekInYear)
	if err != nil {
		return false, err
	}
	return true, rc.Put(DayOfYear, (vals[0]-1)*7+vals[1])
}

func resolveAlignedMonth(rc *Resolution) (bool, error) {
	if !rc.Has(Year, MonthOfYear, AlignedWeekOfMonth, AlignedDayOfWeekInMonth) {
		return false, nil
	}
	vals, err := rc.Take(AlignedWeekOfMonth, AlignedDayOfWeekInMonth)
	if err != nil {
		return false, err
	}
	return true, rc.Put(DayOfMonth, (vals[0]-1)*7+vals[1])
}

// (year, aligned-week-of-year, day-of-week) resolves by searching
// forward from the start of the aligned week to the next or same
// matching weekday.
func resolveWeekdayInYear(rc *Resolution) (bool, error) {
	if !rc.Has(Year, AlignedWeekOfYear, DayOfWeek) {
		return false, nil
	}
	year, err := rc.Get(Year)
	if err != nil {
		return false, err
	}
	vals, err := rc.Take(AlignedWeekOfYear, DayOfWeek)
	if err != nil {
		return false, err
	}
	start, err := rc.Chronology().EpochDay(int(year), 1, 1)
	if err != nil {
		return false, err
	}
	return weekdaySearch(rc, start+(vals[0]-1)*7, Weekday(vals[1]), int(year), 0)
}

func resolveWeekdayInMonth(rc *Resolution) (bool, error) {
	if !rc.Has(Year, MonthOfYear, AlignedWeekOfMonth, DayOfWeek) {
		return false, nil
	}
	year, err := rc.Get(Year)
	if err != nil {
		return false, err
	}
	month, err := rc.Get(MonthOfYear)
	if err != nil {
		return false, err
	}
	vals, err := rc.Take(AlignedWeekOfMonth, DayOfWeek)
	if err != nil {
		return false, err
	}
	start, err := rc.Chronology().EpochDay(int(year), int(month), 1)
	if err != nil {
		return false, err
	}
	return weekdaySearch(rc, start+(vals[0]-1)*7, Weekday(vals[1]), int(year), int(month))
}

func weekdaySearch(rc *Resolution, weekStart int64, target Weekday, year, month int) (bool, error) {
	ed := weekStart + safemath.FloorMod(int64(target-WeekdayOfEpochDay(weekStart)), 7)
	y, m, d, err := rc.Chronology().FromEpochDay(ed)
	if err != nil {
		return false, err
	}
	if y != year || (month != 0 && m != month) {
		return false, fmt.Errorf("%v in week starting at epoch day %d falls outside the input year or month: %w",
			target, weekStart, ErrInvalidField)
	}
	if err := rc.Put(MonthOfYear, int64(m)); err != nil {
		return false, err
	}
	return true, rc.Put(DayOfMonth, int64(d))
}

func resolveDayOfYear(rc *Resolution) (bool, error) {
	if !rc.Has(Year, DayOfYear) {
		return false, nil
	}
	year, err := rc.Get(Year)
	if err != nil {
		return false, err
	}
	vals, err := rc.Take(DayOfYear)
	if err != nil {
		return false, err
	}
	date, err := DateFromYearDay(rc.Chronology(), int(year), int(vals[0]))
	if err != nil {
		return false, err
	}
	if err := rc.Put(MonthOfYear, int64(date.Month())); err != nil {
		return false, err
	}
	return true, rc.Put(DayOfMonth, int64(date.Day()))
}

// A complete (year, month-of-year, day-of-month) triple becomes a
// validated Date; the calendar rejects impossible combinations such as
// April 31.
func resolveDate(rc *Resolution) (bool, error) {
	if !rc.Has(Year, MonthOfYear, DayOfMonth) {
		return false, nil
	}
	vals, err := rc.Take(Year, MonthOfYear, DayOfMonth)
	if err != nil {
		return false, err
	}
	date, err := NewDate(rc.Chronology(), int(vals[0]), int(vals[1]), int(vals[2]))
	if err != nil {
		return false, err
	}
	return true, rc.PutObject(date)
}
