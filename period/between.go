// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package period

import (
	"fmt"

	"cloudeng.io/chronology"
	"cloudeng.io/chronology/safemath"
)

// Between returns the period in years, months and days from start to
// end, such that adding the result to start via AddTo reproduces end
// exactly. The result is negative if end is before start. If the dates
// are in different calendar systems, end is first converted to start's.
func Between(start, end chronology.Date) (Period, error) {
	end, err := end.Convert(start.Chronology())
	if err != nil {
		return Zero, err
	}
	totalMonths := prolepticMonth(end) - prolepticMonth(start)
	days := int64(end.Day() - start.Day())
	if totalMonths > 0 && days < 0 {
		// Not a whole number of months; borrow one and recompute the day
		// delta against the borrowed month boundary.
		totalMonths--
		mid, err := addMonths(start, totalMonths)
		if err != nil {
			return Zero, err
		}
		days = end.EpochDay() - mid.EpochDay()
	} else if totalMonths < 0 && days > 0 {
		totalMonths++
		mid, err := addMonths(start, totalMonths)
		if err != nil {
			return Zero, err
		}
		days = end.EpochDay() - mid.EpochDay()
	}
	return Period{years: totalMonths / 12, months: totalMonths % 12, days: days}, nil
}

// AddTo adds a date-only period to a date: years and months first, with
// the day of month clamped to the target month's length, then days.
// Periods with time components cannot be applied to a date.
func AddTo(d chronology.Date, p Period) (chronology.Date, error) {
	if !p.IsDateOnly() {
		return chronology.Date{}, fmt.Errorf("period %v has time components: cannot be added to a date", p)
	}
	months, err := totalOf(p.years, p.months, 12)
	if err != nil {
		return chronology.Date{}, err
	}
	mid, err := addMonths(d, months)
	if err != nil {
		return chronology.Date{}, err
	}
	return mid.AddDays(p.days)
}

func prolepticMonth(d chronology.Date) int64 {
	return int64(d.Year())*12 + int64(d.Month()) - 1
}

// addMonths adds whole months, clamping the day of month to the length
// of the target month (adding one month to January 31 yields the last
// day of February).
func addMonths(d chronology.Date, months int64) (chronology.Date, error) {
	if months == 0 {
		return d, nil
	}
	ym, err := safemath.AddInt64(prolepticMonth(d), months)
	if err != nil {
		return chronology.Date{}, err
	}
	y := safemath.FloorDiv(ym, 12)
	m := int(safemath.FloorMod(ym, 12)) + 1
	yi, err := safemath.ToInt32(y)
	if err != nil {
		return chronology.Date{}, err
	}
	n, err := d.Chronology().LengthOfMonth(int(yi), m)
	if err != nil {
		return chronology.Date{}, err
	}
	day := d.Day()
	if day > n {
		day = n
	}
	return chronology.NewDate(d.Chronology(), int(yi), m, day)
}
