// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"bufio"
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"cloudeng.io/chronology"
	"cloudeng.io/errors"
)

// Deviation shifts every month start in the inclusive range
// [StartYear/StartMonth, EndYear/EndMonth] by Offset days. The month
// preceding the range is thereby lengthened by Offset and the final
// month of the range shortened by it, so the calendar stays aligned with
// the arithmetic base outside the range.
type Deviation struct {
	StartYear  int
	StartMonth int
	EndYear    int
	EndMonth   int
	Offset     int
}

func (d Deviation) String() string {
	return fmt.Sprintf("%d/%d-%d/%d:%d", d.StartYear, d.StartMonth, d.EndYear, d.EndMonth, d.Offset)
}

func (d Deviation) validate() error {
	if d.StartYear < hijrahMinYear || d.StartYear > hijrahMaxYear ||
		d.EndYear < hijrahMinYear || d.EndYear > hijrahMaxYear {
		return fmt.Errorf("deviation %v: year not in %d - %d: %w",
			d, hijrahMinYear, hijrahMaxYear, chronology.ErrInvalidField)
	}
	if d.StartMonth < 1 || d.StartMonth > 12 || d.EndMonth < 1 || d.EndMonth > 12 {
		return fmt.Errorf("deviation %v: month not in 1 - 12: %w", d, chronology.ErrInvalidField)
	}
	if d.StartYear*12+d.StartMonth > d.EndYear*12+d.EndMonth {
		return fmt.Errorf("deviation %v: start is after end: %w", d, chronology.ErrInvalidField)
	}
	switch d.Offset {
	case -2, -1, 1, 2:
		return nil
	}
	return fmt.Errorf("deviation %v: offset %d not one of -2, -1, 1, 2: %w",
		d, d.Offset, chronology.ErrInvalidField)
}

// covers returns true if the deviation's range includes year/month.
func (d Deviation) covers(year, month int) bool {
	ym := year*12 + month
	return ym >= d.StartYear*12+d.StartMonth && ym <= d.EndYear*12+d.EndMonth
}

// DeviationTable is an immutable set of deviations applied to the
// arithmetic Hijrah base calendar. It is built once, before the Hijrah
// chronology using it is shared, and read-only thereafter.
type DeviationTable struct {
	entries []Deviation
}

// NewDeviationTable validates the supplied deviations and returns a
// table. All validation failures are reported, not just the first.
func NewDeviationTable(devs ...Deviation) (*DeviationTable, error) {
	errs := &errors.M{}
	for _, d := range devs {
		errs.Append(d.validate())
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	entries := make([]Deviation, len(devs))
	copy(entries, devs)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].StartYear*12+entries[i].StartMonth <
			entries[j].StartYear*12+entries[j].StartMonth
	})
	return &DeviationTable{entries: entries}, nil
}

// Deviations returns the table's entries sorted by start.
func (dt *DeviationTable) Deviations() []Deviation {
	if dt == nil {
		return nil
	}
	r := make([]Deviation, len(dt.entries))
	copy(r, dt.entries)
	return r
}

// offset returns the total shift of the start of the given month. A nil
// table shifts nothing.
func (dt *DeviationTable) offset(year, month int) int64 {
	if dt == nil {
		return 0
	}
	var total int64
	for _, d := range dt.entries {
		if d.covers(year, month) {
			total += int64(d.Offset)
		}
	}
	return total
}

// ParseDeviations reads a deviation table from its line-oriented text
// form, one deviation per line in the format
// 'StartYear/StartMonth-EndYear/EndMonth:Offset' with months numbered
// 1-12. Blank lines and lines starting with '#' are ignored. All
// malformed lines are reported, with line numbers, not just the first.
func ParseDeviations(data []byte) (*DeviationTable, error) {
	errs := &errors.M{}
	var devs []Deviation
	sc := bufio.NewScanner(bytes.NewReader(data))
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		d, err := parseDeviation(line)
		if err != nil {
			errs.Append(fmt.Errorf("line %d: %w", n, err))
			continue
		}
		devs = append(devs, d)
	}
	errs.Append(sc.Err())
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return NewDeviationTable(devs...)
}

func parseDeviation(line string) (Deviation, error) {
	rng, offset, ok := strings.Cut(line, ":")
	if !ok {
		return Deviation{}, fmt.Errorf("%q: expected 'start-end:offset'", line)
	}
	start, end, ok := strings.Cut(rng, "-")
	if !ok {
		return Deviation{}, fmt.Errorf("%q: expected 'year/month-year/month'", line)
	}
	sy, sm, err := parseYearMonth(start)
	if err != nil {
		return Deviation{}, err
	}
	ey, em, err := parseYearMonth(end)
	if err != nil {
		return Deviation{}, err
	}
	off, err := strconv.Atoi(strings.TrimSpace(offset))
	if err != nil {
		return Deviation{}, fmt.Errorf("invalid offset %q", offset)
	}
	return Deviation{StartYear: sy, StartMonth: sm, EndYear: ey, EndMonth: em, Offset: off}, nil
}

func parseYearMonth(val string) (year, month int, err error) {
	y, m, ok := strings.Cut(strings.TrimSpace(val), "/")
	if !ok {
		return 0, 0, fmt.Errorf("invalid year/month %q", val)
	}
	if year, err = strconv.Atoi(y); err != nil {
		return 0, 0, fmt.Errorf("invalid year %q", y)
	}
	if month, err = strconv.Atoi(m); err != nil {
		return 0, 0, fmt.Errorf("invalid month %q", m)
	}
	return year, month, nil
}
