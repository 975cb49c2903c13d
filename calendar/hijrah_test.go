// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"strings"
	"testing"

	"cloudeng.io/chronology"
	"cloudeng.io/chronology/calendar"
)

func TestHijrahEpoch(t *testing.T) {
	h := calendar.NewHijrah()
	ed, err := h.EpochDay(1, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	// 1 Muharram AH 1, Friday 16 July 622 in the Julian calendar.
	if got, want := ed, int64(-492_148); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := chronology.WeekdayOfEpochDay(ed), chronology.Friday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestHijrahDates(t *testing.T) {
	h := calendar.NewHijrah()
	for i, tc := range []struct {
		year, month, day int
		epochDay         int64
	}{
		{1, 1, 1, -492_148},
		{1, 12, 29, -491_795},
		{2, 1, 1, -491_794},
		{29, 12, 30, -481_872},
		{30, 1, 1, -481_871},
		{31, 1, 1, -481_517},
		{1433, 1, 1, 15_305},
		{1433, 4, 7, 15_400},
	} {
		ed, err := h.EpochDay(tc.year, tc.month, tc.day)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := ed, tc.epochDay; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		y, m, d, err := h.FromEpochDay(tc.epochDay)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if y != tc.year || m != tc.month || d != tc.day {
			t.Errorf("%v: got %v-%v-%v, want %v-%v-%v", i, y, m, d, tc.year, tc.month, tc.day)
		}
	}
}

func TestHijrahLeapYears(t *testing.T) {
	h := calendar.NewHijrah()
	// Leap years fall on years 2, 5, 7, 10, 13, 16, 18, 21, 24, 26 and
	// 29 of each 30 year cycle.
	for _, tc := range []struct {
		year int
		leap bool
	}{
		{1, false},
		{2, true},
		{29, true},
		{30, false},
		{32, true},
		{1431, true},
		{1432, false},
		{1433, false},
	} {
		if got, want := h.IsLeapYear(tc.year), tc.leap; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
	if got, want := h.LengthOfYear(1431), 355; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := h.LengthOfYear(1433), 354; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestHijrahMonthLengths(t *testing.T) {
	h := calendar.NewHijrah()
	// Months alternate 30 and 29 days; the final month has 30 in a leap
	// year.
	for m := 1; m <= 12; m++ {
		want := 30
		if m%2 == 0 {
			want = 29
		}
		n, err := h.LengthOfMonth(1433, m)
		if err != nil {
			t.Fatal(err)
		}
		if got := n; got != want {
			t.Errorf("%v: got %v, want %v", m, got, want)
		}
	}
	n, err := h.LengthOfMonth(1431, 12)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := n, 30; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestHijrahRange(t *testing.T) {
	h := calendar.NewHijrah()
	for i, tc := range []struct {
		year, month, day int
	}{
		{0, 1, 1},
		{10_000, 1, 1},
		{1433, 13, 1},
		{1433, 2, 30},
		{1433, 12, 30},
	} {
		if _, err := h.EpochDay(tc.year, tc.month, tc.day); !errors.Is(err, chronology.ErrInvalidField) {
			t.Errorf("%v: got %v, want %v", i, err, chronology.ErrInvalidField)
		}
	}
	if _, _, _, err := h.FromEpochDay(-492_149); !errors.Is(err, chronology.ErrInvalidField) {
		t.Errorf("got %v, want %v", err, chronology.ErrInvalidField)
	}
	if _, err := h.ProlepticYear(0, 1433); !errors.Is(err, chronology.ErrInvalidField) {
		t.Errorf("got %v, want %v", err, chronology.ErrInvalidField)
	}
	y, err := h.ProlepticYear(1, 1433)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := y, 1433; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestHijrahDeviations(t *testing.T) {
	// Start month 4 of 1433 one day later than the arithmetic base: the
	// preceding month gains a day, the deviated month loses one and the
	// calendar realigns from month 5 onwards.
	dt, err := calendar.NewDeviationTable(calendar.Deviation{
		StartYear: 1433, StartMonth: 4, EndYear: 1433, EndMonth: 4, Offset: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	h := calendar.NewHijrah(calendar.WithDeviations(dt))
	base := calendar.NewHijrah()

	n, err := h.LengthOfMonth(1433, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := n, 31; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	n, err = h.LengthOfMonth(1433, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := n, 28; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	baseStart, err := base.EpochDay(1433, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	devStart, err := h.EpochDay(1433, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := devStart, baseStart+1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// The base month start now falls on the last day of month 3.
	y, m, d, err := h.FromEpochDay(baseStart)
	if err != nil {
		t.Fatal(err)
	}
	if y != 1433 || m != 3 || d != 31 {
		t.Errorf("got %v-%v-%v, want 1433-3-31", y, m, d)
	}
	// Outside the deviated range the calendars agree.
	for _, ym := range []struct{ y, m int }{{1433, 2}, {1433, 5}, {1432, 12}, {1434, 1}} {
		be, err := base.EpochDay(ym.y, ym.m, 1)
		if err != nil {
			t.Fatal(err)
		}
		de, err := h.EpochDay(ym.y, ym.m, 1)
		if err != nil {
			t.Fatal(err)
		}
		if be != de {
			t.Errorf("%v-%v: got %v, want %v", ym.y, ym.m, de, be)
		}
	}
	// Round trips hold with deviations applied.
	for ed := devStart - 40; ed < devStart+40; ed++ {
		y, m, d, err := h.FromEpochDay(ed)
		if err != nil {
			t.Fatal(err)
		}
		back, err := h.EpochDay(y, m, d)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := back, ed; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestDeviationValidation(t *testing.T) {
	for i, tc := range []calendar.Deviation{
		{StartYear: 0, StartMonth: 1, EndYear: 1, EndMonth: 1, Offset: 1},
		{StartYear: 1433, StartMonth: 13, EndYear: 1433, EndMonth: 13, Offset: 1},
		{StartYear: 1433, StartMonth: 4, EndYear: 1433, EndMonth: 3, Offset: 1},
		{StartYear: 1433, StartMonth: 4, EndYear: 1433, EndMonth: 4, Offset: 0},
		{StartYear: 1433, StartMonth: 4, EndYear: 1433, EndMonth: 4, Offset: 3},
	} {
		if _, err := calendar.NewDeviationTable(tc); !errors.Is(err, chronology.ErrInvalidField) {
			t.Errorf("%v: got %v, want %v", i, err, chronology.ErrInvalidField)
		}
	}
	// All failures are reported, not just the first.
	_, err := calendar.NewDeviationTable(
		calendar.Deviation{StartYear: 1433, StartMonth: 13, EndYear: 1433, EndMonth: 13, Offset: 1},
		calendar.Deviation{StartYear: 1433, StartMonth: 4, EndYear: 1433, EndMonth: 4, Offset: 3},
	)
	if err == nil {
		t.Fatal("missing error")
	}
	if got := err.Error(); !strings.Contains(got, "month") || !strings.Contains(got, "offset") {
		t.Errorf("expected both failures in %q", got)
	}
}

func TestParseDeviations(t *testing.T) {
	dt, err := calendar.ParseDeviations([]byte(`
# month starts decreed for 1433
1433/4-1433/4:1
1433/9-1433/10:-1
`))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(dt.Deviations()), 2; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := dt.Deviations()[0].String(), "1433/4-1433/4:1"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	_, err = calendar.ParseDeviations([]byte("1433/4-1433/4\nnot-a-deviation:x\n"))
	if err == nil {
		t.Fatal("missing error")
	}
	for _, want := range []string{"line 1", "line 2"} {
		if got := err.Error(); !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}
