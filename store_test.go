// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chronology_test

import (
	"errors"
	"testing"

	"cloudeng.io/chronology"
	"cloudeng.io/chronology/calendar"
)

func TestStore(t *testing.T) {
	s := chronology.NewStore()
	if err := s.Add(chronology.Year, 2012); err != nil {
		t.Fatal(err)
	}
	// Re-adding an equal value is a no-op.
	if err := s.Add(chronology.Year, 2012); err != nil {
		t.Fatal(err)
	}
	// Re-adding a different value is a conflict.
	if err := s.Add(chronology.Year, 2013); !errors.Is(err, chronology.ErrConflictingField) {
		t.Errorf("got %v, want %v", err, chronology.ErrConflictingField)
	}
	v, err := s.Get(chronology.Year)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := v, int64(2012); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := s.Get(chronology.MonthOfYear); !errors.Is(err, chronology.ErrFieldNotFound) {
		t.Errorf("got %v, want %v", err, chronology.ErrFieldNotFound)
	}
	if !s.Contains(chronology.Year) || s.Contains(chronology.MonthOfYear) {
		t.Errorf("contains misreported for %v", s)
	}
	v, err = s.Remove(chronology.Year)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := v, int64(2012); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := s.Remove(chronology.Year); !errors.Is(err, chronology.ErrFieldNotFound) {
		t.Errorf("got %v, want %v", err, chronology.ErrFieldNotFound)
	}
	if got, want := s.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestStoreOrder(t *testing.T) {
	s := newStore(t,
		fieldValue{chronology.DayOfMonth, 1},
		fieldValue{chronology.Year, 2012},
		fieldValue{chronology.MonthOfYear, 3})
	var fields []*chronology.Field
	var values []int64
	for f, v := range s.Fields() {
		fields = append(fields, f)
		values = append(values, v)
	}
	want := []*chronology.Field{chronology.DayOfMonth, chronology.Year, chronology.MonthOfYear}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("%v: got %v, want %v", i, fields[i], want[i])
		}
	}
	if values[0] != 1 || values[1] != 2012 || values[2] != 3 {
		t.Errorf("got %v, want [1 2012 3]", values)
	}
	if got, want := s.String(), "{day-of-month=1, year=2012, month-of-year=3}"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestStoreObjects(t *testing.T) {
	s := chronology.NewStore()
	off, err := chronology.NewOffset(3600)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AddObject(off); err != nil {
		t.Fatal(err)
	}
	// An equal object of the same type is a no-op.
	if err := s.AddObject(off); err != nil {
		t.Fatal(err)
	}
	other, err := chronology.NewOffset(7200)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AddObject(other); !errors.Is(err, chronology.ErrConflictingObject) {
		t.Errorf("got %v, want %v", err, chronology.ErrConflictingObject)
	}
	// Objects of different types coexist.
	date, err := chronology.NewDate(calendar.ISO(), 2012, 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AddObject(date); err != nil {
		t.Fatal(err)
	}
	got, ok := chronology.Object[chronology.Offset](s)
	if !ok || got != off {
		t.Errorf("got %v, %v, want %v, true", got, ok, off)
	}
	d, ok := chronology.Object[chronology.Date](s)
	if !ok || !d.Equal(date) {
		t.Errorf("got %v, %v, want %v, true", d, ok, date)
	}
	if got, want := len(s.Objects()), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, ok := chronology.Object[chronology.TimeOfDay](s); ok {
		t.Error("unexpected time of day object")
	}
}

func TestFieldCatalog(t *testing.T) {
	fields := chronology.Fields()
	if len(fields) < 29 {
		t.Fatalf("got %v fields", len(fields))
	}
	for _, f := range fields {
		if got := chronology.LookupField(f.Name()); got != f {
			t.Errorf("%v: lookup returned %v", f, got)
		}
	}
	if got := chronology.LookupField("no-such-field"); got != nil {
		t.Errorf("got %v, want nil", got)
	}
	if got, want := chronology.HourOfDay.BaseUnit(), chronology.Hours; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := chronology.HourOfDay.RangeUnit(), chronology.Days; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRegisterField(t *testing.T) {
	rng := chronology.NewRange(0, 9)
	f, err := chronology.RegisterField("decisecond-of-second", chronology.Nanos, chronology.Seconds, rng, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := chronology.LookupField("decisecond-of-second"); got != f {
		t.Errorf("got %v, want %v", got, f)
	}
	if _, err := chronology.RegisterField("decisecond-of-second", chronology.Nanos, chronology.Seconds, rng, nil); err == nil {
		t.Error("missing error for duplicate registration")
	}
	// A field with no resolution rule passes through to Remaining.
	res, err := chronology.Resolve(newStore(t, fieldValue{f, 5}), calendar.ISO())
	if err != nil {
		t.Fatal(err)
	}
	if !res.Remaining.Contains(f) {
		t.Errorf("%v missing from remaining fields: %v", f, res.Remaining)
	}
}

func TestRanges(t *testing.T) {
	fixed := chronology.NewRange(1, 12)
	if !fixed.IsFixed() {
		t.Error("expected a fixed range")
	}
	if !fixed.Contains(1) || !fixed.Contains(12) || fixed.Contains(0) || fixed.Contains(13) {
		t.Errorf("contains misreported for %v", fixed)
	}
	variable := chronology.NewVariableRange(1, 28, 31)
	if variable.IsFixed() {
		t.Error("expected a variable range")
	}
	// Static checks admit any value up to the largest maximum.
	if !variable.Contains(31) || variable.Contains(32) {
		t.Errorf("contains misreported for %v", variable)
	}
	if got, want := variable.String(), "1 - 28/31"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := fixed.Check(chronology.MonthOfYear, 13); !errors.Is(err, chronology.ErrInvalidField) {
		t.Errorf("got %v, want %v", err, chronology.ErrInvalidField)
	}
	if err := fixed.Check(chronology.MonthOfYear, 12); err != nil {
		t.Fatal(err)
	}
}
