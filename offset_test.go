// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chronology_test

import (
	"errors"
	"testing"

	"cloudeng.io/chronology"
)

func TestOffsets(t *testing.T) {
	for i, tc := range []struct {
		hours, minutes, seconds int
		want                    string
	}{
		{0, 0, 0, "Z"},
		{8, 0, 0, "+08:00"},
		{-5, -30, 0, "-05:30"},
		{5, 30, 30, "+05:30:30"},
		{18, 0, 0, "+18:00"},
		{-18, 0, 0, "-18:00"},
	} {
		off, err := chronology.OffsetOf(tc.hours, tc.minutes, tc.seconds)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := off.String(), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := off.Seconds(), tc.hours*3600+tc.minutes*60+tc.seconds; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
	for i, tc := range []struct{ hours, minutes, seconds int }{
		{19, 0, 0},
		{-19, 0, 0},
		{18, 0, 1},
		{5, -30, 0},
		{0, 60, 0},
		{0, 0, -60},
	} {
		if _, err := chronology.OffsetOf(tc.hours, tc.minutes, tc.seconds); !errors.Is(err, chronology.ErrInvalidField) {
			t.Errorf("%v: got %v, want %v", i, err, chronology.ErrInvalidField)
		}
	}
}

func TestOffsetParse(t *testing.T) {
	for i, tc := range []struct {
		input string
		want  string
	}{
		{"Z", "Z"},
		{"z", "Z"},
		{"+08:00", "+08:00"},
		{"-0530", "-05:30"},
		{"+05:30:30", "+05:30:30"},
		{"-18:00", "-18:00"},
	} {
		var off chronology.Offset
		if err := off.Parse(tc.input); err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := off.String(), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
	for i, input := range []string{
		"", "8", "08:00", "+x", "+08:x", "+08:00:00:00", "+19:00", "+08:-30",
	} {
		var off chronology.Offset
		if err := off.Parse(input); err == nil {
			t.Errorf("%v: missing error for %q", i, input)
		}
	}
}
