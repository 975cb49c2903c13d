// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chronology

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay represents a time of day with nanosecond precision. The zero
// value is midnight.
type TimeOfDay struct {
	hour   int
	minute int
	second int
	nano   int
}

// NewTimeOfDay creates a TimeOfDay from the specified hour, minute,
// second and nanosecond, validating each component's range.
func NewTimeOfDay(hour, minute, second, nano int) (TimeOfDay, error) {
	switch {
	case hour < 0 || hour > 23:
		return TimeOfDay{}, fmt.Errorf("hour %d not in 0 - 23: %w", hour, ErrInvalidField)
	case minute < 0 || minute > 59:
		return TimeOfDay{}, fmt.Errorf("minute %d not in 0 - 59: %w", minute, ErrInvalidField)
	case second < 0 || second > 59:
		return TimeOfDay{}, fmt.Errorf("second %d not in 0 - 59: %w", second, ErrInvalidField)
	case nano < 0 || nano > 999_999_999:
		return TimeOfDay{}, fmt.Errorf("nanosecond %d not in 0 - 999999999: %w", nano, ErrInvalidField)
	}
	return TimeOfDay{hour: hour, minute: minute, second: second, nano: nano}, nil
}

func (t TimeOfDay) Hour() int { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }
func (t TimeOfDay) Second() int { return t.second }
func (t TimeOfDay) Nano() int { return t.nano }

// SecondOfDay returns the number of whole seconds since midnight.
func (t TimeOfDay) SecondOfDay() int {
	return t.hour*3600 + t.minute*60 + t.second
}

// NanoOfDay returns the number of nanoseconds since midnight.
func (t TimeOfDay) NanoOfDay() int64 {
	return int64(t.SecondOfDay())*1_000_000_000 + int64(t.nano)
}

func (t TimeOfDay) String() string {
	if t.nano == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
	}
	frac := strings.TrimRight(fmt.Sprintf("%09d", t.nano), "0")
	return fmt.Sprintf("%02d:%02d:%02d.%s", t.hour, t.minute, t.second, frac)
}

// Parse val in the formats '15', '15:04', '15:04:05' or '15:04:05.999'.
func (t *TimeOfDay) Parse(val string) error {
	v := strings.TrimSpace(val)
	if len(v) == 0 {
		return fmt.Errorf("empty value, expected '15:04[:05[.999]]'")
	}
	nano := 0
	if dot := strings.IndexByte(v, '.'); dot >= 0 {
		frac := v[dot+1:]
		if len(frac) == 0 || len(frac) > 9 {
			return fmt.Errorf("invalid fractional second: %q", val)
		}
		n, err := strconv.Atoi(frac)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid fractional second: %q", val)
		}
		for i := len(frac); i < 9; i++ {
			n *= 10
		}
		nano = n
		v = v[:dot]
	}
	parts := strings.Split(v, ":")
	if len(parts) > 3 {
		return fmt.Errorf("invalid time %q, expected '15:04[:05[.999]]'", val)
	}
	var hms [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid time component %q in %q", p, val)
		}
		hms[i] = n
	}
	tod, err := NewTimeOfDay(hms[0], hms[1], hms[2], nano)
	if err != nil {
		return err
	}
	*t = tod
	return nil
}
