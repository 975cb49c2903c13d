// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chronology

import (
	"fmt"
	"strconv"
	"strings"
)

// maxOffsetSeconds is 18 hours either side of UTC.
const maxOffsetSeconds = 18 * 3600

// Offset is a fixed offset from UTC in seconds, in the range +/-18 hours.
// The zero value is UTC.
type Offset struct {
	seconds int
}

// NewOffset creates an Offset from a total number of seconds.
func NewOffset(seconds int) (Offset, error) {
	if seconds < -maxOffsetSeconds || seconds > maxOffsetSeconds {
		return Offset{}, fmt.Errorf("offset %d not in -64800 - 64800 seconds: %w", seconds, ErrInvalidField)
	}
	return Offset{seconds: seconds}, nil
}

// OffsetOf creates an Offset from hour, minute and second components,
// which must all carry the same sign.
func OffsetOf(hours, minutes, seconds int) (Offset, error) {
	if (hours < 0 || minutes < 0 || seconds < 0) && (hours > 0 || minutes > 0 || seconds > 0) {
		return Offset{}, fmt.Errorf("offset components differ in sign: %d:%d:%d: %w",
			hours, minutes, seconds, ErrInvalidField)
	}
	if minutes < -59 || minutes > 59 || seconds < -59 || seconds > 59 {
		return Offset{}, fmt.Errorf("invalid offset minutes or seconds: %d:%d:%d: %w",
			hours, minutes, seconds, ErrInvalidField)
	}
	return NewOffset(hours*3600 + minutes*60 + seconds)
}

// Seconds returns the total offset in seconds.
func (o Offset) Seconds() int { return o.seconds }

// String formats the offset as 'Z', '+08:00', '-05:30' or, when the
// offset is not a whole number of minutes, '+05:30:30'.
func (o Offset) String() string {
	if o.seconds == 0 {
		return "Z"
	}
	s, sign := o.seconds, "+"
	if s < 0 {
		s, sign = -s, "-"
	}
	if s%60 == 0 {
		return fmt.Sprintf("%s%02d:%02d", sign, s/3600, s/60%60)
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, s/3600, s/60%60, s%60)
}

// Parse val in the formats produced by String: 'Z', 'z', '+08:00',
// '-0530', '+05:30:30'.
func (o *Offset) Parse(val string) error {
	v := strings.TrimSpace(val)
	if v == "Z" || v == "z" {
		*o = Offset{}
		return nil
	}
	if len(v) < 3 || (v[0] != '+' && v[0] != '-') {
		return fmt.Errorf("invalid offset %q, expected 'Z', '+08:00' or '-0530'", val)
	}
	sign := 1
	if v[0] == '-' {
		sign = -1
	}
	parts := strings.Split(v[1:], ":")
	if len(parts) == 1 && len(parts[0]) == 4 {
		parts = []string{parts[0][:2], parts[0][2:]}
	}
	if len(parts) > 3 {
		return fmt.Errorf("invalid offset %q, expected 'Z', '+08:00' or '-0530'", val)
	}
	var hms [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid offset component %q in %q", p, val)
		}
		hms[i] = n
	}
	off, err := OffsetOf(sign*hms[0], sign*hms[1], sign*hms[2])
	if err != nil {
		return err
	}
	*o = off
	return nil
}
