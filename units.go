// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chronology

// Unit identifies a standard unit of date-time measurement. Units order
// from smallest to largest so that they may be compared directly.
type Unit int

const (
	Nanos Unit = iota
	Micros
	Millis
	Seconds
	Minutes
	Hours
	HalfDays
	Days
	Weeks
	Months
	Years
	Eras
	Forever
)

var unitNames = []string{
	"nanos", "micros", "millis", "seconds", "minutes", "hours",
	"half-days", "days", "weeks", "months", "years", "eras", "forever",
}

func (u Unit) String() string {
	if u < Nanos || u > Forever {
		return "unknown"
	}
	return unitNames[u]
}

// IsTimeBased returns true for units smaller than a day.
func (u Unit) IsTimeBased() bool {
	return u < Days
}

// IsDateBased returns true for units of a day or larger, excluding Forever.
func (u Unit) IsDateBased() bool {
	return u >= Days && u < Forever
}
