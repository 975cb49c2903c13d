// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chronology

import "fmt"

// Range describes the inclusive valid range of a field's values. For
// fixed-range fields SmallestMax equals LargestMax; for fields whose
// maximum depends on calendar context (day-of-month, day-of-year) the
// two differ and the context-sensitive bound is applied when a concrete
// year and month are known.
type Range struct {
	Min         int64
	SmallestMax int64
	LargestMax  int64
}

// NewRange returns a fixed range [min, max].
func NewRange(min, max int64) Range {
	return Range{Min: min, SmallestMax: max, LargestMax: max}
}

// NewVariableRange returns a range whose maximum varies between
// smallestMax and largestMax depending on calendar context.
func NewVariableRange(min, smallestMax, largestMax int64) Range {
	return Range{Min: min, SmallestMax: smallestMax, LargestMax: largestMax}
}

// IsFixed returns true if the maximum does not depend on calendar context.
func (r Range) IsFixed() bool {
	return r.SmallestMax == r.LargestMax
}

// Contains returns true if v lies within the largest extent of the range.
func (r Range) Contains(v int64) bool {
	return v >= r.Min && v <= r.LargestMax
}

// Check returns an error wrapping ErrInvalidField if v lies outside the
// largest extent of the range. The field is named in the error.
func (r Range) Check(f *Field, v int64) error {
	if !r.Contains(v) {
		return fmt.Errorf("%v: %d not in %v: %w", f, v, r, ErrInvalidField)
	}
	return nil
}

func (r Range) String() string {
	if r.IsFixed() {
		return fmt.Sprintf("%d - %d", r.Min, r.LargestMax)
	}
	return fmt.Sprintf("%d - %d/%d", r.Min, r.SmallestMax, r.LargestMax)
}
