// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chronology

import "errors"

var (
	// ErrFieldNotFound is returned when a required field was neither
	// supplied nor derivable from the fields that were.
	ErrFieldNotFound = errors.New("field not found")

	// ErrConflictingField is returned when two different values are
	// asserted for the same field.
	ErrConflictingField = errors.New("conflicting field values")

	// ErrConflictingObject is returned when two unequal objects of the
	// same type are asserted.
	ErrConflictingObject = errors.New("conflicting objects")

	// ErrInvalidField is returned when a field value lies outside its
	// valid range for the given context, including impossible calendar
	// dates such as April 31.
	ErrInvalidField = errors.New("field value out of range")
)
