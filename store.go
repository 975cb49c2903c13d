// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chronology

import (
	"fmt"
	"iter"
	"reflect"
	"strings"
)

// Store is a mutable container mapping fields to raw values, plus a side
// list of already-resolved objects such as an Offset or a Date. Values
// may be temporarily outside their field's valid range while resolution
// is in progress. A Store is intended for single-threaded construction
// and resolution, like a single-use builder; it is not safe for
// concurrent use.
type Store struct {
	values  map[*Field]int64
	order   []*Field
	objects []any
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{values: make(map[*Field]int64)}
}

// Contains returns true if the field is present.
func (s *Store) Contains(f *Field) bool {
	_, ok := s.values[f]
	return ok
}

// ContainsAll returns true if every one of the fields is present.
func (s *Store) ContainsAll(fields ...*Field) bool {
	for _, f := range fields {
		if !s.Contains(f) {
			return false
		}
	}
	return true
}

// Get returns the value of the field, or an error wrapping
// ErrFieldNotFound if it is absent.
func (s *Store) Get(f *Field) (int64, error) {
	v, ok := s.values[f]
	if !ok {
		return 0, fmt.Errorf("%v: %w", f, ErrFieldNotFound)
	}
	return v, nil
}

// Add inserts the field with the given value. Adding a field that is
// already present with an equal value is a no-op; adding it with a
// different value returns an error wrapping ErrConflictingField.
func (s *Store) Add(f *Field, value int64) error {
	if prev, ok := s.values[f]; ok {
		if prev == value {
			return nil
		}
		return fmt.Errorf("%v: %d and %d: %w", f, prev, value, ErrConflictingField)
	}
	s.values[f] = value
	s.order = append(s.order, f)
	return nil
}

// Remove deletes the field and returns its value, or an error wrapping
// ErrFieldNotFound if it is absent.
func (s *Store) Remove(f *Field) (int64, error) {
	v, ok := s.values[f]
	if !ok {
		return 0, fmt.Errorf("%v: %w", f, ErrFieldNotFound)
	}
	delete(s.values, f)
	for i, of := range s.order {
		if of == f {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return v, nil
}

// Len returns the number of fields present.
func (s *Store) Len() int {
	return len(s.values)
}

// Fields iterates over the present fields and their values in insertion
// order.
func (s *Store) Fields() iter.Seq2[*Field, int64] {
	return func(yield func(*Field, int64) bool) {
		for _, f := range s.order {
			if !yield(f, s.values[f]) {
				return
			}
		}
	}
}

// AddObject records a resolved higher-level object such as an Offset or
// a Date. Objects are compared by their dynamic type: adding a second
// object of a type already present is a no-op if the two are equal and
// an error wrapping ErrConflictingObject otherwise. Two unequal objects
// of the same type can be derived transitively during resolution from
// different field combinations; they must converge or be flagged, never
// silently dropped.
func (s *Store) AddObject(obj any) error {
	t := reflect.TypeOf(obj)
	for _, o := range s.objects {
		if reflect.TypeOf(o) != t {
			continue
		}
		if equalObject(o, obj) {
			return nil
		}
		return fmt.Errorf("%v: %v and %v: %w", t, o, obj, ErrConflictingObject)
	}
	s.objects = append(s.objects, obj)
	return nil
}

// Objects returns the resolved objects in insertion order.
func (s *Store) Objects() []any {
	r := make([]any, len(s.objects))
	copy(r, s.objects)
	return r
}

func equalObject(a, b any) bool {
	type equaler interface{ EqualObject(any) bool }
	if e, ok := a.(equaler); ok {
		return e.EqualObject(b)
	}
	return reflect.DeepEqual(a, b)
}

// Object returns the unique stored object of type T, if any.
func Object[T any](s *Store) (T, bool) {
	for _, o := range s.objects {
		if v, ok := o.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func (s *Store) String() string {
	var out strings.Builder
	out.WriteString("{")
	for i, f := range s.order {
		if i > 0 {
			out.WriteString(", ")
		}
		fmt.Fprintf(&out, "%v=%d", f, s.values[f])
	}
	for _, o := range s.objects {
		fmt.Fprintf(&out, " %v", o)
	}
	out.WriteString("}")
	return out.String()
}
