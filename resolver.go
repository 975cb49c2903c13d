// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chronology

import (
	"fmt"

	"cloudeng.io/algo/container/circular"
)

// State describes the lifecycle of a Resolver. A resolver moves from
// Unresolved through Resolving to exactly one of the terminal states
// Resolved or Failed.
type State int

const (
	StateUnresolved State = iota
	StateResolving
	StateResolved
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateResolving:
		return "resolving"
	case StateResolved:
		return "resolved"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ResolveFunc is a field's resolution rule. It examines the fields
// available through the Resolution and, when its required co-fields are
// present, rewrites them in terms of more fundamental fields or derived
// objects. It reports whether it made progress; a rule whose co-fields
// are absent returns (false, nil) rather than an error, since they may
// yet appear, or resolution may legitimately end with the field
// unresolved.
type ResolveFunc func(rc *Resolution) (bool, error)

// Resolved is the outcome of a successful resolution: the canonical date
// (if one could be derived), the time of day (defaulted to midnight when
// no time fields were supplied), the offset if one was supplied or
// derived, and any fields that remained unresolved.
type Resolved struct {
	Date    Date
	HasDate bool
	Time    TimeOfDay
	Offset  Offset
	// HasOffset reports whether an offset was present; the zero Offset is
	// a valid offset (UTC).
	HasOffset bool
	// Remaining holds fields that no rule could reduce, for example a
	// year-of-era with no era. Callers that do not require them may
	// ignore them.
	Remaining *Store
}

// Resolver applies the catalog's resolution rules to a Store until no
// further rule can fire, then defaults the four standard time-of-day
// fields and assembles the result. A Resolver is single-use.
type Resolver struct {
	chrono Chronology
	state  State
}

// NewResolver returns a resolver for the given calendar system.
func NewResolver(c Chronology) *Resolver {
	return &Resolver{chrono: c, state: StateUnresolved}
}

// State returns the resolver's current state.
func (r *Resolver) State() State { return r.state }

// Resolve runs the fixed-point resolution over the store. On failure the
// store may have been partially rewritten; resolution has no
// partial-success mode and the store should be discarded.
func (r *Resolver) Resolve(s *Store) (*Resolved, error) {
	if r.state != StateUnresolved {
		return nil, fmt.Errorf("resolver is %v, not %v", r.state, StateUnresolved)
	}
	r.state = StateResolving
	res, err := resolve(s, r.chrono)
	if err != nil {
		r.state = StateFailed
		return nil, err
	}
	r.state = StateResolved
	return res, nil
}

// Resolve is a convenience wrapper around a single-use Resolver.
func Resolve(s *Store, c Chronology) (*Resolved, error) {
	return NewResolver(c).Resolve(s)
}

// Resolution is the working state handed to resolution rules. It wraps
// the store with the conflict guards rules must observe: a field that a
// rule has already consumed may not be re-derived with a different
// value, and newly produced fields are queued for further examination.
type Resolution struct {
	store    *Store
	chrono   Chronology
	queue    *circular.Buffer[*Field]
	queued   map[*Field]bool
	consumed map[*Field]int64
}

// Chronology returns the calendar system resolution is running against.
func (rc *Resolution) Chronology() Chronology { return rc.chrono }

// Has returns true if every one of the fields is currently present.
func (rc *Resolution) Has(fields ...*Field) bool {
	return rc.store.ContainsAll(fields...)
}

// Get returns the value of a present field after checking it against the
// field's static range.
func (rc *Resolution) Get(f *Field) (int64, error) {
	v, err := rc.store.Get(f)
	if err != nil {
		return 0, err
	}
	if err := f.rng.Check(f, v); err != nil {
		return 0, err
	}
	return v, nil
}

// Take removes the given fields from the store, range-checking each, and
// returns their values in order. All of the fields must be present; use
// Has first.
func (rc *Resolution) Take(fields ...*Field) ([]int64, error) {
	vals := make([]int64, len(fields))
	for i, f := range fields {
		v, err := rc.Get(f)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	for i, f := range fields {
		if _, err := rc.store.Remove(f); err != nil {
			return nil, err
		}
		rc.consumed[f] = vals[i]
	}
	return vals, nil
}

// Put adds a derived field value. Deriving a field that was already
// consumed by an earlier rule with a different value is a conflict: no
// rule may fire twice with different results.
func (rc *Resolution) Put(f *Field, v int64) error {
	if prev, ok := rc.consumed[f]; ok {
		if prev != v {
			return fmt.Errorf("%v: %d and re-derived %d: %w", f, prev, v, ErrConflictingField)
		}
		return nil
	}
	if err := rc.store.Add(f, v); err != nil {
		return err
	}
	rc.enqueue(f)
	return nil
}

// PutObject records a derived object, subject to the store's
// type-identity conflict rules.
func (rc *Resolution) PutObject(obj any) error {
	return rc.store.AddObject(obj)
}

func (rc *Resolution) enqueue(f *Field) {
	if rc.queued[f] {
		return
	}
	rc.queued[f] = true
	rc.queue.Append([]*Field{f})
}

func resolve(s *Store, chrono Chronology) (*Resolved, error) {
	rc := &Resolution{
		store:    s,
		chrono:   chrono,
		queue:    circular.NewBuffer[*Field](s.Len() + 8),
		queued:   make(map[*Field]bool),
		consumed: make(map[*Field]int64),
	}
	for f := range s.Fields() {
		rc.enqueue(f)
	}
	// Work-list fixed point: newly derived fields are appended to the
	// queue and may unlock rules for fields examined earlier, which are
	// then re-queued by the rules themselves via Put.
	for rc.queue.Len() > 0 {
		f := rc.queue.Head(1)[0]
		rc.queued[f] = false
		if f.resolve == nil || !s.Contains(f) {
			continue
		}
		fired, err := f.resolve(rc)
		if err != nil {
			return nil, err
		}
		if fired && s.Contains(f) {
			// The rule made progress but did not consume the field, eg.
			// year participating in several combinations; re-examine it.
			rc.enqueue(f)
		}
	}
	return finish(rc)
}

// finish applies the post-fixed-point steps: cross-check any leftover
// day-of-week against a derived date, default absent time-of-day fields
// to zero and assemble the Resolved value.
func finish(rc *Resolution) (*Resolved, error) {
	s := rc.store
	res := &Resolved{}
	if date, ok := Object[Date](s); ok {
		res.Date, res.HasDate = date, true
		if s.Contains(DayOfWeek) {
			dow, err := rc.Get(DayOfWeek)
			if err != nil {
				return nil, err
			}
			if Weekday(dow) != date.Weekday() {
				return nil, fmt.Errorf("%v: %v is a %v, not %v: %w",
					DayOfWeek, date, date.Weekday(), Weekday(dow), ErrConflictingField)
			}
			if _, err := s.Remove(DayOfWeek); err != nil {
				return nil, err
			}
		}
	}
	// A date-only input is implicitly midnight: the four standard
	// time-of-day fields, and only those, default to zero.
	for _, f := range []*Field{HourOfDay, MinuteOfHour, SecondOfMinute, NanoOfSecond} {
		if !s.Contains(f) {
			if err := s.Add(f, 0); err != nil {
				return nil, err
			}
		}
	}
	vals := make([]int64, 4)
	for i, f := range []*Field{HourOfDay, MinuteOfHour, SecondOfMinute, NanoOfSecond} {
		v, err := rc.Get(f)
		if err != nil {
			return nil, err
		}
		if _, err := s.Remove(f); err != nil {
			return nil, err
		}
		vals[i] = v
	}
	tod, err := NewTimeOfDay(int(vals[0]), int(vals[1]), int(vals[2]), int(vals[3]))
	if err != nil {
		return nil, err
	}
	res.Time = tod
	if off, ok := Object[Offset](s); ok {
		res.Offset, res.HasOffset = off, true
	}
	res.Remaining = s
	return res, nil
}
