// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package cache provides a fixed-size, lock-free memoization table for
// values that are pure functions of a small integer key. Publication uses
// compare-and-set and is idempotent: computing the same value twice is
// harmless and all readers observe the first published instance.
package cache

import (
	"sync/atomic"
)

// Table memoizes values keyed by int64. Keys are mapped to slots by
// modulus; a slot holds at most one key so colliding keys recompute
// rather than evict. The zero number of slots is not usable, use New.
type Table[T any] struct {
	slots []atomic.Pointer[entry[T]]
}

type entry[T any] struct {
	key int64
	val T
}

// New creates a Table with the specified number of slots.
func New[T any](size int) *Table[T] {
	if size <= 0 {
		size = 64
	}
	return &Table[T]{slots: make([]atomic.Pointer[entry[T]], size)}
}

// Get returns the memoized value for key, calling fill to compute it if
// it has not been published yet. fill must be a pure function of key.
func (t *Table[T]) Get(key int64, fill func(int64) T) T {
	slot := &t.slots[uint64(key)%uint64(len(t.slots))]
	if e := slot.Load(); e != nil && e.key == key {
		return e.val
	}
	e := &entry[T]{key: key, val: fill(key)}
	// Publish only into an empty slot; an occupied slot belongs to a
	// colliding key and the computed value is returned uncached.
	slot.CompareAndSwap(nil, e)
	if p := slot.Load(); p != nil && p.key == key {
		return p.val
	}
	return e.val
}
