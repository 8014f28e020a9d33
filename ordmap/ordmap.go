// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Differential Datalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package ordmap provides the ordered associative container generated
// rule libraries use for keyed program data.
//
// A Map holds unique, totally ordered keys and iterates in ascending
// key order. It is owned exclusively by the generated structure that
// embeds it and performs no locking of its own; mutating a Map
// concurrently with any other access requires external
// synchronization.
package ordmap

import (
	"cmp"
	"iter"
	"slices"
)

type entry[K, V any] struct {
	key   K
	value V
}

// Map is an associative container with unique, totally ordered keys,
// backed by a sorted entry slice. Lookups and inserts are logarithmic
// in the number of probes plus linear slice movement on insert, which
// matches the access pattern of generated code: bulk build, then
// ordered reads.
//
// The zero value is not usable; construct with New or NewFunc.
type Map[K, V any] struct {
	compare func(K, K) int
	entries []entry[K, V]
}

// New returns an empty Map ordered by the natural order of K.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc returns an empty Map ordered by compare. Generated composite
// key types pass their Compare method.
func NewFunc[K, V any](compare func(K, K) int) *Map[K, V] {
	return &Map[K, V]{compare: compare}
}

func (m *Map[K, V]) search(key K) (int, bool) {
	return slices.BinarySearchFunc(m.entries, key, func(e entry[K, V], k K) int {
		return m.compare(e.key, k)
	})
}

// Set inserts value under key, overwriting any existing entry.
func (m *Map[K, V]) Set(key K, value V) {
	i, found := m.search(key)
	if found {
		m.entries[i].value = value
		return
	}
	m.entries = slices.Insert(m.entries, i, entry[K, V]{key: key, value: value})
}

// Get returns the value stored under key and whether it is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if i, found := m.search(key); found {
		return m.entries[i].value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, found := m.search(key)
	return found
}

// Delete removes the entry stored under key, reporting whether one was
// present.
func (m *Map[K, V]) Delete(key K) bool {
	i, found := m.search(key)
	if !found {
		return false
	}
	m.entries = slices.Delete(m.entries, i, i+1)
	return true
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Keys returns the keys in ascending order. The slice is freshly
// allocated and never nil.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.entries))
	for _, e := range m.entries {
		keys = append(keys, e.key)
	}
	return keys
}

// Values returns the values in ascending key order. The slice is
// freshly allocated and never nil.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, len(m.entries))
	for _, e := range m.entries {
		values = append(values, e.value)
	}
	return values
}

// All iterates entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Clone returns a map with the same comparator and entries. Keys and
// values are copied as values; reference types share their referents.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		compare: m.compare,
		entries: slices.Clone(m.entries),
	}
}

// Equal reports whether m and other hold the same entries, comparing
// keys with m's comparator and values with eqValue. A nil other is
// never equal.
func (m *Map[K, V]) Equal(other *Map[K, V], eqValue func(V, V) bool) bool {
	if other == nil {
		return false
	}
	if len(m.entries) != len(other.entries) {
		return false
	}
	for i, e := range m.entries {
		o := other.entries[i]
		if m.compare(e.key, o.key) != 0 || !eqValue(e.value, o.value) {
			return false
		}
	}
	return true
}
