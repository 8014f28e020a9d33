// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Differential Datalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ddvalue

import (
	"cmp"
	"math"
)

// FNV-1a, 64 bit. Allocation-free so generated Hash methods stay cheap
// enough to call on every distinguishing operation.
const (
	fnvOffset64 uint64 = 14695981039346656037
	fnvPrime64  uint64 = 1099511628211
)

// HashBytes returns the FNV-1a hash of b.
func HashBytes(b []byte) uint64 {
	h := fnvOffset64
	for _, c := range b {
		h ^= uint64(c)
		h *= fnvPrime64
	}
	return h
}

// HashString returns the FNV-1a hash of s.
func HashString(s string) uint64 {
	h := fnvOffset64
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime64
	}
	return h
}

// HashUint64 returns the FNV-1a hash of v's eight little-endian bytes.
func HashUint64(v uint64) uint64 {
	h := fnvOffset64
	for i := 0; i < 8; i++ {
		h ^= v >> (8 * i) & 0xff
		h *= fnvPrime64
	}
	return h
}

// Mix folds field hashes into a single hash code. Generated composite
// types implement Hash as Mix over their fields' hashes; field order is
// significant.
func Mix(hashes ...uint64) uint64 {
	h := fnvOffset64
	for _, v := range hashes {
		for i := 0; i < 8; i++ {
			h ^= v >> (8 * i) & 0xff
			h *= fnvPrime64
		}
	}
	return h
}

// HashOrdered hashes any naturally ordered primitive. Integer values
// that compare equal across signedness widths hash via their 64-bit
// representation; strings hash their bytes.
func HashOrdered[T cmp.Ordered](v T) uint64 {
	switch v := any(v).(type) {
	case string:
		return HashString(v)
	case int:
		return HashUint64(uint64(v))
	case int8:
		return HashUint64(uint64(v))
	case int16:
		return HashUint64(uint64(v))
	case int32:
		return HashUint64(uint64(v))
	case int64:
		return HashUint64(uint64(v))
	case uint:
		return HashUint64(uint64(v))
	case uint8:
		return HashUint64(uint64(v))
	case uint16:
		return HashUint64(uint64(v))
	case uint32:
		return HashUint64(uint64(v))
	case uint64:
		return HashUint64(v)
	case uintptr:
		return HashUint64(uint64(v))
	case float32:
		return hashFloat(float64(v))
	case float64:
		return hashFloat(v)
	}
	// cmp.Ordered admits only the cases above.
	return 0
}

// hashFloat hashes a float so that every value the total order treats
// as equal hashes identically: the two zeros collapse to +0 and every
// NaN collapses to one canonical bit pattern. float32 values convert
// exactly, so both widths share this path.
func hashFloat(v float64) uint64 {
	if v != v {
		return HashUint64(math.Float64bits(math.NaN()))
	}
	if v == 0 {
		v = 0
	}
	return HashUint64(math.Float64bits(v))
}
