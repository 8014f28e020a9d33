// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Differential Datalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package arraymap serializes an ordered map as a bare sequence of
// values and reconstructs the keys on load.
//
// When every key of a map field is a pure function of its value,
// persisting the keys is redundant: the serialized form carries only
// the values, in ascending key order, and deserialization recomputes
// each key with the derivation function the codec was constructed
// with. This shrinks the wire form and removes any possibility of a
// stored key disagreeing with its value, at the cost of a re-derivation
// pass on load — and of a hard compatibility requirement that the
// derivation function never change meaning between the writer and the
// reader of a given byte stream.
//
// Duplicate derived keys are not an error: the later value in sequence
// order overwrites the earlier one. Downstream consumers depend on this
// exact tie-break; see Codec.Deserialize.
package arraymap

import (
	"cmp"
	"fmt"
	"io"

	"github.com/lalithsuresh/differential-datalog/codec"
	"github.com/lalithsuresh/differential-datalog/ordmap"
)

// DeriveFunc computes the key a value is stored under. It must be pure
// and deterministic, total over every value that can legally
// deserialize, and stable across the lifetime of the data format.
type DeriveFunc[K, V any] func(V) K

// Codec converts between an ordered map and its serialized form, a
// bare sequence of values. A Codec is stateless and holds only the
// functions it was constructed with; the zero value is not usable.
//
// The codec assumes, and does not verify, that derive(v) equals the
// key v is stored under for every entry of a map passed to Serialize.
// Generated code guarantees this by keying its maps with the same
// function it registers here.
type Codec[K, V any] struct {
	compare func(K, K) int
	derive  DeriveFunc[K, V]
}

// New returns a codec for maps ordered by the natural order of K.
func New[K cmp.Ordered, V any](derive DeriveFunc[K, V]) Codec[K, V] {
	return NewFunc[K, V](cmp.Compare[K], derive)
}

// NewFunc returns a codec for maps ordered by compare. Generated
// composite key types pass their Compare method.
func NewFunc[K, V any](compare func(K, K) int, derive DeriveFunc[K, V]) Codec[K, V] {
	return Codec[K, V]{compare: compare, derive: derive}
}

// Serialize returns m's values in ascending key order, dropping the
// keys. The result is never nil, so an empty map serializes as an
// empty sequence rather than as null.
func (c Codec[K, V]) Serialize(m *ordmap.Map[K, V]) []V {
	if m == nil {
		return []V{}
	}
	return m.Values()
}

// Deserialize rebuilds a map from a value sequence, computing each
// value's key with the codec's derivation function and inserting in
// sequence order. If two values derive the same key the later one
// wins; this is the documented tie-break, not an error, and callers
// cannot distinguish a map built from colliding keys from a clean one.
//
// Key derivation is total, so Deserialize cannot fail.
func (c Codec[K, V]) Deserialize(values []V) *ordmap.Map[K, V] {
	m := ordmap.NewFunc[K, V](c.compare)
	for _, v := range values {
		m.Set(c.derive(v), v)
	}
	return m
}

// Marshal encodes m as a CBOR array of its values in ascending key
// order.
func (c Codec[K, V]) Marshal(m *ordmap.Map[K, V]) ([]byte, error) {
	return codec.Marshal(c.Serialize(m))
}

// Unmarshal decodes a CBOR array of values and rebuilds the map. Each
// element is decoded individually: the first element that fails to
// decode aborts the whole call with a *MalformedValueError and no
// partial map is returned.
func (c Codec[K, V]) Unmarshal(data []byte) (*ordmap.Map[K, V], error) {
	var raw []codec.RawMessage
	if err := codec.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode value sequence: %w", err)
	}
	return c.fromRaw(raw)
}

// Encode writes m's serialized form to w.
func (c Codec[K, V]) Encode(w io.Writer, m *ordmap.Map[K, V]) error {
	return codec.NewEncoder(w).Encode(c.Serialize(m))
}

// Decode reads one serialized map from r and rebuilds it, with the
// same element-failure behavior as Unmarshal.
func (c Codec[K, V]) Decode(r io.Reader) (*ordmap.Map[K, V], error) {
	var raw []codec.RawMessage
	if err := codec.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode value sequence: %w", err)
	}
	return c.fromRaw(raw)
}

func (c Codec[K, V]) fromRaw(raw []codec.RawMessage) (*ordmap.Map[K, V], error) {
	values := make([]V, len(raw))
	for i, r := range raw {
		if err := codec.Unmarshal(r, &values[i]); err != nil {
			return nil, &MalformedValueError{Index: i, Err: err}
		}
	}
	return c.Deserialize(values), nil
}
