// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Differential Datalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package ddvalue defines the capability contract satisfied by every
// value type flowing through a generated rule library, together with
// the small helpers generated code leans on: scalar wrappers, value
// hashing, numeric width aliases, string building, and an
// arbitrary-precision integer.
//
// The contract is enforced entirely at compile time. Generic runtime
// components constrain their type parameters with Val, so a type
// missing a capability fails the build of the generated library rather
// than failing later at runtime.
package ddvalue

import (
	"cmp"

	"github.com/lalithsuresh/differential-datalog/codec"
)

// Val is the capability set required of program values: equality,
// total order, cloning, and hashing. Default construction is the Go
// zero value, and serializability means the type round-trips through
// the codec package (either natively or via its own MarshalCBOR and
// UnmarshalCBOR methods).
//
// The contract carries no external-resource lifetime: Clone must
// produce a value independent of the receiver, and none of the methods
// may retain or acquire resources.
type Val[T any] interface {
	// Equal reports whether the receiver and other are the same value.
	// Must agree with Compare returning 0.
	Equal(other T) bool

	// Compare returns a negative number, zero, or a positive number as
	// the receiver sorts before, equal to, or after other. The order
	// must be total.
	Compare(other T) int

	// Clone returns a deep copy sharing no mutable state with the
	// receiver.
	Clone() T

	// Hash returns a 64-bit hash code consistent with Equal.
	Hash() uint64
}

// Scalar adapts any naturally ordered primitive to the full value
// contract. Generated code wraps primitives in Scalar wherever a
// context requires the contract's methods; the wrapper serializes as
// the bare primitive, so it is invisible on the wire.
type Scalar[T cmp.Ordered] struct {
	V T
}

// Equal agrees with Compare returning 0, which for floats means NaN
// equals NaN and the two zeros are one value. This differs from == on
// purpose: the contract's identity is the total order's.
func (s Scalar[T]) Equal(other Scalar[T]) bool {
	return cmp.Compare(s.V, other.V) == 0
}

func (s Scalar[T]) Compare(other Scalar[T]) int {
	return cmp.Compare(s.V, other.V)
}

func (s Scalar[T]) Clone() Scalar[T] {
	return s
}

func (s Scalar[T]) Hash() uint64 {
	return HashOrdered(s.V)
}

// MarshalCBOR encodes the wrapped primitive, not a struct, so wrapped
// and unwrapped fields are wire-compatible.
func (s Scalar[T]) MarshalCBOR() ([]byte, error) {
	return codec.Marshal(s.V)
}

func (s *Scalar[T]) UnmarshalCBOR(data []byte) error {
	return codec.Unmarshal(data, &s.V)
}
