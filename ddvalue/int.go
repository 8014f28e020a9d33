// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Differential Datalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ddvalue

import (
	"fmt"
	"math/big"

	"github.com/lalithsuresh/differential-datalog/codec"
)

// Int is the host representation of the rule language's
// arbitrary-precision signed integer. The API is immutable: arithmetic
// returns new values and never mutates the receiver, which makes the
// by-value representation safe to share.
//
// Int satisfies the value contract (see Val) and serializes as a CBOR
// integer, using a bignum tag only when the value exceeds 64 bits.
type Int struct {
	x big.Int
}

// NewInt returns an Int holding v.
func NewInt(v int64) Int {
	var i Int
	i.x.SetInt64(v)
	return i
}

// IntFromString parses a base-10 integer literal.
func IntFromString(s string) (Int, error) {
	var i Int
	if _, ok := i.x.SetString(s, 10); !ok {
		return Int{}, fmt.Errorf("invalid integer literal %q", s)
	}
	return i, nil
}

// Add returns i + j.
func (i Int) Add(j Int) Int {
	var r Int
	r.x.Add(&i.x, &j.x)
	return r
}

// Sub returns i - j.
func (i Int) Sub(j Int) Int {
	var r Int
	r.x.Sub(&i.x, &j.x)
	return r
}

// Mul returns i * j.
func (i Int) Mul(j Int) Int {
	var r Int
	r.x.Mul(&i.x, &j.x)
	return r
}

// Neg returns -i.
func (i Int) Neg() Int {
	var r Int
	r.x.Neg(&i.x)
	return r
}

// Sign returns -1, 0, or 1 as i is negative, zero, or positive.
func (i Int) Sign() int {
	return i.x.Sign()
}

// IsInt64 reports whether i fits in an int64.
func (i Int) IsInt64() bool {
	return i.x.IsInt64()
}

// Int64 returns i as an int64. The result is undefined if i does not
// fit; check IsInt64 first.
func (i Int) Int64() int64 {
	return i.x.Int64()
}

func (i Int) String() string {
	return i.x.String()
}

func (i Int) Equal(other Int) bool {
	return i.x.Cmp(&other.x) == 0
}

func (i Int) Compare(other Int) int {
	return i.x.Cmp(&other.x)
}

func (i Int) Clone() Int {
	var r Int
	r.x.Set(&i.x)
	return r
}

func (i Int) Hash() uint64 {
	return Mix(HashUint64(uint64(i.x.Sign()+1)), HashBytes(i.x.Bytes()))
}

func (i Int) MarshalCBOR() ([]byte, error) {
	return codec.Marshal(&i.x)
}

func (i *Int) UnmarshalCBOR(data []byte) error {
	return codec.Unmarshal(data, &i.x)
}
