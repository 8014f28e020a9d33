// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Differential Datalog Authors. All rights reserved.

package ddvalue

import (
	"bytes"
	"testing"

	"github.com/lalithsuresh/differential-datalog/codec"
)

func TestIntArithmetic(t *testing.T) {
	a := NewInt(40)
	b := NewInt(2)

	tests := []struct {
		name string
		got  Int
		want int64
	}{
		{name: "add", got: a.Add(b), want: 42},
		{name: "sub", got: a.Sub(b), want: 38},
		{name: "mul", got: a.Mul(b), want: 80},
		{name: "neg", got: a.Neg(), want: -40},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.got.Equal(NewInt(tc.want)) {
				t.Errorf("got %s, want %d", tc.got, tc.want)
			}
		})
	}

	// The receiver is never mutated.
	if !a.Equal(NewInt(40)) {
		t.Errorf("receiver mutated: %s", a)
	}
}

func TestIntFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "small", input: "42", want: "42"},
		{name: "negative", input: "-7", want: "-7"},
		{name: "beyond 64 bits", input: "1267650600228229401496703205376", want: "1267650600228229401496703205376"},
		{name: "garbage", input: "12x", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := IntFromString(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("IntFromString(%q) succeeded, want error", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("IntFromString(%q): %v", tc.input, err)
			}
			if got.String() != tc.want {
				t.Errorf("String = %q, want %q", got.String(), tc.want)
			}
		})
	}
}

func TestIntCompareAndHash(t *testing.T) {
	a := NewInt(5)
	b, err := IntFromString("5")
	if err != nil {
		t.Fatalf("IntFromString: %v", err)
	}
	c := NewInt(-5)

	if a.Compare(b) != 0 || !a.Equal(b) {
		t.Error("5 and parsed 5 compare unequal")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal values hash differently")
	}
	if a.Compare(c) <= 0 || c.Compare(a) >= 0 {
		t.Error("sign ordering wrong")
	}
	// -5 and 5 share magnitude bytes; the sign must reach the hash.
	if a.Hash() == c.Hash() {
		t.Error("5 and -5 share a hash")
	}
}

func TestIntClone(t *testing.T) {
	a := NewInt(99)
	if clone := a.Clone(); !clone.Equal(a) {
		t.Errorf("Clone = %s, want %s", clone, a)
	}
}

func TestIntCBORRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "zero", input: "0"},
		{name: "small positive", input: "23"},
		{name: "small negative", input: "-23"},
		{name: "beyond 64 bits", input: "340282366920938463463374607431768211456"},
		{name: "negative beyond 64 bits", input: "-340282366920938463463374607431768211456"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want, err := IntFromString(tc.input)
			if err != nil {
				t.Fatalf("IntFromString: %v", err)
			}

			data, err := codec.Marshal(want)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			var got Int
			if err := codec.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if !got.Equal(want) {
				t.Errorf("round trip = %s, want %s", got, want)
			}
		})
	}
}

func TestIntEncodesAsPlainIntegerWhenSmall(t *testing.T) {
	// Values that fit the CBOR integer range must not carry a bignum
	// tag, so generated fields typed Int stay wire-compatible with
	// fields typed int64.
	fromInt, err := codec.Marshal(NewInt(23))
	if err != nil {
		t.Fatalf("Marshal Int: %v", err)
	}
	fromInt64, err := codec.Marshal(int64(23))
	if err != nil {
		t.Fatalf("Marshal int64: %v", err)
	}
	if !bytes.Equal(fromInt, fromInt64) {
		t.Errorf("Int encoding %x differs from int64 encoding %x", fromInt, fromInt64)
	}
}
