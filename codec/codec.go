// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Differential Datalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package codec provides the shared CBOR encoding configuration used by
// all serialized program data.
//
// Generated rule libraries persist and exchange relation snapshots, and
// those snapshots are compared byte-for-byte (change detection, dedup,
// content addressing). The encoder therefore uses Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer encoding,
// no indefinite-length items. The same logical value always produces
// identical bytes.
//
// Every package in this module that touches the wire goes through these
// modes rather than configuring fxamacker/cbor directly, so that all
// serialized data in a program encodes identically.
package codec

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// Encoder is a CBOR stream encoder. Type alias so consumers import only
// this package, not fxamacker/cbor directly.
type Encoder = cbor.Encoder

// Decoder is a CBOR stream decoder. Type alias so consumers import only
// this package, not fxamacker/cbor directly.
type Decoder = cbor.Decoder

// RawMessage is a raw encoded CBOR item. Decoding into RawMessage
// delays interpretation of the item, which is how sequence elements are
// decoded one at a time.
type RawMessage = cbor.RawMessage

// NewEncoder returns a CBOR encoder writing to w with the module's
// deterministic encoding configuration.
func NewEncoder(w io.Writer) *Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder returns a CBOR decoder reading from r with the module's
// decoding configuration.
func NewDecoder(r io.Reader) *Decoder {
	return decMode.NewDecoder(r)
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) for the
// entire contents of data.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}

// DiagnoseFirst returns the diagnostic notation for the first item in
// data along with the remaining unconsumed bytes. Use it to walk a
// CBOR sequence item by item.
func DiagnoseFirst(data []byte) (notation string, rest []byte, err error) {
	return cbor.DiagnoseFirst(data)
}
