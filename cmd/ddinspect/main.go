// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Differential Datalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command ddinspect prints serialized rule data in human-readable form.
//
// It reads CBOR from a file (or stdin when no file is given) and writes
// RFC 8949 diagnostic notation to stdout, one line per top-level item.
// Diagnostic notation preserves type information JSON would lose:
// integer vs float, byte strings vs text strings, and bignum tags.
//
// Usage:
//
//	ddinspect [flags] [file]
//
// Flags:
//
//	-seq    treat the input as one serialized map field (a top-level
//	        value sequence) and list its elements with their indices
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lalithsuresh/differential-datalog/codec"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	seq := flag.Bool("seq", false, "input is a serialized map field (top-level value sequence)")
	flag.Parse()

	if flag.NArg() > 1 {
		return fmt.Errorf("at most one input file, got %d arguments", flag.NArg())
	}

	in := os.Stdin
	if flag.NArg() == 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("empty input: expected CBOR data")
	}

	if *seq {
		return inspectSequence(data, os.Stdout)
	}
	return inspectItems(data, os.Stdout)
}

// inspectItems prints each top-level CBOR item on its own line. A
// single encoded value produces one line; a CBOR sequence (RFC 8742)
// produces one per item.
func inspectItems(data []byte, w io.Writer) error {
	remaining := data
	for len(remaining) > 0 {
		notation, rest, err := codec.DiagnoseFirst(remaining)
		if err != nil {
			offset := len(data) - len(remaining)
			return fmt.Errorf("diagnose CBOR at byte %d: %w", offset, err)
		}
		fmt.Fprintln(w, notation)
		remaining = rest
	}
	return nil
}

// inspectSequence decodes a top-level array and prints each element
// with the index a deserializing codec would see it at.
func inspectSequence(data []byte, w io.Writer) error {
	var raw []codec.RawMessage
	if err := codec.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode value sequence: %w", err)
	}

	fmt.Fprintf(w, "%d elements\n", len(raw))
	for i, r := range raw {
		notation, err := codec.Diagnose(r)
		if err != nil {
			return fmt.Errorf("diagnose element %d: %w", i, err)
		}
		fmt.Fprintf(w, "%4d: %s\n", i, notation)
	}
	return nil
}
