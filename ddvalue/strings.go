// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Differential Datalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ddvalue

// Append returns s with t appended. Generated string-concatenation
// expressions compile to chains of Append calls, so the function takes
// and returns the owning string rather than mutating in place.
func Append(s, t string) string {
	return s + t
}

// AppendBytes appends s to an owned growable buffer and returns the
// mutated owner. Generated code uses it when building a string across
// several expressions to avoid re-copying the prefix at each step.
func AppendBytes(buf []byte, s string) []byte {
	return append(buf, s...)
}
