// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Differential Datalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package arraymap

import "fmt"

// MalformedValueError reports a sequence element that failed to decode.
// It aborts the whole map's deserialization: there is no partial-result
// or recovery mode, so callers see either a fully rebuilt map or this
// error.
type MalformedValueError struct {
	// Index is the position of the element in the value sequence.
	Index int

	// Err is the underlying decode failure.
	Err error
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("malformed value at sequence index %d: %v", e.Index, e.Err)
}

func (e *MalformedValueError) Unwrap() error {
	return e.Err
}
