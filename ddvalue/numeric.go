// SPDX-License-Identifier: MIT
//
// Copyright 2026 The Differential Datalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ddvalue

// The rule language's usize and isize types have no Go spelling of
// their own. Generated code refers to these aliases instead of a bare
// uint64/int64 so that the mapping to host integer widths lives in one
// place.
type (
	// Usize is the host representation of the rule language's usize.
	Usize = uint64

	// Isize is the host representation of the rule language's isize.
	Isize = int64
)
