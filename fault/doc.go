// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Errors returned to callers of the tree are never wrapped, so
// test them with == or one of the IsErrX class functions.  Broken
// internal invariants are not returned as errors but reported
// through Panic/Panicf, which try to log on the "PANIC" channel
// first.
package fault
