// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrCountMismatch        = InvalidError("node count does not match tree size")
	ErrCycle                = InvalidError("node reachable more than once")
	ErrDuplicate            = ExistsError("value already in tree")
	ErrHeightMismatch       = InvalidError("cached height is stale")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrNilComparator        = InvalidError("comparator is nil")
	ErrNotFound             = NotFoundError("value not in tree")
	ErrOutOfOrder           = InvalidError("values out of order")
	ErrUnbalanced           = InvalidError("subtree out of balance")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
