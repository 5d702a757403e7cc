// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Rotation - the restructuring applied to an unbalanced sub-tree
type Rotation int

// the four rebalancing cases
const (
	RotateLeft      Rotation = iota // right-right case
	RotateRight     Rotation = iota // left-left case
	RotateLeftRight Rotation = iota // left-right case
	RotateRightLeft Rotation = iota // right-left case

	rotationKinds = iota
)

// String - conversion from fmt package
func (r Rotation) String() string {
	switch r {
	case RotateLeft:
		return "left"
	case RotateRight:
		return "right"
	case RotateLeftRight:
		return "left-right"
	case RotateRightLeft:
		return "right-left"
	default:
		return "unknown"
	}
}

//go:generate mockgen -destination=mocks/observer.go -package=mocks github.com/bitmark-inc/avltree/avl Observer

// Observer - receives a call for every rotation a tree performs
//
// a double rotation is reported once, as its double kind
type Observer interface {
	Rotated(kind Rotation)
}
