// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/counter"
)

// live counters held by a tree
type statistics struct {
	allocated counter.Counter
	released  counter.Counter
	rotations [rotationKinds]counter.Counter
}

// Stats - snapshot of a tree's cumulative activity
type Stats struct {
	Allocated uint64                // nodes created by insert
	Released  uint64                // nodes released by delete or clear
	Rotations [rotationKinds]uint64 // indexed by Rotation
}

// Live - number of nodes currently owned by the tree
func (s Stats) Live() uint64 {
	return s.Allocated - s.Released
}

// TotalRotations - rotations of all kinds
func (s Stats) TotalRotations() uint64 {
	total := uint64(0)
	for _, n := range s.Rotations {
		total += n
	}
	return total
}

// Stats - read the counters
func (tree *Tree[T]) Stats() Stats {
	s := Stats{
		Allocated: tree.stats.allocated.Uint64(),
		Released:  tree.stats.released.Uint64(),
	}
	for i := range tree.stats.rotations {
		s.Rotations[i] = tree.stats.rotations[i].Uint64()
	}
	return s
}

// ResetStats - zero the counters, returns their values before the reset
func (tree *Tree[T]) ResetStats() Stats {
	s := Stats{
		Allocated: tree.stats.allocated.Reset(),
		Released:  tree.stats.released.Reset(),
	}
	for i := range tree.stats.rotations {
		s.Rotations[i] = tree.stats.rotations[i].Reset()
	}
	return s
}
