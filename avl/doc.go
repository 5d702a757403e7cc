// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree holding a set of ordered values
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Every node caches the height of its sub-tree.  Insert and delete
// descend recursively and on the way back up each node has its
// height recomputed and, if the heights of its two sub-trees differ
// by more than one, is rotated; each level returns the new root of
// its sub-tree to be re-linked by the level above.  There are no
// parent pointers, so a node is only ever owned by one parent.
//
// Ordering comes from the Compare method of the value (New), the
// natural order of the type (NewOrdered) or an explicit comparison
// function (NewFunc).  Equal values are not stored twice: Insert
// returns fault.ErrDuplicate and Delete of an absent value returns
// fault.ErrNotFound.
package avl
