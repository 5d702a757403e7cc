// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a new value into the tree
//
// the tree is a set: if an equal value is already present nothing
// changes and fault.ErrDuplicate is returned
func (tree *Tree[T]) Insert(value T) error {
	added := false
	tree.root, added = tree.insert(value, tree.root)
	if !added {
		if nil != tree.log {
			tree.log.Debugf("insert: duplicate: %v", value)
		}
		return fault.ErrDuplicate
	}
	tree.count += 1
	return nil
}

// internal routine for insert, returns the new sub-tree root
func (tree *Tree[T]) insert(value T, p *Node[T]) (*Node[T], bool) {
	if nil == p { // insert new node
		return tree.newNode(value), true
	}

	added := false
	switch c := tree.compare(value, p.value); {
	case c < 0: // value < p.value
		p.left, added = tree.insert(value, p.left)
	case c > 0: // value > p.value
		p.right, added = tree.insert(value, p.right)
	default:
		return p, false
	}
	if !added {
		return p, false
	}
	return tree.rebalance(p), true
}
