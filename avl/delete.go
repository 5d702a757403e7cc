// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Delete - removes a specific value from the tree
//
// returns fault.ErrNotFound, leaving the tree unchanged, if no equal
// value is present
func (tree *Tree[T]) Delete(value T) error {
	removed := false
	tree.root, removed = tree.delete(value, tree.root)
	if !removed {
		if nil != tree.log {
			tree.log.Debugf("delete: not found: %v", value)
		}
		return fault.ErrNotFound
	}
	tree.count -= 1
	return nil
}

// internal delete routine, returns the new sub-tree root
func (tree *Tree[T]) delete(value T, p *Node[T]) (*Node[T], bool) {
	if nil == p { // value not in tree
		return nil, false
	}

	removed := false
	switch c := tree.compare(value, p.value); {
	case c < 0: // value < p.value
		p.left, removed = tree.delete(value, p.left)
	case c > 0: // value > p.value
		p.right, removed = tree.delete(value, p.right)
	default: // found: delete p
		if nil == p.left || nil == p.right {
			child := p.left
			if nil == child {
				child = p.right
			}
			tree.freeNode(p)
			return child, true
		}

		// two sub-trees: p takes the successor's value and the
		// successor, which has no left sub-tree, is removed instead
		p.value = findMin(p.right).value
		p.right, removed = tree.delete(p.value, p.right)
	}
	if !removed {
		return p, false
	}
	return tree.rebalance(p), true
}

// leftmost node of a non-empty sub-tree
func findMin[T any](p *Node[T]) *Node[T] {
	if nil == p {
		fault.Panic("find minimum: empty sub-tree")
	}
	return p.first()
}
