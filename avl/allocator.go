// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// allocate a new leaf node
func (tree *Tree[T]) newNode(value T) *Node[T] {
	tree.stats.allocated.Increment()
	return &Node[T]{
		value:  value,
		height: 1,
	}
}

// release a node that has been unlinked from the tree
//
// the fields are cleared so that a *Node still held by a caller does
// not keep a sub-tree or a large value alive
func (tree *Tree[T]) freeNode(p *Node[T]) {
	if nil != tree.log {
		tree.log.Debugf("release node: %v", p.value)
	}

	var zero T
	p.left = nil
	p.right = nil
	p.value = zero
	p.height = 0

	tree.stats.released.Increment()
}
