// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
//
// a node exclusively owns its two sub-trees
type Node[T any] struct {
	left   *Node[T] // left sub-tree
	right  *Node[T] // right sub-tree
	value  T        // the stored element
	height int      // height of the sub-tree rooted here, a leaf is 1
}

// Value - read the value from a node
func (p *Node[T]) Value() T {
	return p.value
}

// Left - the left sub-tree, nil if none
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - the right sub-tree, nil if none
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// Height - height of the sub-tree rooted at this node, zero for nil
func (p *Node[T]) Height() int {
	return heightOf(p)
}

// Balance - left height minus right height, zero for nil
func (p *Node[T]) Balance() int {
	if nil == p {
		return 0
	}
	return balanceFactor(p)
}

// ChildrenAtDepth - returns all nodes at a specific depth below this node
func (p *Node[T]) ChildrenAtDepth(depth uint) []*Node[T] {
	if nil == p {
		return nil
	}
	if 0 == depth {
		return []*Node[T]{p}
	}
	nodes := p.left.ChildrenAtDepth(depth - 1)
	return append(nodes, p.right.ChildrenAtDepth(depth-1)...)
}

// cached height, an empty sub-tree has height 0
func heightOf[T any](p *Node[T]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// must be called whenever either sub-tree may have changed and
// before the node's balance factor is examined
func recomputeHeight[T any](p *Node[T]) {
	p.height = 1 + max(heightOf(p.left), heightOf(p.right))
}

// positive: left heavy, negative: right heavy
func balanceFactor[T any](p *Node[T]) int {
	return heightOf(p.left) - heightOf(p.right)
}
