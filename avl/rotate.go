// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// single right rotation, fixes the left-left case
//
//	      p             c
//	     / \           / \
//	    c   z   →     x   p
//	   / \               / \
//	  x   y             y   z
//
// only p and c change height
func rotateRight[T any](p *Node[T]) *Node[T] {
	c := p.left
	if nil == c {
		fault.Panicf("rotate right: node: %v has no left sub-tree", p.value)
	}
	p.left = c.right
	c.right = p
	recomputeHeight(p)
	recomputeHeight(c)
	return c
}

// single left rotation, fixes the right-right case
func rotateLeft[T any](p *Node[T]) *Node[T] {
	c := p.right
	if nil == c {
		fault.Panicf("rotate left: node: %v has no right sub-tree", p.value)
	}
	p.right = c.left
	c.left = p
	recomputeHeight(p)
	recomputeHeight(c)
	return c
}

// double rotation for the left-right case
func rotateLeftRight[T any](p *Node[T]) *Node[T] {
	p.left = rotateLeft(p.left)
	return rotateRight(p)
}

// double rotation for the right-left case
func rotateRightLeft[T any](p *Node[T]) *Node[T] {
	p.right = rotateRight(p.right)
	return rotateLeft(p)
}

// rebalance - called on every node on the path back up from an
// insert or delete, returns the root of the possibly rotated sub-tree
//
// a child balance of zero always selects the single rotation
func (tree *Tree[T]) rebalance(p *Node[T]) *Node[T] {
	recomputeHeight(p)

	bf := balanceFactor(p)
	switch {
	case bf > 1: // left heavy
		if balanceFactor(p.left) >= 0 {
			return tree.rotated(RotateRight, rotateRight(p))
		}
		return tree.rotated(RotateLeftRight, rotateLeftRight(p))

	case bf < -1: // right heavy
		if balanceFactor(p.right) <= 0 {
			return tree.rotated(RotateLeft, rotateLeft(p))
		}
		return tree.rotated(RotateRightLeft, rotateRightLeft(p))
	}
	return p
}

// account for a rotation that produced the new sub-tree root p
func (tree *Tree[T]) rotated(kind Rotation, p *Node[T]) *Node[T] {
	tree.stats.rotations[kind].Increment()
	if nil != tree.log {
		tree.log.Debugf("%s rotation: new sub-tree root: %v  height: %d", kind, p.value, p.height)
	}
	if nil != tree.observer {
		tree.observer.Rotated(kind)
	}
	return p
}
