// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest value
func (tree *Tree[T]) First() *Node[T] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[T]) first() *Node[T] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest value
func (tree *Tree[T]) Last() *Node[T] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[T]) last() *Node[T] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Walk - visit every value in ascending order until fn returns false
//
// the tree must not be modified from inside fn
func (tree *Tree[T]) Walk(fn func(value T) bool) {
	walk(tree.root, fn)
}

func walk[T any](p *Node[T], fn func(value T) bool) bool {
	if nil == p {
		return true
	}
	return walk(p.left, fn) && fn(p.value) && walk(p.right, fn)
}

// Values - all values in ascending order
func (tree *Tree[T]) Values() []T {
	values := make([]T, 0, tree.count)
	tree.Walk(func(value T) bool {
		values = append(values, value)
		return true
	})
	return values
}
