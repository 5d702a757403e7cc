// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// Item - a value type that can order itself
//
// Compare returns a negative number if the receiver is less than the
// argument, zero if equal and a positive number if greater
type Item[T any] interface {
	Compare(T) int
}

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root     *Node[T]
	count    int
	compare  func(a, b T) int
	log      *logger.L
	observer Observer
	stats    statistics
}

// New - create an initially empty tree of values that order
// themselves
func New[T Item[T]]() *Tree[T] {
	return NewFunc(func(a, b T) int {
		return a.Compare(b)
	})
}

// NewOrdered - create an initially empty tree using the natural
// ordering of T
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc - create an initially empty tree ordered by compare
//
// compare must be a total order: antisymmetric, transitive and
// consistent between calls; this is not checked
func NewFunc[T any](compare func(a, b T) int) *Tree[T] {
	if nil == compare {
		fault.Panic(fault.ErrNilComparator.Error())
	}
	return &Tree[T]{
		compare: compare,
	}
}

// SetLog - attach a log channel, nil to detach
func (tree *Tree[T]) SetLog(log *logger.L) {
	tree.log = log
}

// SetObserver - attach a rotation observer, nil to detach
func (tree *Tree[T]) SetObserver(observer Observer) {
	tree.observer = observer
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of values currently in the tree
func (tree *Tree[T]) Size() int {
	return tree.count
}

// Height - height of the whole tree, 0 if empty
func (tree *Tree[T]) Height() int {
	return heightOf(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Clear - release every node, leaving an empty tree
func (tree *Tree[T]) Clear() {
	tree.release(tree.root)
	tree.root = nil
	tree.count = 0
}

// post-order so children are unlinked before their owner
func (tree *Tree[T]) release(p *Node[T]) {
	if nil == p {
		return
	}
	tree.release(p.left)
	tree.release(p.right)
	tree.freeNode(p)
}
