// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify the structure of the whole tree
//
// heights are recomputed independently of the cached values, and the
// first violation found is returned:
//
//	fault.ErrCycle           a node is reachable more than once
//	fault.ErrOutOfOrder      in-order values are not strictly ascending
//	fault.ErrHeightMismatch  a cached height is stale
//	fault.ErrUnbalanced      sub-tree heights differ by more than one
//	fault.ErrCountMismatch   node count differs from Size()
func (tree *Tree[T]) Check() error {
	c := checker[T]{
		compare: tree.compare,
		seen:    make(map[*Node[T]]struct{}),
	}
	_, err := c.check(tree.root)
	if nil == err && c.nodes != tree.count {
		err = fault.ErrCountMismatch
	}
	if nil != err && nil != tree.log {
		tree.log.Warnf("check failed: %s  at: %v  nodes: %d  size: %d", err, c.at, c.nodes, tree.count)
	}
	return err
}

// state carried through an in-order scan
type checker[T any] struct {
	compare  func(a, b T) int
	seen     map[*Node[T]]struct{}
	previous T
	started  bool
	nodes    int
	at       interface{} // value of the failing node
}

// internal: returns the true height of the sub-tree
func (c *checker[T]) check(p *Node[T]) (int, error) {
	if nil == p {
		return 0, nil
	}
	if _, ok := c.seen[p]; ok {
		c.at = p.value
		return 0, fault.ErrCycle
	}
	c.seen[p] = struct{}{}

	lh, err := c.check(p.left)
	if nil != err {
		return 0, err
	}

	if c.started && c.compare(c.previous, p.value) >= 0 {
		c.at = p.value
		return 0, fault.ErrOutOfOrder
	}
	c.previous = p.value
	c.started = true
	c.nodes += 1

	rh, err := c.check(p.right)
	if nil != err {
		return 0, err
	}

	h := 1 + max(lh, rh)
	if h != p.height {
		c.at = p.value
		return 0, fault.ErrHeightMismatch
	}
	if lh-rh > 1 || rh-lh > 1 {
		c.at = p.value
		return 0, fault.ErrUnbalanced
	}
	return h, nil
}
