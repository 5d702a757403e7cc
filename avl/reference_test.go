// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"cmp"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	reference "gitlab.com/yawning/avl.git"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// in-order values of the reference tree
func referenceValues(ref *reference.Tree) []int {
	values := make([]int, 0, ref.Len())
	iter := ref.Iterator(reference.Forward)
	for node := iter.First(); node != nil; node = iter.Next() {
		values = append(values, node.Value.(int))
	}
	return values
}

// apply the same random operations to an independent AVL
// implementation and compare the observable results
func TestAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	tree := avl.NewOrdered[int]()
	ref := reference.New(func(a, b interface{}) int {
		return cmp.Compare(a.(int), b.(int))
	})

	const operations = 20000
	const valueRange = 600
	for i := 0; i < operations; i += 1 {
		v := rng.Intn(valueRange)
		existing := ref.Find(v)

		switch rng.Intn(3) {
		case 0, 1:
			err := tree.Insert(v)
			if nil != existing {
				require.Equal(t, fault.ErrDuplicate, err, "[%d] insert: %d", i, v)
			} else {
				require.Nil(t, err, "[%d] insert: %d", i, v)
				ref.Insert(v)
			}
		default:
			err := tree.Delete(v)
			if nil == existing {
				require.Equal(t, fault.ErrNotFound, err, "[%d] delete: %d", i, v)
			} else {
				require.Nil(t, err, "[%d] delete: %d", i, v)
				ref.Remove(existing)
			}
		}

		require.Equal(t, ref.Len(), tree.Size(), "[%d] size", i)
		require.Equal(t, nil != ref.Find(v), tree.Contains(v), "[%d] contains: %d", i, v)

		if 0 == i%500 {
			require.Equal(t, referenceValues(ref), tree.Values(), "[%d] values", i)
			checkTree(t, tree, "reference")
		}
	}
	require.Equal(t, referenceValues(ref), tree.Values(), "final values")
}
