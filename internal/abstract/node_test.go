// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeLeaf(c *config[int], keys ...int) *node[int] {
	n := c.np.getNode(true)
	n.keys = append(n.keys, keys...)
	return n
}

func mustConfig(t *testing.T, degree int) *config[int] {
	t.Helper()
	c, err := makeConfig(Config[int]{Degree: degree, Compare: cmp.Compare[int]})
	require.NoError(t, err)
	return &c
}

func TestSplitChildLeaf(t *testing.T) {
	c := mustConfig(t, 3)
	child := makeLeaf(c, 10, 20, 30, 40, 50)
	parent := c.np.getNode(false)
	parent.children = append(parent.children, child)

	parent.splitChild(c, 0, child)

	require.Equal(t, []int{30}, parent.keys)
	require.Len(t, parent.children, 2)
	require.Same(t, child, parent.children[0])
	require.Equal(t, []int{10, 20}, child.keys)
	right := parent.children[1]
	require.True(t, right.leaf)
	require.Equal(t, []int{40, 50}, right.keys)
	// Vacated slots are cleared so nothing is kept alive past the split.
	require.Equal(t, []int{10, 20, 0, 0, 0}, child.keys[:cap(child.keys)])
}

func TestSplitChildInternal(t *testing.T) {
	c := mustConfig(t, 2)
	leaves := []*node[int]{
		makeLeaf(c, 1), makeLeaf(c, 3), makeLeaf(c, 5), makeLeaf(c, 7),
	}
	child := c.np.getNode(false)
	child.keys = append(child.keys, 2, 4, 6)
	child.children = append(child.children, leaves...)
	parent := c.np.getNode(false)
	parent.keys = append(parent.keys, 10)
	parent.children = append(parent.children, child, makeLeaf(c, 11))

	parent.splitChild(c, 0, child)

	require.Equal(t, []int{4, 10}, parent.keys)
	require.Len(t, parent.children, 3)
	require.Equal(t, []int{2}, child.keys)
	require.Equal(t, leaves[:2], child.children)
	right := parent.children[1]
	require.False(t, right.leaf)
	require.Equal(t, []int{6}, right.keys)
	require.Equal(t, leaves[2:], right.children)
	require.Equal(t, []int{11}, parent.children[2].keys)
	require.Nil(t, child.children[:cap(child.children)][2])
}

func TestInsertNonFullLeafShiftsGreaterKeys(t *testing.T) {
	c := mustConfig(t, 3)
	n := makeLeaf(c, 10, 30)
	n.insertNonFull(c, 20)
	n.insertNonFull(c, 5)
	n.insertNonFull(c, 40)
	require.Equal(t, []int{5, 10, 20, 30, 40}, n.keys)
}

func TestInsertNonFullSplitsFullChild(t *testing.T) {
	c := mustConfig(t, 2)
	root := c.np.getNode(false)
	root.keys = append(root.keys, 10)
	root.children = append(root.children, makeLeaf(c, 1, 2, 3), makeLeaf(c, 11))

	root.insertNonFull(c, 4)

	require.Equal(t, []int{2, 10}, root.keys)
	require.Equal(t, []int{1}, root.children[0].keys)
	require.Equal(t, []int{3, 4}, root.children[1].keys)
	require.Equal(t, []int{11}, root.children[2].keys)
}

func TestNodeTraverseStops(t *testing.T) {
	c := mustConfig(t, 2)
	root := c.np.getNode(false)
	root.keys = append(root.keys, 2)
	root.children = append(root.children, makeLeaf(c, 1), makeLeaf(c, 3, 4))

	var got []int
	completed := root.traverse(func(k int) bool {
		got = append(got, k)
		return k < 3
	})
	require.False(t, completed)
	require.Equal(t, []int{1, 2, 3}, got)
}
