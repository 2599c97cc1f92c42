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
	"fmt"
	"strings"
)

// node is one vertex of the tree. len(keys) is the number of valid keys;
// internal nodes hold exactly len(keys)+1 children, each owned by this node
// alone. Whether a node is a leaf is fixed when it is created.
type node[K any] struct {
	leaf     bool
	keys     []K
	children []*node[K]
}

func (n *node[K]) IsLeaf() bool { return n.leaf }

func (n *node[K]) Count() int { return len(n.keys) }

func (n *node[K]) GetKey(i int) K { return n.keys[i] }

func (n *node[K]) GetChild(i int) Node[K] {
	if n.leaf || n.children[i] == nil {
		return nil
	}
	return n.children[i]
}

func insertAt[T any](s []T, index int, v T) []T {
	var zero T
	s = append(s, zero)
	copy(s[index+1:], s[index:])
	s[index] = v
	return s
}

// splitChild splits the full child at index i of n. The child keeps its
// lower t-1 keys and t children, a new right sibling takes the upper t-1
// keys and t children, and the median moves up into n at index i. n must
// not be full.
//
// Before:
//
//	+-----------+
//	|   x y z   |
//	+--/-/-\-\--+
//
// After:
//
//	         +-----------+
//	         |     y     |
//	         +----/-\----+
//	             /   \
//	            v     v
//	+-----------+     +-----------+
//	|         x |     | z         |
//	+-----------+     +-----------+
func (n *node[K]) splitChild(c *config[K], i int, child *node[K]) {
	t := c.Degree
	right := c.np.getNode(child.leaf)
	right.keys = append(right.keys, child.keys[t:]...)
	if !child.leaf {
		right.children = append(right.children, child.children[t:]...)
		clear(child.children[t:])
		child.children = child.children[:t]
	}
	median := child.keys[t-1]
	clear(child.keys[t-1:])
	child.keys = child.keys[:t-1]

	n.children = insertAt(n.children, i+1, right)
	n.keys = insertAt(n.keys, i, median)
	c.update(child, UpdateMeta[K]{
		Action:        Split,
		ModifiedOther: right,
		RelevantKey:   median,
	})
}

// insertNonFull inserts key into the subtree rooted at n, which must hold
// fewer than 2t-1 keys. Any full child on the way down is split before it is
// entered, so every recursive call also starts at a non-full node.
//
// Keys equal to key are never shifted, so a duplicate is placed after the
// equal keys already present in the leaf it lands in.
func (n *node[K]) insertNonFull(c *config[K], key K) {
	i := len(n.keys) - 1
	if n.leaf {
		var zero K
		n.keys = append(n.keys, zero)
		for i >= 0 && c.Compare(n.keys[i], key) > 0 {
			n.keys[i+1] = n.keys[i]
			i--
		}
		n.keys[i+1] = key
		c.update(n, UpdateMeta[K]{Action: Insertion, RelevantKey: key})
		return
	}
	for i >= 0 && c.Compare(n.keys[i], key) > 0 {
		i--
	}
	i++
	if len(n.children[i].keys) == c.maxKeys {
		n.splitChild(c, i, n.children[i])
		if c.Compare(n.keys[i], key) < 0 {
			// The median sorts before key; descend into the new right half.
			i++
		}
	}
	n.children[i].insertNonFull(c, key)
}

// traverse yields the keys of the subtree rooted at n in order. It returns
// false if yield asked to stop.
func (n *node[K]) traverse(yield func(K) bool) bool {
	for i, k := range n.keys {
		if !n.leaf && !n.children[i].traverse(yield) {
			return false
		}
		if !yield(k) {
			return false
		}
	}
	if !n.leaf {
		return n.children[len(n.keys)].traverse(yield)
	}
	return true
}

func (n *node[K]) writeString(b *strings.Builder) {
	if n.leaf {
		for i, k := range n.keys {
			if i != 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(b, "%v", k)
		}
		return
	}
	for i, child := range n.children {
		b.WriteString("(")
		child.writeString(b)
		b.WriteString(")")
		if i < len(n.keys) {
			fmt.Fprintf(b, "%v", n.keys[i])
		}
	}
}
