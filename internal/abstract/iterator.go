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

// Iterator is a pull-based cursor over the keys of a Map in order. It
// walks the tree with an explicit stack of (node, pos) frames rather than
// recursion.
type Iterator[K any] struct {
	r *Map[K]
	iterFrame[K]
	s iterStack[K]
}

// Reset positions the iterator before the first key at the root.
func (i *Iterator[K]) Reset() {
	i.node = i.r.root
	i.pos = -1
	i.s.reset()
}

// First seeks to the first key in the Map.
func (i *Iterator[K]) First() {
	i.Reset()
	i.pos = 0
	if i.node == nil {
		return
	}
	for !i.leaf {
		i.descend()
	}
	i.pos = 0
}

// Last seeks to the last key in the Map.
func (i *Iterator[K]) Last() {
	i.Reset()
	if i.node == nil {
		return
	}
	for !i.leaf {
		i.pos = len(i.keys)
		i.descend()
	}
	i.pos = len(i.keys) - 1
}

// Next positions the Iterator to the key immediately following
// its current position.
func (i *Iterator[K]) Next() {
	if i.node == nil || i.pos >= len(i.keys) {
		return
	}
	if i.leaf {
		i.pos++
		if i.pos < len(i.keys) {
			return
		}
		for i.s.len() > 0 && i.pos >= len(i.keys) {
			i.ascend()
		}
		return
	}
	i.pos++
	i.descend()
	for !i.leaf {
		i.pos = 0
		i.descend()
	}
	i.pos = 0
}

// Prev positions the Iterator to the key immediately preceding
// its current position.
func (i *Iterator[K]) Prev() {
	if i.node == nil || i.pos < 0 {
		return
	}
	if i.leaf {
		i.pos--
		if i.pos >= 0 {
			return
		}
		for i.s.len() > 0 && i.pos < 0 {
			i.ascend()
			i.pos--
		}
		return
	}
	i.descend()
	for !i.leaf {
		i.pos = len(i.keys)
		i.descend()
	}
	i.pos = len(i.keys) - 1
}

// Valid returns whether the Iterator is positioned at a valid position.
func (i *Iterator[K]) Valid() bool {
	return i.node != nil && i.pos >= 0 && i.pos < len(i.keys)
}

// Cur returns the key at the Iterator's current position. It is illegal
// to call Cur if the Iterator is not valid.
func (i *Iterator[K]) Cur() K {
	return i.keys[i.pos]
}

// Depth returns the number of nodes above the current node.
func (i *Iterator[K]) Depth() int {
	return i.s.len()
}

// descend pushes the current frame and moves to the child at the current
// position, at position 0.
func (i *Iterator[K]) descend() {
	i.s.push(i.iterFrame)
	i.iterFrame = iterFrame[K]{node: i.children[i.pos]}
}

// ascend ascends up to the current node's parent and resets the position
// to the one previously set for this parent node.
func (i *Iterator[K]) ascend() {
	i.iterFrame = i.s.pop()
}
