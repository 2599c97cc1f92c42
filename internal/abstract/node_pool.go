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

import "sync"

// nodePool recycles nodes released by Map.Reset. Nodes are sized for a
// single degree, so each tree carries its own pool.
type nodePool[K any] struct {
	interiorNodePool, leafNodePool sync.Pool
}

func newNodePool[K any](maxKeys int) *nodePool[K] {
	np := &nodePool[K]{}
	np.leafNodePool = sync.Pool{
		New: func() interface{} {
			return &node[K]{
				leaf: true,
				keys: make([]K, 0, maxKeys),
			}
		},
	}
	np.interiorNodePool = sync.Pool{
		New: func() interface{} {
			return &node[K]{
				keys:     make([]K, 0, maxKeys),
				children: make([]*node[K], 0, maxKeys+1),
			}
		},
	}
	return np
}

func (np *nodePool[K]) getNode(leaf bool) *node[K] {
	if leaf {
		return np.leafNodePool.Get().(*node[K])
	}
	return np.interiorNodePool.Get().(*node[K])
}

func (np *nodePool[K]) putNode(n *node[K]) {
	clear(n.keys)
	n.keys = n.keys[:0]
	if n.leaf {
		np.leafNodePool.Put(n)
		return
	}
	clear(n.children)
	n.children = n.children[:0]
	np.interiorNodePool.Put(n)
}

// release returns n and its whole subtree to the pool.
func (np *nodePool[K]) release(n *node[K]) {
	if !n.leaf {
		for _, c := range n.children {
			np.release(c)
		}
	}
	np.putNode(n)
}
