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

// iterFrame is a node together with the key position an Iterator is at
// within it.
type iterFrame[K any] struct {
	*node[K]
	pos int
}

// iterStack holds the frames of the ancestors of the Iterator's current
// node, root first. Its depth never exceeds Height()-1, so MakeIter sizes
// it once and descending never allocates while the tree is unchanged.
type iterStack[K any] []iterFrame[K]

func makeIterStack[K any](height int) iterStack[K] {
	return make(iterStack[K], 0, max(height-1, 0))
}

func (s *iterStack[K]) push(f iterFrame[K]) { *s = append(*s, f) }

func (s *iterStack[K]) pop() iterFrame[K] {
	top := len(*s) - 1
	f := (*s)[top]
	(*s)[top] = iterFrame[K]{}
	*s = (*s)[:top]
	return f
}

func (s iterStack[K]) len() int { return len(s) }

func (s *iterStack[K]) reset() {
	clear(*s)
	*s = (*s)[:0]
}
