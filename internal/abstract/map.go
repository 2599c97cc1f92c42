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
	"iter"
	"strings"

	"github.com/sirupsen/logrus"
)

// Map is an in-memory B-Tree of ordered keys. Duplicate keys are retained.
//
// Map is not safe for concurrent use.
type Map[K any] struct {
	root   *node[K]
	length int
	cfg    config[K]
}

// MakeMap constructs an empty tree. It returns a *ConfigurationError if the
// configuration is invalid.
func MakeMap[K any](c Config[K]) (Map[K], error) {
	cfg, err := makeConfig(c)
	if err != nil {
		return Map[K]{}, err
	}
	return Map[K]{cfg: cfg}, nil
}

// Config returns the configuration the tree was built with.
func (t *Map[K]) Config() Config[K] {
	return t.cfg.Config
}

// Insert adds key to the tree. A root that is full is split first, which
// is the only way the tree grows in height.
func (t *Map[K]) Insert(key K) {
	switch {
	case t.root == nil:
		t.root = t.cfg.np.getNode(true)
		t.root.keys = append(t.root.keys, key)
		t.cfg.update(t.root, UpdateMeta[K]{Action: Insertion, RelevantKey: key})
	case len(t.root.keys) == t.cfg.maxKeys:
		s := t.cfg.np.getNode(false)
		s.children = append(s.children, t.root)
		s.splitChild(&t.cfg, 0, t.root)
		i := 0
		if t.cfg.Compare(s.keys[0], key) < 0 {
			i++
		}
		s.children[i].insertNonFull(&t.cfg, key)
		t.root = s
		t.cfg.update(s, UpdateMeta[K]{Action: Grow, RelevantKey: s.keys[0]})
		t.cfg.Logger.WithFields(logrus.Fields{
			"height": t.Height(),
			"len":    t.length + 1,
		}).Debug("root split")
	default:
		t.root.insertNonFull(&t.cfg, key)
	}
	t.length++
}

// All returns an iterator over the keys in ascending order. The sequence may
// be ranged over any number of times; it reflects the tree at the time each
// iteration runs and must not be used across an Insert.
func (t *Map[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		if t.root != nil {
			t.root.traverse(yield)
		}
	}
}

// Traverse returns all keys in ascending order.
func (t *Map[K]) Traverse() []K {
	keys := make([]K, 0, t.length)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// Reset removes all keys from the tree, recycling its nodes for later
// inserts. Iterators made before the call must not be used afterwards.
func (t *Map[K]) Reset() {
	if t.root != nil {
		t.cfg.np.release(t.root)
		t.root = nil
	}
	t.length = 0
}

// MakeIter returns a new Iterator object. It is not safe to continue using an
// Iterator after modifications are made to the tree. If modifications are made,
// create a new Iterator.
func (t *Map[K]) MakeIter() Iterator[K] {
	it := Iterator[K]{r: t, s: makeIterStack[K](t.Height())}
	it.Reset()
	return it
}

// Height returns the height of the tree.
func (t *Map[K]) Height() int {
	if t.root == nil {
		return 0
	}
	h := 1
	n := t.root
	for !n.leaf {
		n = n.children[0]
		h++
	}
	return h
}

// Len returns the number of keys currently in the tree.
func (t *Map[K]) Len() int {
	return t.length
}

// Root returns the root node, or nil if the tree is empty.
func (t *Map[K]) Root() Node[K] {
	if t.root == nil {
		return nil
	}
	return t.root
}

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (t *Map[K]) String() string {
	if t.length == 0 {
		return ";"
	}
	var b strings.Builder
	t.root.writeString(&b)
	return b.String()
}
