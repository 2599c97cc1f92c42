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

import "github.com/pkg/errors"

// Verify walks the whole tree and checks the structural invariants: keys
// are sorted within and across nodes, every non-root node holds between
// t-1 and 2t-1 keys, internal nodes have one more child than keys, and all
// leaves sit at the same depth. Every returned error wraps ErrInvariant.
func (t *Map[K]) Verify() error {
	if t.root == nil {
		if t.length != 0 {
			return errors.Wrapf(ErrInvariant, "empty tree reports %d keys", t.length)
		}
		return nil
	}
	v := verifier[K]{cfg: &t.cfg, leafDepth: -1}
	if err := v.check(t.root, 0, nil, nil); err != nil {
		return err
	}
	if v.count != t.length {
		return errors.Wrapf(ErrInvariant, "found %d keys, tree reports %d", v.count, t.length)
	}
	return nil
}

type verifier[K any] struct {
	cfg       *config[K]
	leafDepth int
	count     int
}

// check verifies the subtree rooted at n, whose keys must all fall within
// [lo, hi] when those bounds are set. Duplicates may equal a separator on
// either side.
func (v *verifier[K]) check(n *node[K], depth int, lo, hi *K) error {
	cmp := v.cfg.Compare
	switch {
	case len(n.keys) > v.cfg.maxKeys:
		return errors.Wrapf(ErrInvariant, "node at depth %d holds %d keys, max %d",
			depth, len(n.keys), v.cfg.maxKeys)
	case depth > 0 && len(n.keys) < v.cfg.MinKeys():
		return errors.Wrapf(ErrInvariant, "node at depth %d holds %d keys, min %d",
			depth, len(n.keys), v.cfg.MinKeys())
	case depth == 0 && len(n.keys) == 0:
		return errors.Wrap(ErrInvariant, "root holds no keys")
	}
	for i, k := range n.keys {
		if i > 0 && cmp(n.keys[i-1], k) > 0 {
			return errors.Wrapf(ErrInvariant, "keys out of order at depth %d index %d: %v > %v",
				depth, i, n.keys[i-1], k)
		}
		if lo != nil && cmp(*lo, k) > 0 {
			return errors.Wrapf(ErrInvariant, "key %v at depth %d below separator %v", k, depth, *lo)
		}
		if hi != nil && cmp(k, *hi) > 0 {
			return errors.Wrapf(ErrInvariant, "key %v at depth %d above separator %v", k, depth, *hi)
		}
	}
	v.count += len(n.keys)
	if n.leaf {
		if len(n.children) != 0 {
			return errors.Wrapf(ErrInvariant, "leaf at depth %d has %d children", depth, len(n.children))
		}
		if v.leafDepth == -1 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return errors.Wrapf(ErrInvariant, "leaf at depth %d, expected %d", depth, v.leafDepth)
		}
		return nil
	}
	if len(n.children) != len(n.keys)+1 {
		return errors.Wrapf(ErrInvariant, "internal node at depth %d has %d keys and %d children",
			depth, len(n.keys), len(n.children))
	}
	for i, child := range n.children {
		clo, chi := lo, hi
		if i > 0 {
			clo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			chi = &n.keys[i]
		}
		if err := v.check(child, depth+1, clo, chi); err != nil {
			return err
		}
	}
	return nil
}
