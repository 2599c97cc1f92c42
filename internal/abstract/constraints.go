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

// Node represents an abstraction of a node exposed to the Updater.
type Node[K any] interface {

	// IsLeaf returns whether this node is a leaf.
	IsLeaf() bool

	// Count returns the number of keys in this node.
	Count() int

	// GetKey returns the key at the given position. It may be called with
	// values in [0, Count()).
	GetKey(i int) K

	// GetChild returns the child at the given position, or nil for leaves.
	// It may be called on non-leaf nodes with values in [0, Count()].
	GetChild(i int) Node[K]
}

// Updater observes structural changes to the tree. It is called
// synchronously from within Insert, so implementations must not retain the
// Node beyond the call or call back into the tree.
type Updater[K any] interface {
	Update(n Node[K], md UpdateMeta[K])
}

// Action classifies the event passed to an Updater.
type Action int

const (

	// Insertion indicates that RelevantKey was placed into the leaf n.
	Insertion Action = iota

	// Split indicates that n is the left-hand side of a split. ModifiedOther
	// is the new right-hand side and RelevantKey is the median that moved
	// into the parent.
	Split

	// Grow indicates that n is a new root created above the previous one.
	// RelevantKey is the single separator it holds.
	Grow
)

func (a Action) String() string {
	switch a {
	case Insertion:
		return "insertion"
	case Split:
		return "split"
	case Grow:
		return "grow"
	default:
		return "unknown"
	}
}

// UpdateMeta is used to describe the update operation.
type UpdateMeta[K any] struct {
	Action        Action
	ModifiedOther Node[K]
	RelevantKey   K
}
