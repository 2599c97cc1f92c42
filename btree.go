// Package btree implements an in-memory B-Tree of ordered keys with a
// configurable minimum degree.
//
// Keys are inserted with a single top-down pass: a full node is split before
// the insertion descends into it, so a split never has to propagate back up.
// The tree only grows in height when its root is full. Duplicate keys are
// kept; a new duplicate lands after the equal keys already in its leaf.
//
// Deletion and lookup are not supported.
package btree

import (
	"cmp"
	"iter"

	"github.com/lMiaul/Hola-Jesus/internal/abstract"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

type (
	// Node is a read-only view of a tree node passed to an Updater.
	Node[K any] = abstract.Node[K]
	// Updater observes insertions, splits and root growth.
	Updater[K any] = abstract.Updater[K]
	// UpdateMeta describes the event passed to an Updater.
	UpdateMeta[K any] = abstract.UpdateMeta[K]
	// Iterator is a pull-based cursor over the keys in order.
	Iterator[K any] = abstract.Iterator[K]
	// Action classifies Updater events.
	Action = abstract.Action
	// ConfigurationError is returned for a minimum degree below 2.
	ConfigurationError = abstract.ConfigurationError
)

const (
	Insertion = abstract.Insertion
	Split     = abstract.Split
	Grow      = abstract.Grow
)

var (
	ErrInvalidDegree = abstract.ErrInvalidDegree
	ErrInvariant     = abstract.ErrInvariant
)

// Compare orders two values of an ordered type. NaN sorts before every
// other float and equal to itself.
func Compare[T constraints.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Option configures a tree at construction.
type Option[K any] func(*abstract.Config[K])

// WithUpdater registers an observer for structural changes.
func WithUpdater[K any](u Updater[K]) Option[K] {
	return func(c *abstract.Config[K]) { c.Updater = u }
}

// WithLogger sets the logger used for debug events.
func WithLogger[K any](l logrus.FieldLogger) Option[K] {
	return func(c *abstract.Config[K]) { c.Logger = l }
}

// BTree is an in-memory B-Tree of keys. It is not safe for concurrent use;
// see Synchronized.
type BTree[K any] struct {
	t abstract.Map[K]
}

// New creates a tree of the given minimum degree over an ordered key type.
//
// New(2), for example, will create a 2-3-4 tree (each node contains 1-3 keys
// and 2-4 children).
func New[K constraints.Ordered](degree int, opts ...Option[K]) (*BTree[K], error) {
	return NewWithCompare(degree, Compare[K], opts...)
}

// NewWithCompare creates a tree ordered by compare.
func NewWithCompare[K any](degree int, compare func(K, K) int, opts ...Option[K]) (*BTree[K], error) {
	cfg := abstract.Config[K]{Degree: degree, Compare: compare}
	for _, opt := range opts {
		opt(&cfg)
	}
	m, err := abstract.MakeMap(cfg)
	if err != nil {
		return nil, err
	}
	return &BTree[K]{t: m}, nil
}

// MustNew is like New but panics on an invalid degree.
func MustNew[K constraints.Ordered](degree int, opts ...Option[K]) *BTree[K] {
	t, err := New(degree, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Insert adds key to the tree. Duplicates are kept.
func (t *BTree[K]) Insert(key K) { t.t.Insert(key) }

// All returns a restartable sequence of every key in ascending order.
func (t *BTree[K]) All() iter.Seq[K] { return t.t.All() }

// Traverse returns every key in ascending order.
func (t *BTree[K]) Traverse() []K { return t.t.Traverse() }

// MakeIter returns a cursor over the keys; it is invalidated by Insert.
func (t *BTree[K]) MakeIter() Iterator[K] { return t.t.MakeIter() }

// Len returns the number of keys in the tree.
func (t *BTree[K]) Len() int { return t.t.Len() }

// Height returns the number of levels, 0 for an empty tree.
func (t *BTree[K]) Height() int { return t.t.Height() }

// Degree returns the minimum degree the tree was built with.
func (t *BTree[K]) Degree() int { return t.t.Config().Degree }

// Verify checks the structural invariants of the whole tree.
func (t *BTree[K]) Verify() error { return t.t.Verify() }

// Reset empties the tree, keeping its nodes for reuse.
func (t *BTree[K]) Reset() { t.t.Reset() }

func (t *BTree[K]) String() string { return t.t.String() }
