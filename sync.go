package btree

import "sync"

// Synchronized guards a BTree with a single lock so it can be shared
// between goroutines. Inserts take the lock exclusively since a split may
// rewrite any node on the path from the root.
type Synchronized[K any] struct {
	mu sync.RWMutex
	t  *BTree[K]
}

func NewSynchronized[K any](t *BTree[K]) *Synchronized[K] {
	return &Synchronized[K]{t: t}
}

func (s *Synchronized[K]) Insert(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.Insert(key)
}

// Traverse returns a snapshot of every key in ascending order.
func (s *Synchronized[K]) Traverse() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Traverse()
}

func (s *Synchronized[K]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Len()
}

func (s *Synchronized[K]) Height() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Height()
}

func (s *Synchronized[K]) Verify() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Verify()
}
