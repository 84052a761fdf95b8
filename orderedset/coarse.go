package orderedset

import (
	"sync"
	"sync/atomic"

	"github.com/samueldeng/clist/internal/llist"
)

// Coarse wraps the sequential algorithm in a single reader/writer lock:
// Contains takes the shared side, Add and Remove take the exclusive
// side. The size counter is updated under the write lock and read
// atomically, independent of the lock.
type Coarse[T any] struct {
	mu   sync.RWMutex
	list *llist.List[T]
	size atomic.Int64
}

// NewCoarse builds an empty set bounded by low and high under less.
func NewCoarse[T any](low, high T, less func(a, b T) bool) *Coarse[T] {
	return &Coarse[T]{list: llist.New(low, high, less)}
}

// Add inserts v if absent and reports whether it was inserted.
func (s *Coarse[T]) Add(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pred, curr := s.list.Find(v)
	if curr != s.list.Tail() && equal(s.list.Less, curr.Val, v) {
		return false
	}
	s.list.InsertAfter(pred, v)
	s.size.Add(1)
	return true
}

// Remove unlinks v if present and reports whether it was removed.
func (s *Coarse[T]) Remove(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pred, curr := s.list.Find(v)
	if curr == s.list.Tail() || !equal(s.list.Less, curr.Val, v) {
		return false
	}
	s.list.Unlink(pred, curr)
	s.size.Add(-1)
	return true
}

// Contains reports whether v is currently present.
func (s *Coarse[T]) Contains(v T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, curr := s.list.Find(v)
	return curr != s.list.Tail() && equal(s.list.Less, curr.Val, v)
}

// Size returns the current count of elements.
func (s *Coarse[T]) Size() int {
	return int(s.size.Load())
}

// CheckInvariants audits the chain for sorted order, reachability, and
// size-counter consistency, under the shared side of the lock.
func (s *Coarse[T]) CheckInvariants() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.list.CheckSorted() && int64(s.list.Len()) == s.size.Load()
}
