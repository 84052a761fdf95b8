package orderedset

import "github.com/samueldeng/clist/internal/llist"

// Sequential is the single-threaded reference implementation of the
// sorted-list set. It performs no locking of any kind and must not be
// shared across goroutines; it exists to serve as a correctness oracle
// for the concurrent variants and as a baseline in the benchmark harness.
type Sequential[T any] struct {
	list *llist.List[T]
}

// NewSequential builds an empty set bounded by low and high under less.
func NewSequential[T any](low, high T, less func(a, b T) bool) *Sequential[T] {
	return &Sequential[T]{list: llist.New(low, high, less)}
}

// Add inserts v if absent and reports whether it was inserted.
func (s *Sequential[T]) Add(v T) bool {
	pred, curr := s.list.Find(v)
	if curr != s.list.Tail() && equal(s.list.Less, curr.Val, v) {
		return false
	}
	s.list.InsertAfter(pred, v)
	return true
}

// Remove unlinks v if present and reports whether it was removed.
func (s *Sequential[T]) Remove(v T) bool {
	pred, curr := s.list.Find(v)
	if curr == s.list.Tail() || !equal(s.list.Less, curr.Val, v) {
		return false
	}
	s.list.Unlink(pred, curr)
	return true
}

// Contains reports whether v is currently present.
func (s *Sequential[T]) Contains(v T) bool {
	_, curr := s.list.Find(v)
	return curr != s.list.Tail() && equal(s.list.Less, curr.Val, v)
}

// Size returns the current count of elements.
func (s *Sequential[T]) Size() int {
	return s.list.Len()
}

// CheckInvariants audits the chain for sorted order and reachability.
func (s *Sequential[T]) CheckInvariants() bool {
	return s.list.CheckSorted()
}
