package pq

import "github.com/samueldeng/clist/internal/hohlist"

// Queue is the fine-grained locking priority queue. It reuses the
// hand-over-hand substrate from internal/hohlist: locks are always
// acquired in list order, so Push and Pop cannot deadlock against each
// other or against themselves, and each holds at most three node locks
// at once (Pop's predecessor, victim, and tail).
type Queue[T any] struct {
	list *hohlist.List[T]
}

// New builds an empty queue bounded by low and high under cmp, where
// cmp(a, b) reports whether a is lower priority than b.
func New[T any](low, high T, cmp func(a, b T) bool) *Queue[T] {
	return &Queue[T]{list: hohlist.New(low, high, cmp)}
}

// Push inserts v, maintaining non-decreasing order and FIFO order among
// elements of equal priority. The traversal stops at the first element
// whose priority is not less than v's — which may be an existing
// equal-priority element — so v lands immediately in front of (head-ward
// of) the whole existing equal-priority run. Each subsequent push of an
// equal priority repeats this, so the run's tail-ward end always holds
// whichever equal element was pushed first; tail-drain Pop therefore
// reaches the earliest-pushed of a tied run before any later one.
func (q *Queue[T]) Push(v T) {
	less := q.list.Less
	stop := func(cur T) bool { return !less(cur, v) }

	pred, curr := q.list.FindLocked(stop)
	q.list.SpliceInsert(pred, curr, v)
	curr.Unlock()
	pred.Unlock()
}

// Pop removes and returns the highest-priority element, or reports
// ok == false if the queue holds only sentinels.
func (q *Queue[T]) Pop() (v T, ok bool) {
	return q.list.PopTail()
}

// Empty reports whether the queue currently holds no elements.
func (q *Queue[T]) Empty() bool {
	return q.list.Size() == 0
}

// Size returns the current count of elements.
func (q *Queue[T]) Size() int {
	return int(q.list.Size())
}

// CheckInvariants audits the chain without acquiring any node lock. Not
// safe to call concurrently with Push/Pop; meant for quiescent
// post-test inspection.
func (q *Queue[T]) CheckInvariants() bool {
	return q.list.CheckInvariants()
}
