// Package pq implements a fine-grained, hand-over-hand locking priority
// queue on the same sorted-list substrate as orderedset.Fine, but
// allowing duplicates and accepting a user-supplied comparator: the
// largest element under that comparator is the highest priority.
//
// Push inserts in non-decreasing order; Pop removes and returns the
// element immediately before the tail sentinel, so the highest-priority
// element is always the one closest to tail. Because Push places a new
// element immediately before the first existing element that is not
// strictly less than it, a run of equal-priority pushes accumulates with
// the earliest push closest to tail and the most recent push closest to
// head — so tail-drain pops the run back out in the same order it was
// pushed (FIFO among ties).
//
// Basic usage:
//
//	q := pq.New(math.MinInt, math.MaxInt, func(a, b int) bool { return a < b })
//	q.Push(5)
//	q.Push(1)
//	q.Push(3)
//	v, ok := q.Pop() // v == 5, ok == true
//
// Pop on an empty queue returns ok == false rather than an error; an
// empty dequeue is a normal state transition, not a failure.
package pq
