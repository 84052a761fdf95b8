// Package orderedset implements a totally ordered set backed by a sorted
// singly-linked list with sentinel head and tail nodes, in three
// interchangeable variants:
//
//   - Sequential, a single-threaded reference implementation used as a
//     correctness oracle and for baseline measurement.
//   - Coarse, the same algorithm serialized by one reader/writer lock:
//     Contains takes the shared side, Add/Remove take the exclusive side.
//   - Fine, a hand-over-hand fine-grained implementation where every node
//     carries its own mutex, supporting concurrent Add/Remove/Contains
//     from many goroutines without a single global lock.
//
// All three satisfy the Set interface and the same structural invariants:
// the chain is sorted under the caller's comparator, the two sentinels
// bracket every real element, and the tail sentinel is always reachable
// from the head. Elements are unique under the comparator; duplicate
// inserts return false and leave the set unchanged.
//
// Basic usage:
//
//	s := orderedset.NewFine(math.MinInt, math.MaxInt, func(a, b int) bool { return a < b })
//	s.Add(10)
//	s.Add(20)
//	s.Contains(10) // true
//	s.Remove(10)   // true
//	s.Size()       // 1
//
// T must supply a "lowest" and "highest" sentinel value passed explicitly
// to the constructor, since Go generics have no equivalent of
// std::numeric_limits: the two values must compare strictly below and
// above every value the caller will ever insert.
//
// CheckInvariants audits the chain for sorted order, reachability, and
// size consistency. It is meant for quiescent post-test inspection only.
// Coarse runs the audit under the shared side of its lock; calling it
// concurrently with a mutation on Fine is a race by design, since
// auditing would otherwise require a lock the fine-grained variant
// deliberately avoids.
package orderedset
