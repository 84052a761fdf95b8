package bench

import (
	"container/heap"
	"sync"

	"github.com/google/btree"

	"github.com/samueldeng/clist/orderedset"
	"github.com/samueldeng/clist/pq"
)

// SetAdapter is the contract the harness drives. ThreadSafe must report
// true for a wrapper to be registered with more than one worker; the
// sequential variant, BTreeSetAdapter, and HeapPQAdapter add no
// synchronization of their own and report false.
type SetAdapter interface {
	Add(v int) bool
	Remove(v int) bool
	Contains(v int) bool
	ThreadSafe() bool
}

// PQAdapter is the priority-queue equivalent of SetAdapter.
type PQAdapter interface {
	Push(v int)
	Pop() (int, bool)
	ThreadSafe() bool
}

// wrappers around this module's own collections.

type sequentialAdapter struct{ *orderedset.Sequential[int] }

func (sequentialAdapter) ThreadSafe() bool { return false }

// NewSequentialAdapter wraps orderedset.Sequential for the harness.
func NewSequentialAdapter(low, high int) SetAdapter {
	return sequentialAdapter{orderedset.NewSequential(low, high, func(a, b int) bool { return a < b })}
}

type coarseAdapter struct{ *orderedset.Coarse[int] }

func (coarseAdapter) ThreadSafe() bool { return true }

// NewCoarseAdapter wraps orderedset.Coarse for the harness.
func NewCoarseAdapter(low, high int) SetAdapter {
	return coarseAdapter{orderedset.NewCoarse(low, high, func(a, b int) bool { return a < b })}
}

type fineAdapter struct{ *orderedset.Fine[int] }

func (fineAdapter) ThreadSafe() bool { return true }

// NewFineAdapter wraps orderedset.Fine for the harness.
func NewFineAdapter(low, high int) SetAdapter {
	return fineAdapter{orderedset.NewFine(low, high, func(a, b int) bool { return a < b })}
}

type finePQAdapter struct{ *pq.Queue[int] }

func (finePQAdapter) ThreadSafe() bool { return true }

// NewFinePQAdapter wraps pq.Queue for the harness.
func NewFinePQAdapter(low, high int) PQAdapter {
	return finePQAdapter{pq.New(low, high, func(a, b int) bool { return a < b })}
}

// BTreeSetAdapter is a single-threaded baseline built on
// github.com/google/btree, standing in for the original benchmark's
// std::set comparison point. It is not thread-safe: the harness must
// reject multi-worker registration for it.
type BTreeSetAdapter struct {
	tree *btree.BTreeG[int]
}

// NewBTreeSetAdapter builds a baseline set adapter over a degree-32
// B-tree.
func NewBTreeSetAdapter() *BTreeSetAdapter {
	return &BTreeSetAdapter{tree: btree.NewG(32, func(a, b int) bool { return a < b })}
}

func (b *BTreeSetAdapter) Add(v int) bool {
	_, existed := b.tree.ReplaceOrInsert(v)
	return !existed
}

func (b *BTreeSetAdapter) Remove(v int) bool {
	_, existed := b.tree.Delete(v)
	return existed
}

func (b *BTreeSetAdapter) Contains(v int) bool {
	return b.tree.Has(v)
}

func (b *BTreeSetAdapter) ThreadSafe() bool { return false }

// LockedBTreeSetAdapter wraps BTreeSetAdapter in a single mutex, giving
// the harness a coarse-locked baseline built on a different underlying
// structure than orderedset.Coarse.
type LockedBTreeSetAdapter struct {
	mu   sync.Mutex
	tree *btree.BTreeG[int]
}

// NewLockedBTreeSetAdapter builds a mutex-guarded B-tree baseline.
func NewLockedBTreeSetAdapter() *LockedBTreeSetAdapter {
	return &LockedBTreeSetAdapter{tree: btree.NewG(32, func(a, b int) bool { return a < b })}
}

func (b *LockedBTreeSetAdapter) Add(v int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, existed := b.tree.ReplaceOrInsert(v)
	return !existed
}

func (b *LockedBTreeSetAdapter) Remove(v int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, existed := b.tree.Delete(v)
	return existed
}

func (b *LockedBTreeSetAdapter) Contains(v int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tree.Has(v)
}

func (b *LockedBTreeSetAdapter) ThreadSafe() bool { return true }

// heapItem/heapPQ are a container/heap baseline standing in for the
// original benchmark's std::priority_queue comparison point.
type heapItem struct {
	value    int
	priority int
	seq      int
}

type minHeap []heapItem

func (h minHeap) Len() int { return len(h) }
func (h minHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// HeapPQAdapter is a single-threaded container/heap baseline priority
// queue, highest value first, FIFO among ties.
type HeapPQAdapter struct {
	h   minHeap
	seq int
}

// NewHeapPQAdapter builds an empty heap-based baseline.
func NewHeapPQAdapter() *HeapPQAdapter {
	a := &HeapPQAdapter{}
	heap.Init(&a.h)
	return a
}

func (a *HeapPQAdapter) Push(v int) {
	heap.Push(&a.h, heapItem{value: v, priority: -v, seq: a.seq})
	a.seq++
}

func (a *HeapPQAdapter) Pop() (int, bool) {
	if a.h.Len() == 0 {
		return 0, false
	}
	item := heap.Pop(&a.h).(heapItem)
	return item.value, true
}

func (a *HeapPQAdapter) ThreadSafe() bool { return false }
