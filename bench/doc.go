// Package bench implements the benchmark harness contract: construct
// one collection, run a fixed warmup workload sequentially, then split a
// fixed workload of operation records evenly across worker goroutines.
// Each worker executes its slice repeatedly for a measured duration; the
// harness reports per-iteration wall time and items processed.
//
// Workloads are generated once and reused across adapters so that every
// implementation under test — the sequential, coarse, and fine
// orderedset variants, the pq.Queue, and the baseline adapters built on
// github.com/google/btree and container/heap — sees the same
// sequence of operations, mirroring how the original C++ benchmarks
// compared the hand-over-hand set against std::set and std::unordered_set.
//
// A multi-worker run against an adapter that reports ThreadSafe()
// false (the sequential variant, BTreeSetAdapter, and HeapPQAdapter) is
// rejected: those wrappers add no synchronization of their own.
// LockedBTreeSetAdapter guards its tree with a mutex and accepts
// multiple workers.
package bench
