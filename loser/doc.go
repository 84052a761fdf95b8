// Package loser merges several ascending sequences into one ascending
// sequence using a tournament (loser) tree: each internal node retains
// the loser of a comparison between its children, and the root holds
// the running winner, so advancing the merge costs O(log n) comparisons
// per element rather than a full rescan of every input.
//
// Both durability packages in this module lean on it rather than
// re-implementing k-way merge themselves:
//
//   - journal.MergeJournals replays a worker's segments, oldest first,
//     back in the order their operations actually happened, without
//     concatenating and re-sorting every record up front.
//   - compactor.Compact folds several sorted snapshot sequences into
//     one deduplicated snapshot, the way a background compaction pass
//     merges per-segment output in a log-structured store, with a
//     later sequence's value winning a tie.
//
// A caller adapts an input to Sequence once; New then does the merge:
//
//	tree := loser.New(
//	    []loser.Sequence[int64]{segmentA, segmentB},
//	    math.MaxInt64,
//	    func(a, b int64) bool { return a < b },
//	)
//	for v := range tree.All() {
//	    // v arrives in ascending order across both inputs
//	}
package loser
