// Package compactor merges several sorted snapshot sequences into a
// single snapshot file. It uses a loser tree to merge sequences in
// streaming fashion, deduplicating equal values so the result holds
// each distinct value once.
//
// Basic usage:
//
//	a := compactor.NewSliceSequence([]int64{1, 3, 5})
//	b := compactor.NewSliceSequence([]int64{2, 3, 6})
//
//	file, err := os.Create("merged.snap")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer file.Close()
//
//	if err := compactor.Compact(file, nil, a, b); err != nil {
//		log.Fatal(err)
//	}
//
// Compact streams through the loser tree's merged order rather than
// sorting in memory; the only state that grows with the output is the
// snapshot writer's sparse index (one entry per IndexInterval values).
package compactor
