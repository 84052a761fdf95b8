// Package compactor merges several sorted snapshot sequences into one,
// the way a background compaction pass merges per-segment journals in
// a log-structured store: equal values across inputs collapse to the
// last one seen, so a later snapshot's view of a value wins over an
// earlier one.
package compactor

import (
	"fmt"
	"io"
	"iter"

	"github.com/samueldeng/clist/loser"
	"github.com/samueldeng/clist/snapshot"
)

const maxValue = int64(1)<<63 - 1

// sliceSequence adapts an in-memory ascending slice to loser.Sequence,
// letting tests and small merges avoid going through actual snapshot
// files.
type sliceSequence struct {
	values []int64
}

func (s sliceSequence) All() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for _, v := range s.values {
			if !yield(v) {
				return
			}
		}
	}
}

// NewSliceSequence wraps an already-sorted slice as a loser.Sequence[int64].
func NewSliceSequence(values []int64) loser.Sequence[int64] {
	return sliceSequence{values: values}
}

// Compact merges sequences, which must each yield values in ascending
// order, writing the deduplicated union to w as a new snapshot. Later
// entries in sequences order win ties, matching how a later-written
// segment supersedes an earlier one for the same value.
func Compact(w io.Writer, opts *snapshot.Options, sequences ...loser.Sequence[int64]) error {
	if len(sequences) == 0 {
		return nil
	}

	sw, err := snapshot.NewWriter(w, opts)
	if err != nil {
		return fmt.Errorf("compactor: opening snapshot writer: %w", err)
	}

	tree := loser.New(sequences, maxValue, func(a, b int64) bool { return a < b })

	var (
		have bool
		last int64
	)
	for current := range tree.All() {
		if have && current != last {
			if err := sw.Add(last); err != nil {
				return fmt.Errorf("compactor: writing value: %w", err)
			}
		}
		last = current
		have = true
	}
	if have {
		if err := sw.Add(last); err != nil {
			return fmt.Errorf("compactor: writing final value: %w", err)
		}
	}

	return sw.Close()
}
