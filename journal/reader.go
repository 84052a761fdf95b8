package journal

import (
	"io"
	"iter"

	"github.com/samueldeng/clist/loser"
)

// Reader replays the records written by a single Writer, in the order
// they were flushed.
type Reader struct {
	r io.ReadCloser
}

// NewReader wraps r for sequential replay.
func NewReader(r io.ReadCloser) *Reader {
	return &Reader{r: r}
}

// All iterates every record in r until EOF.
func (r *Reader) All() iter.Seq[OperationRecord] {
	return Seq(r.r)
}

// Close releases the underlying stream.
func (r *Reader) Close() error {
	return r.r.Close()
}

// streamSequence adapts a plain io.Reader into a loser.Sequence so
// MergeJournals can drive several streams through the tournament tree.
type streamSequence struct {
	r io.Reader
}

func (s streamSequence) All() iter.Seq[OperationRecord] {
	return Seq(s.r)
}

// maxRecord sorts after every real record: it is the loser tree's
// sentinel for an exhausted sequence.
var maxRecord = OperationRecord{Sequence: 1<<63 - 1, WorkerID: 1<<31 - 1}

// MergeJournals merges several per-worker journal streams (each
// internally sequence-ordered) into a single iterator ordered by
// OperationRecord.Less, reconstructing the original interleaving of a
// concurrent soak run for replay.
func MergeJournals(streams ...io.Reader) iter.Seq[OperationRecord] {
	sequences := make([]loser.Sequence[OperationRecord], len(streams))
	for i, s := range streams {
		sequences[i] = streamSequence{r: s}
	}
	tree := loser.New(sequences, maxRecord, func(a, b OperationRecord) bool { return a.Less(b) })
	return tree.All()
}
