package journal

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/btree"

	"github.com/samueldeng/clist/rotation"
)

// Writer appends OperationRecord entries to an underlying stream,
// buffering each open segment in a sorted in-memory tree and flushing
// it, in sequence order, once strategy says the segment should rotate.
type Writer struct {
	mu       sync.Mutex
	w        io.WriteCloser
	strategy rotation.Strategy
	segment  *btree.BTreeG[OperationRecord]
	first    time.Time
	closed   bool
}

// NewWriter builds a Writer flushing to w, rotating segments per
// strategy.
func NewWriter(w io.WriteCloser, strategy rotation.Strategy) *Writer {
	return &Writer{
		w:        w,
		strategy: strategy,
		segment:  newSegmentTree(),
	}
}

func newSegmentTree() *btree.BTreeG[OperationRecord] {
	return btree.NewG(32, func(a, b OperationRecord) bool { return a.Less(b) })
}

// Write buffers rec into the current segment, flushing the segment
// first if the rotation strategy says it is full.
func (w *Writer) Write(rec OperationRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return fmt.Errorf("journal: writer is closed")
	}

	if w.segment.Len() > 0 && w.strategy.ShouldRotate(rotation.Information{
		RecordCount:  w.segment.Len(),
		FirstWritten: w.first,
	}, time.Now()) {
		if err := w.flushLocked(); err != nil {
			return err
		}
	}

	if w.segment.Len() == 0 {
		w.first = time.Now()
	}
	w.segment.ReplaceOrInsert(rec)
	return nil
}

func (w *Writer) flushLocked() error {
	var writeErr error
	w.segment.Ascend(func(rec OperationRecord) bool {
		if _, err := Write(w.w, rec); err != nil {
			writeErr = err
			return false
		}
		return true
	})
	if writeErr != nil {
		return writeErr
	}
	w.segment = newSegmentTree()
	return nil
}

// Close flushes any buffered records and closes the underlying stream.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return fmt.Errorf("journal: writer already closed")
	}
	w.closed = true

	if w.segment.Len() > 0 {
		if err := w.flushLocked(); err != nil {
			return err
		}
	}
	return w.w.Close()
}
