// Package clist is the root of a library of concurrent ordered
// collections: sorted-set variants under orderedset and a
// fine-grained-lock priority queue under pq. Runner is the ambient
// orchestration layer tying a collection's mutations to a durable,
// replayable journal.
package clist

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/samueldeng/clist/journal"
	"github.com/samueldeng/clist/rotation"
)

// Storage is where a Runner creates, publishes, and lists pending
// journal segments. storage/local implements this over two
// directories.
type Storage interface {
	Create(ctx context.Context, name string) (io.WriteCloser, error)
	Publish(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
}

type activeSegment struct {
	writer *journal.Writer
	info   rotation.Information
	name   string
}

func byFirstWritten(a, b activeSegment) bool {
	return a.info.FirstWritten.Before(b.info.FirstWritten)
}

// Runner records every mutating operation issued against a collection
// to a per-worker durable journal, rotating and publishing segments as
// they fill so a replay.Replayer can later reconstruct exactly what
// happened during, say, a failing concurrent soak run.
type Runner struct {
	storage  Storage
	strategy rotation.Strategy
	mu       sync.Mutex
	active   *activeSegments
	seq      int64
}

// New builds a Runner writing segments through storage.
func New(storage Storage, opts ...Option) *Runner {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Runner{
		storage:  storage,
		strategy: o.strategy,
		active:   newActiveSegments(),
	}
}

// Record appends one operation issued by workerID to that worker's
// journal, opening a new segment first if none is active or the
// rotation strategy says the active one is full.
func (r *Runner) Record(ctx context.Context, workerID int32, kind journal.Kind, value int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seg, exists := r.active.get(workerID)
	if exists && r.strategy.ShouldRotate(seg.info, time.Now()) {
		if err := r.rotateLocked(ctx, workerID, seg); err != nil {
			return err
		}
		exists = false
	}

	if !exists {
		var err error
		seg, err = r.openSegmentLocked(ctx, workerID)
		if err != nil {
			return err
		}
	}

	r.seq++
	rec := journal.OperationRecord{Sequence: r.seq, WorkerID: workerID, Kind: kind, Value: value}
	if err := seg.writer.Write(rec); err != nil {
		return fmt.Errorf("clist: writing record: %w", err)
	}
	seg.info.RecordCount++
	r.active.set(workerID, seg)
	return nil
}

func (r *Runner) openSegmentLocked(ctx context.Context, workerID int32) (activeSegment, error) {
	name := fmt.Sprintf("worker-%d-%d.journal", workerID, time.Now().UnixNano())
	w, err := r.storage.Create(ctx, name)
	if err != nil {
		return activeSegment{}, fmt.Errorf("clist: creating segment %s: %w", name, err)
	}

	seg := activeSegment{
		writer: journal.NewWriter(w, r.strategy),
		info:   rotation.Information{WorkerID: int(workerID), FirstWritten: time.Now()},
		name:   name,
	}
	r.active.set(workerID, seg)
	return seg, nil
}

func (r *Runner) rotateLocked(ctx context.Context, workerID int32, seg activeSegment) error {
	if err := seg.writer.Close(); err != nil {
		return fmt.Errorf("clist: closing segment %s: %w", seg.name, err)
	}
	if err := r.storage.Publish(ctx, seg.name); err != nil {
		return fmt.Errorf("clist: publishing segment %s: %w", seg.name, err)
	}
	r.active.remove(workerID)
	return nil
}

// Rotate closes and publishes workerID's active segment, if any, even
// if the rotation strategy would not yet have triggered it.
func (r *Runner) Rotate(ctx context.Context, workerID int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seg, exists := r.active.get(workerID)
	if !exists {
		return nil
	}
	return r.rotateLocked(ctx, workerID, seg)
}

// Recover republishes any segment left behind in pending storage by a
// crashed previous run, so it becomes visible to a Replayer instead of
// being silently lost.
func (r *Runner) Recover(ctx context.Context) error {
	names, err := r.storage.List(ctx)
	if err != nil {
		return fmt.Errorf("clist: listing pending segments: %w", err)
	}
	for _, name := range names {
		if err := r.storage.Publish(ctx, name); err != nil {
			return fmt.Errorf("clist: publishing recovered segment %s: %w", name, err)
		}
	}
	return nil
}

// Close rotates and publishes every still-open segment.
func (r *Runner) Close(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		workerID, seg, ok := r.active.peek()
		if !ok {
			break
		}
		if err := r.rotateLocked(ctx, workerID, seg); err != nil {
			return fmt.Errorf("clist: closing during shutdown: %w", err)
		}
	}
	return nil
}
