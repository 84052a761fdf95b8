package replay

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/samueldeng/clist/journal"
)

// ReadAtCloser is what Storage.Open returns: journal.Reader only needs
// sequential reads, but keeping ReadAt here lets a Storage back onto
// range-capable stores (e.g. object storage byte-range GETs) without
// widening this interface later.
type ReadAtCloser interface {
	io.ReaderAt
	io.Closer
}

// Storage is where published journal segments live, ready for replay.
type Storage interface {
	Open(ctx context.Context, name string) (ReadAtCloser, error)
	ListPublished(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
}

// Options configures a Replayer.
type Options struct {
	PollInterval   time.Duration
	MaxConcurrency int
}

// DefaultOptions returns sane polling defaults.
func DefaultOptions() Options {
	return Options{
		PollInterval:   5 * time.Second,
		MaxConcurrency: 10,
	}
}

// Replayer polls storage for published journal segments and feeds each
// one's operations to handler, deleting the segment once handled.
type Replayer struct {
	storage      Storage
	handler      Handler
	pollInterval time.Duration
	sem          chan struct{}
	processing   sync.Map
	stopChan     chan struct{}
	wg           sync.WaitGroup
}

// New builds a Replayer reading from storage and dispatching to
// handler.
func New(storage Storage, handler Handler, opts Options) *Replayer {
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = 1
	}
	return &Replayer{
		storage:      storage,
		handler:      handler,
		pollInterval: opts.PollInterval,
		sem:          make(chan struct{}, opts.MaxConcurrency),
		stopChan:     make(chan struct{}),
	}
}

// Start polls storage on pollInterval until ctx is cancelled or Stop is
// called, processing newly published segments as they appear.
func (r *Replayer) Start(ctx context.Context) error {
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	if err := r.Process(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.stopChan:
			return nil
		case <-ticker.C:
			if err := r.Process(ctx); err != nil {
				continue
			}
		}
	}
}

// Stop signals Start to return and waits for in-flight segments to
// finish.
func (r *Replayer) Stop() {
	close(r.stopChan)
	r.wg.Wait()
}

// Process replays every currently published segment once.
func (r *Replayer) Process(ctx context.Context) error {
	segments, err := r.storage.ListPublished(ctx)
	if err != nil {
		return fmt.Errorf("replay: listing published segments: %w", err)
	}

	for _, segment := range segments {
		if _, exists := r.processing.LoadOrStore(segment, struct{}{}); exists {
			continue
		}

		select {
		case r.sem <- struct{}{}:
		case <-ctx.Done():
			r.processing.Delete(segment)
			return ctx.Err()
		}

		r.wg.Add(1)
		go func(segment string) {
			defer func() {
				r.processing.Delete(segment)
				<-r.sem
				r.wg.Done()
			}()
			_ = r.processSegment(ctx, segment)
		}(segment)
	}
	return nil
}

func (r *Replayer) processSegment(ctx context.Context, segment string) error {
	reader, err := r.storage.Open(ctx, segment)
	if err != nil {
		return fmt.Errorf("replay: opening segment %s: %w", segment, err)
	}
	defer reader.Close()

	jr := journal.NewReader(&readerFromReaderAt{ra: reader})
	if err := r.handler.Handle(ctx, segment, jr.All()); err != nil {
		return fmt.Errorf("replay: handling segment %s: %w", segment, err)
	}

	return r.storage.Delete(ctx, segment)
}

// readerFromReaderAt adapts a ReaderAt into a plain sequential
// ReadCloser, which is all journal.Reader needs for replay.
type readerFromReaderAt struct {
	ra  ReadAtCloser
	pos int64
}

func (r *readerFromReaderAt) Read(p []byte) (int, error) {
	n, err := r.ra.ReadAt(p, r.pos)
	r.pos += int64(n)
	return n, err
}

func (r *readerFromReaderAt) Close() error {
	return r.ra.Close()
}
