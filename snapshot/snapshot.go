// Package snapshot writes and reads a sorted dump of a collection's
// contents, with a sparse index for fast point lookups — the forensic
// counterpart to journal: where a journal replays how a collection
// reached a state, a snapshot records what that state was.
//
// A snapshot file is a sequence of int64 values in ascending order,
// followed by a sparse index (recorded every indexInterval entries)
// and a fixed footer pointing back at the index.
package snapshot

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"
)

const (
	magicHeader   = int64(0x534e4150) // "SNAP"
	magicFooter   = int64(0x454e4421) // "END!"
	formatVersion = int64(1)
)

var (
	ErrCorruptedTable = errors.New("snapshot: corrupted table data")
	ErrKeyNotFound    = errors.New("snapshot: key not found")
	ErrWriteOutOfOrder = errors.New("snapshot: values must be written in ascending order")
	footerSize         = int64(binary.Size(magicFooter) + binary.Size(int64(0)))
)

type indexEntry struct {
	value  int64
	offset int64
}

// Options configures sparse-index density.
type Options struct {
	// IndexInterval records one sparse-index entry every IndexInterval
	// values written. Defaults to 128.
	IndexInterval int
}

func (o *Options) interval() int {
	if o == nil || o.IndexInterval <= 0 {
		return 128
	}
	return o.IndexInterval
}

// Writer writes an ascending sequence of values to an io.Writer,
// tracking a sparse index as it goes.
type Writer struct {
	mu       sync.Mutex
	w        io.Writer
	buf      *bufio.Writer
	interval int
	count    int
	offset   int64
	hasLast  bool
	last     int64
	index    []indexEntry
	closed   bool
}

// NewWriter opens a snapshot writer over w.
func NewWriter(w io.Writer, opts *Options) (*Writer, error) {
	sw := &Writer{
		w:        w,
		buf:      bufio.NewWriter(w),
		interval: opts.interval(),
	}
	if err := binary.Write(sw.buf, binary.LittleEndian, magicHeader); err != nil {
		return nil, fmt.Errorf("snapshot: writing header: %w", err)
	}
	if err := binary.Write(sw.buf, binary.LittleEndian, formatVersion); err != nil {
		return nil, fmt.Errorf("snapshot: writing version: %w", err)
	}
	sw.offset = 16
	return sw, nil
}

// Add appends value, which must be >= every value written so far.
func (w *Writer) Add(value int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return fmt.Errorf("snapshot: writer is closed")
	}
	if w.hasLast && value < w.last {
		return ErrWriteOutOfOrder
	}

	if w.count%w.interval == 0 {
		w.index = append(w.index, indexEntry{value: value, offset: w.offset})
	}

	if err := binary.Write(w.buf, binary.LittleEndian, value); err != nil {
		return fmt.Errorf("snapshot: writing value: %w", err)
	}
	w.offset += 8
	w.count++
	w.last = value
	w.hasLast = true
	return nil
}

// Close writes the sparse index and footer, flushing all buffered
// output.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return fmt.Errorf("snapshot: writer already closed")
	}
	w.closed = true

	indexOffset := w.offset
	if err := binary.Write(w.buf, binary.LittleEndian, int64(len(w.index))); err != nil {
		return fmt.Errorf("snapshot: writing index count: %w", err)
	}
	for _, e := range w.index {
		if err := binary.Write(w.buf, binary.LittleEndian, e.value); err != nil {
			return fmt.Errorf("snapshot: writing index entry value: %w", err)
		}
		if err := binary.Write(w.buf, binary.LittleEndian, e.offset); err != nil {
			return fmt.Errorf("snapshot: writing index entry offset: %w", err)
		}
	}
	if err := binary.Write(w.buf, binary.LittleEndian, indexOffset); err != nil {
		return fmt.Errorf("snapshot: writing footer offset: %w", err)
	}
	if err := binary.Write(w.buf, binary.LittleEndian, magicFooter); err != nil {
		return fmt.Errorf("snapshot: writing footer magic: %w", err)
	}
	return w.buf.Flush()
}

// Reader reads back a snapshot file written by Writer.
type Reader struct {
	r           io.ReadSeeker
	index       []indexEntry
	dataEnd     int64
}

// OpenReader loads the header and sparse index from r.
func OpenReader(r io.ReadSeeker) (*Reader, error) {
	reader := &Reader{r: r}
	if err := reader.load(); err != nil {
		return nil, err
	}
	return reader, nil
}

func (r *Reader) load() error {
	if _, err := r.r.Seek(0, io.SeekStart); err != nil {
		return err
	}
	var header, version int64
	if err := binary.Read(r.r, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("snapshot: reading header: %w", err)
	}
	if header != magicHeader {
		return ErrCorruptedTable
	}
	if err := binary.Read(r.r, binary.LittleEndian, &version); err != nil {
		return fmt.Errorf("snapshot: reading version: %w", err)
	}
	if version != formatVersion {
		return fmt.Errorf("snapshot: unsupported version %d", version)
	}

	if _, err := r.r.Seek(-footerSize, io.SeekEnd); err != nil {
		return fmt.Errorf("snapshot: seeking to footer: %w", err)
	}
	var indexOffset, footer int64
	if err := binary.Read(r.r, binary.LittleEndian, &indexOffset); err != nil {
		return fmt.Errorf("snapshot: reading footer offset: %w", err)
	}
	if err := binary.Read(r.r, binary.LittleEndian, &footer); err != nil {
		return fmt.Errorf("snapshot: reading footer magic: %w", err)
	}
	if footer != magicFooter {
		return ErrCorruptedTable
	}
	r.dataEnd = indexOffset

	if _, err := r.r.Seek(indexOffset, io.SeekStart); err != nil {
		return err
	}
	var count int64
	if err := binary.Read(r.r, binary.LittleEndian, &count); err != nil {
		return fmt.Errorf("snapshot: reading index count: %w", err)
	}
	r.index = make([]indexEntry, 0, count)
	for i := int64(0); i < count; i++ {
		var e indexEntry
		if err := binary.Read(r.r, binary.LittleEndian, &e.value); err != nil {
			return fmt.Errorf("snapshot: reading index value: %w", err)
		}
		if err := binary.Read(r.r, binary.LittleEndian, &e.offset); err != nil {
			return fmt.Errorf("snapshot: reading index offset: %w", err)
		}
		r.index = append(r.index, e)
	}
	return nil
}

// All returns every value stored in the snapshot, in ascending order.
func (r *Reader) All() ([]int64, error) {
	if _, err := r.r.Seek(16, io.SeekStart); err != nil {
		return nil, err
	}
	var values []int64
	for {
		pos, err := r.r.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, err
		}
		if pos >= r.dataEnd {
			break
		}
		var v int64
		if err := binary.Read(r.r, binary.LittleEndian, &v); err != nil {
			return nil, fmt.Errorf("snapshot: reading value: %w", err)
		}
		values = append(values, v)
	}
	return values, nil
}

// Has reports whether value exists, using the sparse index to skip to
// the nearest preceding block before scanning linearly.
func (r *Reader) Has(value int64) (bool, error) {
	offset := int64(16)
	for _, e := range r.index {
		if e.value > value {
			break
		}
		offset = e.offset
	}

	if _, err := r.r.Seek(offset, io.SeekStart); err != nil {
		return false, err
	}
	for {
		pos, err := r.r.Seek(0, io.SeekCurrent)
		if err != nil {
			return false, err
		}
		if pos >= r.dataEnd {
			return false, nil
		}
		var v int64
		if err := binary.Read(r.r, binary.LittleEndian, &v); err != nil {
			return false, fmt.Errorf("snapshot: reading value: %w", err)
		}
		if v == value {
			return true, nil
		}
		if v > value {
			return false, nil
		}
	}
}
