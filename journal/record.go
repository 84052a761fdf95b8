package journal

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Kind identifies the operation an OperationRecord replays.
type Kind byte

const (
	KindAdd Kind = iota
	KindRemove
	KindContains
	KindPush
	KindPop
)

// MagicBytes identifies a valid journal record on disk.
var MagicBytes = []byte{0x4a, 0x4e, 0x4c} // "JNL"

// ErrInvalidMagicBytes is returned by ReadRecord when the stream does
// not begin with MagicBytes at the expected offset.
var ErrInvalidMagicBytes = errors.New("journal: invalid magic bytes - not a journal record")

// OperationRecord is one operation applied to a collection under test,
// recorded in the order a worker goroutine issued it. Value carries the
// operand for Add/Remove/Contains/Push and is unused for Pop.
type OperationRecord struct {
	Sequence int64
	WorkerID int32
	Kind     Kind
	Value    int64
}

// Less orders records by sequence number, then worker, matching replay
// order: a journal reader must reproduce the exact interleaving that
// produced a bug, not merely a sorted-by-value view.
func (r OperationRecord) Less(other OperationRecord) bool {
	if r.Sequence != other.Sequence {
		return r.Sequence < other.Sequence
	}
	return r.WorkerID < other.WorkerID
}

// Size reports the number of bytes Write will emit for r.
func Size(_ OperationRecord) int64 {
	return int64(len(MagicBytes)) + 8 + 4 + 1 + 8
}

// Write encodes r to w, returning the number of bytes written.
func Write(w io.Writer, r OperationRecord) (int64, error) {
	var buf bytes.Buffer
	buf.Write(MagicBytes)
	if err := binary.Write(&buf, binary.LittleEndian, r.Sequence); err != nil {
		return 0, fmt.Errorf("journal: writing sequence: %w", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, r.WorkerID); err != nil {
		return 0, fmt.Errorf("journal: writing worker id: %w", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, byte(r.Kind)); err != nil {
		return 0, fmt.Errorf("journal: writing kind: %w", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, r.Value); err != nil {
		return 0, fmt.Errorf("journal: writing value: %w", err)
	}

	n, err := w.Write(buf.Bytes())
	if err != nil {
		return int64(n), fmt.Errorf("journal: writing record: %w", err)
	}
	return int64(n), nil
}

// ReadRecord decodes a single OperationRecord from r.
func ReadRecord(r io.Reader) (OperationRecord, error) {
	magic := make([]byte, len(MagicBytes))
	if _, err := io.ReadFull(r, magic); err != nil {
		return OperationRecord{}, fmt.Errorf("journal: reading magic bytes: %w", err)
	}
	if !bytes.Equal(magic, MagicBytes) {
		return OperationRecord{}, ErrInvalidMagicBytes
	}

	var rec OperationRecord
	if err := binary.Read(r, binary.LittleEndian, &rec.Sequence); err != nil {
		return OperationRecord{}, fmt.Errorf("journal: reading sequence: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &rec.WorkerID); err != nil {
		return OperationRecord{}, fmt.Errorf("journal: reading worker id: %w", err)
	}
	var kind byte
	if err := binary.Read(r, binary.LittleEndian, &kind); err != nil {
		return OperationRecord{}, fmt.Errorf("journal: reading kind: %w", err)
	}
	rec.Kind = Kind(kind)
	if err := binary.Read(r, binary.LittleEndian, &rec.Value); err != nil {
		return OperationRecord{}, fmt.Errorf("journal: reading value: %w", err)
	}
	return rec, nil
}

// Seq returns an iterator over every record readable from r until EOF.
func Seq(r io.Reader) func(yield func(OperationRecord) bool) {
	return func(yield func(OperationRecord) bool) {
		for {
			rec, err := ReadRecord(r)
			if err != nil {
				return
			}
			if !yield(rec) {
				return
			}
		}
	}
}
