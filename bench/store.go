package bench

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/pebble"
)

// ResultStore persists historical Result records in a Pebble key-value
// store, keyed by an externally supplied timestamp so results can be
// listed back in run order. One ResultStore typically backs one
// benchmark history directory across many process invocations.
type ResultStore struct {
	db *pebble.DB
}

// OpenResultStore opens (creating if necessary) a Pebble database at
// path for storing Result records.
func OpenResultStore(path string) (*ResultStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("bench: creating store directory: %w", err)
	}
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("bench: opening result store: %w", err)
	}
	return &ResultStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *ResultStore) Close() error {
	return s.db.Close()
}

// resultKey orders entries by nanosecond timestamp ascending so a
// forward iteration yields results in run order.
func resultKey(atNanos int64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(atNanos))
	return key
}

// Put records result under the given timestamp (nanoseconds since the
// Unix epoch, supplied by the caller since this package never calls
// time.Now() directly in code paths meant to be deterministic).
func (s *ResultStore) Put(atNanos int64, result Result) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(result); err != nil {
		return fmt.Errorf("bench: encoding result: %w", err)
	}
	return s.db.Set(resultKey(atNanos), buf.Bytes(), pebble.Sync)
}

// List returns every stored Result whose timestamp falls in
// [fromNanos, toNanos), ordered oldest first.
func (s *ResultStore) List(fromNanos, toNanos int64) ([]Result, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: resultKey(fromNanos),
		UpperBound: resultKey(toNanos),
	})
	if err != nil {
		return nil, fmt.Errorf("bench: iterating result store: %w", err)
	}
	defer iter.Close()

	var results []Result
	for iter.First(); iter.Valid(); iter.Next() {
		var r Result
		dec := gob.NewDecoder(bytes.NewReader(iter.Value()))
		if err := dec.Decode(&r); err != nil {
			return nil, fmt.Errorf("bench: decoding result: %w", err)
		}
		results = append(results, r)
	}
	return results, nil
}
