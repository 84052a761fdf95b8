// Package local implements replay.Storage over two local filesystem
// directories: one where journal segments accumulate while a worker is
// still writing them, and one they are moved into once closed and
// ready for a Replayer to consume.
package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/samueldeng/clist/replay"
)

// Storage implements replay.Storage using the local filesystem.
type Storage struct {
	pendingDir    string
	publishingDir string
}

// NewLocalStorage builds a Storage rooted at the given directories,
// which must already exist.
func NewLocalStorage(pendingDir, publishingDir string) *Storage {
	return &Storage{
		pendingDir:    pendingDir,
		publishingDir: publishingDir,
	}
}

// Create opens a new segment file for append-writing in pendingDir.
func (s *Storage) Create(_ context.Context, name string) (io.WriteCloser, error) {
	file, err := os.OpenFile(filepath.Join(s.pendingDir, filepath.Base(name)), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("storage/local: failed to open %s: %w", name, err)
	}
	return file, nil
}

// Publish moves a closed segment from pendingDir into publishingDir,
// making it visible to a Replayer.
func (s *Storage) Publish(_ context.Context, name string) error {
	oldPath := filepath.Join(s.pendingDir, filepath.Base(name))
	newPath := filepath.Join(s.publishingDir, filepath.Base(name))
	return os.Rename(oldPath, newPath)
}

// List returns every segment still pending in pendingDir.
func (s *Storage) List(_ context.Context) ([]string, error) {
	return listDir(s.pendingDir)
}

// Open opens a published segment for reading.
func (s *Storage) Open(_ context.Context, name string) (replay.ReadAtCloser, error) {
	file, err := os.Open(filepath.Join(s.publishingDir, filepath.Base(name)))
	if err != nil {
		return nil, fmt.Errorf("storage/local: failed to open %s: %w", name, err)
	}
	return file, nil
}

// ListPublished returns every segment ready for replay.
func (s *Storage) ListPublished(_ context.Context) ([]string, error) {
	return listDir(s.publishingDir)
}

// Delete removes a published segment once it has been replayed.
func (s *Storage) Delete(_ context.Context, name string) error {
	if err := os.Remove(filepath.Join(s.publishingDir, filepath.Base(name))); err != nil {
		return fmt.Errorf("storage/local: failed to delete %s: %w", name, err)
	}
	return nil
}

func listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
