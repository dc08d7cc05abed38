package database

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileSlot stores the slot value as <dir>/<key>.json on an afero filesystem.
type FileSlot struct {
	fs  afero.Fs
	dir string
	key string
}

// NewFileSlot creates a FileSlot rooted at dir, creating the directory if needed.
func NewFileSlot(fsys afero.Fs, dir, key string) (*FileSlot, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create storage directory %q: %w", dir, err)
	}
	return &FileSlot{fs: fsys, dir: dir, key: key}, nil
}

// NewMemorySlot returns a FileSlot backed by an in-memory filesystem.
func NewMemorySlot(key string) *FileSlot {
	return &FileSlot{fs: afero.NewMemMapFs(), dir: "/", key: key}
}

func (s *FileSlot) Key() string { return s.key }

// Path returns the file holding the slot value.
func (s *FileSlot) Path() string { return filepath.Join(s.dir, s.key+".json") }

func (s *FileSlot) Read(_ context.Context) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, s.Path())
	if errors.Is(err, fs.ErrNotExist) || (err == nil && len(data) == 0) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read slot file %q: %w", s.Path(), err)
	}
	return data, nil
}

// Write replaces the file atomically: the value goes to a temporary file
// which is then renamed over the slot file.
func (s *FileSlot) Write(_ context.Context, value []byte) error {
	tmp := s.Path() + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, value, 0o600); err != nil {
		return fmt.Errorf("cannot write slot file %q: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, s.Path()); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("cannot replace slot file %q: %w", s.Path(), err)
	}
	return nil
}

func (s *FileSlot) Clear(_ context.Context) error {
	err := s.fs.Remove(s.Path())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("cannot remove slot file %q: %w", s.Path(), err)
	}
	return nil
}
