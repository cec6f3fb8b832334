package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkordes/rec-registration/internal/domain"
)

// DiskStore keeps uploaded images as plain files in one directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates dir if needed and returns a store rooted there.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload.NewDiskStore: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save writes r to a new file called name. An existing file is never
// overwritten.
func (s *DiskStore) Save(_ context.Context, name string, r io.Reader, _ int64, _ string) error {
	if err := checkName(name); err != nil {
		return fmt.Errorf("upload.DiskStore.Save: %w", err)
	}

	path := filepath.Join(s.dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("upload.DiskStore.Save: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("upload.DiskStore.Save: write: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("upload.DiskStore.Save: close: %w", err)
	}
	return nil
}

// Open returns the stored file called name.
// Returns domain.ErrNotFound for unknown, invalid or directory names.
func (s *DiskStore) Open(_ context.Context, name string) (File, error) {
	if err := checkName(name); err != nil {
		return File{}, fmt.Errorf("upload.DiskStore.Open: %w", domain.ErrNotFound)
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return File{}, fmt.Errorf("upload.DiskStore.Open: %w", domain.ErrNotFound)
		}
		return File{}, fmt.Errorf("upload.DiskStore.Open: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return File{}, fmt.Errorf("upload.DiskStore.Open: stat: %w", err)
	}
	if info.IsDir() {
		f.Close()
		return File{}, fmt.Errorf("upload.DiskStore.Open: %w", domain.ErrNotFound)
	}

	return File{ReadSeekCloser: f, ModTime: info.ModTime()}, nil
}
