package store

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"passkeeper/internal/domain"
)

const fileMode os.FileMode = 0o600

// FileStore reads and writes the store file on the local filesystem.
type FileStore struct {
	mode os.FileMode
}

// NewFileStore returns a FileStore that creates files with mode 0600.
func NewFileStore() *FileStore { return &FileStore{mode: fileMode} }

// ReadFile returns the contents of path; a missing file reads as empty.
func (s *FileStore) ReadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return []byte{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %q", path)
	}
	return b, nil
}

// WriteFile writes b via a temp file in the same directory, then renames it
// over path. Missing parent directories are created.
func (s *FileStore) WriteFile(path string, b []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrapf(err, "cannot create %q", dir)
	}

	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "cannot create temp file")
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "cannot write temp file")
	}
	if err := f.Chmod(s.mode); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "cannot chmod temp file")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "cannot close temp file")
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "cannot replace %q", path)
	}
	return nil
}

// Compile-time assertion that FileStore implements domain.FileProvider.
var _ domain.FileProvider = (*FileStore)(nil)
