package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps each blob as a file under <baseDir>/<user>/<name>.
// The layout matches the original data directory, so pre-existing
// carbon_footprint.json and preferences.json files load as-is.
type FileStore struct {
	baseDir string
}

// NewFileStore creates a FileStore rooted at baseDir. The directory is
// created lazily on first write.
func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

// Read returns the contents of <baseDir>/<user>/<name>.
func (s *FileStore) Read(_ context.Context, user, name string) ([]byte, error) {
	path, err := s.blobPath(user, name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading blob %s: %w", path, err)
	}

	return data, nil
}

// Write replaces <baseDir>/<user>/<name> via a temp file and rename, so a
// crash mid-write never leaves a truncated document behind.
func (s *FileStore) Write(_ context.Context, user, name string, data []byte) error {
	path, err := s.blobPath(user, name)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating user directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing blob %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file for %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replacing blob %s: %w", path, err)
	}

	return nil
}

// Close is a no-op for the filesystem backend.
func (s *FileStore) Close() error { return nil }

// blobPath joins the base directory with the user and blob name, rejecting
// components that would escape the data directory.
func (s *FileStore) blobPath(user, name string) (string, error) {
	for _, part := range []string{user, name} {
		if part == "" || part != filepath.Base(part) || part == ".." {
			return "", fmt.Errorf("invalid blob path component %q", part)
		}
	}
	return filepath.Join(s.baseDir, user, name), nil
}
