package cart

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists the cart snapshot as a single JSON file under the fixed
// key inside a local directory, mirroring the browser's local key-value store.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed snapshot store rooted at dir
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (f *FileStore) path() string {
	return filepath.Join(f.dir, SnapshotKey+".json")
}

func (f *FileStore) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path())
	if os.IsNotExist(err) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("read cart snapshot: %w", err)
	}
	return data, nil
}

func (f *FileStore) Save(_ context.Context, data []byte) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	// Write-then-rename so a crash mid-write never leaves a torn snapshot.
	tmp := f.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write cart snapshot: %w", err)
	}
	if err := os.Rename(tmp, f.path()); err != nil {
		return fmt.Errorf("replace cart snapshot: %w", err)
	}
	return nil
}

func (f *FileStore) Clear(_ context.Context) error {
	err := os.Remove(f.path())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove cart snapshot: %w", err)
	}
	return nil
}
