package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Local stores files under a single root directory on disk. Stored names are
// generated by the caller and unique, so writes never contend.
type Local struct {
	root string
}

func NewLocal(root string) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Local{root: root}, nil
}

func (l *Local) Root() string { return l.root }

// Path returns the root-joined path recorded for a stored file.
func (l *Local) Path(name string) string {
	return filepath.Join(l.root, name)
}

// Save writes src to the named file and returns the number of bytes written.
// On any write error the partial file is removed before returning.
func (l *Local) Save(name string, src io.Reader) (int64, error) {
	path := l.Path(name)

	dst, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}

	written, err := io.Copy(dst, src)
	if err != nil {
		dst.Close()
		_ = os.Remove(path)
		return 0, fmt.Errorf("failed to write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return 0, fmt.Errorf("failed to close file: %w", err)
	}

	return written, nil
}

// Remove deletes a stored file. Removing a missing file is not an error.
func (l *Local) Remove(name string) error {
	err := os.Remove(l.Path(name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// Size returns the on-disk size of a stored file.
func (l *Local) Size(name string) (int64, error) {
	info, err := os.Stat(l.Path(name))
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
