// Package storage provides media file storage implementations.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Local stores media files on the local filesystem under a root directory.
// Stored paths are relative to the root so the records stay valid when the
// root moves between environments.
type Local struct {
	root string
	dir  string
}

// NewLocal creates a Local store writing under root/dir.
func NewLocal(root, dir string) *Local {
	return &Local{root: root, dir: dir}
}

// Save writes the file under a random uuid name preserving the extension of
// origName and returns the relative stored path.
func (l *Local) Save(ctx context.Context, origName string, r io.Reader) (string, error) {
	rel := filepath.Join(l.dir, uuid.NewString()+filepath.Ext(origName))
	abs := filepath.Join(l.root, rel)

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	f, err := os.Create(abs)
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(f, r); err != nil {
		// Incomplete file must not survive.
		_ = os.Remove(abs)
		return "", fmt.Errorf("failed to write media file: %w", err)
	}
	return rel, nil
}

// Remove deletes a previously stored file by its relative path.
func (l *Local) Remove(ctx context.Context, path string) error {
	return os.Remove(filepath.Join(l.root, path))
}
