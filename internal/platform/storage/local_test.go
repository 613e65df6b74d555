package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestLocal_Save verifies files land under the media root with a unique name
// that keeps the original extension.
func TestLocal_Save(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewLocal(root, "recipe")

	path, err := store.Save(context.Background(), "dinner.jpg", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Ext(path) != ".jpg" {
		t.Errorf("expected .jpg extension, got %q", path)
	}
	if filepath.Dir(path) != "recipe" {
		t.Errorf("expected file under recipe/, got %q", path)
	}
	if strings.Contains(path, "dinner") {
		t.Errorf("expected generated name, got original name in %q", path)
	}

	b, err := os.ReadFile(filepath.Join(root, path))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(b) != "image-bytes" {
		t.Errorf("stored content mismatch: %q", b)
	}
}

// TestLocal_Save_UniqueNames verifies two uploads of the same filename never collide.
func TestLocal_Save_UniqueNames(t *testing.T) {
	t.Parallel()

	store := NewLocal(t.TempDir(), "recipe")

	first, err := store.Save(context.Background(), "same.png", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := store.Save(context.Background(), "same.png", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Errorf("expected unique paths, both were %q", first)
	}
}

// TestLocal_Save_NoExtension verifies files without an extension still store.
func TestLocal_Save_NoExtension(t *testing.T) {
	t.Parallel()

	store := NewLocal(t.TempDir(), "recipe")

	path, err := store.Save(context.Background(), "noext", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Ext(path) != "" {
		t.Errorf("expected no extension, got %q", path)
	}
}

// TestLocal_Remove verifies stored files can be removed again.
func TestLocal_Remove(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewLocal(root, "recipe")

	path, err := store.Save(context.Background(), "gone.jpg", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Remove(context.Background(), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, path)); !os.IsNotExist(err) {
		t.Errorf("expected file to be gone, stat err: %v", err)
	}
}
