package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchDetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("b"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Events():
	case <-time.After(3 * time.Second):
		t.Fatalf("no event after write")
	}
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Events():
		t.Fatalf("unexpected event for sibling file")
	case <-time.After(300 * time.Millisecond):
	}
}
