package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsTargetFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "override.yaml")
	if err := os.WriteFile(target, []byte("a: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	w, err := NewWatcher(target)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	// 同目录的其他文件不应触发
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("b: 2\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := os.WriteFile(target, []byte("a: 2\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	select {
	case name := <-w.Events:
		if name != w.target {
			t.Errorf("event for %q, want %q", name, w.target)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	target := filepath.Join(t.TempDir(), "override.yaml")
	if err := os.WriteFile(target, []byte("a: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	w, err := NewWatcher(target)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if w.PendingReload() {
		t.Error("PendingReload() after Close should be false")
	}
}
