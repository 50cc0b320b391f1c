package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPutAndDelete(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:3001")
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	ctx := context.Background()

	url, err := store.Put(ctx, "photo.jpg", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !strings.HasPrefix(url, "http://localhost:3001/uploads/items/") {
		t.Errorf("unexpected url form: %q", url)
	}
	if !strings.HasSuffix(url, "_photo.jpg") {
		t.Errorf("expected time-prefixed original name, got %q", url)
	}

	if err := store.Delete(ctx, url); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// Second delete: the blob is gone, callers treat this as best-effort.
	if err := store.Delete(ctx, url); err == nil {
		t.Error("expected error deleting missing blob")
	}
}

func TestPutWritesUnderRoot(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root, "http://localhost:3001")
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	url, err := store.Put(context.Background(), "photo.jpg", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	key := strings.TrimPrefix(url, "http://localhost:3001/uploads/")
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(key))); err != nil {
		t.Errorf("blob not on disk: %v", err)
	}
}

func TestPutSanitizesFilename(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:3001")
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	url, err := store.Put(context.Background(), "../../etc/pass wd.jpg", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if strings.Contains(url, "..") {
		t.Errorf("path traversal survived sanitization: %q", url)
	}
	if strings.Contains(url, " ") {
		t.Errorf("space survived sanitization: %q", url)
	}
}

func TestDeleteRejectsForeignURL(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:3001")
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	if err := store.Delete(context.Background(), "https://elsewhere.example/x.jpg"); err == nil {
		t.Error("expected error for unmanaged url")
	}
	if err := store.Delete(context.Background(), "http://localhost:3001/uploads/../go.mod"); err == nil {
		t.Error("expected error for escaping key")
	}
}
