package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// BlobStore stores item images and resolves them to retrievable URLs.
// Delete is best-effort everywhere it is called: failures are logged by the
// caller and never block the owning item operation.
type BlobStore interface {
	Put(ctx context.Context, filename string, r io.Reader) (url string, err error)
	Delete(ctx context.Context, url string) error
}

// LocalStore keeps blobs on disk under root and serves them at
// baseURL + "/uploads/<key>". Keys embed the upload time, so two uploads of
// the same filename do not collide (same-millisecond collisions are accepted
// as a non-hardened edge case).
type LocalStore struct {
	root    string
	baseURL string
}

func NewLocalStore(root, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(filepath.Join(root, "items"), 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStore) Put(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key := fmt.Sprintf("items/%d_%s", time.Now().UnixMilli(), sanitize(filename))

	f, err := os.Create(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil {
		return "", fmt.Errorf("create blob: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write blob: %w", err)
	}
	return s.baseURL + "/uploads/" + key, nil
}

func (s *LocalStore) Delete(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, err := s.keyFromURL(url)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.root, filepath.FromSlash(key))); err != nil {
		return fmt.Errorf("delete blob: %w", err)
	}
	return nil
}

// keyFromURL reverses Put's URL form and rejects anything that would escape
// the upload root.
func (s *LocalStore) keyFromURL(url string) (string, error) {
	key, ok := strings.CutPrefix(url, s.baseURL+"/uploads/")
	if !ok {
		return "", fmt.Errorf("not a managed blob url: %q", url)
	}
	if key == "" || strings.Contains(key, "..") || strings.HasPrefix(key, "/") {
		return "", errors.New("invalid blob key")
	}
	return key, nil
}

// sanitize flattens a client-supplied filename into a safe single path
// segment.
func sanitize(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "blob"
	}
	return b.String()
}
