package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"elhamas/internal/domain"
)

// URLPrefix is where the HTTP server exposes files written by Disk.
const URLPrefix = "/uploads/"

// Disk writes objects below a local directory. Used when no bucket is
// configured.
type Disk struct{ root string }

var _ domain.ObjectStorage = (*Disk)(nil)

func NewDisk(root string) (*Disk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Disk{root: root}, nil
}

func (d *Disk) Root() string { return d.root }

func (d *Disk) Upload(ctx context.Context, objectName, _ string, r io.Reader, _ int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	clean := path.Clean("/" + objectName)
	if clean == "/" || strings.Contains(objectName, "..") {
		return "", errors.New("invalid object name")
	}
	rel := strings.TrimPrefix(clean, "/")
	// objects are already namespaced under uploads/
	rel = strings.TrimPrefix(rel, "uploads/")
	full := filepath.Join(d.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Rename(tmp.Name(), full); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return URLPrefix + rel, nil
}
