package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	// FilePrefix tags every stored video file name.
	FilePrefix = "video_"
	// MountPath is the URL prefix the upload directory is served under.
	MountPath = "/uploads"
)

// Local stores uploaded files in a directory on the local disk. Files are
// written under generated collision-resistant names and served statically
// from MountPath.
type Local struct {
	dir string
}

// NewLocal creates the upload directory if needed and returns a store for it.
func NewLocal(dir string) (*Local, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{dir: abs}, nil
}

// Dir returns the absolute upload directory path.
func (l *Local) Dir() string { return l.dir }

// UniqueName generates a stored file name for a client-declared filename,
// keeping its extension: video_<uuid><ext>.
func UniqueName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return FilePrefix + uuid.NewString() + ext
}

// PublicURL returns the URL path the named file is served from.
func PublicURL(name string) string {
	return MountPath + "/" + name
}

// Save writes data to the named file and returns its absolute path.
func (l *Local) Save(name string, data []byte) (string, error) {
	path := filepath.Join(l.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

// Remove deletes the named file from the upload directory.
func (l *Local) Remove(name string) error {
	return os.Remove(filepath.Join(l.dir, name))
}
