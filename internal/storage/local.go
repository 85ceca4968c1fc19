package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// LocalArchive stores persona artifacts on the local filesystem. It is the
// default backend when no Azure storage account is configured.
type LocalArchive struct {
	dir string
}

// Ensure LocalArchive implements ArchiveInterface
var _ ArchiveInterface = (*LocalArchive)(nil)

// NewLocalArchive creates a disk-backed archive rooted at dir.
func NewLocalArchive(dir string) (*LocalArchive, error) {
	if dir == "" {
		return nil, fmt.Errorf("archive directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	return &LocalArchive{dir: dir}, nil
}

// path maps an artifact name to a file path, rejecting names that would
// escape the archive root.
func (l *LocalArchive) path(name string) (string, error) {
	cleaned := filepath.Clean(name)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid artifact name: %s", name)
	}
	return filepath.Join(l.dir, cleaned), nil
}

// Store writes a persona artifact to disk.
func (l *LocalArchive) Store(name string, data []byte) error {
	path, err := l.path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	logrus.Infof("Archived %s in %s", name, l.dir)
	return nil
}

// Retrieve reads a previously archived artifact.
func (l *LocalArchive) Retrieve(name string) ([]byte, error) {
	path, err := l.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// List returns archived artifact names under the given prefix.
func (l *LocalArchive) List(prefix string) ([]string, error) {
	var names []string
	err := filepath.Walk(l.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(l.dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if strings.HasPrefix(rel, prefix) {
			names = append(names, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list archive: %w", err)
	}
	return names, nil
}

// Delete removes an archived artifact.
func (l *LocalArchive) Delete(name string) error {
	path, err := l.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}
	return nil
}
