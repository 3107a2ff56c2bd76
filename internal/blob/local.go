package blob

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes uploads to a directory served statically under a public
// prefix. The returned URL is the public path, never the disk path.
type LocalStore struct {
	dir    string
	prefix string
}

func NewLocalStore(dir, prefix string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{
		dir:    dir,
		prefix: strings.TrimSuffix(prefix, "/"),
	}, nil
}

// Dir returns the directory uploads are written to, for static serving.
func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Save(filename string, data []byte, contentType string) (string, error) {
	// filename is server-generated, but never trust it as a path.
	name := filepath.Base(filename)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return s.prefix + "/" + name, nil
}

func (s *LocalStore) Delete(filename string) error {
	name := filepath.Base(filename)
	err := os.Remove(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
