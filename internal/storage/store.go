// Package storage keeps uploaded documents in disk-backed buckets and issues
// time-limited signed download URLs for them.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrObjectNotFound = errors.New("object not found")

// Store writes objects under root/<bucket>/<key>.
type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("storage root is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &Store{root: root}, nil
}

// Save streams r into the bucket under key and returns the byte count.
func (s *Store) Save(bucket, key string, r io.Reader) (int64, error) {
	path, err := s.objectPath(bucket, key)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create bucket: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create object: %w", err)
	}

	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return 0, fmt.Errorf("failed to write object: %w", err)
	}
	return n, nil
}

// Open returns a reader for the stored object.
func (s *Store) Open(bucket, key string) (io.ReadCloser, error) {
	path, err := s.objectPath(bucket, key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to open object: %w", err)
	}
	return f, nil
}

// Remove deletes the stored object. A missing object is not an error.
func (s *Store) Remove(bucket, key string) error {
	path, err := s.objectPath(bucket, key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove object: %w", err)
	}
	return nil
}

func (s *Store) objectPath(bucket, key string) (string, error) {
	if !validName(bucket) || !validName(key) {
		return "", fmt.Errorf("invalid bucket or object key")
	}
	return filepath.Join(s.root, bucket, key), nil
}

// validName rejects anything that could escape the storage root.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
