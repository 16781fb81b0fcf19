// Package jsonfile is the flat-file storage driver: one JSON array per
// collection, rewritten wholesale on every mutation. A single store mutex
// serializes the read-modify-write cycles, which the original revision of
// this design left racy under concurrent writers.
package jsonfile

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

type Store struct {
	mu  sync.Mutex
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// read loads a whole collection. A missing file is created holding an
// empty array.
func (s *Store) read(name string, v interface{}) error {
	path := filepath.Join(s.dir, name)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := s.write(name, []struct{}{}); err != nil {
			return err
		}
		data = []byte("[]")
	} else if err != nil {
		return err
	}

	return json.Unmarshal(data, v)
}

func (s *Store) write(name string, v interface{}) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), data, 0o644)
}
