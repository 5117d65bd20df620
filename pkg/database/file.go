package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore implements KVStore over plain JSON files, one file per key.
// It is the default backend: a single-process stand-in for the browser
// key-value storage the original design persisted to, and the backend the
// test suite runs on. The mutex serializes read-modify-write within the
// process; the version field still guards against stale writers above it.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

type fileRecord struct {
	Version int64           `json:"version"`
	Value   json.RawMessage `json:"value"`
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) read(key string) (*fileRecord, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read key %s: %w", key, err)
	}

	var rec fileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode key %s: %w", key, err)
	}

	return &rec, nil
}

// Get implements KVStore
func (s *FileStore) Get(_ context.Context, key string) ([]byte, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.read(key)
	if err != nil {
		return nil, 0, err
	}

	return rec.Value, rec.Version, nil
}

// Put implements KVStore
func (s *FileStore) Put(_ context.Context, key string, value []byte, expectedVersion int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.read(key)
	switch {
	case errors.Is(err, ErrKeyNotFound):
		if expectedVersion != CreateOnly {
			return ErrVersionConflict
		}
	case err != nil:
		return err
	default:
		if rec.Version != expectedVersion {
			return ErrVersionConflict
		}
	}

	data, err := json.Marshal(fileRecord{
		Version: expectedVersion + 1,
		Value:   json.RawMessage(value),
	})
	if err != nil {
		return fmt.Errorf("encode key %s: %w", key, err)
	}

	// Temp file + rename so a crash mid-write never leaves a torn record.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write key %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("commit key %s: %w", key, err)
	}

	return nil
}

// Ping implements KVStore
func (s *FileStore) Ping(_ context.Context) error {
	_, err := os.Stat(s.dir)
	return err
}

// Close implements KVStore
func (s *FileStore) Close() {}
