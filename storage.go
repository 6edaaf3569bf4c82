package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Storage keys. The names match what the page used in browser local storage.
const (
	themeKey    = "fitgenei-theme"
	profileKey  = "fitgenei-profile"
	progressKey = "fitgenei-progress"
)

// kvStore is the persistence port every store goes through: opaque string
// values addressed by key. found=false with a nil error means "absent".
type kvStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

/* ─── In-memory backend ──────────────────────────────────────────────── */

// memoryStore is the default backend and the fake used by tests.
type memoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string]string)}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *memoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

/* ─── JSON file backend ──────────────────────────────────────────────── */

// fileStore keeps every key in a single JSON object on disk. Each write
// rewrites the whole file via a temp file + rename so a crash never leaves
// half a document behind.
type fileStore struct {
	path string
	mu   sync.RWMutex
}

func newFileStore(path string) (*fileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &fileStore{path: path}, nil
}

// readAll loads the document. A missing file is an empty store; an
// unreadable or corrupt one is logged and also treated as empty.
func (s *fileStore) readAll() map[string]string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[fileStore] could not read %s: %v", s.path, err)
		}
		return map[string]string{}
	}

	m := map[string]string{}
	if err := json.Unmarshal(data, &m); err != nil {
		log.Printf("[fileStore] invalid JSON in %s, starting empty: %v", s.path, err)
		return map[string]string{}
	}
	return m
}

func (s *fileStore) writeAll(m map[string]string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}

func (s *fileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.readAll()[key]
	return v, ok, nil
}

func (s *fileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.readAll()
	m[key] = value
	return s.writeAll(m)
}

func (s *fileStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.readAll()
	if _, ok := m[key]; !ok {
		return nil
	}
	delete(m, key)
	return s.writeAll(m)
}
