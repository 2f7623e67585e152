package kvstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// JSONStore persists entries as a single JSON file. It is the fallback
// engine for environments where SQLite is not wanted (tests, containers
// with read-only data dirs).
type JSONStore struct {
	mu      sync.Mutex
	path    string
	entries map[string]json.RawMessage
}

var _ Store = (*JSONStore)(nil)

// OpenJSON creates a JSONStore backed by the file at path. A missing or
// unreadable file starts the store empty rather than failing: the caller
// always gets a usable store.
func OpenJSON(path string) (*JSONStore, error) {
	if err := EnsureDir(path); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}

	s := &JSONStore{
		path:    path,
		entries: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		// Corrupt content resets to empty; durable state must never
		// prevent the app from starting.
		_ = json.Unmarshal(raw, &s.entries)
		if s.entries == nil {
			s.entries = make(map[string]json.RawMessage)
		}
	}

	return s, nil
}

func (s *JSONStore) Get(key string, v any) (bool, error) {
	s.mu.Lock()
	raw, ok := s.entries[key]
	s.mu.Unlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

func (s *JSONStore) Put(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = raw
	return s.flushLocked()
}

func (s *JSONStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return s.flushLocked()
}

func (s *JSONStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked()
}

// flushLocked writes the full entry map through a temp file + rename.
func (s *JSONStore) flushLocked() error {
	raw, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	tmp := filepath.Join(filepath.Dir(s.path), ".cosmus-store-*.json")
	f, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(tmp))
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := f.Write(raw); err != nil {
		f.Close()
		os.Remove(f.Name())
		return fmt.Errorf("write store: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	return os.Rename(f.Name(), s.path)
}
