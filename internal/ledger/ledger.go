package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Storage keys for the three reaction sets. They are fixed so a ledger file
// written by one build stays readable by the next.
const (
	KeyLikedAphorisms      = "likedAphorisms"
	KeyLikedReflections    = "likedReflections"
	KeyDislikedReflections = "dislikedReflections"
)

// Store is the injected key-value backend: each key holds a JSON string
// array of entity IDs.
type Store interface {
	Get(key string) ([]string, error)
	Set(key string, ids []string) error
}

// Ledger tracks which entities the client has already reacted to,
// independent of the numeric counters. Membership in a set is the sole
// source of "already reacted" truth.
type Ledger struct {
	mu    sync.Mutex
	store Store
}

func New(store Store) *Ledger {
	return &Ledger{store: store}
}

func (l *Ledger) Has(key, id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids, err := l.store.Get(key)
	if err != nil {
		return false, err
	}

	for _, v := range ids {
		if v == id {
			return true, nil
		}
	}
	return false, nil
}

// Add is idempotent: adding an id already in the set is a no-op.
func (l *Ledger) Add(key, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids, err := l.store.Get(key)
	if err != nil {
		return err
	}

	for _, v := range ids {
		if v == id {
			return nil
		}
	}

	return l.store.Set(key, append(ids, id))
}

func (l *Ledger) Remove(key, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids, err := l.store.Get(key)
	if err != nil {
		return err
	}

	kept := ids[:0]
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}

	return l.store.Set(key, kept)
}

// Toggle flips membership and reports the new state.
func (l *Ledger) Toggle(key, id string) (bool, error) {
	active, err := l.Has(key, id)
	if err != nil {
		return false, err
	}

	if active {
		return false, l.Remove(key, id)
	}
	return true, l.Add(key, id)
}

// MemoryStore is the in-memory Store used in tests and as a fallback when
// no ledger file is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]string)}
}

func (s *MemoryStore) Get(key string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, len(s.data[key]))
	copy(ids, s.data[key])
	return ids, nil
}

func (s *MemoryStore) Set(key string, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]string, len(ids))
	copy(cp, ids)
	s.data[key] = cp
	return nil
}

// FileStore persists the sets as one JSON object of string arrays. Every
// Set rewrites the whole file synchronously, matching the write-on-every-
// toggle behavior of the original client storage.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get(key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	return data[key], nil
}

func (s *FileStore) Set(key string, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}

	data[key] = ids

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("could not encode ledger: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("could not write ledger file: %w", err)
	}
	return nil
}

func (s *FileStore) load() (map[string][]string, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return make(map[string][]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read ledger file: %w", err)
	}

	data := make(map[string][]string)
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("could not decode ledger file: %w", err)
	}
	return data, nil
}
