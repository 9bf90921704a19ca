package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	snap      Snapshot
	expiresAt time.Time // zero means no expiry
}

type memoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]memoryEntry
}

// NewMemoryStore builds an in-process session store for development and
// tests. Expired entries are dropped lazily on read.
func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{ttl: ttl, sessions: make(map[string]memoryEntry)}
}

func (s *memoryStore) Create(_ context.Context, snap Snapshot) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	entry := memoryEntry{snap: snap}
	if s.ttl > 0 {
		entry.expiresAt = time.Now().Add(s.ttl)
	}
	s.mu.Lock()
	s.sessions[token] = entry
	s.mu.Unlock()
	return token, nil
}

func (s *memoryStore) Get(_ context.Context, token string) (Snapshot, error) {
	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return Snapshot{}, ErrNotFound
	}
	return entry.snap, nil
}

func (s *memoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}
