package tokenstore

import (
	"context"
	"sync"
)

// MemoryStore lives for the duration of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	ok    bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.ok = token, true
	return nil
}

func (s *MemoryStore) Get(_ context.Context) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.ok
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.ok = "", false
	return nil
}

func (s *MemoryStore) Has(ctx context.Context) bool {
	_, ok := s.Get(ctx)
	return ok
}
