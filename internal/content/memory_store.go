package content

import (
	"context"
	"sync"
)

// MemoryStore is an in-process LastSentStore.
type MemoryStore struct {
	mu   sync.Mutex
	last map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{last: make(map[string]string)}
}

func (s *MemoryStore) LastSent(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.last[key]
	return v, ok, nil
}

func (s *MemoryStore) SetLastSent(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last[key] = value
	return nil
}
