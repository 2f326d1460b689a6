package session

import (
	"context"
	"sync"
)

// MemoryStore keeps the token map in process memory behind a RWMutex, so
// concurrent requests cannot corrupt it. Sessions do not survive a restart
// and never expire on their own; only logout removes them.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[string]int64)}
}

func (s *MemoryStore) Issue(_ context.Context, uid int64) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.tokens[token] = uid
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) Resolve(_ context.Context, token string) (int64, error) {
	s.mu.RLock()
	uid, ok := s.tokens[token]
	s.mu.RUnlock()
	if !ok {
		return 0, ErrNotFound
	}
	return uid, nil
}

func (s *MemoryStore) Revoke(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	_, ok := s.tokens[token]
	delete(s.tokens, token)
	s.mu.Unlock()
	return ok, nil
}
