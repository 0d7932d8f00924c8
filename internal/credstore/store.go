package credstore

import (
	"context"
	"errors"
	"sync"
)

// ErrNoCredential is returned by Get when no credential is stored.
var ErrNoCredential = errors.New("no credential stored")

// Store holds at most one bearer credential. Set overwrites any
// previous value, Clear is idempotent, and no operation performs a
// partial write. Implementations backed by a network store take their
// cancellation from the passed context.
type Store interface {
	Set(ctx context.Context, token string) error
	Get(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

type memoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore returns a process-local Store. It is the default for
// tests and for deployments that accept losing the session on restart.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *memoryStore) Get(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", ErrNoCredential
	}
	return s.token, nil
}

func (s *memoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
