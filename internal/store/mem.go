package store

import (
	"context"
	"strconv"
	"sync"
)

// MemStore is an in-process KV. It is used by tests and by headless callers
// that do not need the state to outlive the process.
type MemStore struct {
	mu   sync.Mutex
	data map[string]string
	revs map[string]int
	seq  int
	// SetErr, when non-nil, is returned by every Set.
	SetErr error
}

func NewMemStore() *MemStore {
	return &MemStore{data: map[string]string{}, revs: map[string]int{}}
}

func (s *MemStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	s.seq++
	s.data[key] = value
	s.revs[key] = s.seq
	return nil
}

func (s *MemStore) Revision(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rev, ok := s.revs[key]; ok {
		return strconv.Itoa(rev), nil
	}
	return "", nil
}

func (s *MemStore) Close() error { return nil }
