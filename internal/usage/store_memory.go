package usage

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu   sync.Mutex
	data map[string]Usage
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string]Usage)}
}

func (s *memoryStore) Get(ctx context.Context, userID string, def Usage) (Usage, error) {
	if err := ctx.Err(); err != nil {
		return Usage{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLocked(userID, def), nil
}

func (s *memoryStore) Consume(ctx context.Context, userID string, n int, def Usage) (Usage, error) {
	if err := ctx.Err(); err != nil {
		return Usage{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.ensureLocked(userID, def)
	if n <= 0 {
		return u, nil
	}
	if u.Used+n > u.Limit {
		return Usage{}, ErrLimitReached
	}
	u.Used += n
	s.data[userID] = u
	return u, nil
}

func (s *memoryStore) Reset(ctx context.Context, userID string, def Usage) (Usage, error) {
	if err := ctx.Err(); err != nil {
		return Usage{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = def
	return def, nil
}

// ensureLocked rolls the usage window forward when the month has turned.
// Caller holds the mutex.
func (s *memoryStore) ensureLocked(userID string, def Usage) Usage {
	u, ok := s.data[userID]
	if !ok {
		s.data[userID] = def
		return def
	}
	now := nowUTC()
	if now.After(u.ResetsAt) || now.Equal(u.ResetsAt) {
		u.Used = 0
		u.ResetsAt = def.ResetsAt
	}
	// Limits may change between deploys; the stored row follows the
	// configured plan.
	u.Plan = def.Plan
	u.Limit = def.Limit
	s.data[userID] = u
	return u
}
