package usage

import (
	"context"
	"database/sql"
)

type store interface {
	Get(ctx context.Context, userID string, def Usage) (Usage, error)
	Consume(ctx context.Context, userID string, n int, def Usage) (Usage, error)
	Reset(ctx context.Context, userID string, def Usage) (Usage, error)
}

// Service meters PDF imports per identity and calendar month.
type Service struct {
	store  store
	limits Limits
}

// NewService constructs a Service with an in-memory store.
func NewService(limits Limits) *Service {
	return &Service{store: newMemoryStore(), limits: limits}
}

// NewPostgresService constructs a Service backed by Postgres.
func NewPostgresService(db *sql.DB, limits Limits) *Service {
	return &Service{store: &pgStore{DB: db}, limits: limits}
}

// Get returns the current usage for an identity, rolling the period over
// if the month has turned.
func (s *Service) Get(ctx context.Context, userID string, guest bool) (Usage, error) {
	return s.store.Get(ctx, userID, s.limits.usageFor(guest, nowUTC()))
}

// ConsumeImport counts one import against the identity's monthly allowance.
// Returns ErrLimitReached when the allowance is spent.
func (s *Service) ConsumeImport(ctx context.Context, userID string, guest bool) error {
	_, err := s.store.Consume(ctx, userID, 1, s.limits.usageFor(guest, nowUTC()))
	return err
}

// Reset zeroes the identity's counter and restarts the window.
func (s *Service) Reset(ctx context.Context, userID string, guest bool) (Usage, error) {
	return s.store.Reset(ctx, userID, s.limits.usageFor(guest, nowUTC()))
}
