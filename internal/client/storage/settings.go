package storage

import (
	"context"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
	"github.com/dmitrijs2005/timetrack/internal/dbx"
)

// CurrentAPIToken returns the token of the signed-in account, or "".
func (s *Store) CurrentAPIToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repos.Sessions(s.db).Current(ctx)
}

// SetCurrentAPIToken replaces the active session.
func (s *Store) SetCurrentAPIToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repos.Sessions(tx).Set(ctx, token)
	})
}

func (s *Store) ClearCurrentAPIToken(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repos.Sessions(s.db).Clear(ctx)
}

func (s *Store) LoadSettings(ctx context.Context) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repos.Settings(s.db).Load(ctx)
}

func (s *Store) SaveSettings(ctx context.Context, settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repos.Settings(s.db).Save(ctx, settings)
}

func (s *Store) LoadUpdateChannel(ctx context.Context) (models.UpdateChannel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repos.Settings(s.db).LoadUpdateChannel(ctx)
}

// SaveUpdateChannel stores c; channels other than stable, beta and dev are
// rejected with common.ErrInvalidArgument.
func (s *Store) SaveUpdateChannel(ctx context.Context, c models.UpdateChannel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repos.Settings(s.db).SaveUpdateChannel(ctx, c)
}
