// Package storage is the local store of the time tracking client. It wraps a
// single SQLite file, serializes every operation behind one lock, and hands
// out the change records produced by each write.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/timetrack/internal/client/repositories/repomanager"
	"github.com/dmitrijs2005/timetrack/internal/common"
	"github.com/dmitrijs2005/timetrack/internal/logging"
	"github.com/google/uuid"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// Store is safe for concurrent use; operations are fully serialized.
type Store struct {
	mu        sync.Mutex
	db        *sql.DB
	repos     repomanager.RepositoryManager
	log       logging.Logger
	desktopID string
}

// Open opens (creating if needed) the database at path, switches it to
// write-ahead logging, applies pending migrations and loads the installation
// id. Any failure is reported as common.ErrConfiguration.
func Open(ctx context.Context, path string, log logging.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %w", common.ErrConfiguration, err)
	}
	db.SetMaxOpenConns(1)

	s, err := New(ctx, db, repomanager.NewSQLiteRepositoryManager(), log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// New initializes a Store on an already opened database. The store takes
// ownership of db.
func New(ctx context.Context, db *sql.DB, repos repomanager.RepositoryManager, log logging.Logger) (*Store, error) {
	s := &Store{db: db, repos: repos, log: log}

	if err := s.setJournalMode(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrConfiguration, err)
	}

	applied, err := repos.RunMigrations(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrConfiguration, err)
	}
	for _, name := range applied {
		log.Debug(ctx, "applied migration", "name", name)
	}

	if err := s.initDesktopID(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrConfiguration, err)
	}
	return s, nil
}

func (s *Store) setJournalMode(ctx context.Context) error {
	var mode string
	if err := s.db.QueryRowContext(ctx, `PRAGMA journal_mode=WAL`).Scan(&mode); err != nil {
		return fmt.Errorf("failed to set journal mode: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `PRAGMA journal_mode`).Scan(&mode); err != nil {
		return fmt.Errorf("failed to read journal mode: %w", err)
	}
	if !strings.EqualFold(mode, "wal") {
		return fmt.Errorf("journal mode is %q, want wal", mode)
	}
	return nil
}

func (s *Store) initDesktopID(ctx context.Context) error {
	repo := s.repos.Installation(s.db)
	id, err := repo.DesktopID(ctx)
	if err != nil {
		return err
	}
	if id == "" {
		id = uuid.NewString()
		if err := repo.SetDesktopID(ctx, id); err != nil {
			return fmt.Errorf("failed to store desktop id: %w", err)
		}
		s.log.Info(ctx, "generated desktop id", "desktop_id", id)
	}
	s.desktopID = id
	return nil
}

// DesktopID returns the identifier of this installation.
func (s *Store) DesktopID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.desktopID
}

// AppliedMigrations returns the names of the applied schema migrations in
// the order they ran.
func (s *Store) AppliedMigrations(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repos.AppliedMigrations(ctx, s.db)
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
