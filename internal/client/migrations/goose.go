package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pressly/goose/v3"
)

// newProvider is a seam for tests.
var newProvider = func(db *sql.DB) (*goose.Provider, error) {
	return goose.NewProvider(goose.DialectSQLite3, db, Migrations)
}

// Up applies every pending migration in declaration order. Each migration
// and its ledger row are committed in one transaction; already applied
// migrations are skipped, so calling Up repeatedly is safe.
func Up(ctx context.Context, db *sql.DB) ([]string, error) {
	p, err := newProvider(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	results, err := p.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}
	applied := make([]string, 0, len(results))
	for _, r := range results {
		applied = append(applied, Name(r.Source.Path))
	}
	return applied, nil
}

// Applied returns the names of the migrations recorded in the ledger, in
// declaration order.
func Applied(ctx context.Context, db *sql.DB) ([]string, error) {
	p, err := newProvider(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	statuses, err := p.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration ledger: %w", err)
	}
	var names []string
	for _, s := range statuses {
		if s.State == goose.StateApplied {
			names = append(names, Name(s.Source.Path))
		}
	}
	return names, nil
}

// Name derives a migration name from its file path:
// "00002_users.store_start_and_stop_time.sql" -> "users.store_start_and_stop_time".
func Name(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), ".sql")
	if i := strings.Index(base, "_"); i >= 0 {
		return base[i+1:]
	}
	return base
}
