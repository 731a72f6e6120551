package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/timetrack/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Current returns the active session token, or "" when signed out.
func (r *SQLiteRepository) Current(ctx context.Context) (string, error) {
	var token string
	err := r.db.QueryRowContext(ctx, `SELECT api_token FROM sessions WHERE active = 1`).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get current session: %w", err)
	}
	return token, nil
}

// Set replaces any existing session with token. Run it inside a transaction
// so readers never observe the signed-out state in between.
func (r *SQLiteRepository) Set(ctx context.Context, token string) error {
	if err := r.Clear(ctx); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO sessions (api_token, active) VALUES (?, 1)`, token)
	return dbx.Wrap("insert session", err)
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions`)
	return dbx.Wrap("delete sessions", err)
}
