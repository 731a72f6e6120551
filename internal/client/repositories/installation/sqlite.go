package installation

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

// DesktopID returns the stored installation id, or "" before one is set.
func (r *SQLiteRepository) DesktopID(ctx context.Context) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx, `SELECT desktop_id FROM timeline_installation LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get desktop id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) SetDesktopID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO timeline_installation (desktop_id) VALUES (?)`, id)
	return dbx.Wrap("insert desktop id", err)
}
