package workspaces

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
	"github.com/dmitrijs2005/timetrack/internal/client/repositories/collection"
	"github.com/dmitrijs2005/timetrack/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Save inserts a new workspace or updates a dirty one by local id.
func (r *SQLiteRepository) Save(ctx context.Context, w *models.Workspace, log *models.ChangeLog) error {
	if !w.NeedsToBeSaved() {
		return nil
	}

	if w.LocalID != 0 {
		_, err := r.db.ExecContext(ctx,
			`UPDATE workspaces SET id = ?, uid = ?, name = ?, premium = ? WHERE local_id = ?`,
			w.ID, w.UID, w.Name, w.Premium, w.LocalID)
		if err != nil {
			return dbx.Wrap("update workspace", err)
		}
		log.Record(w, models.ChangeUpdate)
	} else {
		id, err := dbx.Insert(ctx, r.db, "insert workspace",
			`INSERT INTO workspaces (id, uid, name, premium) VALUES (?, ?, ?, ?)`,
			w.ID, w.UID, w.Name, w.Premium)
		if err != nil {
			return err
		}
		w.LocalID = id
		log.Record(w, models.ChangeInsert)
	}

	w.ClearDirty()
	return nil
}

func (r *SQLiteRepository) SaveAll(ctx context.Context, uid uint64, list []*models.Workspace, log *models.ChangeLog) ([]*models.Workspace, error) {
	return collection.SaveAll(ctx, uid, list, log, r.Save, r.Delete)
}

// ListByUID returns the account's workspaces ordered by name.
func (r *SQLiteRepository) ListByUID(ctx context.Context, uid uint64) ([]*models.Workspace, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT local_id, id, uid, name, premium FROM workspaces WHERE uid = ? ORDER BY name`, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to select workspaces: %w", err)
	}
	defer rows.Close()

	var result []*models.Workspace
	for rows.Next() {
		w := &models.Workspace{}
		if err := rows.Scan(&w.LocalID, &w.ID, &w.UID, &w.Name, &w.Premium); err != nil {
			return nil, fmt.Errorf("failed to scan workspace row: %w", err)
		}
		w.ClearDirty()
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate workspace rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, localID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM workspaces WHERE local_id = ?`, localID)
	return dbx.Wrap("delete workspace", err)
}

func (r *SQLiteRepository) DeleteAllByUID(ctx context.Context, uid uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM workspaces WHERE uid = ?`, uid)
	return dbx.Wrap("delete workspaces", err)
}
