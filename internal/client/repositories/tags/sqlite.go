package tags

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
	"github.com/dmitrijs2005/timetrack/internal/client/repositories/collection"
	"github.com/dmitrijs2005/timetrack/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Save inserts a new tag or updates a dirty one by local id. The GUID is
// stored only when the tag carries one.
func (r *SQLiteRepository) Save(ctx context.Context, t *models.Tag, log *models.ChangeLog) error {
	if !t.NeedsToBeSaved() {
		return nil
	}

	if t.LocalID != 0 {
		_, err := r.db.ExecContext(ctx,
			`UPDATE tags SET id = ?, uid = ?, name = ?, wid = ?, guid = ? WHERE local_id = ?`,
			t.ID, t.UID, t.Name, t.WID, dbx.NullString(t.GUID), t.LocalID)
		if err != nil {
			return dbx.Wrap("update tag", err)
		}
		log.Record(t, models.ChangeUpdate)
	} else {
		id, err := dbx.Insert(ctx, r.db, "insert tag",
			`INSERT INTO tags (id, uid, name, wid, guid) VALUES (?, ?, ?, ?, ?)`,
			t.ID, t.UID, t.Name, t.WID, dbx.NullString(t.GUID))
		if err != nil {
			return err
		}
		t.LocalID = id
		log.Record(t, models.ChangeInsert)
	}

	t.ClearDirty()
	return nil
}

func (r *SQLiteRepository) SaveAll(ctx context.Context, uid uint64, list []*models.Tag, log *models.ChangeLog) ([]*models.Tag, error) {
	return collection.SaveAll(ctx, uid, list, log, r.Save, r.Delete)
}

// ListByUID returns the account's tags ordered by name.
func (r *SQLiteRepository) ListByUID(ctx context.Context, uid uint64) ([]*models.Tag, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT local_id, id, uid, name, wid, guid FROM tags WHERE uid = ? ORDER BY name`, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to select tags: %w", err)
	}
	defer rows.Close()

	var result []*models.Tag
	for rows.Next() {
		t := &models.Tag{}
		var guid sql.NullString
		if err := rows.Scan(&t.LocalID, &t.ID, &t.UID, &t.Name, &t.WID, &guid); err != nil {
			return nil, fmt.Errorf("failed to scan tag row: %w", err)
		}
		t.GUID = guid.String
		t.ClearDirty()
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tag rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, localID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE local_id = ?`, localID)
	return dbx.Wrap("delete tag", err)
}

func (r *SQLiteRepository) DeleteAllByUID(ctx context.Context, uid uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE uid = ?`, uid)
	return dbx.Wrap("delete tags", err)
}
