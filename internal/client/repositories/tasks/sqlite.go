package tasks

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

func (r *SQLiteRepository) Save(ctx context.Context, t *models.Task, log *models.ChangeLog) error {
	if !t.NeedsToBeSaved() {
		return nil
	}

	if t.LocalID != 0 {
		_, err := r.db.ExecContext(ctx,
			`UPDATE tasks SET id = ?, uid = ?, name = ?, wid = ?, pid = ? WHERE local_id = ?`,
			t.ID, t.UID, t.Name, t.WID, dbx.NullInt64(t.PID), t.LocalID)
		if err != nil {
			return dbx.Wrap("update task", err)
		}
		log.Record(t, models.ChangeUpdate)
	} else {
		id, err := dbx.Insert(ctx, r.db, "insert task",
			`INSERT INTO tasks (id, uid, name, wid, pid) VALUES (?, ?, ?, ?, ?)`,
			t.ID, t.UID, t.Name, t.WID, dbx.NullInt64(t.PID))
		if err != nil {
			return err
		}
		t.LocalID = id
		log.Record(t, models.ChangeInsert)
	}

	t.ClearDirty()
	return nil
}

func (r *SQLiteRepository) SaveAll(ctx context.Context, uid uint64, list []*models.Task, log *models.ChangeLog) ([]*models.Task, error) {
	return collection.SaveAll(ctx, uid, list, log, r.Save, r.Delete)
}

func (r *SQLiteRepository) ListByUID(ctx context.Context, uid uint64) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT local_id, id, uid, name, wid, pid FROM tasks WHERE uid = ? ORDER BY name`, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to select tasks: %w", err)
	}
	defer rows.Close()

	var result []*models.Task
	for rows.Next() {
		t := &models.Task{}
		var pid sql.NullInt64
		if err := rows.Scan(&t.LocalID, &t.ID, &t.UID, &t.Name, &t.WID, &pid); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		t.PID = uint64(pid.Int64)
		t.ClearDirty()
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate task rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, localID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE local_id = ?`, localID)
	return dbx.Wrap("delete task", err)
}

func (r *SQLiteRepository) DeleteAllByUID(ctx context.Context, uid uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE uid = ?`, uid)
	return dbx.Wrap("delete tasks", err)
}
