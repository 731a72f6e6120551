package timeentries

import (
	"context"
	"database/sql"
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

const columns = `id, uid, description, wid, guid, pid, tid, billable, duronly, ui_modified_at,
	start, stop, duration, tags, created_with, deleted_at, updated_at, project_guid`

func args(te *models.TimeEntry) []any {
	return []any{
		dbx.NullInt64(te.ID), te.UID, te.Description, te.WID, te.GUID,
		dbx.NullInt64(te.PID), dbx.NullInt64(te.TID), te.Billable, te.DurOnly, te.UIModifiedAt,
		te.Start, te.Stop, te.DurationInSeconds, te.Tags(), te.CreatedWith,
		te.DeletedAt, te.UpdatedAt, dbx.NullString(te.ProjectGUID),
	}
}

// Save inserts a new time entry or updates a dirty one by local id.
//
// An update of an entry whose DeletedAt is set is reported as a delete change:
// the row stays until the server confirms the deletion, but the sync layer
// must push it as a removal.
func (r *SQLiteRepository) Save(ctx context.Context, te *models.TimeEntry, log *models.ChangeLog) error {
	if !te.NeedsToBeSaved() {
		return nil
	}
	te.EnsureGUID()

	if te.LocalID != 0 {
		_, err := r.db.ExecContext(ctx,
			`UPDATE time_entries SET id = ?, uid = ?, description = ?, wid = ?, guid = ?, pid = ?, tid = ?,
			billable = ?, duronly = ?, ui_modified_at = ?, start = ?, stop = ?, duration = ?, tags = ?,
			created_with = ?, deleted_at = ?, updated_at = ?, project_guid = ?
			WHERE local_id = ?`,
			append(args(te), te.LocalID)...)
		if err != nil {
			return dbx.Wrap("update time entry", err)
		}
		if te.DeletedAt != 0 {
			log.Record(te, models.ChangeDelete)
		} else {
			log.Record(te, models.ChangeUpdate)
		}
	} else {
		id, err := dbx.Insert(ctx, r.db, "insert time entry",
			`INSERT INTO time_entries (`+columns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			args(te)...)
		if err != nil {
			return err
		}
		te.LocalID = id
		log.Record(te, models.ChangeInsert)
	}

	te.ClearDirty()
	return nil
}

// SaveAll saves every time entry of the account. Entries deleted on the
// server are removed and left out of the returned collection.
func (r *SQLiteRepository) SaveAll(ctx context.Context, uid uint64, list []*models.TimeEntry, log *models.ChangeLog) ([]*models.TimeEntry, error) {
	return collection.SaveAll(ctx, uid, list, log, r.Save, r.Delete)
}

// ListByUID returns the account's time entries, most recent start first.
func (r *SQLiteRepository) ListByUID(ctx context.Context, uid uint64) ([]*models.TimeEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT local_id, `+columns+` FROM time_entries WHERE uid = ? ORDER BY start DESC`, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to select time entries: %w", err)
	}
	defer rows.Close()

	var result []*models.TimeEntry
	for rows.Next() {
		te, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry row: %w", err)
		}
		result = append(result, te)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time entry rows: %w", err)
	}
	return result, nil
}

func scan(rows *sql.Rows) (*models.TimeEntry, error) {
	te := &models.TimeEntry{}
	var (
		id, pid, tid             sql.NullInt64
		uiModifiedAt, stop       sql.NullInt64
		deletedAt, updatedAt     sql.NullInt64
		description, guid, tags  sql.NullString
		createdWith, projectGUID sql.NullString
	)
	err := rows.Scan(&te.LocalID, &id, &te.UID, &description, &te.WID, &guid, &pid, &tid,
		&te.Billable, &te.DurOnly, &uiModifiedAt, &te.Start, &stop, &te.DurationInSeconds,
		&tags, &createdWith, &deletedAt, &updatedAt, &projectGUID)
	if err != nil {
		return nil, err
	}

	te.ID = uint64(id.Int64)
	te.PID = uint64(pid.Int64)
	te.TID = uint64(tid.Int64)
	te.UIModifiedAt = uint64(uiModifiedAt.Int64)
	te.Stop = uint64(stop.Int64)
	te.DeletedAt = uint64(deletedAt.Int64)
	te.UpdatedAt = uint64(updatedAt.Int64)
	te.Description = description.String
	te.GUID = guid.String
	te.CreatedWith = createdWith.String
	te.ProjectGUID = projectGUID.String
	te.SetTags(tags.String)
	te.ClearDirty()
	return te, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, localID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM time_entries WHERE local_id = ?`, localID)
	return dbx.Wrap("delete time entry", err)
}

func (r *SQLiteRepository) DeleteAllByUID(ctx context.Context, uid uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM time_entries WHERE uid = ?`, uid)
	return dbx.Wrap("delete time entries", err)
}
