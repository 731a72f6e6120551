package projects

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

// Save inserts a new project or updates a dirty one by local id. A missing
// GUID is generated only when a write happens; clean rows are left alone.
func (r *SQLiteRepository) Save(ctx context.Context, p *models.Project, log *models.ChangeLog) error {
	if !p.NeedsToBeSaved() {
		return nil
	}
	p.EnsureGUID()

	if p.LocalID != 0 {
		_, err := r.db.ExecContext(ctx,
			`UPDATE projects SET id = ?, uid = ?, name = ?, guid = ?, wid = ?, color = ?, cid = ?, active = ?, billable = ?
			WHERE local_id = ?`,
			dbx.NullInt64(p.ID), p.UID, p.Name, p.GUID, p.WID, p.Color, dbx.NullInt64(p.CID), p.Active, p.Billable,
			p.LocalID)
		if err != nil {
			return dbx.Wrap("update project", err)
		}
		log.Record(p, models.ChangeUpdate)
	} else {
		id, err := dbx.Insert(ctx, r.db, "insert project",
			`INSERT INTO projects (id, uid, name, guid, wid, color, cid, active, billable)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			dbx.NullInt64(p.ID), p.UID, p.Name, p.GUID, p.WID, p.Color, dbx.NullInt64(p.CID), p.Active, p.Billable)
		if err != nil {
			return err
		}
		p.LocalID = id
		log.Record(p, models.ChangeInsert)
	}

	p.ClearDirty()
	return nil
}

// SaveAll saves every project of the account. Projects deleted on the server
// are removed and left out of the returned collection.
func (r *SQLiteRepository) SaveAll(ctx context.Context, uid uint64, list []*models.Project, log *models.ChangeLog) ([]*models.Project, error) {
	return collection.SaveAll(ctx, uid, list, log, r.Save, r.Delete)
}

// ListByUID returns the account's projects ordered by name.
func (r *SQLiteRepository) ListByUID(ctx context.Context, uid uint64) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT local_id, id, uid, name, guid, wid, color, cid, active, billable
		FROM projects WHERE uid = ? ORDER BY name`, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to select projects: %w", err)
	}
	defer rows.Close()

	var result []*models.Project
	for rows.Next() {
		p := &models.Project{}
		var (
			id    sql.NullInt64
			cid   sql.NullInt64
			guid  sql.NullString
			color sql.NullString
		)
		if err := rows.Scan(&p.LocalID, &id, &p.UID, &p.Name, &guid, &p.WID, &color, &cid, &p.Active, &p.Billable); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		p.ID = uint64(id.Int64)
		p.CID = uint64(cid.Int64)
		p.GUID = guid.String
		p.Color = color.String
		p.ClearDirty()
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate project rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, localID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE local_id = ?`, localID)
	return dbx.Wrap("delete project", err)
}

func (r *SQLiteRepository) DeleteAllByUID(ctx context.Context, uid uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE uid = ?`, uid)
	return dbx.Wrap("delete projects", err)
}
