package clients

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

// Save inserts a new client or updates a dirty one by local id. Clients
// created offline have no remote id; it is stored as NULL until the server
// assigns one.
func (r *SQLiteRepository) Save(ctx context.Context, c *models.Client, log *models.ChangeLog) error {
	if !c.NeedsToBeSaved() {
		return nil
	}

	if c.LocalID != 0 {
		_, err := r.db.ExecContext(ctx,
			`UPDATE clients SET id = ?, uid = ?, name = ?, guid = ?, wid = ? WHERE local_id = ?`,
			dbx.NullInt64(c.ID), c.UID, c.Name, dbx.NullString(c.GUID), c.WID, c.LocalID)
		if err != nil {
			return dbx.Wrap("update client", err)
		}
		log.Record(c, models.ChangeUpdate)
	} else {
		id, err := dbx.Insert(ctx, r.db, "insert client",
			`INSERT INTO clients (id, uid, name, guid, wid) VALUES (?, ?, ?, ?, ?)`,
			dbx.NullInt64(c.ID), c.UID, c.Name, dbx.NullString(c.GUID), c.WID)
		if err != nil {
			return err
		}
		c.LocalID = id
		log.Record(c, models.ChangeInsert)
	}

	c.ClearDirty()
	return nil
}

func (r *SQLiteRepository) SaveAll(ctx context.Context, uid uint64, list []*models.Client, log *models.ChangeLog) ([]*models.Client, error) {
	return collection.SaveAll(ctx, uid, list, log, r.Save, r.Delete)
}

// ListByUID returns the account's clients ordered by name.
func (r *SQLiteRepository) ListByUID(ctx context.Context, uid uint64) ([]*models.Client, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT local_id, id, uid, name, guid, wid FROM clients WHERE uid = ? ORDER BY name`, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to select clients: %w", err)
	}
	defer rows.Close()

	var result []*models.Client
	for rows.Next() {
		c := &models.Client{}
		var (
			id   sql.NullInt64
			guid sql.NullString
		)
		if err := rows.Scan(&c.LocalID, &id, &c.UID, &c.Name, &guid, &c.WID); err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		c.ID = uint64(id.Int64)
		c.GUID = guid.String
		c.ClearDirty()
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate client rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, localID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE local_id = ?`, localID)
	return dbx.Wrap("delete client", err)
}

func (r *SQLiteRepository) DeleteAllByUID(ctx context.Context, uid uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE uid = ?`, uid)
	return dbx.Wrap("delete clients", err)
}
