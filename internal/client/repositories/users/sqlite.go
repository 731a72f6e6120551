package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
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

// Save inserts or updates the account row. A user that is persisted and
// clean is left untouched.
func (r *SQLiteRepository) Save(ctx context.Context, u *models.User, log *models.ChangeLog) error {
	if !u.NeedsToBeSaved() {
		return nil
	}

	if u.LocalID != 0 {
		_, err := r.db.ExecContext(ctx,
			`UPDATE users SET id = ?, api_token = ?, default_wid = ?, since = ?, fullname = ?, email = ?,
			record_timeline = ?, store_start_and_stop_time = ?
			WHERE local_id = ?`,
			u.ID, u.APIToken, u.DefaultWID, u.Since, u.Fullname, u.Email,
			u.RecordTimeline, u.StoreStartAndStopTime, u.LocalID)
		if err != nil {
			return dbx.Wrap("update user", err)
		}
		log.Record(u, models.ChangeUpdate)
	} else {
		id, err := dbx.Insert(ctx, r.db, "insert user",
			`INSERT INTO users (id, api_token, default_wid, since, fullname, email, record_timeline, store_start_and_stop_time)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			u.ID, u.APIToken, u.DefaultWID, u.Since, u.Fullname, u.Email,
			u.RecordTimeline, u.StoreStartAndStopTime)
		if err != nil {
			return err
		}
		u.LocalID = id
		log.Record(u, models.ChangeInsert)
	}

	u.ClearDirty()
	return nil
}

const selectUser = `SELECT local_id, id, api_token, default_wid, since, fullname, email,
	record_timeline, store_start_and_stop_time FROM users`

// GetByID returns the user with the given remote id, or nil when there is none.
func (r *SQLiteRepository) GetByID(ctx context.Context, id uint64) (*models.User, error) {
	u, err := r.get(ctx, selectUser+` WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}

// GetByAPIToken returns the user owning token, or nil when there is none.
func (r *SQLiteRepository) GetByAPIToken(ctx context.Context, token string) (*models.User, error) {
	u, err := r.get(ctx, selectUser+` WHERE api_token = ?`, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by api token: %w", err)
	}
	return u, nil
}

func (r *SQLiteRepository) get(ctx context.Context, query string, arg any) (*models.User, error) {
	var (
		u                 models.User
		defaultWID, since sql.NullInt64
		fullname          sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.LocalID, &u.ID, &u.APIToken, &defaultWID, &since,
		&fullname, &u.Email, &u.RecordTimeline, &u.StoreStartAndStopTime)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.DefaultWID = uint64(defaultWID.Int64)
	u.Since = uint64(since.Int64)
	u.Fullname = fullname.String
	u.ClearDirty()
	return &u, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, localID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE local_id = ?`, localID)
	return dbx.Wrap("delete user", err)
}
