package timeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
	"github.com/dmitrijs2005/timetrack/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Insert appends ev and sets its ID. The owner and both timestamps are
// required.
func (r *SQLiteRepository) Insert(ctx context.Context, ev *models.TimelineEvent) error {
	if ev.UserID == 0 || ev.StartTime == 0 || ev.EndTime == 0 {
		panic(fmt.Sprintf("timeline: incomplete event user_id=%d start=%d end=%d", ev.UserID, ev.StartTime, ev.EndTime))
	}
	id, err := dbx.Insert(ctx, r.db, "insert timeline event",
		`INSERT INTO timeline_events (user_id, title, filename, start_time, end_time, idle)
		VALUES (?, ?, ?, ?, ?, ?)`,
		ev.UserID, ev.Title, ev.Filename, ev.StartTime, ev.EndTime, ev.Idle)
	if err != nil {
		return err
	}
	ev.ID = id
	return nil
}

// SelectBatch returns up to limit of the account's oldest events.
func (r *SQLiteRepository) SelectBatch(ctx context.Context, uid uint64, limit int) ([]models.TimelineEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, filename, start_time, end_time, idle
		FROM timeline_events WHERE user_id = ? ORDER BY start_time, id LIMIT ?`, uid, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select timeline events: %w", err)
	}
	defer rows.Close()

	var result []models.TimelineEvent
	for rows.Next() {
		var ev models.TimelineEvent
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.Title, &ev.Filename, &ev.StartTime, &ev.EndTime, &ev.Idle); err != nil {
			return nil, fmt.Errorf("failed to scan timeline event row: %w", err)
		}
		result = append(result, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate timeline event rows: %w", err)
	}
	return result, nil
}

// DeleteBatch removes delivered events in a single statement. Deleting
// nothing is a caller bug.
func (r *SQLiteRepository) DeleteBatch(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		panic("timeline: DeleteBatch with no ids")
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM timeline_events WHERE id IN (`+placeholders+`)`, args...)
	return dbx.Wrap("delete timeline events", err)
}
