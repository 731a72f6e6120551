package timeentries

import (
	"context"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
)

// Repository persists the time entries of an account.
type Repository interface {
	// Save inserts te when it has no local id, or updates it by local id when
	// it is dirty. The update of an entry with DeletedAt set is recorded as a
	// delete change. A GUID is assigned right before the write; a clean,
	// persisted entry is left untouched.
	Save(ctx context.Context, te *models.TimeEntry, log *models.ChangeLog) error

	// SaveAll stamps uid on every entry and saves it. Entries marked as
	// deleted on the server are removed and left out of the returned slice.
	SaveAll(ctx context.Context, uid uint64, list []*models.TimeEntry, log *models.ChangeLog) ([]*models.TimeEntry, error)

	// ListByUID returns the account's entries, most recent start first.
	ListByUID(ctx context.Context, uid uint64) ([]*models.TimeEntry, error)

	Delete(ctx context.Context, localID int64) error
	DeleteAllByUID(ctx context.Context, uid uint64) error
}
