package projects

import (
	"context"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
)

// Repository persists the projects of an account.
type Repository interface {
	// Save inserts p when it has no local id, or updates it by local id when it
	// is dirty, and appends the matching change to log. A GUID is assigned
	// right before the write; a clean, persisted project is left untouched.
	Save(ctx context.Context, p *models.Project, log *models.ChangeLog) error

	// SaveAll stamps uid on every project and saves it. Projects marked as
	// deleted on the server are removed by local id instead, recorded as
	// deletes and left out of the returned slice.
	SaveAll(ctx context.Context, uid uint64, list []*models.Project, log *models.ChangeLog) ([]*models.Project, error)

	// ListByUID returns the account's projects ordered by name, all clean.
	ListByUID(ctx context.Context, uid uint64) ([]*models.Project, error)

	// Delete removes a single row by local id.
	Delete(ctx context.Context, localID int64) error

	// DeleteAllByUID removes every project of the account.
	DeleteAllByUID(ctx context.Context, uid uint64) error
}
