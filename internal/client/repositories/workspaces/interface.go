package workspaces

import (
	"context"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
)

// Repository persists the workspaces of an account. Save and SaveAll follow the
// same insert, update and purge rules as the project repository.
type Repository interface {
	Save(ctx context.Context, w *models.Workspace, log *models.ChangeLog) error
	SaveAll(ctx context.Context, uid uint64, list []*models.Workspace, log *models.ChangeLog) ([]*models.Workspace, error)

	// ListByUID returns the account's workspaces ordered by name.
	ListByUID(ctx context.Context, uid uint64) ([]*models.Workspace, error)

	Delete(ctx context.Context, localID int64) error
	DeleteAllByUID(ctx context.Context, uid uint64) error
}
