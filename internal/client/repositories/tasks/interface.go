package tasks

import (
	"context"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
)

// Repository persists the tasks of an account. Save and SaveAll follow the
// same insert, update and purge rules as the project repository.
type Repository interface {
	Save(ctx context.Context, t *models.Task, log *models.ChangeLog) error
	SaveAll(ctx context.Context, uid uint64, list []*models.Task, log *models.ChangeLog) ([]*models.Task, error)

	// ListByUID returns the account's tasks ordered by name.
	ListByUID(ctx context.Context, uid uint64) ([]*models.Task, error)

	Delete(ctx context.Context, localID int64) error
	DeleteAllByUID(ctx context.Context, uid uint64) error
}
