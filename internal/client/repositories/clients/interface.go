package clients

import (
	"context"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
)

// Repository persists the clients of an account. Save and SaveAll follow the
// same insert, update and purge rules as the project repository.
type Repository interface {
	Save(ctx context.Context, c *models.Client, log *models.ChangeLog) error
	SaveAll(ctx context.Context, uid uint64, list []*models.Client, log *models.ChangeLog) ([]*models.Client, error)

	// ListByUID returns the account's clients ordered by name.
	ListByUID(ctx context.Context, uid uint64) ([]*models.Client, error)

	Delete(ctx context.Context, localID int64) error
	DeleteAllByUID(ctx context.Context, uid uint64) error
}
