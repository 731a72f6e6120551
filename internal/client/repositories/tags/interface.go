package tags

import (
	"context"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
)

// Repository persists the tags of an account. Save and SaveAll follow the
// same insert, update and purge rules as the project repository.
type Repository interface {
	Save(ctx context.Context, t *models.Tag, log *models.ChangeLog) error
	SaveAll(ctx context.Context, uid uint64, list []*models.Tag, log *models.ChangeLog) ([]*models.Tag, error)

	// ListByUID returns the account's tags ordered by name.
	ListByUID(ctx context.Context, uid uint64) ([]*models.Tag, error)

	Delete(ctx context.Context, localID int64) error
	DeleteAllByUID(ctx context.Context, uid uint64) error
}
