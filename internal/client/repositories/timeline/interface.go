package timeline

import (
	"context"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
)

// Repository stores captured activity events until they are delivered.
type Repository interface {
	// Insert appends one event and sets its ID. It panics when the owner,
	// start or end time is missing.
	Insert(ctx context.Context, ev *models.TimelineEvent) error

	// SelectBatch returns at most limit events of the account, oldest first.
	SelectBatch(ctx context.Context, uid uint64, limit int) ([]models.TimelineEvent, error)

	// DeleteBatch removes exactly the given event ids. ids must not be empty.
	DeleteBatch(ctx context.Context, ids []int64) error
}
