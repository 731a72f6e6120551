package users

import (
	"context"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
)

// Repository persists account rows. Related collections are handled by their
// own repositories.
type Repository interface {
	// Save inserts or updates the account row and records the change.
	Save(ctx context.Context, u *models.User, log *models.ChangeLog) error

	// GetByID returns the account with the given remote id, or nil when there
	// is none.
	GetByID(ctx context.Context, id uint64) (*models.User, error)

	// GetByAPIToken returns the account owning token, or nil when there is none.
	GetByAPIToken(ctx context.Context, token string) (*models.User, error)

	Delete(ctx context.Context, localID int64) error
}
