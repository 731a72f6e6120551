package settings

import (
	"context"

	"github.com/dmitrijs2005/timetrack/internal/client/models"
)

// Repository reads and writes the single settings row.
type Repository interface {
	Load(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, s models.Settings) error
	LoadUpdateChannel(ctx context.Context) (models.UpdateChannel, error)

	// SaveUpdateChannel rejects values outside stable, beta and dev with
	// common.ErrInvalidArgument before writing.
	SaveUpdateChannel(ctx context.Context, c models.UpdateChannel) error
}
