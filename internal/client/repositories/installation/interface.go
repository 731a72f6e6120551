package installation

import "context"

// Repository keeps the per-installation desktop id.
type Repository interface {
	// DesktopID returns the stored id, or "" before the first run.
	DesktopID(ctx context.Context) (string, error)
	SetDesktopID(ctx context.Context, id string) error
}
