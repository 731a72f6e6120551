package sessions

import "context"

// Repository stores the API token of the logged in account.
type Repository interface {
	// Current returns the active token, or "" when nobody is logged in.
	Current(ctx context.Context) (string, error)
	// Set replaces any active session with token.
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
