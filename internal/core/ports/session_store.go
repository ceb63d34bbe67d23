package ports

import (
	"context"

	"github.com/cinerate/rating-system/internal/core/domain"
)

// SessionStore is the process-external per-client store holding
// {user, role} between login and logout. Expiry is owned by the store;
// the application never inspects TTLs itself.
type SessionStore interface {
	Set(ctx context.Context, id string, sess domain.Session) error
	// Get returns domain.ErrSessionNotFound when id is absent or expired.
	Get(ctx context.Context, id string) (domain.Session, error)
	// Clear removes the session. Clearing an absent id is not an error.
	Clear(ctx context.Context, id string) error
}
