package ports

import (
	"context"

	"github.com/cinerate/rating-system/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	// FindByUsername returns domain.ErrUserNotFound when no account matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create returns domain.ErrUserExists on a username collision.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
