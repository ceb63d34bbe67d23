package ports

import (
	"context"

	"github.com/cinerate/rating-system/internal/core/domain"
)

// AuthService verifies login credentials.
type AuthService interface {
	// Login returns domain.ErrInvalidCredentials for an unknown username or
	// a wrong password; the two cases are deliberately indistinguishable.
	Login(ctx context.Context, username, password string) (*domain.User, error)
}
