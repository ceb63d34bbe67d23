package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/cinerate/rating-system/internal/core/domain"
	"github.com/cinerate/rating-system/internal/core/ports"
)

// AuthService verifies credentials against stored user accounts.
type AuthService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, log: log}
}

// Login looks up the account by exact username and verifies the password.
// A missing user and a wrong password both yield ErrInvalidCredentials so
// the login form cannot be used to probe for account names.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(user.PasswordHash, password) {
		s.log.Debug().Str("username", username).Msg("password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}
