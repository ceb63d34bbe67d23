package domain

import (
	"errors"
	"time"
)

// Role determines which routes a session may access. Roles are a closed
// enum dispatched by exact match; there is no hierarchy between them.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleViewer
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// User models an authenticated actor. Accounts are created only by the
// bootstrap seeding step; there is no self-service registration.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
