package domain

import "errors"

var ErrSessionNotFound = errors.New("session not found")

// Session is the per-client state held between login and logout.
type Session struct {
	User string
	Role Role
}
