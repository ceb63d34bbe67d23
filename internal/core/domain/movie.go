package domain

import (
	"errors"
	"time"
)

var ErrMovieNotFound = errors.New("movie not found")

// Movie is a catalogue entry. Mutated exclusively by admin sessions.
type Movie struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
