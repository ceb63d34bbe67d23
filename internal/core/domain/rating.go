package domain

import (
	"errors"
	"time"
)

// Allowed bounds for a star score.
const (
	MinStars = 1
	MaxStars = 5
)

var ErrInvalidRating = errors.New("invalid rating")

// Rating is a single star score left by a visitor. Submission is open to
// anyone, authenticated or not. A rating references its movie by id; the
// title is denormalized for display and deleting a movie removes its
// ratings, so no rating ever points at a missing movie.
type Rating struct {
	ID         string
	Name       string
	MovieID    string
	MovieTitle string
	Stars      int
	Remarks    string
	CreatedAt  time.Time
}
