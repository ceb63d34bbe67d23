package ports

import (
	"context"

	"github.com/cinerate/rating-system/internal/core/domain"
)

// RatingInput is the DTO for a submitted rating form.
type RatingInput struct {
	Name    string
	MovieID string
	Stars   int
	Remarks string
}

// RatingService handles public rating submission and the two listing views.
type RatingService interface {
	// Submit persists a new rating with a server-assigned timestamp. The
	// referenced movie must exist; domain.ErrMovieNotFound otherwise.
	Submit(ctx context.Context, in RatingInput) (*domain.Rating, error)
	// ListRecent returns all ratings sorted most-recent-first.
	ListRecent(ctx context.Context) ([]*domain.Rating, error)
	// ListAll returns all ratings in store order.
	ListAll(ctx context.Context) ([]*domain.Rating, error)
}
