package ports

import (
	"context"

	"github.com/cinerate/rating-system/internal/core/domain"
)

// RatingRepository defines persistence operations for ratings. Ratings are
// append-only from the application's point of view; the only delete path
// is the cascade when a movie is removed.
type RatingRepository interface {
	Create(ctx context.Context, rating *domain.Rating) (*domain.Rating, error)
	// FindAll returns ratings in the store's default order.
	FindAll(ctx context.Context) ([]*domain.Rating, error)
	// FindAllByCreatedDesc returns ratings sorted most-recent-first.
	FindAllByCreatedDesc(ctx context.Context) ([]*domain.Rating, error)
	// DeleteByMovieID removes every rating for the movie and reports how
	// many were deleted.
	DeleteByMovieID(ctx context.Context, movieID string) (int64, error)
}
