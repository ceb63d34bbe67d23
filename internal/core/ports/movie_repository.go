package ports

import (
	"context"

	"github.com/cinerate/rating-system/internal/core/domain"
)

// MovieRepository defines persistence operations for the movie catalogue.
// Lookups by unknown id return domain.ErrMovieNotFound.
type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
	FindByID(ctx context.Context, id string) (*domain.Movie, error)
	FindAll(ctx context.Context) ([]*domain.Movie, error)
	Update(ctx context.Context, movie *domain.Movie) error
	Delete(ctx context.Context, id string) error
}
