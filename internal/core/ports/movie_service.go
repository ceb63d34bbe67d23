package ports

import (
	"context"

	"github.com/cinerate/rating-system/internal/core/domain"
)

// MovieInput carries the fields an admin may set on a movie.
type MovieInput struct {
	Title       string
	Description string
}

// MovieService defines the admin movie-management use cases. Role gating
// happens at the transport layer; the service assumes an authorized caller.
type MovieService interface {
	List(ctx context.Context) ([]*domain.Movie, error)
	Get(ctx context.Context, id string) (*domain.Movie, error)
	Create(ctx context.Context, in MovieInput) (*domain.Movie, error)
	Update(ctx context.Context, id string, in MovieInput) (*domain.Movie, error)
	// Delete removes the movie and cascade-deletes its ratings.
	Delete(ctx context.Context, id string) error
}
