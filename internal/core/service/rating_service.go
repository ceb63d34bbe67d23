package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinerate/rating-system/internal/core/domain"
	"github.com/cinerate/rating-system/internal/core/ports"
)

// RatingService handles public rating submission and listing.
type RatingService struct {
	ratings ports.RatingRepository
	movies  ports.MovieRepository
	log     zerolog.Logger
}

func NewRatingService(ratings ports.RatingRepository, movies ports.MovieRepository, log zerolog.Logger) *RatingService {
	return &RatingService{ratings: ratings, movies: movies, log: log}
}

// Submit persists a new rating with a server-assigned UTC timestamp. The
// star bound is re-checked here so the invariant holds regardless of which
// transport delivered the input.
func (s *RatingService) Submit(ctx context.Context, in ports.RatingInput) (*domain.Rating, error) {
	if in.Name == "" || in.Stars < domain.MinStars || in.Stars > domain.MaxStars {
		return nil, domain.ErrInvalidRating
	}

	movie, err := s.movies.FindByID(ctx, in.MovieID)
	if err != nil {
		return nil, err
	}

	rating := &domain.Rating{
		Name:       in.Name,
		MovieID:    movie.ID,
		MovieTitle: movie.Title,
		Stars:      in.Stars,
		Remarks:    in.Remarks,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.ratings.Create(ctx, rating)
	if err != nil {
		s.log.Error().Err(err).Str("movie_id", movie.ID).Msg("failed to create rating")
		return nil, err
	}

	s.log.Info().Str("movie_id", movie.ID).Int("stars", created.Stars).Msg("rating submitted")
	return created, nil
}

func (s *RatingService) ListRecent(ctx context.Context) ([]*domain.Rating, error) {
	return s.ratings.FindAllByCreatedDesc(ctx)
}

func (s *RatingService) ListAll(ctx context.Context) ([]*domain.Rating, error) {
	return s.ratings.FindAll(ctx)
}
