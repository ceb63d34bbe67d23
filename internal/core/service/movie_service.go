package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinerate/rating-system/internal/core/domain"
	"github.com/cinerate/rating-system/internal/core/ports"
)

// MovieService implements the admin movie-management use cases.
type MovieService struct {
	movies  ports.MovieRepository
	ratings ports.RatingRepository
	log     zerolog.Logger
}

func NewMovieService(movies ports.MovieRepository, ratings ports.RatingRepository, log zerolog.Logger) *MovieService {
	return &MovieService{movies: movies, ratings: ratings, log: log}
}

func (s *MovieService) List(ctx context.Context) ([]*domain.Movie, error) {
	return s.movies.FindAll(ctx)
}

func (s *MovieService) Get(ctx context.Context, id string) (*domain.Movie, error) {
	return s.movies.FindByID(ctx, id)
}

func (s *MovieService) Create(ctx context.Context, in ports.MovieInput) (*domain.Movie, error) {
	now := time.Now().UTC()
	movie := &domain.Movie{
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.movies.Create(ctx, movie)
	if err != nil {
		s.log.Error().Err(err).Str("title", in.Title).Msg("failed to create movie")
		return nil, err
	}

	s.log.Info().Str("movie_id", created.ID).Str("title", created.Title).Msg("movie added")
	return created, nil
}

func (s *MovieService) Update(ctx context.Context, id string, in ports.MovieInput) (*domain.Movie, error) {
	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	movie.Title = in.Title
	movie.Description = in.Description
	movie.UpdatedAt = time.Now().UTC()

	if err := s.movies.Update(ctx, movie); err != nil {
		return nil, err
	}

	s.log.Info().Str("movie_id", movie.ID).Msg("movie updated")
	return movie, nil
}

// Delete removes the movie and cascade-deletes its ratings so no rating is
// left referencing a missing movie.
func (s *MovieService) Delete(ctx context.Context, id string) error {
	if _, err := s.movies.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.movies.Delete(ctx, id); err != nil {
		return err
	}

	removed, err := s.ratings.DeleteByMovieID(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("movie_id", id).Msg("cascade delete of ratings failed")
		return err
	}

	s.log.Info().Str("movie_id", id).Int64("ratings_removed", removed).Msg("movie deleted")
	return nil
}
