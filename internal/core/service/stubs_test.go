package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/cinerate/rating-system/internal/core/domain"
)

// In-memory repositories shared by the movie and rating service tests.

type memMovieRepo struct {
	seq    int
	movies map[string]*domain.Movie
}

func newMemMovieRepo() *memMovieRepo {
	return &memMovieRepo{movies: make(map[string]*domain.Movie)}
}

func (r *memMovieRepo) Create(_ context.Context, movie *domain.Movie) (*domain.Movie, error) {
	r.seq++
	clone := *movie
	clone.ID = fmt.Sprintf("m%d", r.seq)
	r.movies[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memMovieRepo) FindByID(_ context.Context, id string) (*domain.Movie, error) {
	m, ok := r.movies[id]
	if !ok {
		return nil, domain.ErrMovieNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *memMovieRepo) FindAll(_ context.Context) ([]*domain.Movie, error) {
	ids := make([]string, 0, len(r.movies))
	for id := range r.movies {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*domain.Movie, 0, len(ids))
	for _, id := range ids {
		clone := *r.movies[id]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memMovieRepo) Update(_ context.Context, movie *domain.Movie) error {
	if _, ok := r.movies[movie.ID]; !ok {
		return domain.ErrMovieNotFound
	}
	clone := *movie
	r.movies[movie.ID] = &clone
	return nil
}

func (r *memMovieRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.movies[id]; !ok {
		return domain.ErrMovieNotFound
	}
	delete(r.movies, id)
	return nil
}

type memRatingRepo struct {
	seq     int
	ratings []*domain.Rating
}

func newMemRatingRepo() *memRatingRepo {
	return &memRatingRepo{}
}

func (r *memRatingRepo) Create(_ context.Context, rating *domain.Rating) (*domain.Rating, error) {
	r.seq++
	clone := *rating
	clone.ID = fmt.Sprintf("r%d", r.seq)
	r.ratings = append(r.ratings, &clone)
	out := clone
	return &out, nil
}

func (r *memRatingRepo) FindAll(_ context.Context) ([]*domain.Rating, error) {
	out := make([]*domain.Rating, 0, len(r.ratings))
	for _, rt := range r.ratings {
		clone := *rt
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memRatingRepo) FindAllByCreatedDesc(ctx context.Context) ([]*domain.Rating, error) {
	out, _ := r.FindAll(ctx)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memRatingRepo) DeleteByMovieID(_ context.Context, movieID string) (int64, error) {
	kept := r.ratings[:0]
	var removed int64
	for _, rt := range r.ratings {
		if rt.MovieID == movieID {
			removed++
			continue
		}
		kept = append(kept, rt)
	}
	r.ratings = kept
	return removed, nil
}
