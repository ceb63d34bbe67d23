package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cinerate/rating-system/internal/core/domain"
)

const moviesCollection = "movies"

type MovieRepository struct {
	coll *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{coll: db.Collection(moviesCollection)}
}

type mongoMovie struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (m mongoMovie) toDomain() *domain.Movie {
	return &domain.Movie{
		ID:          m.ID.Hex(),
		Title:       m.Title,
		Description: m.Description,
		CreatedAt:   unixToTime(m.CreatedAt),
		UpdatedAt:   unixToTime(m.UpdatedAt),
	}
}

func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	doc := mongoMovie{
		Title:       movie.Title,
		Description: movie.Description,
		CreatedAt:   movie.CreatedAt.Unix(),
		UpdatedAt:   movie.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert movie: %w", err)
	}

	created := *movie
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id string) (*domain.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMovieNotFound
	}

	var mm mongoMovie
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mm); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	return mm.toDomain(), nil
}

func (r *MovieRepository) FindAll(ctx context.Context) ([]*domain.Movie, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	var docs []mongoMovie
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}

	movies := make([]*domain.Movie, 0, len(docs))
	for _, d := range docs {
		movies = append(movies, d.toDomain())
	}
	return movies, nil
}

func (r *MovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	oid, err := primitive.ObjectIDFromHex(movie.ID)
	if err != nil {
		return domain.ErrMovieNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":       movie.Title,
		"description": movie.Description,
		"updated_at":  movie.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

func (r *MovieRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMovieNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}
