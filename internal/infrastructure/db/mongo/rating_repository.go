package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cinerate/rating-system/internal/core/domain"
)

const ratingsCollection = "ratings"

type RatingRepository struct {
	coll *mongo.Collection
}

func NewRatingRepository(db *mongo.Database) *RatingRepository {
	return &RatingRepository{coll: db.Collection(ratingsCollection)}
}

type mongoRating struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	MovieID    string             `bson:"movie_id"`
	MovieTitle string             `bson:"movie_title"`
	Stars      int                `bson:"stars"`
	Remarks    string             `bson:"remarks,omitempty"`
	// Unix nanoseconds: the newest-first sort must stay stable for
	// ratings submitted within the same second.
	CreatedAt int64 `bson:"created_at"`
}

func newRatingDoc(rating *domain.Rating) mongoRating {
	return mongoRating{
		Name:       rating.Name,
		MovieID:    rating.MovieID,
		MovieTitle: rating.MovieTitle,
		Stars:      rating.Stars,
		Remarks:    rating.Remarks,
		CreatedAt:  rating.CreatedAt.UnixNano(),
	}
}

func (m mongoRating) toDomain() *domain.Rating {
	var created time.Time
	if m.CreatedAt != 0 {
		created = time.Unix(0, m.CreatedAt).UTC()
	}
	return &domain.Rating{
		ID:         m.ID.Hex(),
		Name:       m.Name,
		MovieID:    m.MovieID,
		MovieTitle: m.MovieTitle,
		Stars:      m.Stars,
		Remarks:    m.Remarks,
		CreatedAt:  created,
	}
}

func (r *RatingRepository) Create(ctx context.Context, rating *domain.Rating) (*domain.Rating, error) {
	doc := newRatingDoc(rating)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert rating: %w", err)
	}

	created := *rating
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *RatingRepository) FindAll(ctx context.Context) ([]*domain.Rating, error) {
	return r.find(ctx, nil)
}

func (r *RatingRepository) FindAllByCreatedDesc(ctx context.Context) ([]*domain.Rating, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.find(ctx, opts)
}

func (r *RatingRepository) DeleteByMovieID(ctx context.Context, movieID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"movie_id": movieID})
	if err != nil {
		return 0, fmt.Errorf("delete ratings for movie: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *RatingRepository) find(ctx context.Context, opts *options.FindOptions) ([]*domain.Rating, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.coll.Find(ctx, bson.M{}, opts)
	} else {
		cursor, err = r.coll.Find(ctx, bson.M{})
	}
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}

	var docs []mongoRating
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode ratings: %w", err)
	}

	ratings := make([]*domain.Rating, 0, len(docs))
	for _, d := range docs {
		ratings = append(ratings, d.toDomain())
	}
	return ratings, nil
}
