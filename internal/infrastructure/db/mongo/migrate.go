package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cinerate/rating-system/internal/core/domain"
	"github.com/cinerate/rating-system/internal/core/ports"
	"github.com/cinerate/rating-system/internal/core/service"
)

// Migrate ensures the indexes the application relies on. Index creation
// is idempotent in MongoDB, so this is safe to run on every startup.
func Migrate(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure username index: %w", err)
	}

	_, err = db.Collection(ratingsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "movie_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("ensure rating movie index: %w", err)
	}

	return nil
}

// Seed creates the two default accounts when the store is empty. It is
// guarded by an existence check on the admin account, so repeated
// startups are no-ops.
func Seed(ctx context.Context, users ports.UserRepository, log zerolog.Logger) error {
	_, err := users.FindByUsername(ctx, "admin")
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	defaults := []struct {
		username string
		password string
		role     domain.Role
	}{
		{"admin", "admin123", domain.RoleAdmin},
		{"viewer", "viewer123", domain.RoleViewer},
	}

	now := time.Now().UTC()
	for _, d := range defaults {
		hash, err := service.HashPassword(d.password)
		if err != nil {
			return fmt.Errorf("hash %s password: %w", d.username, err)
		}
		user := &domain.User{
			Username:     d.username,
			PasswordHash: hash,
			Role:         d.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, err := users.Create(ctx, user); err != nil && !errors.Is(err, domain.ErrUserExists) {
			return fmt.Errorf("seed %s: %w", d.username, err)
		}
	}

	log.Info().Msg("default accounts created")
	return nil
}
