package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultDialTimeout = 10 * time.Second

// Config holds the connection settings for the rating store.
type Config struct {
	URI      string
	Database string
	// Timeout bounds the initial dial and ping. Zero means the default.
	Timeout time.Duration
}

// Connect dials MongoDB and pings the primary, so a bad URI or an
// unreachable server fails at startup rather than on the first page load.
// The returned database is scoped to cfg.Database; the client is handed
// back so the caller can disconnect on shutdown.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().ApplyURI(cfg.URI).SetConnectTimeout(timeout)
	client, err := mongo.Connect(dialCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("dial mongodb: %w", err)
	}

	if err := client.Ping(dialCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
