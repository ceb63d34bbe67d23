package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cinerate/rating-system/internal/core/domain"
)

const (
	sessionKeyPrefix  = "session:"
	defaultSessionTTL = time.Hour
)

// SessionStore keeps login sessions as Redis hashes with a TTL, so
// abandoned sessions expire without any cleanup job.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (s *SessionStore) Set(ctx context.Context, id string, session domain.Session) error {
	key := sessionKey(id)

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, "user", session.User, "role", string(session.Role))
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (domain.Session, error) {
	fields, err := s.client.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	if len(fields) == 0 {
		return domain.Session{}, domain.ErrSessionNotFound
	}

	return domain.Session{
		User: fields["user"],
		Role: domain.Role(fields["role"]),
	}, nil
}

func (s *SessionStore) Clear(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
