package redisad

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"elhamas/internal/domain"
)

const sessionPrefix = "session:"

// Sessions stores admin session ids in Redis with a TTL so logout and
// expiry take effect server-side.
type Sessions struct{ c *redis.Client }

func New(addr, pass string, db int) *Sessions {
	return &Sessions{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

// Wrap uses an existing client.
func Wrap(c *redis.Client) *Sessions { return &Sessions{c: c} }

var _ domain.SessionStore = (*Sessions)(nil)

func (s *Sessions) Ping(ctx context.Context) error { return s.c.Ping(ctx).Err() }

func (s *Sessions) Close() error { return s.c.Close() }

func (s *Sessions) Create(ctx context.Context, adminID string, ttl time.Duration) (string, error) {
	sid := uuid.NewString()
	if err := s.c.Set(ctx, sessionPrefix+sid, adminID, ttl).Err(); err != nil {
		return "", err
	}
	return sid, nil
}

func (s *Sessions) Lookup(ctx context.Context, sid string) (string, error) {
	v, err := s.c.Get(ctx, sessionPrefix+sid).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s *Sessions) Delete(ctx context.Context, sid string) error {
	return s.c.Del(ctx, sessionPrefix+sid).Err()
}
