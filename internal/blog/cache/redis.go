package cache

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	platformredis "inkwell/internal/platform/redis"
	dErrors "inkwell/pkg/domain-errors"
	"inkwell/pkg/platform/sentinel"
)

// keyPrefix namespaces content keys so Invalidate can scan them without
// touching anything else sharing the Redis database.
const keyPrefix = "inkwell:content:"

// Redis is a ContentCache backed by Redis, for deployments where several
// instances should share one content cache.
type Redis struct {
	client *platformredis.Client
	ttl    time.Duration
}

// NewRedis creates a Redis-backed cache from a redis:// URL.
// Returns (nil, nil) when the URL is empty: Redis not configured.
func NewRedis(url string, ttl time.Duration) (*Redis, error) {
	client, err := platformredis.New(url)
	if err != nil || client == nil {
		return nil, err
	}
	return &Redis{client: client, ttl: ttl}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	body, err := r.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", sentinel.ErrNotFound
	}
	if err != nil {
		return "", dErrors.Wrap(dErrors.CodeUnavailable, "redis get", err)
	}
	return body, nil
}

func (r *Redis) Set(ctx context.Context, key, body string) error {
	if err := r.client.Set(ctx, keyPrefix+key, body, r.ttl).Err(); err != nil {
		return dErrors.Wrap(dErrors.CodeUnavailable, "redis set", err)
	}
	return nil
}

// Invalidate deletes all content keys. SCAN keeps this safe on a shared
// database where KEYS would block.
func (r *Redis) Invalidate(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return dErrors.Wrap(dErrors.CodeUnavailable, "redis scan", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return dErrors.Wrap(dErrors.CodeUnavailable, "redis del", err)
	}
	return nil
}

// Close releases the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}
