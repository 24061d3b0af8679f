package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"tableside/internal/service"
)

// RedisCache stores idempotency markers: request token key -> entity id.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) Lookup(ctx context.Context, key string) (string, bool, error) {
	id, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

// Remember keeps the first entity recorded for a key.
func (c *RedisCache) Remember(ctx context.Context, key, entityID string) error {
	return c.Client.SetNX(ctx, key, entityID, c.TTL).Err()
}

var _ service.IdempotencyStore = (*RedisCache)(nil)
