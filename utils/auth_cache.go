package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// AuthCache keeps the hash of each user's active token.
type AuthCache interface {
	Get(ctx context.Context, userID string) (string, bool, error)
	Set(ctx context.Context, userID, tokenHash string) error
	Touch(ctx context.Context, userID string) error
	Clear(ctx context.Context, userID string) error
}

// RedisAuthCache stores token hashes under AuthCachePrefix+userID.
type RedisAuthCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAuthCache(client *redis.Client, ttl time.Duration) *RedisAuthCache {
	if ttl <= 0 {
		ttl = AuthCacheTTL
	}
	return &RedisAuthCache{client: client, ttl: ttl}
}

func (c *RedisAuthCache) Get(ctx context.Context, userID string) (string, bool, error) {
	hash, err := c.client.Get(ctx, AuthCachePrefix+userID).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return hash, true, nil
}

func (c *RedisAuthCache) Set(ctx context.Context, userID, tokenHash string) error {
	return c.client.Set(ctx, AuthCachePrefix+userID, tokenHash, c.ttl).Err()
}

// Touch extends the entry's TTL.
func (c *RedisAuthCache) Touch(ctx context.Context, userID string) error {
	return c.client.Expire(ctx, AuthCachePrefix+userID, c.ttl).Err()
}

func (c *RedisAuthCache) Clear(ctx context.Context, userID string) error {
	return c.client.Del(ctx, AuthCachePrefix+userID).Err()
}
