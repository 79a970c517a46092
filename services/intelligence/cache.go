package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"tripcraft/models"

	"github.com/go-redis/redis/v8"
)

const itineraryCachePrefix = "itinerary:"

type RedisItineraryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisItineraryCache(client *redis.Client, ttl time.Duration) *RedisItineraryCache {
	return &RedisItineraryCache{client: client, ttl: ttl}
}

func (s *RedisItineraryCache) Get(ctx context.Context, key string) ([]models.ItineraryDay, bool, error) {
	data, err := s.client.Get(ctx, itineraryCachePrefix+key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var days []models.ItineraryDay
	if err := json.Unmarshal([]byte(data), &days); err != nil {
		return nil, false, err
	}
	return days, true, nil
}

func (s *RedisItineraryCache) Set(ctx context.Context, key string, days []models.ItineraryDay) error {
	b, err := json.Marshal(days)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, itineraryCachePrefix+key, b, s.ttl).Err()
}

// CacheKey identifies a generation request. Destination case and surrounding spaces are ignored.
func CacheKey(destination string, days int, preferences string) string {
	raw := strings.ToLower(strings.TrimSpace(destination)) + "|" + strconv.Itoa(days) + "|" + strings.TrimSpace(preferences)
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
