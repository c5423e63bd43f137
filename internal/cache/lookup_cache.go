package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tokoprima/admin-api/internal/models"
)

// lookupTTL bounds staleness of cached code resolutions; product and variant
// writes do not invalidate entries.
const lookupTTL = 5 * time.Minute

// LookupCache caches product code resolutions in Redis.
type LookupCache struct {
	redis *RedisClient
}

// NewLookupCache creates a new LookupCache.
func NewLookupCache(redis *RedisClient) *LookupCache {
	return &LookupCache{redis: redis}
}

func lookupKey(code string) string {
	return fmt.Sprintf("lookup:code:%s", code)
}

// GetLookup returns a cached resolution for code, or nil on a miss.
func (c *LookupCache) GetLookup(ctx context.Context, code string) (*models.LookupResult, error) {
	raw, err := c.redis.Get(ctx, lookupKey(code))
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var result models.LookupResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to decode cached lookup: %w", err)
	}
	return &result, nil
}

// SetLookup stores a resolution for code with the standard TTL.
func (c *LookupCache) SetLookup(ctx context.Context, code string, result *models.LookupResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode lookup: %w", err)
	}
	return c.redis.Set(ctx, lookupKey(code), string(raw), lookupTTL)
}
