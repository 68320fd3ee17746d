package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const statsCacheKey = "dashboard:stats"

// DashboardCache keeps the admin dashboard counters in Redis for a
// short TTL so repeated dashboard loads do not hit the store. A nil
// cache disables caching entirely.
type DashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDashboardCache wraps a Redis client. A non-positive TTL disables
// the cache.
func NewDashboardCache(client *redis.Client, ttl time.Duration) *DashboardCache {
	if client == nil || ttl <= 0 {
		return nil
	}
	return &DashboardCache{client: client, ttl: ttl}
}

// Get returns cached stats when present and fresh.
func (c *DashboardCache) Get(ctx context.Context) (*DashboardStats, bool) {
	if c == nil {
		return nil, false
	}
	blob, err := c.client.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var stats DashboardStats
	if err := json.Unmarshal(blob, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

// Set stores stats with the configured TTL. Cache failures are ignored;
// the store remains the source of truth.
func (c *DashboardCache) Set(ctx context.Context, stats *DashboardStats) {
	if c == nil || stats == nil {
		return
	}
	blob, err := json.Marshal(stats)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, statsCacheKey, blob, c.ttl).Err()
}

// Invalidate drops the cached stats after a mutation.
func (c *DashboardCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	_ = c.client.Del(ctx, statsCacheKey).Err()
}
