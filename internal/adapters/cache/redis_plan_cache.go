package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/platform/obs"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisPlanCache stores computed plans under their request fingerprint.
// Entries expire after TTL; nothing else reads them.
type RedisPlanCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisPlanCache(client *redis.Client, ttl time.Duration) *RedisPlanCache {
	return &RedisPlanCache{Client: client, TTL: ttl}
}

// OpenRedisPlanCache parses a redis:// URL and verifies the connection.
func OpenRedisPlanCache(ctx context.Context, url string, ttl time.Duration) (*RedisPlanCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("plan cache: parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("plan cache: ping redis: %w", err)
	}

	return NewRedisPlanCache(client, ttl), nil
}

// Fetch a cached plan. A miss returns domain.ErrNotFound.
func (c *RedisPlanCache) Get(ctx context.Context, key string) (_ *domain.Plan, err error) {
	defer obs.Time(ctx, "plan.cache.Get")(&err)

	if c.Client == nil {
		return nil, errors.New("plan cache: client is nil")
	}
	if key == "" {
		return nil, errors.New("get plan cache: key must not be empty")
	}

	b, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("get plan cache key=%q: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get plan cache key=%q: %w", key, err)
	}

	var plan domain.Plan
	if err := json.Unmarshal(b, &plan); err != nil {
		return nil, fmt.Errorf("get plan cache key=%q: decode: %w", key, err)
	}
	return &plan, nil
}

// Store a plan for TTL. A zero TTL keeps it until evicted.
func (c *RedisPlanCache) Put(ctx context.Context, key string, plan *domain.Plan) (err error) {
	defer obs.Time(ctx, "plan.cache.Put")(&err)

	if c.Client == nil {
		return errors.New("plan cache: client is nil")
	}
	if key == "" {
		return errors.New("put plan cache: key must not be empty")
	}

	b, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("put plan cache key=%q: encode: %w", key, err)
	}

	if err := c.Client.Set(ctx, key, b, c.TTL).Err(); err != nil {
		return fmt.Errorf("put plan cache key=%q: %w", key, err)
	}
	return nil
}
