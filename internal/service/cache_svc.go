package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Cached views are cheap to recompute, so TTLs are short; correctness comes
// from explicit invalidation in the same code path as every mutation.
const (
	overlapCacheTTL = 2 * time.Minute
	headerCacheTTL  = 15 * time.Minute

	overlapCacheKey = "overlap"
	headerCacheKey  = "header"
)

// CacheService is a Redis cache-aside layer for the aggregated overlap view
// and the header message. With no Redis configured every operation is a
// no-op and reads fall through to Postgres.
type CacheService struct {
	rdb    *redis.Client
	hits   prometheus.Counter
	misses prometheus.Counter
}

// NewCacheService connects to Redis. An empty URL or a failed connection
// disables caching instead of failing startup.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Info().Msg("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Str("url", redisURL).Msg("redis: invalid URL, caching disabled")
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis: connection failed, caching disabled")
		return &CacheService{}
	}

	log.Info().Msg("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// SetCounters wires the hit/miss collectors once metrics are registered.
func (c *CacheService) SetCounters(hits, misses prometheus.Counter) {
	c.hits = hits
	c.misses = misses
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetOverlap returns the cached aggregated results, or nil on a miss.
func (c *CacheService) GetOverlap(ctx context.Context) ([]byte, error) {
	return c.get(ctx, overlapCacheKey)
}

// SetOverlap stores the aggregated results.
func (c *CacheService) SetOverlap(ctx context.Context, data interface{}) error {
	return c.set(ctx, overlapCacheKey, data, overlapCacheTTL)
}

// InvalidateOverlap drops the aggregated results. Called by every operation
// that changes submissions, so a stale tally is never served past the
// mutation that outdated it.
func (c *CacheService) InvalidateOverlap(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, overlapCacheKey).Err()
}

// GetHeader returns the cached header message, or nil on a miss.
func (c *CacheService) GetHeader(ctx context.Context) ([]byte, error) {
	return c.get(ctx, headerCacheKey)
}

// SetHeader stores the header message.
func (c *CacheService) SetHeader(ctx context.Context, data interface{}) error {
	return c.set(ctx, headerCacheKey, data, headerCacheTTL)
}

// InvalidateHeader drops the cached header after an admin rewrite.
func (c *CacheService) InvalidateHeader(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, headerCacheKey).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func (c *CacheService) get(ctx context.Context, key string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		if c.misses != nil {
			c.misses.Inc()
		}
		return nil, nil
	}
	if err == nil && c.hits != nil {
		c.hits.Inc()
	}
	return data, err
}

func (c *CacheService) set(ctx context.Context, key string, data interface{}, ttl time.Duration) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, ttl).Err()
}
