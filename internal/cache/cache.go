package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"marina/internal/events"
)

// Cache is an optional Redis-backed read cache. A nil client disables it,
// so callers never have to branch on whether caching is configured.
type Cache struct {
	redis  *redis.Client
	ttl    time.Duration
	logger *zerolog.Logger
}

func New(client *redis.Client, ttl time.Duration, logger *zerolog.Logger) *Cache {
	return &Cache{redis: client, ttl: ttl, logger: logger}
}

// Read unmarshals the cached value for key into out. Returns false on
// miss, disabled cache, or decode failure.
func (c *Cache) Read(ctx context.Context, key string, out any) bool {
	if c == nil || c.redis == nil || c.ttl <= 0 {
		return false
	}
	val, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false
	}
	return true
}

// Write stores val under key with the cache TTL. Failures are logged and
// swallowed; the cache is never load-bearing.
func (c *Cache) Write(ctx context.Context, key string, val any) {
	if c == nil || c.redis == nil || c.ttl <= 0 {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil && c.logger != nil {
		c.logger.Debug().Err(err).Str("key", key).Msg("Cache write failed")
	}
}

// InvalidatePrefix drops every key matching prefix*.
func (c *Cache) InvalidatePrefix(ctx context.Context, prefix string) {
	if c == nil || c.redis == nil {
		return
	}
	keys, err := c.redis.Keys(ctx, prefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := c.redis.Del(ctx, keys...).Err(); err != nil && c.logger != nil {
		c.logger.Debug().Err(err).Str("prefix", prefix).Msg("Cache invalidation failed")
	}
}

// CalendarKey is the cache key for one rendered calendar month.
func CalendarKey(month string) string {
	return "calendar:" + month
}

// SubscribeInvalidation wires the cache to the event bus so calendar
// months are dropped whenever reservations change.
func (c *Cache) SubscribeInvalidation(bus *events.Bus) {
	if c == nil || c.redis == nil {
		return
	}
	bus.Subscribe(events.ReservationsChanged, func(events.Event) {
		c.InvalidatePrefix(context.Background(), "calendar:")
	})
}

// Ping reports whether the backing Redis is reachable.
func (c *Cache) Ping(ctx context.Context) error {
	if c == nil || c.redis == nil {
		return nil
	}
	return c.redis.Ping(ctx).Err()
}
