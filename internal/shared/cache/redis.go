package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"roadmap-backend/internal/shared/telemetry"
)

// Cache wraps a Redis client with JSON helpers. A nil *Cache is valid
// and every method degrades to a no-op, so callers never have to guard
// for environments without Redis.
type Cache struct {
	client *redis.Client
}

// New dials Redis and returns nil when addr is empty or the server is
// unreachable. Persona and roadmap reads fall through to their source
// of truth in that case.
func New(ctx context.Context, addr, password string) *Cache {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		telemetry.Warn("redis unavailable, caching disabled", map[string]any{"addr": addr, "error": err.Error()})
		_ = client.Close()
		return nil
	}
	return &Cache{client: client}
}

// GetJSON unmarshals the cached value into dest. It returns false on a
// miss, a decode failure, or when the cache is disabled.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			telemetry.Warn("redis get failed", map[string]any{"key": key, "error": err.Error()})
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		telemetry.Warn("redis cached value undecodable", map[string]any{"key": key, "error": err.Error()})
		return false
	}
	return true
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		telemetry.Warn("redis set skipped, value not serializable", map[string]any{"key": key, "error": err.Error()})
		return
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		telemetry.Warn("redis set failed", map[string]any{"key": key, "error": err.Error()})
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		telemetry.Warn("redis delete failed", map[string]any{"keys": keys, "error": err.Error()})
	}
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
