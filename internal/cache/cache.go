// Package cache implements the services.Cache contract on Redis. Every
// failure path degrades to a cache miss: an unreachable Redis slows
// requests down, it never fails them.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache memoizes string payloads with a TTL.
type RedisCache struct {
	rdb    *redis.Client
	logger *slog.Logger
}

// New creates a Redis-backed cache and verifies the connection with a PING.
func New(addr, password string, db int) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisCache{
		rdb:    rdb,
		logger: slog.Default().With("component", "cache"),
	}, nil
}

// Get returns the cached value for key. Backend errors are logged and
// reported as a miss.
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache get failed", "key", key, "error", err)
		}
		return "", false
	}
	return value, true
}

// Set stores value under key with the given TTL. Backend errors are logged
// and otherwise ignored.
func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", "key", key, "error", err)
	}
}

// Close closes the underlying Redis connection.
func (c *RedisCache) Close() error {
	return c.rdb.Close()
}
