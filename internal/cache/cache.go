// Package cache stores computed dashboard payloads in redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/tastyhub/dashboard-manager/internal/dependency"
)

const keyPattern = "dashboard:*"

// Config configures the redis connection. An empty Addr disables caching.
type Config struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to redis. When c.Addr is empty caching is disabled and New
// returns a nil cache; callers treat nil as "no cache".
func New(ctx context.Context, c *Config) (dependency.Cache, error) {
	if c == nil || c.Addr == "" {
		slog.Default().InfoContext(ctx, "dashboard cache disabled")
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("can't ping redis at %s: %w", c.Addr, err)
	}
	return NewWithClient(rdb, c.TTL), nil
}

// NewWithClient wraps an existing client. A zero ttl falls back to one minute.
func NewWithClient(rdb *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

// Get decodes the value stored under key into dst. A miss is (false, nil).
func (c *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("can't get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("can't decode %s: %w", key, err)
	}
	return true, nil
}

func (c *Cache) Set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("can't encode %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("can't set %s: %w", key, err)
	}
	return nil
}

// Invalidate drops every cached dashboard payload.
func (c *Cache) Invalidate(ctx context.Context) error {
	keys, err := c.rdb.Keys(ctx, keyPattern).Result()
	if err != nil {
		return fmt.Errorf("can't list cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("can't delete cache keys: %w", err)
	}
	slog.Default().DebugContext(ctx, "dashboard cache invalidated",
		slog.Int("keys", len(keys)),
	)
	return nil
}

func (c *Cache) Close() error {
	return c.rdb.Close()
}
