package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/superbowl/pkg/lifecycle"
	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

var _ System = (*redisCache)(nil)

// NewRedis creates a Redis-backed cache. Keys are namespaced by cfg.KeyPrefix.
func NewRedis(cfg *Config, logger *slog.Logger) System {
	return &redisCache{
		client: redis.NewClient(&redis.Options{
			Addr:         cfg.Addr,
			Password:     cfg.Password,
			DB:           cfg.DB,
			DialTimeout:  cfg.DialTimeoutDuration(),
			ReadTimeout:  cfg.DialTimeoutDuration(),
			WriteTimeout: cfg.DialTimeoutDuration(),
		}),
		prefix: cfg.KeyPrefix,
		logger: logger.With("system", "cache"),
	}
}

func (c *redisCache) Start(lc *lifecycle.Coordinator) error {
	c.logger.Info("starting cache system", "addr", c.client.Options().Addr)

	if err := c.client.Ping(lc.Context()).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := c.client.Close(); err != nil {
			c.logger.Error("redis close failed", "error", err)
			return
		}
		c.logger.Info("redis connection closed")
	})

	return nil
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}

	if err := c.client.Set(ctx, c.key(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = c.key(k)
	}

	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (c *redisCache) key(k string) string {
	return c.prefix + k
}
