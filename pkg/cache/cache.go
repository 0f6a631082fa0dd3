// Package cache provides a keyed JSON cache with per-entry expiry, backed by
// Redis or, when Redis is disabled, by process memory.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/JaimeStill/superbowl/pkg/lifecycle"
)

// Cache stores JSON-encodable values under string keys.
type Cache interface {
	// Get decodes the value at key into dest and reports whether it was present.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value at key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete removes keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}

// System is a Cache with a lifecycle.
type System interface {
	Cache
	Start(lc *lifecycle.Coordinator) error
}

// New returns a Redis-backed system when cfg.Enabled, otherwise an
// in-memory one.
func New(cfg *Config, logger *slog.Logger) System {
	if cfg.Enabled {
		return NewRedis(cfg, logger)
	}
	logger.With("system", "cache").Info("redis disabled, using in-memory cache", "sweep", cfg.SweepInterval)
	return NewMemory(WithSweep(cfg.SweepDuration()), WithLogger(logger))
}
