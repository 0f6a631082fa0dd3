// Package infrastructure assembles the shared systems every capability
// provider draws on: lifecycle coordination, logging, the Postgres pool,
// file storage for uploaded images and the cache behind sessions.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/superbowl/internal/config"
	"github.com/JaimeStill/superbowl/migrations"
	"github.com/JaimeStill/superbowl/pkg/cache"
	"github.com/JaimeStill/superbowl/pkg/database"
	"github.com/JaimeStill/superbowl/pkg/lifecycle"
	"github.com/JaimeStill/superbowl/pkg/logging"
	"github.com/JaimeStill/superbowl/pkg/storage"
)

// ServiceName is attached to every log record.
const ServiceName = "superbowl"

// Infrastructure holds the core systems required by all domain packages.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
	Cache     cache.System
}

// New creates an Infrastructure from the application configuration.
// Nothing is connected until Start.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging,
		"service", ServiceName,
		"mode", cfg.RuntimeMode().String(),
	)

	db, err := database.New(&cfg.Database, migrations.FS, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Storage:   store,
		Cache:     cache.New(&cfg.Cache, logger),
	}, nil
}

// Start connects every system and registers its shutdown hook.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.Storage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	if err := i.Cache.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("cache start failed: %w", err)
	}
	return nil
}
