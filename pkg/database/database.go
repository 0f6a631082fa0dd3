// Package database owns the Postgres connection pool: opening it through the
// pgx stdlib driver, verifying connectivity at startup, applying schema
// migrations, and closing it on shutdown.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/JaimeStill/superbowl/pkg/lifecycle"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrNotReady is returned when the database cannot be reached at startup.
var ErrNotReady = errors.New("database not ready")

// System exposes the shared connection pool.
type System interface {
	Connection() *sql.DB
	Start(lc *lifecycle.Coordinator) error
}

type database struct {
	db         *sql.DB
	cfg        *Config
	migrations fs.FS
	logger     *slog.Logger
}

// New opens a pool for cfg. No connection is made until Start.
// When migrations is non-nil and cfg.AutoMigrate is set, Start applies them.
func New(cfg *Config, migrations fs.FS, logger *slog.Logger) (System, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Lifetime())

	return &database{
		db:         db,
		cfg:        cfg,
		migrations: migrations,
		logger:     logger.With("system", "database"),
	}, nil
}

// FromDB wraps an existing pool, such as one opened by sqlmock.
func FromDB(db *sql.DB, logger *slog.Logger) System {
	return &database{
		db:     db,
		cfg:    &Config{},
		logger: logger.With("system", "database"),
	}
}

func (d *database) Connection() *sql.DB {
	return d.db
}

// Start verifies connectivity and applies migrations before returning, so
// domain systems never observe an unreachable or unmigrated store. The pool
// is closed when the coordinator shuts down.
func (d *database) Start(lc *lifecycle.Coordinator) error {
	d.logger.Info("starting database system", "host", d.cfg.Host, "name", d.cfg.Name)

	ctx, cancel := context.WithTimeout(lc.Context(), d.cfg.Timeout())
	defer cancel()

	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrNotReady, err)
	}

	if d.cfg.AutoMigrate && d.migrations != nil {
		if err := Migrate(d.cfg.Dsn(), d.migrations, d.logger); err != nil {
			return err
		}
	}

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := d.db.Close(); err != nil {
			d.logger.Error("database close failed", "error", err)
			return
		}
		d.logger.Info("database connection closed")
	})

	return nil
}
