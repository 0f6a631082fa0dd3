package statuses

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/superbowl/pkg/cache"
	"github.com/JaimeStill/superbowl/pkg/query"
	"github.com/JaimeStill/superbowl/pkg/repository"
)

// CacheKey holds the cached status list.
const CacheKey = "stati"

// CacheTTL is how long the cached list is served before reloading.
const CacheTTL = 30 * time.Minute

type repo struct {
	db     *sql.DB
	cache  cache.Cache
	logger *slog.Logger
}

// New creates the Postgres-backed status system. List results are cached in c.
func New(db *sql.DB, c cache.Cache, logger *slog.Logger) System {
	return &repo{
		db:     db,
		cache:  c,
		logger: logger.With("system", "statuses"),
	}
}

func (r *repo) List(ctx context.Context) ([]Status, error) {
	var cached []Status
	hit, err := r.cache.Get(ctx, CacheKey, &cached)
	if err != nil {
		r.logger.Warn("status cache read failed", "error", err)
	} else if hit {
		return cached, nil
	}

	q, args := query.NewBuilder(projection, defaultSort).Build()
	list, err := repository.QueryMany(ctx, r.db, q, args, scanStatus)
	if err != nil {
		return nil, fmt.Errorf("query statuses: %w", err)
	}

	if err := r.cache.Set(ctx, CacheKey, list, CacheTTL); err != nil {
		r.logger.Warn("status cache write failed", "error", err)
	}
	return list, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Status, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)
	st, err := repository.QueryOne(ctx, r.db, q, args, scanStatus)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &st, nil
}

func (r *repo) FindByCode(ctx context.Context, code string) (*Status, error) {
	q, args := query.NewBuilder(projection, defaultSort).
		WhereEquals("Code", code).
		Build()

	st, err := repository.QueryOne(ctx, r.db, q, args, scanStatus)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &st, nil
}

func (r *repo) MaxIndex(ctx context.Context) (int, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildMax("Index")
	n, err := repository.QueryScalar[int](ctx, r.db, q, args...)
	if err != nil {
		return 0, fmt.Errorf("max status index: %w", err)
	}
	return n, nil
}

func (r *repo) Register(ctx context.Context, cmd RegisterCommand) (*Status, error) {
	q := `
		INSERT INTO statuses (version, idx, code, text, comment)
		VALUES (0, $1, $2, $3, $4)
		RETURNING ` + returning

	st, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Status, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.Index, cmd.Code, cmd.Text, cmd.Comment}, scanStatus)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if err := r.cache.Delete(ctx, CacheKey); err != nil {
		r.logger.Warn("status cache invalidation failed", "error", err)
	}

	r.logger.Info("status registered", "id", st.ID, "code", st.Code)
	return &st, nil
}
