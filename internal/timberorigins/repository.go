package timberorigins

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/superbowl/pkg/repository"
)

const selectOrigins = `
	SELECT o.id, o.version, o.timber_id, t.code, o.idx, o.city, o.location,
		o.location_text, o.cutdown, o.comment
	FROM public.timber_origins o
	JOIN public.timbers t ON t.id = o.timber_id`

func scanOrigin(s repository.Scanner) (TimberOrigin, error) {
	var o TimberOrigin
	err := s.Scan(
		&o.ID, &o.Version, &o.TimberID, &o.TimberCode, &o.Index,
		&o.City, &o.Location, &o.LocationText, &o.Cutdown, &o.Comment,
	)
	return o, err
}

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "timberorigins"),
	}
}

func (r *repo) List(ctx context.Context) ([]TimberOrigin, error) {
	list, err := repository.QueryMany(ctx, r.db, selectOrigins+` ORDER BY o.id`, nil, scanOrigin)
	if err != nil {
		return nil, fmt.Errorf("query timber origins: %w", err)
	}
	return list, nil
}

func (r *repo) ListByTimber(ctx context.Context, timberID int64) ([]TimberOrigin, error) {
	q := selectOrigins + ` WHERE o.timber_id = $1 ORDER BY o.id`
	list, err := repository.QueryMany(ctx, r.db, q, []any{timberID}, scanOrigin)
	if err != nil {
		return nil, fmt.Errorf("query origins of timber %d: %w", timberID, err)
	}
	return list, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*TimberOrigin, error) {
	o, err := repository.QueryOne(ctx, r.db, selectOrigins+` WHERE o.id = $1`, []any{id}, scanOrigin)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &o, nil
}

func (r *repo) MaxIndex(ctx context.Context) (int, error) {
	n, err := repository.QueryScalar[int](ctx, r.db, `SELECT COALESCE(MAX(idx), 0) FROM public.timber_origins`)
	if err != nil {
		return 0, fmt.Errorf("max timber origin index: %w", err)
	}
	return n, nil
}

func (r *repo) Register(ctx context.Context, cmd RegisterCommand) (*TimberOrigin, error) {
	insert := `
		INSERT INTO timber_origins
			(version, timber_id, idx, city, location, location_text, cutdown, comment)
		VALUES (0, $1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	id, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (int64, error) {
		return repository.QueryScalar[int64](ctx, tx, insert,
			cmd.TimberID, cmd.Index, cmd.City, cmd.Location,
			cmd.LocationText, cmd.Cutdown, cmd.Comment,
		)
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, ErrUnknownTimber
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("timber origin registered", "id", id, "timber_id", cmd.TimberID)
	return r.Find(ctx, id)
}
