package botanics

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/superbowl/pkg/query"
	"github.com/JaimeStill/superbowl/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "botanic_systems", "b").
	Project("id", "ID").
	Project("version", "Version").
	Project("ordinal", "Ordinal").
	Project("order_idx", "OrderIndex").
	Project("family_idx", "FamilyIndex").
	Project("subfamily_idx", "SubFamilyIndex").
	Project("order_name", "Order").
	Project("family", "Family").
	Project("subfamily", "SubFamily")

var defaultSort = query.SortField{Field: "Ordinal"}

func scanBotanicSystem(s repository.Scanner) (BotanicSystem, error) {
	var b BotanicSystem
	err := s.Scan(
		&b.ID, &b.Version, &b.Ordinal,
		&b.OrderIndex, &b.FamilyIndex, &b.SubFamilyIndex,
		&b.Order, &b.Family, &b.SubFamily,
	)
	return b, err
}

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "botanics"),
	}
}

func (r *repo) List(ctx context.Context) ([]BotanicSystem, error) {
	q, args := query.NewBuilder(projection, defaultSort).Build()
	list, err := repository.QueryMany(ctx, r.db, q, args, scanBotanicSystem)
	if err != nil {
		return nil, fmt.Errorf("query botanic systems: %w", err)
	}
	return list, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*BotanicSystem, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)
	b, err := repository.QueryOne(ctx, r.db, q, args, scanBotanicSystem)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &b, nil
}

func (r *repo) MaxOrdinal(ctx context.Context) (int, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildMax("Ordinal")
	n, err := repository.QueryScalar[int](ctx, r.db, q, args...)
	if err != nil {
		return 0, fmt.Errorf("max botanic ordinal: %w", err)
	}
	return n, nil
}

func (r *repo) Register(ctx context.Context, cmd RegisterCommand) (*BotanicSystem, error) {
	q := `
		INSERT INTO botanic_systems
			(version, ordinal, order_idx, family_idx, subfamily_idx, order_name, family, subfamily)
		VALUES (0, $1, $2, $3, $4, $5, $6, $7)
		RETURNING id, version, ordinal, order_idx, family_idx, subfamily_idx, order_name, family, subfamily`

	b, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (BotanicSystem, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			cmd.Ordinal, cmd.OrderIndex, cmd.FamilyIndex, cmd.SubFamilyIndex,
			cmd.Order, cmd.Family, cmd.SubFamily,
		}, scanBotanicSystem)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("botanic system registered", "id", b.ID, "family", b.Family)
	return &b, nil
}
