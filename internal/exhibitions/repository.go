package exhibitions

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/superbowl/pkg/query"
	"github.com/JaimeStill/superbowl/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "exhibitions", "e").
	Project("id", "ID").
	Project("version", "Version").
	Project("idx", "Index").
	Project("name", "Name").
	Project("institution", "Institution").
	Project("year", "Year").
	Project("date_from", "DateFrom").
	Project("date_to", "DateTo").
	Project("city", "City").
	Project("country", "Country").
	Project("comment", "Comment")

var defaultSort = query.SortField{Field: "ID"}

func scanExhibition(s repository.Scanner) (Exhibition, error) {
	var e Exhibition
	err := s.Scan(
		&e.ID, &e.Version, &e.Index, &e.Name, &e.Institution, &e.Year,
		&e.DateFrom, &e.DateTo, &e.City, &e.Country, &e.Comment,
	)
	return e, err
}

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "exhibitions"),
	}
}

func (r *repo) List(ctx context.Context) ([]Exhibition, error) {
	q, args := query.NewBuilder(projection, defaultSort).Build()
	list, err := repository.QueryMany(ctx, r.db, q, args, scanExhibition)
	if err != nil {
		return nil, fmt.Errorf("query exhibitions: %w", err)
	}
	return list, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Exhibition, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)
	e, err := repository.QueryOne(ctx, r.db, q, args, scanExhibition)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &e, nil
}

func (r *repo) MaxIndex(ctx context.Context) (int, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildMax("Index")
	n, err := repository.QueryScalar[int](ctx, r.db, q, args...)
	if err != nil {
		return 0, fmt.Errorf("max exhibition index: %w", err)
	}
	return n, nil
}

func (r *repo) Register(ctx context.Context, cmd RegisterCommand) (*Exhibition, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `
		INSERT INTO exhibitions
			(version, idx, name, institution, year, date_from, date_to, city, country, comment)
		VALUES (0, $1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, version, idx, name, institution, year, date_from, date_to, city, country, comment`

	e, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Exhibition, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			cmd.Index, cmd.Name, cmd.Institution, cmd.Year,
			cmd.DateFrom, cmd.DateTo, cmd.City, cmd.Country, cmd.Comment,
		}, scanExhibition)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("exhibition registered", "id", e.ID, "name", e.Name)
	return &e, nil
}
