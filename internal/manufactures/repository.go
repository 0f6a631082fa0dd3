package manufactures

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/superbowl/pkg/query"
	"github.com/JaimeStill/superbowl/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "manufactures", "m").
	Project("id", "ID").
	Project("version", "Version").
	Project("idx", "Index").
	Project("year", "Year")

var defaultSort = query.SortField{Field: "Year"}

func scanManufacture(s repository.Scanner) (Manufacture, error) {
	var m Manufacture
	err := s.Scan(&m.ID, &m.Version, &m.Index, &m.Year)
	return m, err
}

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "manufactures"),
	}
}

func (r *repo) List(ctx context.Context) ([]Manufacture, error) {
	q, args := query.NewBuilder(projection, defaultSort).Build()
	list, err := repository.QueryMany(ctx, r.db, q, args, scanManufacture)
	if err != nil {
		return nil, fmt.Errorf("query manufactures: %w", err)
	}
	return list, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Manufacture, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)
	m, err := repository.QueryOne(ctx, r.db, q, args, scanManufacture)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &m, nil
}

func (r *repo) FindByYear(ctx context.Context, year int) (*Manufacture, error) {
	q, args := query.NewBuilder(projection, defaultSort).
		WhereEquals("Year", year).
		Build()

	m, err := repository.QueryOne(ctx, r.db, q, args, scanManufacture)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &m, nil
}

func (r *repo) Register(ctx context.Context, year int) (*Manufacture, error) {
	existing, err := r.FindByYear(ctx, year)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	q := `
		INSERT INTO manufactures (version, idx, year)
		VALUES (0, (SELECT COALESCE(MAX(idx), 0) + 1 FROM manufactures), $1)
		RETURNING id, version, idx, year`

	m, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Manufacture, error) {
		return repository.QueryOne(ctx, tx, q, []any{year}, scanManufacture)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("manufacture registered", "id", m.ID, "year", m.Year)
	return &m, nil
}
