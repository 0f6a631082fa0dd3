package georegions

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/superbowl/pkg/query"
	"github.com/JaimeStill/superbowl/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "geo_regions", "g").
	Project("id", "ID").
	Project("version", "Version").
	Project("ordinal", "Ordinal").
	Project("idx", "Index").
	Project("code", "Code").
	Project("name", "Name").
	Project("region", "Region")

var defaultSort = query.SortField{Field: "Code"}

func scanGeoRegion(s repository.Scanner) (GeoRegion, error) {
	var g GeoRegion
	err := s.Scan(&g.ID, &g.Version, &g.Ordinal, &g.Index, &g.Code, &g.Name, &g.Region)
	return g, err
}

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "georegions"),
	}
}

func (r *repo) List(ctx context.Context) ([]GeoRegion, error) {
	q, args := query.NewBuilder(projection, defaultSort).Build()
	list, err := repository.QueryMany(ctx, r.db, q, args, scanGeoRegion)
	if err != nil {
		return nil, fmt.Errorf("query geo regions: %w", err)
	}
	return list, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*GeoRegion, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)
	g, err := repository.QueryOne(ctx, r.db, q, args, scanGeoRegion)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &g, nil
}

func (r *repo) FindByCode(ctx context.Context, code string) (*GeoRegion, error) {
	q, args := query.NewBuilder(projection, defaultSort).
		WhereEquals("Code", code).
		Build()

	g, err := repository.QueryOne(ctx, r.db, q, args, scanGeoRegion)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &g, nil
}
