package bowls

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/superbowl/pkg/pagination"
	"github.com/JaimeStill/superbowl/pkg/query"
	"github.com/JaimeStill/superbowl/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "bowls"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context) ([]Bowl, error) {
	q, args := query.NewBuilder(projection, defaultSort).Build()
	list, err := repository.QueryMany(ctx, r.db, q, args, scanBowl)
	if err != nil {
		return nil, fmt.Errorf("query bowls: %w", err)
	}
	return list, nil
}

func (r *repo) Portfolio(ctx context.Context, filter PortfolioFilter, page pagination.PageRequest) (*pagination.PageResult[Bowl], error) {
	page.Normalize(r.pagination)

	codes := make([]any, len(filter.StatusCodes))
	for i, c := range filter.StatusCodes {
		codes[i] = c
	}

	qb := query.NewBuilder(projection, defaultSort).
		WhereIn("StatusCode", codes).
		WhereEquals("TimberCode", filter.TimberCode).
		WhereEquals("GeoRegionCode", filter.GeoRegionCode).
		WhereContains("SalesLocation", filter.Location).
		WhereSearch(page.Search, "TimberName", "Comment", "SalesLocation")

	if filter.Year != nil {
		qb.WhereEquals("Year", *filter.Year)
	}
	if filter.Sold != nil {
		qb.WhereEquals("Sold", *filter.Sold)
	}
	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	total, err := repository.QueryScalar[int](ctx, r.db, countSQL, countArgs...)
	if err != nil {
		return nil, fmt.Errorf("count bowls: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	list, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanBowl)
	if err != nil {
		return nil, fmt.Errorf("query bowls: %w", err)
	}

	result := pagination.NewPageResult(list, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Bowl, error) {
	return r.find(ctx, r.db, id)
}

func (r *repo) find(ctx context.Context, q repository.Querier, id int64) (*Bowl, error) {
	sqlText, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)
	b, err := repository.QueryOne(ctx, q, sqlText, args, scanBowl)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &b, nil
}

func (r *repo) MaxIndex(ctx context.Context) (int, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildMax("Index")
	n, err := repository.QueryScalar[int](ctx, r.db, q, args...)
	if err != nil {
		return 0, fmt.Errorf("max bowl index: %w", err)
	}
	return n, nil
}

func (r *repo) MaxOrdinal(ctx context.Context) (int, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildMax("Ordinal")
	n, err := repository.QueryScalar[int](ctx, r.db, q, args...)
	if err != nil {
		return 0, fmt.Errorf("max bowl ordinal: %w", err)
	}
	return n, nil
}

func (r *repo) Register(ctx context.Context, cmd RegisterCommand) (*Bowl, error) {
	insert := `
		INSERT INTO bowls (
			version, idx, ordinal, manufacture_id, status_id, timber_id, timber_origin_id,
			customer_id, exhibition_id, image_name, price,
			sales_price, sales_location, sales_date, comment
		)
		VALUES (0, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`

	b, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (*Bowl, error) {
		id, err := repository.QueryScalar[int64](ctx, tx, insert,
			cmd.Index, cmd.Ordinal, cmd.ManufactureID, cmd.StatusID, cmd.TimberID, cmd.TimberOriginID,
			cmd.CustomerID, cmd.ExhibitionID, cmd.ImageName, cmd.Price,
			nullDecimal(cmd.SalesPrice), cmd.SalesLocation, nullTime(cmd.SalesDate), cmd.Comment,
		)
		if err != nil {
			return nil, err
		}
		return r.find(ctx, tx, id)
	})
	if err != nil {
		return nil, mapWriteError(err)
	}

	r.logger.Info("bowl registered", "id", b.ID, "ordinal", b.Ordinal)
	return b, nil
}

func (r *repo) Edit(ctx context.Context, cmd EditCommand) (*Bowl, error) {
	update := `
		UPDATE bowls
		SET version = version + 1, status_id = $3, timber_origin_id = $4, price = $5, comment = $6
		WHERE id = $1 AND version = $2`

	b, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (*Bowl, error) {
		err := repository.ExecExpectOne(ctx, tx, update,
			cmd.ID, cmd.Version, cmd.StatusID, cmd.TimberOriginID, cmd.Price, cmd.Comment,
		)
		if err != nil {
			return nil, r.versionError(ctx, tx, cmd.ID, err)
		}
		return r.find(ctx, tx, cmd.ID)
	})
	if err != nil {
		return nil, mapWriteError(err)
	}

	r.logger.Info("bowl edited", "id", b.ID, "status", b.StatusCode, "version", b.Version)
	return b, nil
}

func (r *repo) UpdateSales(ctx context.Context, cmd SalesCommand) (*Bowl, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if cmd.CustomerID == nil {
		cmd.SalesPrice = nil
		cmd.SalesLocation = ""
		cmd.SalesDate = nil
	}

	update := `
		UPDATE bowls
		SET version = version + 1, status_id = $3, timber_origin_id = $4, price = $5, comment = $6,
			customer_id = $7, exhibition_id = $8, sales_price = $9, sales_location = $10, sales_date = $11
		WHERE id = $1 AND version = $2`

	b, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (*Bowl, error) {
		err := repository.ExecExpectOne(ctx, tx, update,
			cmd.ID, cmd.Version, cmd.StatusID, cmd.TimberOriginID, cmd.Price, cmd.Comment,
			cmd.CustomerID, cmd.ExhibitionID, nullDecimal(cmd.SalesPrice), cmd.SalesLocation, nullTime(cmd.SalesDate),
		)
		if err != nil {
			return nil, r.versionError(ctx, tx, cmd.ID, err)
		}
		return r.find(ctx, tx, cmd.ID)
	})
	if err != nil {
		return nil, mapWriteError(err)
	}

	r.logger.Info("bowl sales updated", "id", b.ID, "sold", b.Sold, "version", b.Version)
	return b, nil
}

func (r *repo) SetImage(ctx context.Context, id int64, name string) (*Bowl, error) {
	update := `UPDATE bowls SET version = version + 1, image_name = $2 WHERE id = $1`

	b, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (*Bowl, error) {
		if err := repository.ExecExpectOne(ctx, tx, update, id, name); err != nil {
			return nil, err
		}
		return r.find(ctx, tx, id)
	})
	if err != nil {
		return nil, mapWriteError(err)
	}

	r.logger.Info("bowl image set", "id", b.ID, "image", name)
	return b, nil
}

// versionError tells a stale version apart from a missing bowl after an
// update matched no row.
func (r *repo) versionError(ctx context.Context, tx *sql.Tx, id int64, err error) error {
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if _, findErr := r.find(ctx, tx, id); findErr != nil {
		return findErr
	}
	return ErrVersionConflict
}

func mapWriteError(err error) error {
	if repository.IsForeignKeyViolation(err) {
		return ErrInvalidReference
	}
	return repository.MapError(err, ErrNotFound, ErrDuplicate)
}
