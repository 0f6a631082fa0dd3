package customers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/superbowl/pkg/query"
	"github.com/JaimeStill/superbowl/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "customers", "c").
	Project("id", "ID").
	Project("version", "Version").
	Project("idx", "Index").
	Project("salutation", "Salutation").
	Project("graduation", "Graduation").
	Project("given_name", "GivenName").
	Project("family_name", "FamilyName").
	Project("phone", "Phone").
	Project("fax", "Fax").
	Project("mobile", "Mobile").
	Project("email", "Email").
	Project("street", "Street").
	Project("house_number", "HouseNumber").
	Project("zip_code", "ZipCode").
	Project("city", "City").
	Project("country_code", "CountryCode").
	Project("country", "Country").
	Project("comment", "Comment")

var defaultSort = query.SortField{Field: "ID"}

func scanCustomer(s repository.Scanner) (Customer, error) {
	var c Customer
	err := s.Scan(
		&c.ID, &c.Version, &c.Index,
		&c.Salutation, &c.Graduation, &c.GivenName, &c.FamilyName,
		&c.Phone, &c.Fax, &c.Mobile, &c.Email,
		&c.Street, &c.HouseNumber, &c.ZipCode, &c.City,
		&c.CountryCode, &c.Country, &c.Comment,
	)
	return c, err
}

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "customers"),
	}
}

func (r *repo) List(ctx context.Context) ([]Customer, error) {
	q, args := query.NewBuilder(projection, defaultSort).Build()
	list, err := repository.QueryMany(ctx, r.db, q, args, scanCustomer)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	return list, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Customer, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)
	c, err := repository.QueryOne(ctx, r.db, q, args, scanCustomer)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) MaxIndex(ctx context.Context) (int, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildMax("Index")
	n, err := repository.QueryScalar[int](ctx, r.db, q, args...)
	if err != nil {
		return 0, fmt.Errorf("max customer index: %w", err)
	}
	return n, nil
}

func (r *repo) Register(ctx context.Context, cmd RegisterCommand) (*Customer, error) {
	q := `
		INSERT INTO customers (
			version, idx, salutation, graduation, given_name, family_name,
			phone, fax, mobile, email, street, house_number, zip_code, city,
			country_code, country, comment
		)
		VALUES (0, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, version, idx, salutation, graduation, given_name, family_name,
			phone, fax, mobile, email, street, house_number, zip_code, city,
			country_code, country, comment`

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Customer, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			cmd.Index, cmd.Salutation, cmd.Graduation, cmd.GivenName, cmd.FamilyName,
			cmd.Phone, cmd.Fax, cmd.Mobile, cmd.Email,
			cmd.Street, cmd.HouseNumber, cmd.ZipCode, cmd.City,
			cmd.CountryCode, cmd.Country, cmd.Comment,
		}, scanCustomer)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("customer registered", "id", c.ID, "index", c.Index)
	return &c, nil
}
