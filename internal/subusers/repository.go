package subusers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/JaimeStill/superbowl/pkg/query"
	"github.com/JaimeStill/superbowl/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "subusers", "u").
	Project("id", "ID").
	Project("version", "Version").
	Project("user_id", "UserID").
	Project("user_name", "UserName").
	Project("email", "Email").
	Project("last_login", "LastLogin").
	Project("last_logout", "LastLogout").
	Project("login_count", "LoginCount").
	Project("locked", "Locked")

func scanSubuser(s repository.Scanner) (Subuser, error) {
	var u Subuser
	err := s.Scan(
		&u.ID, &u.Version, &u.UserID, &u.UserName, &u.Email,
		&u.LastLogin, &u.LastLogout, &u.LoginCount, &u.Locked,
	)
	return u, err
}

type repo struct {
	db      *sql.DB
	account Account
	cost    int
	now     func() time.Time
	logger  *slog.Logger
}

// New creates the Postgres-backed setup system seeding account.
func New(db *sql.DB, account Account, logger *slog.Logger) System {
	return &repo{
		db:      db,
		account: account,
		cost:    bcrypt.DefaultCost,
		now:     time.Now,
		logger:  logger.With("system", "subusers"),
	}
}

func (r *repo) Count(ctx context.Context) (int, error) {
	q, args := query.NewBuilder(projection, query.SortField{Field: "ID"}).BuildCount()
	n, err := repository.QueryScalar[int](ctx, r.db, q, args...)
	if err != nil {
		return 0, fmt.Errorf("count subusers: %w", err)
	}
	return n, nil
}

func (r *repo) List(ctx context.Context) ([]Subuser, error) {
	q, args := query.NewBuilder(projection, query.SortField{Field: "ID"}).Build()
	list, err := repository.QueryMany(ctx, r.db, q, args, scanSubuser)
	if err != nil {
		return nil, fmt.Errorf("query subusers: %w", err)
	}
	return list, nil
}

func (r *repo) Setup(ctx context.Context) (bool, error) {
	if r.account.Password == "" {
		return false, ErrPasswordRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.account.Password), r.cost)
	if err != nil {
		return false, fmt.Errorf("hash setup password: %w", err)
	}

	created, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (bool, error) {
		if _, err := tx.ExecContext(ctx, `LOCK TABLE subusers IN EXCLUSIVE MODE`); err != nil {
			return false, err
		}

		n, err := repository.QueryScalar[int](ctx, tx, `SELECT COUNT(*) FROM subusers`)
		if err != nil {
			return false, err
		}
		if n > 0 {
			return false, nil
		}

		err = repository.ExecExpectOne(ctx, tx, `
			INSERT INTO subusers
				(version, user_id, password_hash, user_name, email, last_login, login_count, locked)
			VALUES (0, $1, $2, $3, $4, $5, 1, false)`,
			r.account.UserID, string(hash), r.account.UserName, r.account.Email,
			r.now().Add(-24*time.Hour),
		)
		return err == nil, err
	})
	if err != nil {
		return false, fmt.Errorf("setup subuser: %w", repository.MapError(err, ErrNotFound, ErrDuplicate))
	}

	if !created {
		r.logger.Debug("setup skipped, subusers exist")
		return false, nil
	}

	r.logger.Info("setup subuser created", "user_id", r.account.UserID)
	return true, nil
}
