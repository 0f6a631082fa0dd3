// Package settings exposes the stored application parameters.
package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/superbowl/pkg/query"
	"github.com/JaimeStill/superbowl/pkg/repository"
)

var ErrNotFound = errors.New("setting not found")

type Setting struct {
	ID         int64  `json:"id"`
	ParamName  string `json:"paramName"`
	ParamValue string `json:"paramValue"`
	Comment    string `json:"comment"`
}

type System interface {
	List(ctx context.Context) ([]Setting, error)
	// Value returns the value of the named parameter.
	Value(ctx context.Context, name string) (string, error)
}

var projection = query.
	NewProjectionMap("public", "settings", "st").
	Project("id", "ID").
	Project("param_name", "ParamName").
	Project("param_value", "ParamValue").
	Project("comment", "Comment")

var defaultSort = query.SortField{Field: "ID"}

func scanSetting(s repository.Scanner) (Setting, error) {
	var st Setting
	err := s.Scan(&st.ID, &st.ParamName, &st.ParamValue, &st.Comment)
	return st, err
}

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "settings"),
	}
}

func (r *repo) List(ctx context.Context) ([]Setting, error) {
	q, args := query.NewBuilder(projection, defaultSort).Build()
	list, err := repository.QueryMany(ctx, r.db, q, args, scanSetting)
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}
	return list, nil
}

func (r *repo) Value(ctx context.Context, name string) (string, error) {
	q, args := query.NewBuilder(projection, defaultSort).
		WhereEquals("ParamName", name).
		Build()

	st, err := repository.QueryOne(ctx, r.db, q, args, scanSetting)
	if err != nil {
		return "", repository.MapError(err, ErrNotFound, ErrNotFound)
	}
	return st.ParamValue, nil
}
