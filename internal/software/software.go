// Package software lists the third-party software the application is
// built with.
package software

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/superbowl/pkg/query"
	"github.com/JaimeStill/superbowl/pkg/repository"
)

type Software struct {
	ID            int64  `json:"id"`
	Vendor        string `json:"vendor"`
	Name          string `json:"name"`
	URL           string `json:"url"`
	VersionNumber string `json:"versionnumber"`
	Type          string `json:"type"`
	Description   string `json:"description"`
}

type System interface {
	List(ctx context.Context) ([]Software, error)
}

var projection = query.
	NewProjectionMap("public", "software", "sw").
	Project("id", "ID").
	Project("vendor", "Vendor").
	Project("name", "Name").
	Project("url", "URL").
	Project("version_number", "VersionNumber").
	Project("type", "Type").
	Project("description", "Description")

func scanSoftware(s repository.Scanner) (Software, error) {
	var sw Software
	err := s.Scan(&sw.ID, &sw.Vendor, &sw.Name, &sw.URL, &sw.VersionNumber, &sw.Type, &sw.Description)
	return sw, err
}

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "software"),
	}
}

func (r *repo) List(ctx context.Context) ([]Software, error) {
	q, args := query.NewBuilder(projection, query.SortField{Field: "ID"}).Build()
	list, err := repository.QueryMany(ctx, r.db, q, args, scanSoftware)
	if err != nil {
		return nil, fmt.Errorf("query software: %w", err)
	}
	return list, nil
}
