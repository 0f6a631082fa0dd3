// Package roadmaps lists planned and delivered application features.
package roadmaps

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/superbowl/pkg/query"
	"github.com/JaimeStill/superbowl/pkg/repository"
)

type Roadmap struct {
	ID            int64  `json:"id"`
	Feature       string `json:"feature"`
	Status        string `json:"status"`
	Comment       string `json:"comment"`
	VersionNumber string `json:"versionnumber"`
}

type System interface {
	List(ctx context.Context) ([]Roadmap, error)
}

var projection = query.
	NewProjectionMap("public", "roadmaps", "r").
	Project("id", "ID").
	Project("feature", "Feature").
	Project("status", "Status").
	Project("comment", "Comment").
	Project("version_number", "VersionNumber")

func scanRoadmap(s repository.Scanner) (Roadmap, error) {
	var r Roadmap
	err := s.Scan(&r.ID, &r.Feature, &r.Status, &r.Comment, &r.VersionNumber)
	return r, err
}

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "roadmaps"),
	}
}

func (r *repo) List(ctx context.Context) ([]Roadmap, error) {
	q, args := query.NewBuilder(projection, query.SortField{Field: "ID"}).Build()
	list, err := repository.QueryMany(ctx, r.db, q, args, scanRoadmap)
	if err != nil {
		return nil, fmt.Errorf("query roadmap: %w", err)
	}
	return list, nil
}
