package main

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed seeds/*.json
var seedFiles embed.FS

func init() {
	registerSeeder(&referenceSeeder[statusRow]{
		name:        "statuses",
		description: "Seeds the bowl workflow states",
		file:        "seeds/statuses.json",
		insert: `
			INSERT INTO statuses (version, idx, code, text, comment)
			VALUES (0, $1, $2, $3, $4)
			ON CONFLICT (code) DO NOTHING`,
		args: func(r statusRow) []any { return []any{r.Index, r.Code, r.Text, r.Comment} },
	})

	registerSeeder(&referenceSeeder[geoRegionRow]{
		name:        "georegions",
		description: "Seeds the geographic regions timber comes from",
		file:        "seeds/georegions.json",
		insert: `
			INSERT INTO geo_regions (version, ordinal, idx, code, name, region)
			VALUES (0, $1, $2, $3, $4, $5)
			ON CONFLICT (code) DO NOTHING`,
		args: func(r geoRegionRow) []any { return []any{r.Ordinal, r.Index, r.Code, r.Name, r.Region} },
	})

	registerSeeder(&referenceSeeder[modStepRow]{
		name:        "modsteps",
		description: "Seeds the bowl modification steps",
		file:        "seeds/modsteps.json",
		insert: `
			INSERT INTO bowl_mod_steps (idx, code, name, comment)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (code) DO NOTHING`,
		args: func(r modStepRow) []any { return []any{r.Index, r.Code, r.Name, r.Comment} },
	})
}

type statusRow struct {
	Index   int    `json:"idx"`
	Code    string `json:"code"`
	Text    string `json:"text"`
	Comment string `json:"comment"`
}

type geoRegionRow struct {
	Ordinal int    `json:"ordinal"`
	Index   int    `json:"idx"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Region  string `json:"region"`
}

type modStepRow struct {
	Index   int    `json:"idx"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Comment string `json:"comment"`
}

// referenceSeeder inserts the rows of an embedded JSON file, skipping rows
// whose unique code already exists.
type referenceSeeder[T any] struct {
	name        string
	description string
	file        string
	insert      string
	args        func(T) []any
}

func (s *referenceSeeder[T]) Name() string        { return s.name }
func (s *referenceSeeder[T]) Description() string { return s.description }

func (s *referenceSeeder[T]) Seed(ctx context.Context, tx *sql.Tx) error {
	rows, err := s.load()
	if err != nil {
		return err
	}

	for i, row := range rows {
		if _, err := tx.ExecContext(ctx, s.insert, s.args(row)...); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}

func (s *referenceSeeder[T]) load() ([]T, error) {
	content, err := seedFiles.ReadFile(s.file)
	if err != nil {
		return nil, fmt.Errorf("read embedded seed file: %w", err)
	}

	var rows []T
	if err := json.Unmarshal(content, &rows); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return rows, nil
}
