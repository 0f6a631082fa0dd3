// Package main provides the seed command for populating the reference
// tables and the first subuser. Seeders run individually or together
// within a single transaction.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Seeder populates the rows of one domain.
type Seeder interface {
	Name() string
	Description() string

	// Seed must be idempotent: existing rows are left in place.
	Seed(ctx context.Context, tx *sql.Tx) error
}

var seeders = map[string]Seeder{}

// registerSeeder adds a seeder to the registry. Seeders self-register
// via init functions.
func registerSeeder(s Seeder) {
	seeders[s.Name()] = s
}

func getSeeder(name string) (Seeder, bool) {
	s, ok := seeders[name]
	return s, ok
}

// listSeeders returns the registered seeders sorted by name.
func listSeeders() []Seeder {
	result := make([]Seeder, 0, len(seeders))
	for _, s := range seeders {
		result = append(result, s)
	}
	slices.SortFunc(result, func(a, b Seeder) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return result
}

// resolveSeeders maps names to seeders, failing on the first unknown name.
func resolveSeeders(names []string) ([]Seeder, error) {
	result := make([]Seeder, 0, len(names))
	for _, name := range names {
		s, ok := getSeeder(name)
		if !ok {
			return nil, fmt.Errorf("seeder not found: %s", name)
		}
		result = append(result, s)
	}
	return result, nil
}

// runSeeders executes list within one transaction. Any failure rolls
// back every seeder in the run.
func runSeeders(ctx context.Context, db *sql.DB, list []Seeder, logger *slog.Logger) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	for _, s := range list {
		if err := s.Seed(ctx, tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		logger.Info("seeder applied", "seeder", s.Name())
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
