package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/JaimeStill/superbowl/internal/config"
	"github.com/JaimeStill/superbowl/internal/infrastructure"
	"github.com/JaimeStill/superbowl/internal/subusers"
	"github.com/JaimeStill/superbowl/pkg/logging"
)

const EnvDatabaseDSN = "DATABASE_DSN"

func main() {
	var (
		dsn   = flag.String("dsn", "", "Database connection string (defaults to the configured database)")
		all   = flag.Bool("all", false, "Run all seeders")
		seeds = flag.String("seeds", "", "Comma-separated seeders to run")
		list  = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	var names []string
	switch {
	case *all:
		for _, s := range listSeeders() {
			names = append(names, s.Name())
		}
	case *seeds != "":
		for _, name := range strings.Split(*seeds, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	default:
		fmt.Println("usage: seed [-dsn <connection-string>] [-all|-seeds a,b] [-list]")
		flag.PrintDefaults()
		return
	}

	selected, err := resolveSeeders(names)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "env file ignored:", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config load failed:", err)
		os.Exit(1)
	}

	logger := logging.New(&cfg.Logging, "service", infrastructure.ServiceName, "command", "seed")
	fatal := func(msg string, err error) {
		logger.Error(msg, "error", err)
		os.Exit(1)
	}

	if s, ok := getSeeder("subusers"); ok {
		s.(*SubuserSeeder).SetAccount(subusers.Account{
			UserID:   cfg.Setup.UserID,
			UserName: cfg.Setup.UserName,
			Email:    cfg.Setup.Email,
			Password: cfg.Setup.Password,
		})
	}

	if *dsn == "" {
		*dsn = os.Getenv(EnvDatabaseDSN)
	}
	if *dsn == "" {
		*dsn = cfg.Database.Dsn()
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		fatal("open database", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		fatal("connect to database", err)
	}

	if err := runSeeders(ctx, db, selected, logger); err != nil {
		fatal("seeding failed", err)
	}
	logger.Info("seeding complete", "seeders", strings.Join(names, ","))
}
