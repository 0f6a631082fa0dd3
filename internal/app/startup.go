package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/JaimeStill/superbowl/internal/config"
	"github.com/JaimeStill/superbowl/internal/subusers"
	"github.com/JaimeStill/superbowl/pkg/binder"
	"github.com/JaimeStill/superbowl/pkg/lifecycle"
)

// StartupOrder positions the startup action among other actions.
const StartupOrder = 100

// StartupAction reports the runtime mode and, when seeding on startup is
// configured outside production, seeds the initial account. A seeding
// failure fails startup; a missing setup password only skips the seed.
func StartupAction(rt *Runtime, res *binder.Resolver) lifecycle.Action {
	return lifecycle.Action{
		Name:  "startup",
		Order: StartupOrder,
		Run: func(ctx context.Context) error {
			cfg := rt.Config
			mode := cfg.RuntimeMode()

			rt.Logger.Warn("startup",
				"mode", mode.String(),
				"isDev", cfg.IsDev(),
				"isProd", cfg.IsProd(),
				"isTest", cfg.IsTest(),
			)

			if !cfg.Setup.SeedOnStartup {
				return nil
			}

			switch mode {
			case config.Production:
				rt.Logger.Warn("seed on startup ignored in production")
				return nil
			case config.Development, config.Test:
			}

			setup, err := binder.Get[subusers.System](res, Setup)
			if err != nil {
				return err
			}

			created, err := setup.Setup(ctx)
			if errors.Is(err, subusers.ErrPasswordRequired) {
				rt.Logger.Warn("seed skipped", "reason", err)
				return nil
			}
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			rt.Logger.Info("seed complete", "created", created)
			return nil
		},
	}
}
