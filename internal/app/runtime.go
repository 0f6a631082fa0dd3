// Package app composes the application: it binds every service capability
// to its provider, builds the route table over both URL roots and registers
// the startup action.
package app

import (
	"github.com/JaimeStill/superbowl/internal/config"
	"github.com/JaimeStill/superbowl/internal/infrastructure"
	"github.com/JaimeStill/superbowl/pkg/flow"
	"github.com/JaimeStill/superbowl/pkg/session"
	"github.com/JaimeStill/superbowl/pkg/validation"
)

// Runtime extends Infrastructure with the request-scoped collaborators
// shared by every handler.
type Runtime struct {
	*infrastructure.Infrastructure
	Config    *config.Config
	Sessions  *session.Store
	Validator *validation.Validator
}

// NewRuntime creates the application runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "app"),
			Database:  infra.Database,
			Storage:   infra.Storage,
			Cache:     infra.Cache,
		},
		Config:    cfg,
		Sessions:  session.New(infra.Cache, &cfg.Session),
		Validator: validation.New(),
	}
}

// FlowDeps are the collaborators handed to every registration flow.
func (rt *Runtime) FlowDeps() flow.Deps {
	return flow.Deps{
		Sessions:  rt.Sessions,
		Validator: rt.Validator,
		MaxBody:   rt.Config.Server.MaxBodySizeBytes(),
		Logger:    rt.Logger,
	}
}
