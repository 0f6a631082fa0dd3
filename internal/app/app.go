package app

import (
	"io/fs"

	"github.com/JaimeStill/superbowl/internal/config"
	"github.com/JaimeStill/superbowl/internal/infrastructure"
	"github.com/JaimeStill/superbowl/pkg/binder"
	"github.com/JaimeStill/superbowl/pkg/lifecycle"
	"github.com/JaimeStill/superbowl/pkg/routes"
)

// App is the composed application: resolved bindings, the route table and
// the startup actions. It is built once and is immutable afterwards.
type App struct {
	Runtime  *Runtime
	Resolver *binder.Resolver
	Table    *routes.Table
	Actions  *lifecycle.Actions
}

// New binds every capability, resolves them and declares the routes. Any
// missing binding or conflicting route fails here, before a listener opens.
func New(cfg *config.Config, infra *infrastructure.Infrastructure, files fs.FS) (*App, error) {
	rt := NewRuntime(cfg, infra)

	b, err := Bind(rt)
	if err != nil {
		return nil, err
	}
	res := b.Resolver()

	table, err := BuildRoutes(rt, res, files)
	if err != nil {
		return nil, err
	}

	actions := lifecycle.NewActions()
	if err := actions.Add(StartupAction(rt, res)); err != nil {
		return nil, err
	}

	return &App{
		Runtime:  rt,
		Resolver: res,
		Table:    table,
		Actions:  actions,
	}, nil
}
