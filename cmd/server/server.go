package main

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/JaimeStill/superbowl/internal/app"
	"github.com/JaimeStill/superbowl/internal/config"
	"github.com/JaimeStill/superbowl/internal/infrastructure"
	"github.com/JaimeStill/superbowl/web"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra   *infrastructure.Infrastructure
	app     *app.App
	limiter *rateLimit
	http    *httpServer
}

// NewServer composes the application. Binding and route errors are
// returned here so the process exits before listening.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	application, err := app.New(cfg, infra, web.Static())
	if err != nil {
		return nil, fmt.Errorf("compose application: %w", err)
	}

	reg := prometheus.NewRegistry()
	router, err := buildRouter(application, reg)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(application, cfg)
	if err != nil {
		return nil, err
	}
	modules.Mount(router)

	mw, limiter, err := buildMiddleware(infra, reg, cfg)
	if err != nil {
		return nil, err
	}

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"mode", cfg.RuntimeMode().String(),
		"routes", len(application.Table.Entries()),
	)

	return &Server{
		infra:   infra,
		app:     application,
		limiter: limiter,
		http:    newHTTPServer(&cfg.Server, mw.Apply(router), infra.Logger),
	}, nil
}

// Start connects infrastructure, runs the startup actions and only then
// opens the listener and reports ready.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting server")

	if err := s.infra.Start(); err != nil {
		return err
	}
	if err := s.app.Actions.Run(s.infra.Lifecycle.Context()); err != nil {
		return err
	}

	if s.limiter != nil {
		s.limiter.Start(s.infra.Lifecycle)
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	s.infra.Lifecycle.WaitForStartup()
	s.infra.Logger.Info("all subsystems ready")
	return nil
}

// Shutdown stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
