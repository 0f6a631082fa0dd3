package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JaimeStill/superbowl/internal/app"
	"github.com/JaimeStill/superbowl/internal/config"
	"github.com/JaimeStill/superbowl/pkg/middleware"
	"github.com/JaimeStill/superbowl/pkg/module"
	"github.com/JaimeStill/superbowl/pkg/openapi"
	"github.com/JaimeStill/superbowl/web/docs"
)

type Modules struct {
	Docs *module.Module
}

// NewModules builds the documentation module from the route table.
func NewModules(application *app.App, cfg *config.Config) (*Modules, error) {
	spec := cfg.OpenAPI.Document(cfg.Version)
	application.Table.AddToSpec(spec)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}

	docsModule := module.New("/docs", docs.NewHandler(specBytes).Mux())
	docsModule.Use(middleware.AddSlash())

	return &Modules{Docs: docsModule}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.Docs)
}

// buildRouter registers the application table on the native mux beside
// the operational endpoints.
func buildRouter(application *app.App, reg *prometheus.Registry) (*module.Router, error) {
	router := module.NewRouter()
	lc := application.Runtime.Lifecycle

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !lc.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	router.Native().Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	if err := application.Table.Register(router.Native()); err != nil {
		return nil, err
	}
	return router, nil
}
