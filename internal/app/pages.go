package app

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/superbowl/internal/partners"
	"github.com/JaimeStill/superbowl/internal/roadmaps"
	"github.com/JaimeStill/superbowl/internal/settings"
	"github.com/JaimeStill/superbowl/internal/software"
	"github.com/JaimeStill/superbowl/internal/subusers"
	"github.com/JaimeStill/superbowl/pkg/handlers"
	"github.com/JaimeStill/superbowl/pkg/routes"
	"github.com/JaimeStill/superbowl/pkg/session"
)

// ApplicationController owns the landing, info and list pages.
const ApplicationController = "ApplicationController"

// Page describes an info page. Rendering is left to the client.
type Page struct {
	Name    string `json:"page"`
	Title   string `json:"title"`
	Version string `json:"version"`
}

// Pages serves the application pages and the setup action.
type Pages struct {
	roadmaps roadmaps.System
	software software.System
	settings settings.System
	partners partners.System
	setup    subusers.System
	sessions *session.Store
	version  string
	logger   *slog.Logger
}

func NewPages(
	roadmapSys roadmaps.System,
	softwareSys software.System,
	settingSys settings.System,
	partnerSys partners.System,
	setupSys subusers.System,
	sessions *session.Store,
	version string,
	logger *slog.Logger,
) *Pages {
	return &Pages{
		roadmaps: roadmapSys,
		software: softwareSys,
		settings: settingSys,
		partners: partnerSys,
		setup:    setupSys,
		sessions: sessions,
		version:  version,
		logger:   logger.With("handler", "pages"),
	}
}

func (p *Pages) Routes() routes.Group {
	return routes.Group{
		Capability:  ApplicationController,
		Tags:        []string{"Application"},
		Description: "Landing, information and reference pages",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/", Action: "index", Handler: p.info("index", "Superbowl")},
			{Method: "GET", Pattern: "/exhibitions", Action: "exhibitions", Handler: p.info("exhibitions", "Exhibitions")},
			{Method: "GET", Pattern: "/events", Action: "events", Handler: p.info("events", "Events")},
			{Method: "GET", Pattern: "/news", Action: "news", Handler: p.info("news", "News")},
			{Method: "GET", Pattern: "/partners", Action: "partners", Handler: p.Partners},
			{Method: "GET", Pattern: "/profile", Action: "profile", Handler: p.info("profile", "Profile")},
			{Method: "GET", Pattern: "/roadmap", Action: "roadmap", Handler: p.Roadmap},
			{Method: "GET", Pattern: "/settings", Action: "settings", Handler: p.Settings},
			{Method: "GET", Pattern: "/software", Action: "software", Handler: p.Software},
			{Method: "GET", Pattern: "/specification", Action: "specification", Handler: p.info("specification", "Specification")},
			{Method: "GET", Pattern: "/login", Action: "login", Handler: p.info("login", "Login")},
		},
	}
}

// SetupRoutes is the diagnostic group registered outside production.
func (p *Pages) SetupRoutes() routes.Group {
	return routes.Group{
		Capability:  ApplicationController,
		Tags:        []string{"Application"},
		Description: "Initial data setup",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/setup", Action: "setup", Handler: p.Setup},
		},
	}
}

func (p *Pages) info(name, title string) http.HandlerFunc {
	page := Page{Name: name, Title: title, Version: p.version}
	return func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, page)
	}
}

func (p *Pages) Partners(w http.ResponseWriter, r *http.Request) {
	list, err := p.partners.List(r.Context())
	if err != nil {
		handlers.RespondError(w, p.logger, http.StatusInternalServerError, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]any{"partners": list})
}

func (p *Pages) Roadmap(w http.ResponseWriter, r *http.Request) {
	p.clear(r)

	list, err := p.roadmaps.List(r.Context())
	if err != nil {
		handlers.RespondError(w, p.logger, http.StatusInternalServerError, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]any{"roadmaps": list})
}

func (p *Pages) Settings(w http.ResponseWriter, r *http.Request) {
	p.clear(r)

	list, err := p.settings.List(r.Context())
	if err != nil {
		handlers.RespondError(w, p.logger, http.StatusInternalServerError, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]any{"settings": list})
}

func (p *Pages) Software(w http.ResponseWriter, r *http.Request) {
	p.clear(r)

	list, err := p.software.List(r.Context())
	if err != nil {
		handlers.RespondError(w, p.logger, http.StatusInternalServerError, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]any{"softwares": list})
}

// Setup seeds the initial account when none exists.
func (p *Pages) Setup(w http.ResponseWriter, r *http.Request) {
	created, err := p.setup.Setup(r.Context())
	if err != nil {
		handlers.RespondError(w, p.logger, subusers.MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"created": created})
}

func (p *Pages) clear(r *http.Request) {
	if err := p.sessions.Clear(r); err != nil {
		p.logger.Warn("clear session", "error", err)
	}
}
