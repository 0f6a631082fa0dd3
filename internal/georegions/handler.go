package georegions

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/superbowl/pkg/handlers"
	"github.com/JaimeStill/superbowl/pkg/routes"
	"github.com/JaimeStill/superbowl/pkg/session"
)

const Capability = "GeoRegion"

type Handler struct {
	sys      System
	sessions *session.Store
	logger   *slog.Logger
}

func NewHandler(sys System, sessions *session.Store, logger *slog.Logger) *Handler {
	return &Handler{
		sys:      sys,
		sessions: sessions,
		logger:   logger.With("handler", "georegions"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Capability:  Capability,
		Tags:        []string{"Geo Regions"},
		Description: "Geographic regions",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/geoRegion", Action: "list", Handler: h.List},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(r); err != nil {
		h.logger.Warn("clear session", "error", err)
	}

	list, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]any{"geoRegions": list})
}
