package statuses

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/superbowl/pkg/flow"
	"github.com/JaimeStill/superbowl/pkg/handlers"
	"github.com/JaimeStill/superbowl/pkg/routes"
)

// Capability is the binding name of the status service.
const Capability = "Status"

type Handler struct {
	sys    System
	flow   *flow.Flow[Form]
	logger *slog.Logger
}

func NewHandler(sys System, deps flow.Deps) *Handler {
	return &Handler{
		sys:    sys,
		flow:   flow.New[Form](deps, "status", "/superbowl/status", "/superbowl/registerStatus", MapHTTPStatus),
		logger: deps.Logger.With("handler", "statuses"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Capability:  Capability,
		Tags:        []string{"Statuses"},
		Description: "Bowl workflow states",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/status", Action: "list", Handler: h.List},
			{Method: "GET", Pattern: "/registerStatus", Action: "registerStatus", Handler: h.Register},
			{Method: "POST", Pattern: "/registerStatus", Action: "registerStatus", Handler: h.Register},
			{Method: "POST", Pattern: "/registerStatusConfirmation", Action: "registerStatusConfirmation", Handler: h.Confirm},
			{Method: "POST", Pattern: "/registerStatusCompletion", Action: "registerStatusCompletion", Handler: h.Complete},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	h.flow.Clear(r)

	list, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]any{"stati": list})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	data, err := h.formContext(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	h.flow.Start(w, r, data)
}

func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.flow.Confirm(w, r, h.formContext, nil)
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	h.flow.Complete(w, r, func(ctx context.Context, f Form) (string, error) {
		_, err := h.sys.Register(ctx, f.Command())
		return "", err
	})
}

func (h *Handler) formContext(ctx context.Context) (any, error) {
	max, err := h.sys.MaxIndex(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{"statusMaxIndex": max + 1}, nil
}
