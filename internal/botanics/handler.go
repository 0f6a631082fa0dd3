package botanics

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/superbowl/pkg/flow"
	"github.com/JaimeStill/superbowl/pkg/handlers"
	"github.com/JaimeStill/superbowl/pkg/routes"
)

const Capability = "BotanicSystem"

type Handler struct {
	sys    System
	flow   *flow.Flow[Form]
	logger *slog.Logger
}

func NewHandler(sys System, deps flow.Deps) *Handler {
	return &Handler{
		sys:    sys,
		flow:   flow.New[Form](deps, "botanicSystem", "/superbowl/botanicSystem", "/superbowl/registerBotanicSystem", MapHTTPStatus),
		logger: deps.Logger.With("handler", "botanics"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Capability:  Capability,
		Tags:        []string{"Botanic Systems"},
		Description: "Botanic classification of timbers",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/botanicSystem", Action: "list", Handler: h.List},
			{Method: "GET", Pattern: "/registerBotanicSystem", Action: "registerBotanicSystem", Handler: h.Register},
			{Method: "POST", Pattern: "/registerBotanicSystem", Action: "registerBotanicSystem", Handler: h.Register},
			{Method: "POST", Pattern: "/registerBotanicSystemConfirmation", Action: "registerBotanicSystemConfirmation", Handler: h.Confirm},
			{Method: "POST", Pattern: "/registerBotanicSystemCompletion", Action: "registerBotanicSystemCompletion", Handler: h.Complete},
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
	handlers.RespondJSON(w, http.StatusOK, map[string]any{"botanicSystems": list})
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
	max, err := h.sys.MaxOrdinal(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{"botanicSystemMaxOrdinal": max + 1}, nil
}
