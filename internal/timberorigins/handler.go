package timberorigins

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/superbowl/internal/timbers"
	"github.com/JaimeStill/superbowl/pkg/flow"
	"github.com/JaimeStill/superbowl/pkg/handlers"
	"github.com/JaimeStill/superbowl/pkg/routes"
	"github.com/JaimeStill/superbowl/pkg/validation"
)

const Capability = "TimberOrigin"

type Handler struct {
	sys     System
	timbers timbers.System
	flow    *flow.Flow[Form]
	logger  *slog.Logger
}

func NewHandler(sys System, timber timbers.System, deps flow.Deps) *Handler {
	return &Handler{
		sys:     sys,
		timbers: timber,
		flow:    flow.New[Form](deps, "timberOrigin", "/superbowl/timberOrigin", "/superbowl/registerTimberOrigin", MapHTTPStatus),
		logger:  deps.Logger.With("handler", "timberorigins"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Capability:  Capability,
		Tags:        []string{"Timber Origins"},
		Description: "Sourcing records of timbers",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/timberOrigin", Action: "list", Handler: h.List},
			{Method: "GET", Pattern: "/registerTimberOrigin", Action: "registerTimberOrigin", Handler: h.Register},
			{Method: "POST", Pattern: "/registerTimberOrigin", Action: "registerTimberOrigin", Handler: h.Register},
			{Method: "POST", Pattern: "/registerTimberOriginConfirmation", Action: "registerTimberOriginConfirmation", Handler: h.Confirm},
			{Method: "POST", Pattern: "/registerTimberOriginCompletion", Action: "registerTimberOriginCompletion", Handler: h.Complete},
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
	handlers.RespondJSON(w, http.StatusOK, map[string]any{"timberOrigins": list})
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
	h.flow.Confirm(w, r, h.formContext, func(ctx context.Context, f *Form) (any, error) {
		t, err := h.timbers.Find(ctx, validation.Int64(f.TimberID))
		if errors.Is(err, timbers.ErrNotFound) {
			return nil, ErrUnknownTimber
		}
		if err != nil {
			return nil, err
		}
		return map[string]any{"timber": t}, nil
	})
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	h.flow.Complete(w, r, func(ctx context.Context, f Form) (string, error) {
		cmd := f.Command()
		if cmd.Index == 0 {
			max, err := h.sys.MaxIndex(ctx)
			if err != nil {
				return "", err
			}
			cmd.Index = max + 1
		}
		_, err := h.sys.Register(ctx, cmd)
		return "", err
	})
}

func (h *Handler) formContext(ctx context.Context) (any, error) {
	list, err := h.timbers.List(ctx)
	if err != nil {
		return nil, err
	}
	max, err := h.sys.MaxIndex(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"timbers":              list,
		"timberOriginMaxIndex": max + 1,
	}, nil
}
