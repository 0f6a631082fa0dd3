package exhibitions

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/superbowl/pkg/flow"
	"github.com/JaimeStill/superbowl/pkg/handlers"
	"github.com/JaimeStill/superbowl/pkg/routes"
)

const Capability = "Exhibition"

type Handler struct {
	sys    System
	flow   *flow.Flow[Form]
	logger *slog.Logger
}

func NewHandler(sys System, deps flow.Deps) *Handler {
	return &Handler{
		sys:    sys,
		flow:   flow.New[Form](deps, "exhibition", "/superbowl/exhibition", "/superbowl/registerExhibition", MapHTTPStatus),
		logger: deps.Logger.With("handler", "exhibitions"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Capability:  Capability,
		Tags:        []string{"Exhibitions"},
		Description: "Shows and exhibitions",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/exhibition", Action: "list", Handler: h.List},
			{Method: "GET", Pattern: "/registerExhibition", Action: "registerExhibition", Handler: h.Register},
			{Method: "POST", Pattern: "/registerExhibition", Action: "registerExhibition", Handler: h.Register},
			{Method: "POST", Pattern: "/registerExhibitionConfirmation", Action: "registerExhibitionConfirmation", Handler: h.Confirm},
			{Method: "POST", Pattern: "/registerExhibitionCompletion", Action: "registerExhibitionCompletion", Handler: h.Complete},
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
	handlers.RespondJSON(w, http.StatusOK, map[string]any{"exhibitions": list})
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
	h.flow.Confirm(w, r, h.formContext, func(_ context.Context, f *Form) (any, error) {
		return nil, f.Command().Validate()
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
	max, err := h.sys.MaxIndex(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{"exhibitionMaxIndex": max + 1}, nil
}
