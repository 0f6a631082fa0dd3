package timbers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/JaimeStill/superbowl/internal/botanics"
	"github.com/JaimeStill/superbowl/internal/georegions"
	"github.com/JaimeStill/superbowl/pkg/flow"
	"github.com/JaimeStill/superbowl/pkg/handlers"
	"github.com/JaimeStill/superbowl/pkg/routes"
	"github.com/JaimeStill/superbowl/pkg/validation"
)

const Capability = "Timber"

type Handler struct {
	sys      System
	regions  georegions.System
	botanics botanics.System
	flow     *flow.Flow[Form]
	logger   *slog.Logger
}

func NewHandler(sys System, regions georegions.System, botanic botanics.System, deps flow.Deps) *Handler {
	return &Handler{
		sys:      sys,
		regions:  regions,
		botanics: botanic,
		flow:     flow.New[Form](deps, "timber", "/superbowl/timber", "/superbowl/registerTimber", MapHTTPStatus),
		logger:   deps.Logger.With("handler", "timbers"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Capability:  Capability,
		Tags:        []string{"Timbers"},
		Description: "Wood species by region",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/timber", Action: "list", Handler: h.List},
			{Method: "GET", Pattern: "/registerTimber", Action: "registerTimber", Handler: h.Register},
			{Method: "POST", Pattern: "/registerTimber", Action: "registerTimber", Handler: h.Register},
			{Method: "POST", Pattern: "/registerTimberConfirmation", Action: "registerTimberConfirmation", Handler: h.Confirm},
			{Method: "POST", Pattern: "/registerTimberCompletion", Action: "registerTimberCompletion", Handler: h.Complete},
		},
	}
}

// List returns all timbers, or those of one region when geoRegionCode is given.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	h.flow.Clear(r)

	var (
		list []Timber
		err  error
	)
	if code := r.URL.Query().Get("geoRegionCode"); code != "" {
		list, err = h.sys.ListByGeoRegion(r.Context(), code)
	} else {
		list, err = h.sys.List(r.Context())
	}
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]any{"timbers": list})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	code := r.FormValue("geoRegionCode")
	if code == "" {
		code = georegions.DefaultCode
	}

	data, err := h.formContext(r.Context(), code)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	h.flow.Start(w, r, data)
}

func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.flow.Confirm(w, r,
		func(ctx context.Context) (any, error) {
			return h.formContext(ctx, georegions.DefaultCode)
		},
		func(ctx context.Context, f *Form) (any, error) {
			region, err := h.regions.Find(ctx, validation.Int64(f.GeoRegionID))
			if errors.Is(err, georegions.ErrNotFound) {
				return nil, ErrInvalidReference
			}
			if err != nil {
				return nil, err
			}
			botanic, err := h.botanics.Find(ctx, validation.Int64(f.BotanicSystemID))
			if errors.Is(err, botanics.ErrNotFound) {
				return nil, ErrInvalidReference
			}
			if err != nil {
				return nil, err
			}
			if f.Index == "" {
				max, err := h.sys.MaxIndex(ctx, region.ID)
				if err != nil {
					return nil, err
				}
				f.Index = strconv.Itoa(max + 1)
			}
			f.GeoRegionCode = region.Code
			return map[string]any{"geoRegion": region, "botanicSystem": botanic}, nil
		},
	)
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	h.flow.Complete(w, r, func(ctx context.Context, f Form) (string, error) {
		_, err := h.sys.Register(ctx, f.Command())
		return "", err
	})
}

func (h *Handler) formContext(ctx context.Context, geoRegionCode string) (any, error) {
	regions, err := h.regions.List(ctx)
	if err != nil {
		return nil, err
	}
	systems, err := h.botanics.List(ctx)
	if err != nil {
		return nil, err
	}

	data := map[string]any{
		"geoRegions":     regions,
		"botanicSystems": systems,
		"geoRegionCode":  geoRegionCode,
	}

	region, err := h.regions.FindByCode(ctx, geoRegionCode)
	if err == nil {
		max, err := h.sys.MaxIndex(ctx, region.ID)
		if err != nil {
			return nil, err
		}
		data["geoRegionId"] = region.ID
		data["timberMaxIndex"] = max + 1
	}
	return data, nil
}
