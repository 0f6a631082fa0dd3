package bowls

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/JaimeStill/superbowl/internal/customers"
	"github.com/JaimeStill/superbowl/internal/exhibitions"
	"github.com/JaimeStill/superbowl/internal/georegions"
	"github.com/JaimeStill/superbowl/internal/manufactures"
	"github.com/JaimeStill/superbowl/internal/statuses"
	"github.com/JaimeStill/superbowl/internal/timberorigins"
	"github.com/JaimeStill/superbowl/internal/timbers"
	"github.com/JaimeStill/superbowl/pkg/flow"
	"github.com/JaimeStill/superbowl/pkg/handlers"
	"github.com/JaimeStill/superbowl/pkg/pagination"
	"github.com/JaimeStill/superbowl/pkg/routes"
	"github.com/JaimeStill/superbowl/pkg/storage"
)

const Capability = "Bowl"

// Controller is the binding name of the bowl handler.
const Controller = "BowlController"

// Lookups are the reference systems the bowl pages select from.
type Lookups struct {
	Statuses      statuses.System
	GeoRegions    georegions.System
	Manufactures  manufactures.System
	Timbers       timbers.System
	TimberOrigins timberorigins.System
	Customers     customers.System
	Exhibitions   exhibitions.System
}

type Handler struct {
	sys        System
	lookups    Lookups
	images     storage.System
	pagination pagination.Config
	maxUpload  int64
	logger     *slog.Logger

	register *flow.Flow[Form]
	edit     *flow.Flow[EditForm]
	update   *flow.Flow[SalesForm]
	mod      *flow.Flow[ModForm]
	modItem  *flow.Flow[ModItemForm]
}

// NewHandler creates the bowl handler. Uploaded photographs are kept in
// images under the assets key space.
func NewHandler(sys System, lookups Lookups, images storage.System, deps flow.Deps, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		lookups:    lookups,
		images:     images,
		pagination: pagination,
		maxUpload:  deps.MaxBody,
		logger:     deps.Logger.With("handler", "bowls"),
		register:   flow.New[Form](deps, "bowl", "/superbowl/bowl", "/superbowl/registerBowl", MapHTTPStatus),
		edit:       flow.New[EditForm](deps, "bowl.edit", "/superbowl/bowl", "/superbowl/bowl", MapHTTPStatus),
		update:     flow.New[SalesForm](deps, "bowl.update", "/superbowl/bowl", "/superbowl/bowl", MapHTTPStatus),
		mod:        flow.New[ModForm](deps, "bowl.mod", "/superbowl/bowl", "/superbowl/bowl", MapHTTPStatus),
		modItem:    flow.New[ModItemForm](deps, "bowl.modItem", "/superbowl/bowl", "/superbowl/bowl", MapHTTPStatus),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Capability:  Controller,
		Tags:        []string{"Bowls"},
		Description: "Bowl catalogue, sales and modification log",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/bowl", Action: "listBowl", Handler: h.List},
			{Method: "GET", Pattern: "/portfolioBowl", Action: "portfolioBowl", Handler: h.Portfolio},

			{Method: "GET", Pattern: "/editBowl", Action: "editBowl", Handler: h.Edit},
			{Method: "GET", Pattern: "/editBowlByStatusCode", Action: "editBowl", Handler: h.Edit},
			{Method: "POST", Pattern: "/editBowlConfirmation", Action: "editBowlConfirmation", Handler: h.EditConfirm},
			{Method: "POST", Pattern: "/editBowlCompletion", Action: "editBowlCompletion", Handler: h.EditComplete},

			{Method: "GET", Pattern: "/updateBowl", Action: "updateBowl", Handler: h.Update},
			{Method: "POST", Pattern: "/updateBowlConfirmation", Action: "updateBowlConfirmation", Handler: h.UpdateConfirm},
			{Method: "POST", Pattern: "/updateBowlCompletion", Action: "updateBowlCompletion", Handler: h.UpdateComplete},

			{Method: "GET", Pattern: "/modifyBowl", Action: "modifyBowl", Handler: h.Modify},
			{Method: "POST", Pattern: "/uploadBowlImage", Action: "uploadBowlImage", Handler: h.UploadImage},

			{Method: "GET", Pattern: "/registerBowl", Action: "registerBowl", Handler: h.Register},
			{Method: "POST", Pattern: "/registerBowl", Action: "registerBowl", Handler: h.Register},
			{Method: "GET", Pattern: "/registerBowlByGeoRegionCode", Action: "registerBowlByGeoRegionCode", Handler: h.Register},
			{Method: "GET", Pattern: "/registerBowlByManufactureYear", Action: "registerBowlByManufactureYear", Handler: h.Register},
			{Method: "GET", Pattern: "/registerBowlByStatusCode", Action: "registerBowlByStatusCode", Handler: h.Register},
			{Method: "GET", Pattern: "/registerBowlByTimberCode", Action: "registerBowlByTimberCode", Handler: h.Register},
			{Method: "POST", Pattern: "/registerBowlConfirmation", Action: "registerBowlConfirmation", Handler: h.RegisterConfirm},
			{Method: "POST", Pattern: "/registerBowlCompletion", Action: "registerBowlCompletion", Handler: h.RegisterComplete},

			{Method: "GET", Pattern: "/registerBowlMod", Action: "registerBowlMod", Handler: h.RegisterMod},
			{Method: "POST", Pattern: "/registerBowlMod", Action: "registerBowlMod", Handler: h.RegisterMod},
			{Method: "POST", Pattern: "/registerBowlModConfirmation", Action: "registerBowlModConfirmation", Handler: h.RegisterModConfirm},
			{Method: "POST", Pattern: "/registerBowlModCompletion", Action: "registerBowlModCompletion", Handler: h.RegisterModComplete},

			{Method: "GET", Pattern: "/registerBowlModItem", Action: "registerBowlModItem", Handler: h.RegisterModItem},
			{Method: "POST", Pattern: "/registerBowlModItem", Action: "registerBowlModItem", Handler: h.RegisterModItem},
			{Method: "POST", Pattern: "/registerBowlModItemConfirmation", Action: "registerBowlModItemConfirmation", Handler: h.RegisterModItemConfirm},
			{Method: "POST", Pattern: "/registerBowlModItemCompletion", Action: "registerBowlModItemCompletion", Handler: h.RegisterModItemComplete},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	h.register.Clear(r)

	list, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	stati, err := h.lookups.Statuses.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"bowls": list,
		"stati": stati,
	})
}

// Portfolio pages through bowls filtered by statusCode (repeatable),
// timberCode, geoRegionCode, location, year and sold.
func (h *Handler) Portfolio(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	page := pagination.PageRequestFromQuery(values, h.pagination)

	filter, err := portfolioFilter(values)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Portfolio(r.Context(), filter, page)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

func portfolioFilter(values url.Values) (PortfolioFilter, error) {
	var f PortfolioFilter

	for _, v := range values["statusCode"] {
		if v != "" {
			f.StatusCodes = append(f.StatusCodes, v)
		}
	}
	if v := values.Get("timberCode"); v != "" {
		f.TimberCode = &v
	}
	if v := values.Get("geoRegionCode"); v != "" {
		f.GeoRegionCode = &v
	}
	if v := values.Get("location"); v != "" {
		f.Location = &v
	}
	if v := values.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return f, fmt.Errorf("invalid year %q", v)
		}
		f.Year = &year
	}
	if v := values.Get("sold"); v != "" {
		sold, err := strconv.ParseBool(v)
		if err != nil {
			return f, fmt.Errorf("invalid sold %q", v)
		}
		f.Sold = &sold
	}
	return f, nil
}

// idParam reads a positive id from the query or form values.
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.FormValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidID, name)
	}
	return id, nil
}
