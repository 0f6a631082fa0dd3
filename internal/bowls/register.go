package bowls

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/JaimeStill/superbowl/internal/customers"
	"github.com/JaimeStill/superbowl/internal/exhibitions"
	"github.com/JaimeStill/superbowl/internal/georegions"
	"github.com/JaimeStill/superbowl/internal/manufactures"
	"github.com/JaimeStill/superbowl/internal/statuses"
	"github.com/JaimeStill/superbowl/internal/timberorigins"
	"github.com/JaimeStill/superbowl/internal/timbers"
	"github.com/JaimeStill/superbowl/pkg/handlers"
)

// DefaultStatusCode preselects the status of a new bowl.
const DefaultStatusCode = "MODI"

// Selection holds the preselected references of the registration form.
type Selection struct {
	GeoRegionCode   string
	TimberCode      string
	StatusCode      string
	ManufactureYear int
	TimberOriginID  int64
}

// DefaultSelection is used when the request names no preselection.
func DefaultSelection() Selection {
	return Selection{
		GeoRegionCode:  georegions.DefaultCode,
		TimberCode:     timbers.DefaultCode,
		StatusCode:     DefaultStatusCode,
		TimberOriginID: timberorigins.DefaultID,
	}
}

func selectionFrom(r *http.Request) Selection {
	sel := DefaultSelection()
	if v := r.FormValue("geoRegionCode"); v != "" {
		sel.GeoRegionCode = v
	}
	if v := r.FormValue("timberCode"); v != "" {
		sel.TimberCode = v
	}
	if v := r.FormValue("statusCode"); v != "" {
		sel.StatusCode = v
	}
	if v, err := strconv.Atoi(r.FormValue("manufactureYear")); err == nil {
		sel.ManufactureYear = v
	}
	if v, err := strconv.ParseInt(r.FormValue("timberOriginId"), 10, 64); err == nil && v > 0 {
		sel.TimberOriginID = v
	}
	return sel
}

// Register serves the registration form and its preselecting variants.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	data, err := h.registerContext(r.Context(), selectionFrom(r))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	h.register.Start(w, r, data)
}

func (h *Handler) RegisterConfirm(w http.ResponseWriter, r *http.Request) {
	h.register.Confirm(w, r,
		func(ctx context.Context) (any, error) {
			return h.registerContext(ctx, DefaultSelection())
		},
		func(ctx context.Context, f *Form) (any, error) {
			cmd := f.Command()
			view, err := h.resolveReferences(ctx, cmd.StatusID, cmd.TimberOriginID)
			if err != nil {
				return nil, err
			}

			m, err := h.lookups.Manufactures.Find(ctx, cmd.ManufactureID)
			if err != nil {
				return nil, reference(err, manufactures.ErrNotFound)
			}
			t, err := h.lookups.Timbers.Find(ctx, cmd.TimberID)
			if err != nil {
				return nil, reference(err, timbers.ErrNotFound)
			}
			view["manufacture"] = m
			view["timber"] = t

			if err := h.resolveSale(ctx, view, cmd.CustomerID, cmd.ExhibitionID); err != nil {
				return nil, err
			}
			return view, nil
		},
	)
}

func (h *Handler) RegisterComplete(w http.ResponseWriter, r *http.Request) {
	h.register.Complete(w, r, func(ctx context.Context, f Form) (string, error) {
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

func (h *Handler) registerContext(ctx context.Context, sel Selection) (map[string]any, error) {
	data := map[string]any{
		"geoRegionCode":  sel.GeoRegionCode,
		"timberOriginId": sel.TimberOriginID,
	}

	maxIndex, err := h.sys.MaxIndex(ctx)
	if err != nil {
		return nil, err
	}
	maxOrdinal, err := h.sys.MaxOrdinal(ctx)
	if err != nil {
		return nil, err
	}
	data["bowlMaxIndex"] = maxIndex + 1
	data["bowlMaxOrdinal"] = maxOrdinal + 1

	if data["geoRegions"], err = h.lookups.GeoRegions.List(ctx); err != nil {
		return nil, err
	}
	if data["timbers"], err = h.lookups.Timbers.ListByGeoRegion(ctx, sel.GeoRegionCode); err != nil {
		return nil, err
	}
	if data["stati"], err = h.lookups.Statuses.List(ctx); err != nil {
		return nil, err
	}
	if data["manufactures"], err = h.lookups.Manufactures.List(ctx); err != nil {
		return nil, err
	}
	if data["timberOrigins"], err = h.lookups.TimberOrigins.List(ctx); err != nil {
		return nil, err
	}
	if data["customers"], err = h.lookups.Customers.List(ctx); err != nil {
		return nil, err
	}
	if data["exhibitions"], err = h.lookups.Exhibitions.List(ctx); err != nil {
		return nil, err
	}

	if t, err := h.lookups.Timbers.FindByCode(ctx, sel.TimberCode); err == nil {
		data["timberId"] = t.ID
		data["timberCode"] = t.Code
	} else if !errors.Is(err, timbers.ErrNotFound) {
		return nil, err
	}

	if s, err := h.lookups.Statuses.FindByCode(ctx, sel.StatusCode); err == nil {
		data["statusId"] = s.ID
		data["statusCode"] = s.Code
	} else if !errors.Is(err, statuses.ErrNotFound) {
		return nil, err
	}

	if sel.ManufactureYear != 0 {
		if m, err := h.lookups.Manufactures.FindByYear(ctx, sel.ManufactureYear); err == nil {
			data["manufactureId"] = m.ID
			data["manufactureYear"] = m.Year
		} else if !errors.Is(err, manufactures.ErrNotFound) {
			return nil, err
		}
	}
	if _, ok := data["manufactureId"]; !ok {
		data["manufactureId"] = manufactures.DefaultID
	}

	return data, nil
}

// resolveReferences loads the status and timber origin a form points at.
func (h *Handler) resolveReferences(ctx context.Context, statusID, timberOriginID int64) (map[string]any, error) {
	s, err := h.lookups.Statuses.Find(ctx, statusID)
	if err != nil {
		return nil, reference(err, statuses.ErrNotFound)
	}
	o, err := h.lookups.TimberOrigins.Find(ctx, timberOriginID)
	if err != nil {
		return nil, reference(err, timberorigins.ErrNotFound)
	}
	return map[string]any{
		"status":       s,
		"timberOrigin": o,
	}, nil
}

func (h *Handler) resolveSale(ctx context.Context, view map[string]any, customerID, exhibitionID *int64) error {
	if customerID != nil {
		c, err := h.lookups.Customers.Find(ctx, *customerID)
		if err != nil {
			return reference(err, customers.ErrNotFound)
		}
		view["customer"] = c
	}
	if exhibitionID != nil {
		e, err := h.lookups.Exhibitions.Find(ctx, *exhibitionID)
		if err != nil {
			return reference(err, exhibitions.ErrNotFound)
		}
		view["exhibition"] = e
	}
	return nil
}

// reference turns a lookup's not-found error into ErrInvalidReference.
func reference(err, notFound error) error {
	if errors.Is(err, notFound) {
		return ErrInvalidReference
	}
	return err
}
