package bowls

import (
	"context"
	"errors"
	"net/http"

	"github.com/JaimeStill/superbowl/internal/statuses"
	"github.com/JaimeStill/superbowl/pkg/handlers"
	"github.com/JaimeStill/superbowl/pkg/validation"
)

// Edit serves the status form of a bowl. statusCode preselects a new
// status and timberOriginId a new origin.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "bowlId")
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	data, err := h.editContext(r.Context(), id, r.FormValue("statusCode"), r.FormValue("timberOriginId"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	h.edit.Start(w, r, data)
}

func (h *Handler) EditConfirm(w http.ResponseWriter, r *http.Request) {
	h.edit.Confirm(w, r, h.selectLists, func(ctx context.Context, f *EditForm) (any, error) {
		return h.resolveEdit(ctx, f.Command())
	})
}

func (h *Handler) EditComplete(w http.ResponseWriter, r *http.Request) {
	h.edit.Complete(w, r, func(ctx context.Context, f EditForm) (string, error) {
		_, err := h.sys.Edit(ctx, f.Command())
		return "", err
	})
}

// Update serves the sales form of a bowl.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "bowlId")
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	data, err := h.editContext(r.Context(), id, r.FormValue("statusCode"), r.FormValue("timberOriginId"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	if data["customers"], err = h.lookups.Customers.List(r.Context()); err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	if data["exhibitions"], err = h.lookups.Exhibitions.List(r.Context()); err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	h.update.Start(w, r, data)
}

func (h *Handler) UpdateConfirm(w http.ResponseWriter, r *http.Request) {
	h.update.Confirm(w, r, h.selectLists, func(ctx context.Context, f *SalesForm) (any, error) {
		cmd := f.Command()
		if err := cmd.Validate(); err != nil {
			return nil, err
		}

		view, err := h.resolveEdit(ctx, cmd.EditCommand)
		if err != nil {
			return nil, err
		}
		if err := h.resolveSale(ctx, view, cmd.CustomerID, cmd.ExhibitionID); err != nil {
			return nil, err
		}
		return view, nil
	})
}

func (h *Handler) UpdateComplete(w http.ResponseWriter, r *http.Request) {
	h.update.Complete(w, r, func(ctx context.Context, f SalesForm) (string, error) {
		_, err := h.sys.UpdateSales(ctx, f.Command())
		return "", err
	})
}

func (h *Handler) editContext(ctx context.Context, id int64, statusCode, timberOriginID string) (map[string]any, error) {
	b, err := h.sys.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := h.selectLists(ctx)
	if err != nil {
		return nil, err
	}
	m := data.(map[string]any)
	m["bowl"] = b
	m["selectedStatusId"] = b.StatusID
	m["selectedStatusCode"] = b.StatusCode
	m["selectedTimberOriginId"] = b.TimberOriginID

	if statusCode != "" {
		s, err := h.lookups.Statuses.FindByCode(ctx, statusCode)
		switch {
		case err == nil:
			m["selectedStatusId"] = s.ID
			m["selectedStatusCode"] = s.Code
		case !errors.Is(err, statuses.ErrNotFound):
			return nil, err
		}
	}
	if id := validation.Int64(timberOriginID); id > 0 {
		m["selectedTimberOriginId"] = id
	}
	return m, nil
}

func (h *Handler) selectLists(ctx context.Context) (any, error) {
	stati, err := h.lookups.Statuses.List(ctx)
	if err != nil {
		return nil, err
	}
	origins, err := h.lookups.TimberOrigins.List(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"stati":         stati,
		"timberOrigins": origins,
	}, nil
}

// resolveEdit checks the bowl is unchanged since the form was served and
// that the new references exist.
func (h *Handler) resolveEdit(ctx context.Context, cmd EditCommand) (map[string]any, error) {
	b, err := h.sys.Find(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if b.Version != cmd.Version {
		return nil, ErrVersionConflict
	}

	view, err := h.resolveReferences(ctx, cmd.StatusID, cmd.TimberOriginID)
	if err != nil {
		return nil, err
	}
	view["bowl"] = b
	return view, nil
}
