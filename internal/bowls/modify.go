package bowls

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/JaimeStill/superbowl/pkg/handlers"
	"github.com/JaimeStill/superbowl/pkg/validation"
)

// Modify shows a bowl with its modification log. bowlModId marks the
// modification last worked on.
func (h *Handler) Modify(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "bowlId")
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	b, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	mods, err := h.sys.ListMods(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	data := map[string]any{
		"bowl":              b,
		"bowlModifications": mods,
	}
	if modID := validation.Int64(r.FormValue("bowlModId")); modID > 0 {
		data["bowlModId"] = modID
	}
	handlers.RespondJSON(w, http.StatusOK, data)
}

// RegisterMod serves the modification form. bowlModStepId preselects a
// step; the first step is used otherwise.
func (h *Handler) RegisterMod(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "bowlId")
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	data, err := h.modContext(r.Context(), id, validation.Int64(r.FormValue("bowlModStepId")))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	h.mod.Start(w, r, data)
}

func (h *Handler) RegisterModConfirm(w http.ResponseWriter, r *http.Request) {
	h.mod.Confirm(w, r,
		func(ctx context.Context) (any, error) {
			steps, err := h.sys.ListModSteps(ctx)
			if err != nil {
				return nil, err
			}
			return map[string]any{"bowlModSteps": steps}, nil
		},
		func(ctx context.Context, f *ModForm) (any, error) {
			cmd := f.Command()
			if err := cmd.Validate(); err != nil {
				return nil, err
			}
			b, err := h.sys.Find(ctx, cmd.BowlID)
			if err != nil {
				return nil, err
			}
			step, err := h.sys.FindModStep(ctx, cmd.StepID)
			if err != nil {
				return nil, err
			}
			return map[string]any{"bowl": b, "bowlModStep": step}, nil
		},
	)
}

func (h *Handler) RegisterModComplete(w http.ResponseWriter, r *http.Request) {
	h.mod.Complete(w, r, func(ctx context.Context, f ModForm) (string, error) {
		m, err := h.sys.RegisterMod(ctx, f.Command())
		if err != nil {
			return "", err
		}
		return modifyTarget(m.BowlID, 0), nil
	})
}

// RegisterModItem serves the reading form of a modification.
func (h *Handler) RegisterModItem(w http.ResponseWriter, r *http.Request) {
	bowlID, err := idParam(r, "bowlId")
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	modID, err := idParam(r, "bowlModId")
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	view, err := h.resolveMod(r.Context(), bowlID, modID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	h.modItem.Start(w, r, view)
}

func (h *Handler) RegisterModItemConfirm(w http.ResponseWriter, r *http.Request) {
	h.modItem.Confirm(w, r, nil, func(ctx context.Context, f *ModItemForm) (any, error) {
		return h.resolveMod(ctx, validation.Int64(f.BowlID), validation.Int64(f.ModID))
	})
}

func (h *Handler) RegisterModItemComplete(w http.ResponseWriter, r *http.Request) {
	h.modItem.Complete(w, r, func(ctx context.Context, f ModItemForm) (string, error) {
		item, err := h.sys.RegisterModItem(ctx, f.Command())
		if err != nil {
			return "", err
		}
		return modifyTarget(validation.Int64(f.BowlID), item.ModID), nil
	})
}

func (h *Handler) modContext(ctx context.Context, bowlID, stepID int64) (map[string]any, error) {
	b, err := h.sys.Find(ctx, bowlID)
	if err != nil {
		return nil, err
	}
	steps, err := h.sys.ListModSteps(ctx)
	if err != nil {
		return nil, err
	}

	data := map[string]any{
		"bowl":         b,
		"bowlModSteps": steps,
	}
	switch {
	case stepID > 0:
		data["selectedBowlModStepId"] = stepID
	case len(steps) > 0:
		data["selectedBowlModStepId"] = steps[0].ID
	}
	return data, nil
}

func (h *Handler) resolveMod(ctx context.Context, bowlID, modID int64) (map[string]any, error) {
	b, err := h.sys.Find(ctx, bowlID)
	if err != nil {
		return nil, err
	}
	m, err := h.sys.FindMod(ctx, modID)
	if err != nil {
		return nil, err
	}
	if m.BowlID != b.ID {
		return nil, fmt.Errorf("%w: modification %d, bowl %d", ErrModMismatch, m.ID, b.ID)
	}
	return map[string]any{"bowl": b, "bowlMod": m}, nil
}

func modifyTarget(bowlID, modID int64) string {
	q := url.Values{}
	q.Set("bowlId", strconv.FormatInt(bowlID, 10))
	if modID > 0 {
		q.Set("bowlModId", strconv.FormatInt(modID, 10))
	}
	return "/superbowl/modifyBowl?" + q.Encode()
}
