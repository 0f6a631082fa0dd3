// Package flow implements the three-step registration exchange used by
// every registerable entity: the form context, a confirmation that
// validates the submission and keeps it as a session draft, and a
// completion that commits the draft.
package flow

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/superbowl/pkg/handlers"
	"github.com/JaimeStill/superbowl/pkg/session"
	"github.com/JaimeStill/superbowl/pkg/validation"
)

// ErrNoDraft is logged when a completion arrives without a confirmed draft.
var ErrNoDraft = errors.New("no confirmed draft in session")

// Deps are the collaborators shared by every flow.
type Deps struct {
	Sessions  *session.Store
	Validator *validation.Validator
	MaxBody   int64
	Logger    *slog.Logger
}

// Flow runs the registration exchange for form type F.
type Flow[F any] struct {
	deps    Deps
	key     string
	done    string
	restart string
	status  func(error) int
}

// New creates a flow storing drafts under key. Completions redirect to
// done on success and to restart when no draft exists. status maps domain
// errors to HTTP codes.
func New[F any](deps Deps, key, done, restart string, status func(error) int) *Flow[F] {
	return &Flow[F]{
		deps:    deps,
		key:     key,
		done:    done,
		restart: restart,
		status:  status,
	}
}

// Clear drops the visitor's session, as every list and form page does.
func (f *Flow[F]) Clear(r *http.Request) {
	if err := f.deps.Sessions.Clear(r); err != nil {
		f.deps.Logger.Warn("clear session", "flow", f.key, "error", err)
	}
}

// Start clears any previous draft and replies with the form context.
func (f *Flow[F]) Start(w http.ResponseWriter, r *http.Request, data any) {
	f.Clear(r)
	handlers.RespondJSON(w, http.StatusOK, data)
}

// Confirm decodes, sanitizes and validates the submitted form. Violations
// reply 422 with the form, the violations and the context from retry so
// the form can be shown again. A valid form is passed to resolve, which
// may check references and return a view for the confirmation page; the
// form is then stored as the draft.
func (f *Flow[F]) Confirm(
	w http.ResponseWriter,
	r *http.Request,
	retry func(context.Context) (any, error),
	resolve func(context.Context, *F) (any, error),
) {
	form, err := handlers.DecodeForm[F](w, r, f.deps.MaxBody)
	if err != nil {
		handlers.RespondError(w, f.deps.Logger, http.StatusBadRequest, err)
		return
	}

	f.deps.Validator.Sanitize(&form)

	if err := f.deps.Validator.Struct(form); err != nil {
		var violations validation.Violations
		if !errors.As(err, &violations) {
			handlers.RespondError(w, f.deps.Logger, http.StatusBadRequest, err)
			return
		}

		var formContext any
		if retry != nil {
			if formContext, err = retry(r.Context()); err != nil {
				handlers.RespondError(w, f.deps.Logger, f.status(err), err)
				return
			}
		}

		f.deps.Logger.Info("form rejected", "flow", f.key, "violations", len(violations))
		handlers.RespondValidation(w, form, violations, formContext)
		return
	}

	var view any
	if resolve != nil {
		if view, err = resolve(r.Context(), &form); err != nil {
			handlers.RespondError(w, f.deps.Logger, f.status(err), err)
			return
		}
	}

	if err := f.deps.Sessions.Put(w, r, f.key, form); err != nil {
		handlers.RespondError(w, f.deps.Logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"form": form,
		"view": view,
	})
}

// Complete loads the draft and passes it to commit. commit may return a
// redirect target; an empty target uses the flow's done page. Without a
// draft the visitor is sent back to the start of the flow.
func (f *Flow[F]) Complete(w http.ResponseWriter, r *http.Request, commit func(context.Context, F) (string, error)) {
	var draft F
	found, err := f.deps.Sessions.Get(r, f.key, &draft)
	if err != nil {
		handlers.RespondError(w, f.deps.Logger, http.StatusInternalServerError, err)
		return
	}
	if !found {
		f.deps.Logger.Warn("completion without draft", "flow", f.key, "error", ErrNoDraft)
		handlers.Redirect(w, r, f.restart)
		return
	}

	target, err := commit(r.Context(), draft)
	if err != nil {
		handlers.RespondError(w, f.deps.Logger, f.status(err), err)
		return
	}

	f.Clear(r)

	if target == "" {
		target = f.done
	}
	handlers.Redirect(w, r, target)
}
