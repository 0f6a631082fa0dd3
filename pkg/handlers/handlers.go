// Package handlers provides the response and request helpers shared by the
// domain handlers. These stateless functions keep reply formats uniform.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// RespondJSON writes data as JSON with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs err and writes {"error": "<message>"}.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logger.Error("handler error", "error", err, "status", status)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// RespondValidation writes 422 with the rejected form, its violations and
// the form context so the client can redisplay the form.
func RespondValidation(w http.ResponseWriter, form, violations, formContext any) {
	RespondJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"form":       form,
		"violations": violations,
		"context":    formContext,
	})
}

// Redirect replies 303 See Other so a POST completion lands on a GET page.
func Redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}
