// Package docs serves the route reference page and the OpenAPI document
// generated from the route table.
package docs

import (
	_ "embed"
	"net/http"

	"github.com/JaimeStill/superbowl/pkg/openapi"
)

//go:embed index.html
var indexHTML []byte

// Handler serves the documentation endpoints relative to its mount point.
type Handler struct {
	spec []byte
}

// NewHandler creates a documentation handler for the marshaled spec.
func NewHandler(spec []byte) *Handler {
	return &Handler{spec: spec}
}

// Mux returns the documentation routes.
func (h *Handler) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.serveIndex)
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(h.spec))
	return mux
}

func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(indexHTML)
}
