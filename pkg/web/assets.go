// Package web serves static assets captured by a trailing route wildcard.
// Files are read from an fs.FS and, when configured, fall back to the
// storage system for uploaded images.
package web

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/JaimeStill/superbowl/pkg/storage"
)

// WildcardName is the path value holding the requested asset path.
const WildcardName = "fileName"

// Assets serves files named by the {fileName...} wildcard.
type Assets struct {
	files    fs.FS
	fallback storage.System
	logger   *slog.Logger
}

// NewAssets creates an asset server over files. fallback may be nil.
func NewAssets(files fs.FS, fallback storage.System, logger *slog.Logger) *Assets {
	return &Assets{
		files:    files,
		fallback: fallback,
		logger:   logger.With("handler", "assets"),
	}
}

// CleanName validates a requested asset path. It rejects empty names,
// absolute paths and any parent traversal.
func CleanName(name string) (string, bool) {
	name = strings.TrimPrefix(name, "/")
	if name == "" || strings.Contains(name, "\\") {
		return "", false
	}
	for _, seg := range strings.Split(name, "/") {
		if seg == ".." {
			return "", false
		}
	}
	clean := path.Clean(name)
	if !fs.ValidPath(clean) || clean == "." {
		return "", false
	}
	return clean, true
}

// Serve is the handler bound to asset routes.
func (a *Assets) Serve(w http.ResponseWriter, r *http.Request) {
	name, ok := CleanName(r.PathValue(WildcardName))
	if !ok {
		http.NotFound(w, r)
		return
	}

	if a.files != nil {
		if info, err := fs.Stat(a.files, name); err == nil && !info.IsDir() {
			http.ServeFileFS(w, r, a.files, name)
			return
		}
	}

	if a.fallback == nil {
		http.NotFound(w, r)
		return
	}

	obj, err := a.fallback.Retrieve(r.Context(), name)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) && !errors.Is(err, storage.ErrInvalidKey) {
			a.logger.Error("retrieve asset", "name", name, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		http.NotFound(w, r)
		return
	}

	http.ServeContent(w, r, path.Base(name), obj.ModTime, bytes.NewReader(obj.Data))
}
