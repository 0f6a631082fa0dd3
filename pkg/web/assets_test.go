package web_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/JaimeStill/superbowl/pkg/lifecycle"
	"github.com/JaimeStill/superbowl/pkg/storage"
	"github.com/JaimeStill/superbowl/pkg/web"
)

var files = fstest.MapFS{
	"css/superbowl.css": {Data: []byte("body { margin: 0; }")},
	"robots.txt":        {Data: []byte("User-agent: *\n")},
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"css/superbowl.css", "css/superbowl.css", true},
		{"/robots.txt", "robots.txt", true},
		{"images/./bowl.png", "images/bowl.png", true},
		{"", "", false},
		{"../config.toml", "", false},
		{"images/../../etc/passwd", "", false},
		{"images\\bowl.png", "", false},
		{".", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := web.CleanName(tt.name)
			if got != tt.want || ok != tt.ok {
				t.Errorf("CleanName(%q) = %q, %v, want %q, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func serve(t *testing.T, assets *web.Assets, path string) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /assets/{"+web.WildcardName+"...}", assets.Serve)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestAssets_Serve_Embedded(t *testing.T) {
	assets := web.NewAssets(files, nil, slog.New(slog.DiscardHandler))

	rec := serve(t, assets, "/assets/css/superbowl.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "body { margin: 0; }" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestAssets_Serve_NotFound(t *testing.T) {
	assets := web.NewAssets(files, nil, slog.New(slog.DiscardHandler))

	for _, path := range []string{"/assets/missing.js", "/assets/css"} {
		if rec := serve(t, assets, path); rec.Code != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want %d", path, rec.Code, http.StatusNotFound)
		}
	}
}

func TestAssets_Serve_Fallback(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	store, err := storage.New(&storage.Config{BasePath: t.TempDir()}, logger)
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	if err := store.Start(lifecycle.New()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := store.Store(context.Background(), "images/bowl-107.png", []byte("png")); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	assets := web.NewAssets(files, store, logger)

	rec := serve(t, assets, "/assets/images/bowl-107.png")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "png" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "png")
	}

	if rec := serve(t, assets, "/assets/images/bowl-108.png"); rec.Code != http.StatusNotFound {
		t.Errorf("missing upload status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
