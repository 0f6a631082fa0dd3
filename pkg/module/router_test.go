package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/superbowl/pkg/module"
)

func echoPath(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(r.URL.Path))
}

func TestRouter_DispatchesModules(t *testing.T) {
	router := module.NewRouter()
	router.HandleNative("GET /bowl", echoPath)
	router.Mount(module.New("/docs", http.HandlerFunc(echoPath)))

	tests := []struct {
		path string
		body string
	}{
		{"/docs", "/"},
		{"/docs/openapi.json", "/openapi.json"},
		{"/bowl", "/bowl"},
		{"/bowl/", "/bowl"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			if rec.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.body)
			}
		})
	}
}

func TestRouter_NativeNotFound(t *testing.T) {
	router := module.NewRouter()
	router.Mount(module.New("/docs", http.HandlerFunc(echoPath)))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/documents", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestModule_Middleware(t *testing.T) {
	m := module.New("/docs", http.HandlerFunc(echoPath))
	m.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Module", "docs")
			next.ServeHTTP(w, r)
		})
	})

	rec := httptest.NewRecorder()
	m.Serve(rec, httptest.NewRequest(http.MethodGet, "/docs/index.html", nil))
	if rec.Header().Get("X-Module") != "docs" {
		t.Error("module middleware not applied")
	}
}

func TestNew_InvalidPrefix(t *testing.T) {
	for _, prefix := range []string{"", "docs", "/docs/api"} {
		t.Run(prefix, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%q) did not panic", prefix)
				}
			}()
			module.New(prefix, http.NotFoundHandler())
		})
	}
}
