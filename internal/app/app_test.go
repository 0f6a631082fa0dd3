package app_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/JaimeStill/superbowl/internal/app"
	"github.com/JaimeStill/superbowl/internal/config"
	"github.com/JaimeStill/superbowl/internal/infrastructure"
	"github.com/JaimeStill/superbowl/pkg/cache"
	"github.com/JaimeStill/superbowl/pkg/database"
	"github.com/JaimeStill/superbowl/pkg/lifecycle"
	"github.com/JaimeStill/superbowl/pkg/storage"
)

var static = fstest.MapFS{
	"robots.txt":        {Data: []byte("User-agent: *\n")},
	"css/superbowl.css": {Data: []byte("body {}")},
	"images/README.txt": {Data: []byte("uploads")},
	"js/superbowl.js":   {Data: []byte("")},
}

func newConfig(t *testing.T, mode string, seed bool) *config.Config {
	t.Helper()
	t.Setenv(config.EnvServiceMode, "")

	cfg := &config.Config{Mode: mode}
	cfg.Database.Name = "superbowl"
	cfg.Database.User = "superbowl"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Assets.WebjarsDir = t.TempDir()
	cfg.Setup.SeedOnStartup = seed
	cfg.Setup.Password = "secret"

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	return cfg
}

func newApp(t *testing.T, cfg *config.Config) (*app.App, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.DiscardHandler)
	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}

	infra := &infrastructure.Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Database:  database.FromDB(db, logger),
		Storage:   store,
		Cache:     cache.NewMemory(),
	}

	a, err := app.New(cfg, infra, static)
	if err != nil {
		t.Fatalf("app.New() error = %v", err)
	}
	return a, mock
}

func TestNew_ResolvesEveryCapability(t *testing.T) {
	a, _ := newApp(t, newConfig(t, config.ModeProd, false))

	if len(app.Services) != 14 {
		t.Errorf("len(Services) = %d, want 14", len(app.Services))
	}
	for _, c := range append(app.Services, app.BowlController) {
		if !a.Resolver.Resolved(c) {
			t.Errorf("capability %s not resolved", c)
		}
	}
}

func TestBind_Singletons(t *testing.T) {
	a, _ := newApp(t, newConfig(t, config.ModeProd, false))

	first, err := a.Resolver.Resolve(app.Status)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	second, _ := a.Resolver.Resolve(app.Status)
	if first != second {
		t.Error("Resolve(Status) returned distinct instances")
	}
}

func TestBuildRoutes_SetupByMode(t *testing.T) {
	tests := []struct {
		mode  string
		setup bool
	}{
		{config.ModeDev, true},
		{config.ModeTest, true},
		{config.ModeProd, false},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			a, _ := newApp(t, newConfig(t, tt.mode, false))

			e, ok := a.Table.Lookup(http.MethodGet, "/superbowl/setup")
			if ok != tt.setup {
				t.Fatalf("Lookup(/superbowl/setup) found = %v, want %v", ok, tt.setup)
			}
			if ok && (e.Ref.Capability != app.ApplicationController || e.Ref.Action != "setup") {
				t.Errorf("setup ref = %s, want %s.setup", e.Ref, app.ApplicationController)
			}

			if _, ok := a.Table.Lookup(http.MethodGet, "/setup"); ok {
				t.Error("setup route mirrored under /")
			}
		})
	}
}

func TestBuildRoutes_Mirrored(t *testing.T) {
	a, _ := newApp(t, newConfig(t, config.ModeDev, false))

	refs := make(map[string]string)
	for _, e := range a.Table.Entries() {
		refs[e.Method+" "+e.Path] = e.Ref.String()
	}

	for _, e := range a.Table.Entries() {
		if e.Scoped || strings.HasPrefix(e.Path, app.Root) {
			continue
		}
		path := app.Root + e.Path
		if e.Path == "/" {
			path = app.Root
		}
		if got := refs[e.Method+" "+path]; got != e.Ref.String() {
			t.Errorf("%s %s mirrored as %q, want %q", e.Method, path, got, e.Ref)
		}
	}

	for _, e := range a.Table.Entries() {
		if e.Scoped || !strings.HasPrefix(e.Path, app.Root) {
			continue
		}
		path := strings.TrimPrefix(e.Path, app.Root)
		if path == "" {
			path = "/"
		}
		if got := refs[e.Method+" "+path]; got != e.Ref.String() {
			t.Errorf("%s %s has root counterpart %q, want %q", e.Method, e.Path, got, e.Ref)
		}
	}
}

func TestBuildRoutes_Dispatch(t *testing.T) {
	a, _ := newApp(t, newConfig(t, config.ModeDev, false))

	tests := []struct {
		method string
		path   string
		ref    string
	}{
		{"GET", "/", "ApplicationController.index"},
		{"GET", "/superbowl", "ApplicationController.index"},
		{"GET", "/exhibitions", "ApplicationController.exhibitions"},
		{"GET", "/bowl", "BowlController.listBowl"},
		{"GET", "/superbowl/bowl", "BowlController.listBowl"},
		{"POST", "/registerBowl", "BowlController.registerBowl"},
		{"POST", "/superbowl/registerBowlConfirmation", "BowlController.registerBowlConfirmation"},
		{"POST", "/registerBowlCompletion", "BowlController.registerBowlCompletion"},
		{"GET", "/customer", "Customer.list"},
		{"GET", "/timber", "Timber.list"},
		{"GET", "/assets/css/superbowl.css", "AssetsController.serveStatic"},
		{"GET", "/superbowl/assets/webjars/jquery/jquery.min.js", "AssetsController.serveWebJars"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			e, ok := a.Table.Lookup(tt.method, tt.path)
			if !ok {
				t.Fatalf("Lookup(%s %s) not found", tt.method, tt.path)
			}
			if e.Ref.String() != tt.ref {
				t.Errorf("Lookup(%s %s) = %s, want %s", tt.method, tt.path, e.Ref, tt.ref)
			}
		})
	}

	if _, ok := a.Table.Lookup(http.MethodGet, "/nonexistent"); ok {
		t.Error("Lookup(/nonexistent) found a route")
	}
}

func TestBuildRoutes_Register(t *testing.T) {
	a, _ := newApp(t, newConfig(t, config.ModeDev, false))

	mux := http.NewServeMux()
	if err := a.Table.Register(mux); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/superbowl/assets/robots.txt", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("GET robots.txt status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/superbowl", nil))
	var page app.Page
	if err := json.NewDecoder(rec.Body).Decode(&page); err != nil {
		t.Fatalf("decode index: %v", err)
	}
	if page.Name != "index" {
		t.Errorf("page = %q, want %q", page.Name, "index")
	}
}

func expectSetup(mock sqlmock.Sqlmock, existing int) {
	mock.ExpectBegin()
	mock.ExpectExec("LOCK TABLE subusers").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM subusers").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(existing))
	if existing == 0 {
		mock.ExpectExec("INSERT INTO subusers").WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()
}

func TestSetupRoute(t *testing.T) {
	a, mock := newApp(t, newConfig(t, config.ModeTest, false))

	mux := http.NewServeMux()
	if err := a.Table.Register(mux); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	expectSetup(mock, 1)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/superbowl/setup", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]bool
	json.NewDecoder(rec.Body).Decode(&body)
	if body["created"] {
		t.Error("created = true, want false")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestStartupAction(t *testing.T) {
	tests := []struct {
		name  string
		mode  string
		seed  bool
		calls bool
	}{
		{"dev seeds", config.ModeDev, true, true},
		{"test seeds", config.ModeTest, true, true},
		{"prod never seeds", config.ModeProd, true, false},
		{"seeding disabled", config.ModeDev, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, mock := newApp(t, newConfig(t, tt.mode, tt.seed))
			if tt.calls {
				expectSetup(mock, 0)
			}

			if err := a.Actions.Run(context.Background()); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("expectations: %v", err)
			}
		})
	}
}

func TestStartupAction_SeedFailure(t *testing.T) {
	a, mock := newApp(t, newConfig(t, config.ModeDev, true))

	mock.ExpectBegin().WillReturnError(context.DeadlineExceeded)

	if err := a.Actions.Run(context.Background()); err == nil {
		t.Error("Run() error = nil, want error")
	}
}

func TestStartupAction_NoPassword(t *testing.T) {
	cfg := newConfig(t, config.ModeDev, true)
	cfg.Setup.Password = ""
	a, mock := newApp(t, cfg)

	if err := a.Actions.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v, want seed skipped", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSetupRoute_NoPassword(t *testing.T) {
	cfg := newConfig(t, config.ModeTest, false)
	cfg.Setup.Password = ""
	a, _ := newApp(t, cfg)

	mux := http.NewServeMux()
	if err := a.Table.Register(mux); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/superbowl/setup", nil))
	if rec.Code != http.StatusPreconditionFailed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusPreconditionFailed)
	}
}

func TestStartupAction_Name(t *testing.T) {
	a, _ := newApp(t, newConfig(t, config.ModeProd, false))

	names := a.Actions.Names()
	if len(names) != 1 || names[0] != "startup" {
		t.Errorf("Names() = %v, want [startup]", names)
	}
}
