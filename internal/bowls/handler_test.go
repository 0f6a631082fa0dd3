package bowls_test

import (
	"bytes"
	"context"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/superbowl/internal/bowls"
	"github.com/JaimeStill/superbowl/pkg/cache"
	"github.com/JaimeStill/superbowl/pkg/flow"
	"github.com/JaimeStill/superbowl/pkg/pagination"
	"github.com/JaimeStill/superbowl/pkg/session"
	"github.com/JaimeStill/superbowl/pkg/storage"
	"github.com/JaimeStill/superbowl/pkg/validation"
)

// fakeSystem answers the calls the handler tests make; any other call
// panics on the nil embedded System.
type fakeSystem struct {
	bowls.System

	maxIndex   int
	bowl       bowls.Bowl
	filter     bowls.PortfolioFilter
	registered []bowls.RegisterCommand
	imageName  string
}

func (f *fakeSystem) MaxIndex(context.Context) (int, error) {
	return f.maxIndex, nil
}

func (f *fakeSystem) Register(_ context.Context, cmd bowls.RegisterCommand) (*bowls.Bowl, error) {
	f.registered = append(f.registered, cmd)
	return &bowls.Bowl{ID: 8, Index: cmd.Index, Ordinal: cmd.Ordinal}, nil
}

func (f *fakeSystem) Portfolio(_ context.Context, filter bowls.PortfolioFilter, page pagination.PageRequest) (*pagination.PageResult[bowls.Bowl], error) {
	f.filter = filter
	result := pagination.NewPageResult([]bowls.Bowl{f.bowl}, 1, page.Page, page.PageSize)
	return &result, nil
}

func (f *fakeSystem) Find(_ context.Context, id int64) (*bowls.Bowl, error) {
	if id != f.bowl.ID {
		return nil, bowls.ErrNotFound
	}
	b := f.bowl
	return &b, nil
}

func (f *fakeSystem) SetImage(_ context.Context, id int64, name string) (*bowls.Bowl, error) {
	f.imageName = name
	b := f.bowl
	b.ImageName = name
	return &b, nil
}

type harness struct {
	handler  *bowls.Handler
	sys      *fakeSystem
	sessions *session.Store
	images   storage.System
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)

	sessionCfg := &session.Config{}
	if err := sessionCfg.Finalize(nil); err != nil {
		t.Fatalf("session Finalize() error = %v", err)
	}
	sessions := session.New(cache.NewMemory(), sessionCfg)

	storageCfg := &storage.Config{BasePath: t.TempDir()}
	if err := storageCfg.Finalize(nil); err != nil {
		t.Fatalf("storage Finalize() error = %v", err)
	}
	images, err := storage.New(storageCfg, logger)
	if err != nil {
		t.Fatalf("storage New() error = %v", err)
	}

	sys := &fakeSystem{
		maxIndex: 41,
		bowl:     bowls.Bowl{ID: 7, Ordinal: 107, ImageName: "bowl-107.jpg"},
	}
	deps := flow.Deps{
		Sessions:  sessions,
		Validator: validation.New(),
		MaxBody:   1 << 20,
		Logger:    logger,
	}

	return &harness{
		handler:  bowls.NewHandler(sys, bowls.Lookups{}, images, deps, pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}),
		sys:      sys,
		sessions: sessions,
		images:   images,
	}
}

// draft stores form as the registration draft and returns the session cookie.
func (h *harness) draft(t *testing.T, form bowls.Form) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/registerBowlConfirmation", nil)
	if err := h.sessions.Put(rec, req, "bowl", form); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("Put() issued no session cookie")
	}
	return cookies[0]
}

func TestHandler_Portfolio_InvalidFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"year", "year=zweitausend"},
		{"sold", "sold=maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			rec := httptest.NewRecorder()
			h.handler.Portfolio(rec, httptest.NewRequest(http.MethodGet, "/portfolioBowl?"+tt.query, nil))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestHandler_Portfolio_Filter(t *testing.T) {
	h := newHarness(t)
	rec := httptest.NewRecorder()
	h.handler.Portfolio(rec, httptest.NewRequest(http.MethodGet,
		"/portfolioBowl?statusCode=TROC&statusCode=VERK&location=Markt&year=2024&sold=true", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	f := h.sys.filter
	if len(f.StatusCodes) != 2 || f.StatusCodes[0] != "TROC" || f.StatusCodes[1] != "VERK" {
		t.Errorf("StatusCodes = %v, want [TROC VERK]", f.StatusCodes)
	}
	if f.Location == nil || *f.Location != "Markt" {
		t.Errorf("Location = %v, want Markt", f.Location)
	}
	if f.Year == nil || *f.Year != 2024 {
		t.Errorf("Year = %v, want 2024", f.Year)
	}
	if f.Sold == nil || !*f.Sold {
		t.Errorf("Sold = %v, want true", f.Sold)
	}
}

func TestHandler_RegisterComplete_DefaultIndex(t *testing.T) {
	h := newHarness(t)
	cookie := h.draft(t, bowls.Form{
		Ordinal:        "108",
		GeoRegionID:    "1",
		ManufactureID:  "1",
		StatusID:       "2",
		TimberID:       "3",
		TimberOriginID: "4",
		Price:          "120.00",
	})

	req := httptest.NewRequest(http.MethodPost, "/registerBowlCompletion", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	h.handler.RegisterComplete(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/superbowl/bowl" {
		t.Errorf("Location = %q, want /superbowl/bowl", loc)
	}
	if len(h.sys.registered) != 1 {
		t.Fatalf("Register() called %d times, want 1", len(h.sys.registered))
	}
	if got := h.sys.registered[0].Index; got != 42 {
		t.Errorf("Index = %d, want MaxIndex()+1 = 42", got)
	}
}

func TestHandler_RegisterComplete_NoDraft(t *testing.T) {
	h := newHarness(t)
	rec := httptest.NewRecorder()
	h.handler.RegisterComplete(rec, httptest.NewRequest(http.MethodPost, "/registerBowlCompletion", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/superbowl/registerBowl" {
		t.Errorf("Location = %q, want /superbowl/registerBowl", loc)
	}
	if len(h.sys.registered) != 0 {
		t.Errorf("Register() called %d times without a draft", len(h.sys.registered))
	}
}

func uploadRequest(t *testing.T, bowlID, filename string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("bowlId", bowlID); err != nil {
		t.Fatalf("WriteField() error = %v", err)
	}
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("CreateFormFile() error = %v", err)
	}
	part.Write(data)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/uploadBowlImage", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandler_UploadImage(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	if err := h.images.Store(ctx, "images/bowl-107.jpg", []byte("old")); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	rec := httptest.NewRecorder()
	h.handler.UploadImage(rec, uploadRequest(t, "7", "Schale.PNG", []byte("png")))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if h.sys.imageName != "bowl-107.png" {
		t.Errorf("SetImage() name = %q, want bowl-107.png", h.sys.imageName)
	}

	obj, err := h.images.Retrieve(ctx, "images/bowl-107.png")
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if string(obj.Data) != "png" {
		t.Errorf("stored data = %q, want png", obj.Data)
	}
	if ok, _ := h.images.Exists(ctx, "images/bowl-107.jpg"); ok {
		t.Error("replaced image still stored")
	}
}

func TestHandler_UploadImage_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		bowlID   string
		filename string
		status   int
	}{
		{"unsupported type", "7", "notes.txt", http.StatusBadRequest},
		{"missing id", "", "Schale.png", http.StatusBadRequest},
		{"unknown bowl", "9", "Schale.png", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			rec := httptest.NewRecorder()
			h.handler.UploadImage(rec, uploadRequest(t, tt.bowlID, tt.filename, []byte("data")))

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if h.sys.imageName != "" {
				t.Errorf("SetImage() called with %q", h.sys.imageName)
			}
			if strings.Contains(tt.filename, ".png") {
				if ok, _ := h.images.Exists(context.Background(), "images/bowl-107.png"); ok {
					t.Error("rejected upload was stored")
				}
			}
		})
	}
}
