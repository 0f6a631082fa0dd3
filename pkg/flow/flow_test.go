package flow_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/JaimeStill/superbowl/pkg/cache"
	"github.com/JaimeStill/superbowl/pkg/flow"
	"github.com/JaimeStill/superbowl/pkg/session"
	"github.com/JaimeStill/superbowl/pkg/validation"
)

type customerForm struct {
	Name  string `json:"name" validate:"required,max=64"`
	Email string `json:"email" validate:"omitempty,email"`
}

var errTaken = errors.New("taken")

func status(err error) int {
	if errors.Is(err, errTaken) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func newFlow(t *testing.T) (*flow.Flow[customerForm], *session.Config) {
	t.Helper()
	cfg := &session.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	deps := flow.Deps{
		Sessions:  session.New(cache.NewMemory(), cfg),
		Validator: validation.New(),
		MaxBody:   1 << 20,
		Logger:    slog.New(slog.DiscardHandler),
	}
	return flow.New[customerForm](deps, "customer", "/superbowl/customer", "/superbowl/registerCustomer", status), cfg
}

func postForm(path string, values url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func TestFlow_ConfirmThenComplete(t *testing.T) {
	f, cfg := newFlow(t)

	rec := httptest.NewRecorder()
	f.Confirm(rec, postForm("/registerCustomerConfirmation", url.Values{
		"name":  {"<i>Anna</i> Berg"},
		"email": {"anna@example.com"},
	}), nil, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("Confirm() status = %d, want %d", rec.Code, http.StatusOK)
	}

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == cfg.CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("Confirm() issued no session cookie")
	}

	var committed customerForm
	rec = httptest.NewRecorder()
	f.Complete(rec, postForm("/registerCustomerCompletion", nil, cookie),
		func(ctx context.Context, form customerForm) (string, error) {
			committed = form
			return "", nil
		})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Complete() status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got := rec.Header().Get("Location"); got != "/superbowl/customer" {
		t.Errorf("Location = %q, want %q", got, "/superbowl/customer")
	}
	if committed.Name != "Anna Berg" {
		t.Errorf("committed Name = %q, want %q", committed.Name, "Anna Berg")
	}

	rec = httptest.NewRecorder()
	f.Complete(rec, postForm("/registerCustomerCompletion", nil, cookie),
		func(ctx context.Context, form customerForm) (string, error) {
			t.Error("draft committed twice")
			return "", nil
		})
	if got := rec.Header().Get("Location"); got != "/superbowl/registerCustomer" {
		t.Errorf("second Complete() Location = %q, want %q", got, "/superbowl/registerCustomer")
	}
}

func TestFlow_Confirm_Violations(t *testing.T) {
	f, _ := newFlow(t)

	rec := httptest.NewRecorder()
	f.Confirm(rec, postForm("/registerCustomerConfirmation", url.Values{"email": {"nope"}}),
		func(ctx context.Context) (any, error) {
			return map[string]int{"customerMaxIndex": 4}, nil
		}, nil)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}

	var body struct {
		Violations []validation.Violation `json:"violations"`
		Context    map[string]int         `json:"context"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Violations) != 2 {
		t.Errorf("violations = %d, want 2", len(body.Violations))
	}
	if body.Context["customerMaxIndex"] != 4 {
		t.Errorf("context = %v, want customerMaxIndex 4", body.Context)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("rejected form stored a draft")
	}
}

func TestFlow_Confirm_ResolveError(t *testing.T) {
	f, _ := newFlow(t)

	rec := httptest.NewRecorder()
	f.Confirm(rec, postForm("/registerCustomerConfirmation", url.Values{"name": {"Anna"}}), nil,
		func(ctx context.Context, form *customerForm) (any, error) {
			return nil, errTaken
		})

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestFlow_Complete_CommitError(t *testing.T) {
	f, cfg := newFlow(t)

	rec := httptest.NewRecorder()
	f.Confirm(rec, postForm("/registerCustomerConfirmation", url.Values{"name": {"Anna"}}), nil, nil)

	req := postForm("/registerCustomerCompletion", nil)
	for _, c := range rec.Result().Cookies() {
		if c.Name == cfg.CookieName {
			req.AddCookie(c)
		}
	}

	rec = httptest.NewRecorder()
	f.Complete(rec, req, func(ctx context.Context, form customerForm) (string, error) {
		return "", errTaken
	})
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestFlow_Start(t *testing.T) {
	f, _ := newFlow(t)

	rec := httptest.NewRecorder()
	f.Start(rec, httptest.NewRequest(http.MethodGet, "/registerCustomer", nil), map[string]int{"customerMaxIndex": 1})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}
