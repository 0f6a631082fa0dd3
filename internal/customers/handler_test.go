package customers_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/JaimeStill/superbowl/internal/customers"
	"github.com/JaimeStill/superbowl/pkg/cache"
	"github.com/JaimeStill/superbowl/pkg/flow"
	"github.com/JaimeStill/superbowl/pkg/session"
	"github.com/JaimeStill/superbowl/pkg/validation"
)

type fakeSystem struct {
	customers.System

	maxIndex   int
	registered []customers.RegisterCommand
}

func (f *fakeSystem) MaxIndex(context.Context) (int, error) {
	return f.maxIndex, nil
}

func (f *fakeSystem) Register(_ context.Context, cmd customers.RegisterCommand) (*customers.Customer, error) {
	f.registered = append(f.registered, cmd)
	c := cmd.Customer
	c.Index = cmd.Index
	return &c, nil
}

func newHandler(t *testing.T) (*customers.Handler, *fakeSystem) {
	t.Helper()
	cfg := &session.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	sys := &fakeSystem{maxIndex: 11}
	deps := flow.Deps{
		Sessions:  session.New(cache.NewMemory(), cfg),
		Validator: validation.New(),
		MaxBody:   1 << 20,
		Logger:    slog.New(slog.DiscardHandler),
	}
	return customers.NewHandler(sys, deps), sys
}

func postForm(path string, values url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func TestHandler_ConfirmThenComplete(t *testing.T) {
	h, sys := newHandler(t)

	rec := httptest.NewRecorder()
	h.Confirm(rec, postForm("/registerCustomerConfirmation", url.Values{
		"salutation":  {"Frau"},
		"givenName":   {"Anna"},
		"familyName":  {"Berg"},
		"emailUser":   {"anna"},
		"emailDomain": {"example.com"},
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("Confirm() status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	cookies := rec.Result().Cookies()

	rec = httptest.NewRecorder()
	h.Complete(rec, postForm("/registerCustomerCompletion", nil, cookies...))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Complete() status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/superbowl/customer" {
		t.Errorf("Location = %q, want /superbowl/customer", loc)
	}
	if len(sys.registered) != 1 {
		t.Fatalf("Register() called %d times, want 1", len(sys.registered))
	}
	cmd := sys.registered[0]
	if cmd.Index != 12 {
		t.Errorf("Index = %d, want MaxIndex()+1 = 12", cmd.Index)
	}
	if cmd.Email != "anna@example.com" {
		t.Errorf("Email = %q, want anna@example.com", cmd.Email)
	}
}

func TestHandler_Confirm_Violations(t *testing.T) {
	h, _ := newHandler(t)

	rec := httptest.NewRecorder()
	h.Confirm(rec, postForm("/registerCustomerConfirmation", url.Values{
		"salutation":  {"Herr"},
		"emailUser":   {"anna@x"},
		"emailDomain": {"example.com"},
	}))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("Confirm() status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("rejected form stored a draft")
	}
}

func TestHandler_Complete_NoDraft(t *testing.T) {
	h, sys := newHandler(t)

	rec := httptest.NewRecorder()
	h.Complete(rec, postForm("/registerCustomerCompletion", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Complete() status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/superbowl/registerCustomer" {
		t.Errorf("Location = %q, want /superbowl/registerCustomer", loc)
	}
	if len(sys.registered) != 0 {
		t.Errorf("Register() called %d times without a draft", len(sys.registered))
	}
}
