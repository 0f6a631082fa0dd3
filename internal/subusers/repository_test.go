package subusers_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/JaimeStill/superbowl/internal/subusers"
)

var account = subusers.Account{
	UserID:   "admin",
	UserName: "Administrator",
	Email:    "admin@example.com",
	Password: "secret",
}

func newSystem(t *testing.T) (subusers.System, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return subusers.New(db, account, slog.New(slog.DiscardHandler)), mock
}

func TestSetup_CreatesWhenEmpty(t *testing.T) {
	sys, mock := newSystem(t)

	mock.ExpectBegin()
	mock.ExpectExec("LOCK TABLE subusers").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM subusers").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO subusers").
		WithArgs("admin", sqlmock.AnyArg(), "Administrator", "admin@example.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	created, err := sys.Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if !created {
		t.Error("Setup() created = false, want true")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSetup_SkipsWhenPresent(t *testing.T) {
	sys, mock := newSystem(t)

	mock.ExpectBegin()
	mock.ExpectExec("LOCK TABLE subusers").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM subusers").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	created, err := sys.Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if created {
		t.Error("Setup() created = true, want false")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSetup_RollsBackOnFailure(t *testing.T) {
	sys, mock := newSystem(t)

	mock.ExpectBegin()
	mock.ExpectExec("LOCK TABLE subusers").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM subusers").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO subusers").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if _, err := sys.Setup(context.Background()); err == nil {
		t.Error("Setup() error = nil, want error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSetup_RequiresPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	noPassword := account
	noPassword.Password = ""
	sys := subusers.New(db, noPassword, slog.New(slog.DiscardHandler))

	created, err := sys.Setup(context.Background())
	if !errors.Is(err, subusers.ErrPasswordRequired) {
		t.Fatalf("Setup() = %v, want %v", err, subusers.ErrPasswordRequired)
	}
	if created {
		t.Error("Setup() created = true without a password")
	}
	if got := subusers.MapHTTPStatus(err); got != http.StatusPreconditionFailed {
		t.Errorf("MapHTTPStatus() = %d, want %d", got, http.StatusPreconditionFailed)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("database touched without a password: %v", err)
	}
}

func TestCount(t *testing.T) {
	sys, mock := newSystem(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM public.subusers").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := sys.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Count() = %d, want 2", n)
	}
}
