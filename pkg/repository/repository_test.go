package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/JaimeStill/superbowl/pkg/repository"
)

var (
	errNotFound  = errors.New("not found")
	errDuplicate = errors.New("duplicate")
)

func TestMapError(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", sql.ErrNoRows, errNotFound},
		{"wrapped no rows", fmt.Errorf("query: %w", sql.ErrNoRows), errNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, errDuplicate},
		{"other", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repository.MapError(tt.err, errNotFound, errDuplicate)
			if got != tt.want {
				t.Errorf("MapError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestMapError_ForeignKeyPassesThrough(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503"}
	if got := repository.MapError(fk, errNotFound, errDuplicate); got != error(fk) {
		t.Errorf("MapError(23503) = %v, want %v", got, fk)
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	if !repository.IsForeignKeyViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"})) {
		t.Error("IsForeignKeyViolation(23503) = false, want true")
	}
	if repository.IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("IsForeignKeyViolation(23505) = true, want false")
	}
}

func TestQueryMany_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT name FROM partners").
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	got, err := repository.QueryMany(context.Background(), db, "SELECT name FROM partners", nil,
		func(s repository.Scanner) (string, error) {
			var n string
			return n, s.Scan(&n)
		})
	if err != nil {
		t.Fatalf("QueryMany() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("QueryMany() = %#v, want empty non-nil slice", got)
	}
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	_, err = repository.WithTx(context.Background(), db, func(tx *sql.Tx) (int, error) {
		return 0, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("WithTx() = %v, want %v", err, boom)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestExecExpectOne(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE bowls").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bowls").WillReturnResult(sqlmock.NewResult(0, 0))

	ctx := context.Background()
	if err := repository.ExecExpectOne(ctx, db, "UPDATE bowls SET version = version + 1"); err != nil {
		t.Errorf("ExecExpectOne() = %v, want nil", err)
	}
	if err := repository.ExecExpectOne(ctx, db, "UPDATE bowls SET version = version + 1"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("ExecExpectOne() = %v, want %v", err, sql.ErrNoRows)
	}
}
