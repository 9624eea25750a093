package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/unidesk/challan-desk/internal/logger"
	"github.com/unidesk/challan-desk/models"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &sessionRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSessionSave_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()
	session := models.Session{
		Token:         "T1",
		Email:         "a@u.edu",
		EstablishedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO session").
		WithArgs(session.Token, session.Email, session.EstablishedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSessionSave_Overwrite(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()

	// Establishing twice simply overwrites; both calls run the same upsert.
	mock.ExpectExec("INSERT INTO session").
		WithArgs("T1", "a@u.edu", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO session").
		WithArgs("T2", "b@u.edu", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(ctx, models.Session{Token: "T1", Email: "a@u.edu", EstablishedAt: time.Now()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Save(ctx, models.Session{Token: "T2", Email: "b@u.edu", EstablishedAt: time.Now()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSessionSave_ExecError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO session").
		WillReturnError(errors.New("disk full"))

	err := repo.Save(context.Background(), models.Session{Token: "T1"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestSessionGet_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"token", "email", "established_at"}).
		AddRow("T1", "a@u.edu", now)

	mock.ExpectQuery("SELECT token, email, established_at").
		WillReturnRows(rows)

	session, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Token != "T1" {
		t.Errorf("expected token T1, got %s", session.Token)
	}
	if session.Email != "a@u.edu" {
		t.Errorf("expected email a@u.edu, got %s", session.Email)
	}
	if !session.IsActive() {
		t.Error("expected restored session to be active")
	}
}

func TestSessionGet_NotFound(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT token, email, established_at").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background())
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionGet_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT token, email, established_at").
		WillReturnError(errors.New("db network error"))

	_, err := repo.Get(context.Background())
	if err == nil || errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected unexpected DB error, got %v", err)
	}
}

func TestSessionClear_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM session").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Clear(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSessionClear_NoSessionIsNoOp(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	// zero affected rows is still success
	mock.ExpectExec("DELETE FROM session").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Clear(context.Background()); err != nil {
		t.Fatalf("expected no-op clear to succeed, got %v", err)
	}
}
