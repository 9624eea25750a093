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

func newTestCacheRepo(t *testing.T) (*challanCacheRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &challanCacheRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
		now:    func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
	}
	return repo, mock, db
}

func TestCacheReplaceAll_Success(t *testing.T) {
	repo, mock, db := newTestCacheRepo(t)
	defer db.Close()

	entries := []models.ChallanEntry{
		{StudentName: "John Doe", Email: "john@university.edu", Status: models.StatusSent, CreatedAt: "2026-01-01"},
		{StudentName: "Jane Smith", Email: "jane@university.edu", Status: models.StatusPending, CreatedAt: "2026-01-02"},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM challan_cache").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO challan_cache").
		WithArgs("john@university.edu", "John Doe", "sent", "2026-01-01", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO challan_cache").
		WithArgs("jane@university.edu", "Jane Smith", "pending", "2026-01-02", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	if err := repo.ReplaceAll(context.Background(), entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCacheReplaceAll_EmptyListingClearsCache(t *testing.T) {
	repo, mock, db := newTestCacheRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM challan_cache").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	if err := repo.ReplaceAll(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCacheReplaceAll_InsertErrorRollsBack(t *testing.T) {
	repo, mock, db := newTestCacheRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM challan_cache").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO challan_cache").
		WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := repo.ReplaceAll(context.Background(), []models.ChallanEntry{{Email: "x@u.edu"}})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestCacheGetAll_Success(t *testing.T) {
	repo, mock, db := newTestCacheRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"email", "student_name", "status", "created_at"}).
		AddRow("john@university.edu", "John Doe", "delivered", "2026-01-01").
		AddRow("jane@university.edu", "Jane Smith", "failed", "2026-01-02")

	mock.ExpectQuery("SELECT email, student_name, status, created_at FROM challan_cache").
		WillReturnRows(rows)

	entries, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Status != models.StatusDelivered {
		t.Errorf("expected delivered, got %s", entries[0].Status)
	}
	if entries[1].Email != "jane@university.edu" {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}

func TestCacheGetAll_Empty(t *testing.T) {
	repo, mock, db := newTestCacheRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT email, student_name, status, created_at FROM challan_cache").
		WillReturnRows(sqlmock.NewRows([]string{"email", "student_name", "status", "created_at"}))

	entries, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty listing, got %d entries", len(entries))
	}
}

func TestCacheDeleteByEmail_Success(t *testing.T) {
	repo, mock, db := newTestCacheRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM challan_cache").
		WithArgs("john@university.edu").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteByEmail(context.Background(), "john@university.edu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCacheDeleteByEmail_AbsentRowIsNoOp(t *testing.T) {
	repo, mock, db := newTestCacheRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM challan_cache").
		WithArgs("ghost@university.edu").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteByEmail(context.Background(), "ghost@university.edu"); err != nil {
		t.Fatalf("expected delete of absent row to succeed, got %v", err)
	}
}
