package service

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidesk/challan-desk/internal/adapter"
	"github.com/unidesk/challan-desk/internal/logger"
	"github.com/unidesk/challan-desk/internal/mock"
	"github.com/unidesk/challan-desk/models"
	"go.uber.org/mock/gomock"
)

func newTestChallanSvc(t *testing.T, ctrl *gomock.Controller) (ChallanService, *mock.MockPortalAdapter, *mock.MockChallanCacheRepository) {
	t.Helper()

	mockAdapter := mock.NewMockPortalAdapter(ctrl)
	mockCache := mock.NewMockChallanCacheRepository(ctrl)
	svc := NewChallanService(mockAdapter, mockCache, logger.Nop())

	return svc, mockAdapter, mockCache
}

// ── UploadCSV ───────────────────────────────────────────────────────────────

func TestChallanService_UploadCSV_RejectsNonCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestChallanSvc(t, ctrl)
	ctx := context.Background()

	for _, path := range []string{"students.xlsx", "students.txt", "students"} {
		_, err := svc.UploadCSV(ctx, path)
		assert.ErrorIs(t, err, ErrValidationNotCSV, path)
	}

	_, err := svc.UploadCSV(ctx, "   ")
	assert.ErrorIs(t, err, ErrValidationBlankFields)
}

func TestChallanService_UploadCSV_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestChallanSvc(t, ctrl)
	ctx := context.Background()

	const csvBody = "student_name,roll_number,class_name,email\nAlice,42,BSCS,alice@uni.edu\n"
	path := filepath.Join(t.TempDir(), "Students.CSV")
	require.NoError(t, os.WriteFile(path, []byte(csvBody), 0o600))

	mockAdapter.EXPECT().
		SendCSV(ctx, "Students.CSV", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, file io.Reader) (models.CSVImportResponse, error) {
			content, err := io.ReadAll(file)
			require.NoError(t, err)
			assert.Equal(t, csvBody, string(content))
			return models.CSVImportResponse{Status: "Emails sent successfully"}, nil
		})

	got, err := svc.UploadCSV(ctx, path)

	require.NoError(t, err)
	assert.Equal(t, "Emails sent successfully", got.Status)
}

func TestChallanService_UploadCSV_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestChallanSvc(t, ctrl)

	_, err := svc.UploadCSV(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}

// ── SubmitManual ────────────────────────────────────────────────────────────

func TestChallanService_SubmitManual_BlankFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestChallanSvc(t, ctrl)
	ctx := context.Background()

	entry := models.ManualEntry{StudentName: "Alice", RollNumber: "42", ClassName: "BSCS", Email: ""}

	_, err := svc.SubmitManual(ctx, entry)
	assert.ErrorIs(t, err, ErrValidationBlankFields)
}

func TestChallanService_SubmitManual_DefaultExpiryApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestChallanSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		ManualEntry(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.ManualEntry) (models.ManualEntryResponse, error) {
			assert.Equal(t, defaultExpiryDate, entry.ExpiryDate)
			return models.ManualEntryResponse{Status: "sent", ChallanNo: "CH-2026-0042"}, nil
		})

	got, err := svc.SubmitManual(ctx, models.ManualEntry{
		StudentName: "Alice",
		RollNumber:  "42",
		ClassName:   "BSCS",
		Email:       "alice@uni.edu",
	})

	require.NoError(t, err)
	assert.Equal(t, "CH-2026-0042", got.ChallanNo)
}

func TestChallanService_SubmitManual_ExplicitExpiryKept(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestChallanSvc(t, ctrl)
	ctx := context.Background()

	entry := models.ManualEntry{
		StudentName: "Alice",
		RollNumber:  "42",
		ClassName:   "BSCS",
		Email:       "alice@uni.edu",
		ExpiryDate:  "2026-09-30",
	}

	mockAdapter.EXPECT().
		ManualEntry(ctx, entry).
		Return(models.ManualEntryResponse{Status: "sent", ChallanNo: "CH-2026-0043"}, nil)

	_, err := svc.SubmitManual(ctx, entry)
	require.NoError(t, err)
}

// ── List / CachedList ───────────────────────────────────────────────────────

func TestChallanService_List_RefreshesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache := newTestChallanSvc(t, ctrl)
	ctx := context.Background()

	entries := []models.ChallanEntry{
		{StudentName: "Alice", Email: "alice@uni.edu", Status: "delivered"},
		{StudentName: "Bob", Email: "bob@uni.edu", Status: "pending"},
	}

	gomock.InOrder(
		mockAdapter.EXPECT().ListChallans(ctx).Return(entries, nil),
		mockCache.EXPECT().ReplaceAll(ctx, entries).Return(nil),
	)

	got, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestChallanService_List_CacheFailureDoesNotFailListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache := newTestChallanSvc(t, ctrl)
	ctx := context.Background()

	entries := []models.ChallanEntry{{StudentName: "Alice", Email: "alice@uni.edu", Status: "sent"}}

	mockAdapter.EXPECT().ListChallans(ctx).Return(entries, nil)
	mockCache.EXPECT().ReplaceAll(ctx, entries).Return(errors.New("database is locked"))

	got, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestChallanService_List_PortalFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestChallanSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListChallans(ctx).Return(nil, adapter.ErrInternalServerError)

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}

func TestChallanService_CachedList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCache := newTestChallanSvc(t, ctrl)
	ctx := context.Background()

	entries := []models.ChallanEntry{{StudentName: "Alice", Email: "alice@uni.edu", Status: "failed"}}
	mockCache.EXPECT().GetAll(ctx).Return(entries, nil)

	got, err := svc.CachedList(ctx)

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

// ── Delete ──────────────────────────────────────────────────────────────────

// A successful deletion prunes the cache locally; the listing is not
// re-fetched.
func TestChallanService_Delete_PrunesCacheWithoutRefetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache := newTestChallanSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().DeleteChallan(ctx, "alice@uni.edu").Return(nil),
		mockCache.EXPECT().DeleteByEmail(ctx, "alice@uni.edu").Return(nil),
	)

	require.NoError(t, svc.Delete(ctx, "alice@uni.edu"))
}

func TestChallanService_Delete_PortalFailureSkipsPrune(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestChallanSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteChallan(ctx, "alice@uni.edu").Return(adapter.ErrNotFound)

	err := svc.Delete(ctx, "alice@uni.edu")
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestChallanService_Delete_BlankEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestChallanSvc(t, ctrl)

	assert.ErrorIs(t, svc.Delete(context.Background(), "  "), ErrValidationBlankFields)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func TestCountByStatus(t *testing.T) {
	entries := []models.ChallanEntry{
		{Status: "sent"},
		{Status: "Sent"},
		{Status: "DELIVERED"},
		{Status: "failed"},
		{Status: "pending"},
		{Status: "weird-status"},
		{Status: ""},
	}

	counts := CountByStatus(entries)

	assert.Equal(t, 2, counts[models.StatusSent])
	assert.Equal(t, 1, counts[models.StatusDelivered])
	assert.Equal(t, 1, counts[models.StatusFailed])
	assert.Equal(t, 3, counts[models.StatusPending])
}

func TestFilterEntries(t *testing.T) {
	entries := []models.ChallanEntry{
		{StudentName: "Alice Kamran", Email: "alice@uni.edu", Status: "delivered"},
		{StudentName: "Bob", Email: "bob@uni.edu", Status: "pending"},
		{StudentName: "Carol", Email: "carol@uni.edu", Status: "failed"},
	}

	assert.Equal(t, entries, FilterEntries(entries, "   "))

	byName := FilterEntries(entries, "kamran")
	require.Len(t, byName, 1)
	assert.Equal(t, "alice@uni.edu", byName[0].Email)

	byEmail := FilterEntries(entries, "BOB@")
	require.Len(t, byEmail, 1)
	assert.Equal(t, "Bob", byEmail[0].StudentName)

	byStatus := FilterEntries(entries, "fail")
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Carol", byStatus[0].StudentName)

	assert.Empty(t, FilterEntries(entries, "zzz"))
}
