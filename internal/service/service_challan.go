package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/unidesk/challan-desk/internal/adapter"
	"github.com/unidesk/challan-desk/internal/logger"
	"github.com/unidesk/challan-desk/internal/store"
	"github.com/unidesk/challan-desk/models"
)

// defaultExpiryDate is used when a manual entry leaves the expiry blank.
const defaultExpiryDate = "2025-12-31"

type challanService struct {
	adapter adapter.PortalAdapter
	cache   store.ChallanCacheRepository

	logger *logger.Logger
}

func NewChallanService(portalAdapter adapter.PortalAdapter, cache store.ChallanCacheRepository, logger *logger.Logger) ChallanService {
	return &challanService{adapter: portalAdapter, cache: cache, logger: logger.GetChildLogger("challan service")}
}

// UploadCSV implements [ChallanService]. Only the extension is checked
// client-side; row-level validation belongs to the portal.
func (c *challanService) UploadCSV(ctx context.Context, path string) (models.CSVImportResponse, error) {
	if isBlank(path) {
		return models.CSVImportResponse{}, ErrValidationBlankFields
	}
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return models.CSVImportResponse{}, ErrValidationNotCSV
	}

	file, err := os.Open(path)
	if err != nil {
		return models.CSVImportResponse{}, fmt.Errorf("open csv file: %w", err)
	}
	defer func() { _ = file.Close() }()

	resp, err := c.adapter.SendCSV(ctx, filepath.Base(path), file)
	if err != nil {
		return models.CSVImportResponse{}, fmt.Errorf("send csv: %w", err)
	}

	c.logger.Info().Str("file", filepath.Base(path)).Msg("batch uploaded")

	return resp, nil
}

// SubmitManual implements [ChallanService].
func (c *challanService) SubmitManual(ctx context.Context, entry models.ManualEntry) (models.ManualEntryResponse, error) {
	if isBlank(entry.StudentName) || isBlank(entry.RollNumber) || isBlank(entry.ClassName) || isBlank(entry.Email) {
		return models.ManualEntryResponse{}, ErrValidationBlankFields
	}
	if isBlank(entry.ExpiryDate) {
		entry.ExpiryDate = defaultExpiryDate
	}

	resp, err := c.adapter.ManualEntry(ctx, entry)
	if err != nil {
		return models.ManualEntryResponse{}, fmt.Errorf("manual entry: %w", err)
	}

	c.logger.Info().Str("challan_no", resp.ChallanNo).Msg("challan generated")

	return resp, nil
}

// List implements [ChallanService]. The cache refresh is best-effort: a
// failed write is logged and the live listing is still returned.
func (c *challanService) List(ctx context.Context) ([]models.ChallanEntry, error) {
	entries, err := c.adapter.ListChallans(ctx)
	if err != nil {
		return nil, fmt.Errorf("list challans: %w", err)
	}

	if err := c.cache.ReplaceAll(ctx, entries); err != nil {
		c.logger.Error().Err(err).Msg("delivery-status cache refresh failed")
	}

	return entries, nil
}

// CachedList implements [ChallanService].
func (c *challanService) CachedList(ctx context.Context) ([]models.ChallanEntry, error) {
	entries, err := c.cache.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read cached listing: %w", err)
	}

	return entries, nil
}

// Delete implements [ChallanService]. The cache is pruned locally instead
// of re-fetching the whole listing after every deletion.
func (c *challanService) Delete(ctx context.Context, email string) error {
	if isBlank(email) {
		return ErrValidationBlankFields
	}

	if err := c.adapter.DeleteChallan(ctx, email); err != nil {
		return fmt.Errorf("delete challan: %w", err)
	}

	if err := c.cache.DeleteByEmail(ctx, email); err != nil {
		c.logger.Error().Err(err).Str("email", email).Msg("cache prune failed")
	}

	return nil
}

// CountByStatus tallies entries per delivery-status bucket. Statuses are
// matched case-insensitively; anything unrecognised counts as pending.
func CountByStatus(entries []models.ChallanEntry) map[models.DeliveryStatus]int {
	counts := make(map[models.DeliveryStatus]int, 4)
	for _, entry := range entries {
		counts[normalizeStatus(entry.Status)]++
	}
	return counts
}

func normalizeStatus(raw models.DeliveryStatus) models.DeliveryStatus {
	switch models.DeliveryStatus(strings.ToLower(strings.TrimSpace(string(raw)))) {
	case models.StatusSent:
		return models.StatusSent
	case models.StatusDelivered:
		return models.StatusDelivered
	case models.StatusFailed:
		return models.StatusFailed
	default:
		return models.StatusPending
	}
}

// FilterEntries returns the entries whose student name, email, or status
// contains query, case-insensitively. A blank query returns entries
// unchanged.
func FilterEntries(entries []models.ChallanEntry, query string) []models.ChallanEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return entries
	}

	filtered := make([]models.ChallanEntry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.StudentName), query) ||
			strings.Contains(strings.ToLower(entry.Email), query) ||
			strings.Contains(strings.ToLower(string(entry.Status)), query) {
			filtered = append(filtered, entry)
		}
	}

	return filtered
}
