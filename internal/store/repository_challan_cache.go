package store

import (
	"context"
	"fmt"
	"time"

	"github.com/unidesk/challan-desk/internal/logger"
	"github.com/unidesk/challan-desk/models"
)

// challanCacheRepository is the SQLite-backed implementation of
// [ChallanCacheRepository]. It mirrors the portal's delivery-status
// listing keyed by student email.
type challanCacheRepository struct {
	logger *logger.Logger
	db     *DB

	// now is swappable in tests.
	now func() time.Time
}

// NewChallanCacheRepository constructs a [ChallanCacheRepository] backed
// by the provided database connection and logger.
func NewChallanCacheRepository(db *DB, logger *logger.Logger) ChallanCacheRepository {
	logger.Debug().Msg("creating challan cache repository")
	return &challanCacheRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// ReplaceAll implements [ChallanCacheRepository]. The swap runs in a
// single transaction so a failed refresh never leaves the cache half
// replaced.
func (r *challanCacheRepository) ReplaceAll(ctx context.Context, entries []models.ChallanEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	clearQuery, clearArgs, err := buildClearCacheQuery()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		r.logger.Err(err).Str("func", "*challanCacheRepository.ReplaceAll").Msg("error clearing cache")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	fetchedAt := r.now()
	for _, entry := range entries {
		query, args, err := buildInsertCacheEntryQuery(entry, fetchedAt)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Err(err).Str("func", "*challanCacheRepository.ReplaceAll").Str("email", entry.Email).Msg("error inserting cache entry")
			return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrCommitingTransaction, err)
	}

	return nil
}

// GetAll implements [ChallanCacheRepository].
func (r *challanCacheRepository) GetAll(ctx context.Context) ([]models.ChallanEntry, error) {
	query, args, err := buildSelectAllCacheEntriesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*challanCacheRepository.GetAll").Msg("error querying cache")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var entries []models.ChallanEntry
	for rows.Next() {
		var entry models.ChallanEntry
		var status string
		if err = rows.Scan(&entry.Email, &entry.StudentName, &status, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		entry.Status = models.DeliveryStatus(status)
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return entries, nil
}

// DeleteByEmail implements [ChallanCacheRepository].
func (r *challanCacheRepository) DeleteByEmail(ctx context.Context, email string) error {
	query, args, err := buildDeleteCacheEntryQuery(email)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*challanCacheRepository.DeleteByEmail").Str("email", email).Msg("error deleting cache entry")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}
