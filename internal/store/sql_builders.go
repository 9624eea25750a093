package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/unidesk/challan-desk/models"
)

// Query builders for the challan_cache table. SQLite uses "?" placeholders,
// which is squirrel's default format.

func buildInsertCacheEntryQuery(entry models.ChallanEntry, fetchedAt time.Time) (string, []any, error) {
	return sq.Insert("challan_cache").
		Columns("email", "student_name", "status", "created_at", "fetched_at").
		Values(entry.Email, entry.StudentName, string(entry.Status), entry.CreatedAt, fetchedAt).
		Suffix("ON CONFLICT(email) DO UPDATE SET student_name = excluded.student_name, status = excluded.status, created_at = excluded.created_at, fetched_at = excluded.fetched_at").
		ToSql()
}

func buildSelectAllCacheEntriesQuery() (string, []any, error) {
	return sq.Select("email", "student_name", "status", "created_at").
		From("challan_cache").
		OrderBy("rowid").
		ToSql()
}

func buildDeleteCacheEntryQuery(email string) (string, []any, error) {
	return sq.Delete("challan_cache").
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildClearCacheQuery() (string, []any, error) {
	return sq.Delete("challan_cache").ToSql()
}
