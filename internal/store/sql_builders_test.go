package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unidesk/challan-desk/models"
)

func Test_buildInsertCacheEntryQuery_SQLContainsParts(t *testing.T) {
	entry := models.ChallanEntry{
		StudentName: "John Doe",
		Email:       "john@university.edu",
		Status:      models.StatusSent,
		CreatedAt:   "2026-01-01",
	}
	fetchedAt := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	query, args, err := buildInsertCacheEntryQuery(entry, fetchedAt)
	require.NoError(t, err)

	// args checks: email, student_name, status, created_at, fetched_at
	require.Len(t, args, 5)
	require.Equal(t, entry.Email, args[0])
	require.Equal(t, entry.StudentName, args[1])
	require.Equal(t, "sent", args[2])

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into challan_cache")
	require.Contains(t, q, "on conflict(email)")
	require.Contains(t, q, "excluded.status")

	// placeholder format should be ? (SQLite)
	require.Contains(t, query, "?")
	assert.NotContains(t, query, "$1")
}

func Test_buildSelectAllCacheEntriesQuery_SelectsAllExpectedColumns(t *testing.T) {
	query, args, err := buildSelectAllCacheEntriesQuery()
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)

	// Check that all rendered columns are present in the SELECT section.
	// This is a "contains" check; it does not enforce order but catches
	// regressions quickly.
	cols := []string{
		"email",
		"student_name",
		"status",
		"created_at",
	}
	for _, col := range cols {
		require.Contains(t, q, col)
	}

	require.Contains(t, q, "from challan_cache")
	require.Contains(t, q, "order by rowid")
}

func Test_buildDeleteCacheEntryQuery_FiltersByEmail(t *testing.T) {
	query, args, err := buildDeleteCacheEntryQuery("john@university.edu")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "john@university.edu", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from challan_cache")
	require.Contains(t, q, "email = ?")
}

func Test_buildClearCacheQuery_NoFilter(t *testing.T) {
	query, args, err := buildClearCacheQuery()
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from challan_cache")
	assert.NotContains(t, q, "where")
}
