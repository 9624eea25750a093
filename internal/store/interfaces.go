// Package store implements the client's local persistence layer: the
// single-row session table and the delivery-status cache, both in a
// SQLite database whose schema is managed by goose migrations.
package store

import (
	"context"

	"github.com/unidesk/challan-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists the client's one-and-only session. The
// repository is the sole writer and reader of the session row; callers
// never cache an "is active" flag next to it.
type SessionRepository interface {
	// Save overwrites the session row with the given value. Calling it
	// for an already-saved session replaces the prior one; there is no
	// merge semantics.
	Save(ctx context.Context, session models.Session) error

	// Get returns the persisted session. Returns [ErrSessionNotFound]
	// when no session row exists, which callers treat the same as
	// "never logged in".
	Get(ctx context.Context) (models.Session, error)

	// Clear removes the session row. It is a no-op when no session
	// exists.
	Clear(ctx context.Context) error
}

// ChallanCacheRepository holds the last successfully fetched
// delivery-status listing so the monitor can render and prune entries
// without a round trip.
type ChallanCacheRepository interface {
	// ReplaceAll atomically swaps the cached listing for the given
	// entries.
	ReplaceAll(ctx context.Context, entries []models.ChallanEntry) error

	// GetAll returns the cached listing in fetch order.
	GetAll(ctx context.Context) ([]models.ChallanEntry, error)

	// DeleteByEmail removes a single cached entry. Deleting an email
	// that is not cached is not an error.
	DeleteByEmail(ctx context.Context, email string) error
}
