// Package service contains the client-side business logic sitting between
// the terminal UI and the portal adapter: session lifecycle, credential
// validation before any network call, and challan listing/cache
// management.
package service

import (
	"context"
	"time"

	"github.com/unidesk/challan-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService owns the single client session. The in-memory session is
// the source of truth while the process runs; the persisted copy exists
// only so the next launch can restore it.
type SessionService interface {
	// Establish activates a session for the given credential and subject.
	// The in-memory session switches synchronously, before persistence,
	// so callers may navigate to authenticated screens immediately after
	// Establish returns nil.
	Establish(ctx context.Context, token, email string) error

	// Restore loads the persisted session from the local store into
	// memory. A missing session row is not an error; the returned
	// session is simply inactive.
	Restore(ctx context.Context) (models.Session, error)

	// Current returns the in-memory session.
	Current() models.Session

	// IsActive reports whether an authenticated session is present.
	IsActive() bool

	// Token returns the current bearer credential, or an empty string
	// when no session is active. Suitable for use as an
	// [adapter.TokenSource].
	Token() string

	// TokenExpiry reports the credential's expiry moment if the token is
	// a decodable JWT carrying an exp claim. The result is display-only;
	// session validity is always decided by the portal.
	TokenExpiry() (time.Time, bool)

	// Terminate discards the session in memory and in the local store.
	// Terminating an inactive session is a no-op.
	Terminate(ctx context.Context) error
}

// AuthService handles registration and login against the portal. All
// field validation happens client-side before any request is sent.
type AuthService interface {
	// Register creates a staff account. Blank fields or a password pair
	// mismatch fail fast without contacting the portal. Registration
	// issues no credential; the returned message is the portal's
	// confirmation and the user still has to log in.
	Register(ctx context.Context, name, gmail, password, confirmPassword string) (string, error)

	// Login authenticates and, on success, establishes the session via
	// [SessionService.Establish] before returning.
	Login(ctx context.Context, gmail, password string) error
}

// ChallanService covers challan issuance and delivery-status monitoring.
type ChallanService interface {
	// UploadCSV validates that path names a .csv file, then streams it
	// to the portal for batch challan generation.
	UploadCSV(ctx context.Context, path string) (models.CSVImportResponse, error)

	// SubmitManual submits a single student record. Blank required
	// fields fail fast; a blank expiry date is replaced with the default
	// before sending.
	SubmitManual(ctx context.Context, entry models.ManualEntry) (models.ManualEntryResponse, error)

	// List fetches the live delivery-status listing and refreshes the
	// local cache with it. A cache write failure does not fail the
	// listing.
	List(ctx context.Context) ([]models.ChallanEntry, error)

	// CachedList returns the last successfully fetched listing from the
	// local cache.
	CachedList(ctx context.Context) ([]models.ChallanEntry, error)

	// Delete removes the challan record for the given student email on
	// the portal and prunes it from the local cache, without re-fetching
	// the listing.
	Delete(ctx context.Context, email string) error
}
