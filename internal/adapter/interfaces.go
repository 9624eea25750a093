// Package adapter provides the transport layer for communicating with the
// challan portal backend.
//
// The primary abstraction is [PortalAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPPortalAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401). Transport-level
// failures (no response received at all) are returned unwrapped so the UI
// can distinguish an unreachable backend from an explicit rejection.
package adapter

import (
	"context"
	"io"

	"github.com/unidesk/challan-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/portal_adapter_mock.go -package=mock

// TokenSource supplies the current bearer credential at request-send time.
// Returning an empty string means "no session" and no Authorization header
// is attached. Reading the credential per request (instead of mutating a
// client-wide default header) guarantees every request carries the most
// recently established credential.
type TokenSource func() string

// PortalAdapter defines transport-agnostic communication with the challan
// portal backend. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type PortalAdapter interface {
	// Signup sends a registration request. The portal issues no
	// credential on signup; on success only the confirmation message is
	// returned.
	Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error)

	// Login authenticates the staff member. On success the response
	// carries the bearer credential; the adapter does not store it,
	// session establishment is the caller's responsibility.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// SendCSV uploads a student batch as multipart field "file".
	// Requires an active session.
	SendCSV(ctx context.Context, filename string, file io.Reader) (models.CSVImportResponse, error)

	// ManualEntry submits a single student record and returns the
	// generated challan number. Requires an active session.
	ManualEntry(ctx context.Context, entry models.ManualEntry) (models.ManualEntryResponse, error)

	// ListChallans fetches the delivery-status listing. Requires an
	// active session.
	ListChallans(ctx context.Context) ([]models.ChallanEntry, error)

	// DeleteChallan removes the record identified by the student email.
	// Any 2xx response is treated as success. Requires an active session.
	DeleteChallan(ctx context.Context, email string) error

	// SetUnauthorizedHook registers a callback invoked once per inbound
	// 401 response, regardless of which endpoint produced it. Used to
	// force session termination and redirection globally rather than
	// per call site.
	SetUnauthorizedHook(hook func())
}
