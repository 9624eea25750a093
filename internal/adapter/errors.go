package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError. Match
// with [errors.Is].
var (
	// ErrBadRequest corresponds to HTTP 400 (e.g. "Passwords do not
	// match", "Only CSV files are allowed").
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized corresponds to HTTP 401: the credential is invalid
	// or expired and the session must be terminated.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrForbidden corresponds to HTTP 403.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound corresponds to HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrConflict corresponds to HTTP 409.
	ErrConflict = errors.New("conflict")

	// ErrInternalServerError corresponds to HTTP 500.
	ErrInternalServerError = errors.New("internal server error")

	// ErrBadGateway corresponds to HTTP 502.
	ErrBadGateway = errors.New("bad gateway")
)
