package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/unidesk/challan-desk/internal/config"
	"github.com/unidesk/challan-desk/internal/logger"
	"github.com/unidesk/challan-desk/internal/utils"
	"github.com/unidesk/challan-desk/models"
)

type httpPortalAdapter struct {
	client      *resty.Client
	tokenSource TokenSource
	requestIDs  *utils.RequestIDGenerator

	onUnauthorized func()

	logger *logger.Logger
}

// NewHTTPPortalAdapter constructs an HTTP/REST implementation of
// [PortalAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying client with the
// resolved base URL and request timeout.
//
// tokenSource is consulted on every request; a nil tokenSource is treated
// as a permanently empty credential. Every outbound request carries an
// X-Request-Id header for backend-side correlation.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPPortalAdapter(adapterCfg config.ClientAdapter, tokenSource TokenSource, logger *logger.Logger) (PortalAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	if tokenSource == nil {
		tokenSource = func() string { return "" }
	}

	a := &httpPortalAdapter{
		tokenSource: tokenSource,
		requestIDs:  utils.NewRequestIDGenerator(),
		logger:      logger,
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-Id", a.requestIDs.Generate())
		return nil
	})

	// Expired or revoked credentials are detected here, in one place,
	// instead of at every call site.
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == http.StatusUnauthorized && a.onUnauthorized != nil {
			a.onUnauthorized()
		}
		return nil
	})

	a.client = client

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetUnauthorizedHook implements [PortalAdapter]. The hook must be set
// before concurrent use of the adapter begins.
func (h *httpPortalAdapter) SetUnauthorizedHook(hook func()) {
	h.onUnauthorized = hook
}

// Signup implements [PortalAdapter]. It POSTs the registration payload to
// POST /auth/signup. The portal validates the password pair server-side
// and responds with a confirmation message only; no credential is issued
// until the user logs in.
func (h *httpPortalAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error) {
	var result models.SignupResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/auth/signup")
	if err != nil {
		return models.SignupResponse{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SignupResponse{}, err
	}

	return result, nil
}

// Login implements [PortalAdapter]. It POSTs the credentials to
// POST /auth/login and returns the issued bearer credential in the
// response body. The adapter itself holds no credential state.
func (h *httpPortalAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	return result, nil
}

// SendCSV implements [PortalAdapter]. It streams the batch file to
// POST /api/send-csv as multipart form field "file", preserving the
// original filename so the backend can log it. Requires an active
// session.
func (h *httpPortalAdapter) SendCSV(ctx context.Context, filename string, file io.Reader) (models.CSVImportResponse, error) {
	var result models.CSVImportResponse

	resp, err := h.authedRequest(ctx).
		SetFileReader("file", filename, file).
		SetResult(&result).
		Post("/api/send-csv")
	if err != nil {
		return models.CSVImportResponse{}, fmt.Errorf("send csv request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CSVImportResponse{}, err
	}

	return result, nil
}

// ManualEntry implements [PortalAdapter]. It POSTs a single student
// record to POST /api/manual-entry and returns the generated challan
// number. Requires an active session.
func (h *httpPortalAdapter) ManualEntry(ctx context.Context, entry models.ManualEntry) (models.ManualEntryResponse, error) {
	var result models.ManualEntryResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(entry).
		SetResult(&result).
		Post("/api/manual-entry")
	if err != nil {
		return models.ManualEntryResponse{}, fmt.Errorf("manual entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ManualEntryResponse{}, err
	}

	return result, nil
}

// ListChallans implements [PortalAdapter]. It GETs the delivery-status
// listing from GET /list-challans and decodes the response into a slice
// of [models.ChallanEntry]. Requires an active session.
func (h *httpPortalAdapter) ListChallans(ctx context.Context) ([]models.ChallanEntry, error) {
	resp, err := h.authedRequest(ctx).Get("/list-challans")
	if err != nil {
		return nil, fmt.Errorf("list challans request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.ChallanEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode challan listing: %w", err)
	}

	return entries, nil
}

// DeleteChallan implements [PortalAdapter]. It sends
// DELETE /delete-challan/{email} with the email path-escaped. Any 2xx
// status acknowledges the deletion. Requires an active session.
func (h *httpPortalAdapter) DeleteChallan(ctx context.Context, email string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/delete-challan/" + url.PathEscape(email))
	if err != nil {
		return fmt.Errorf("delete challan request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpPortalAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.tokenSource(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
