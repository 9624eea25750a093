package models

// SignupResponse is the success payload of POST /auth/signup. The portal
// returns only a human-readable confirmation; no credential is issued on
// registration, so the client sends the user back to the login screen.
type SignupResponse struct {
	// Message is the confirmation text, e.g. "User created successfully!".
	Message string `json:"message"`
}

// LoginResponse is the success payload of POST /auth/login.
type LoginResponse struct {
	// Token is the bearer credential for all subsequent requests.
	Token string `json:"token"`

	// Message is the human-readable confirmation, e.g. "Login successful".
	Message string `json:"message"`
}

// ManualEntryResponse is the success payload of POST /api/manual-entry.
type ManualEntryResponse struct {
	// Status is the backend's free-form acknowledgement text.
	Status string `json:"status"`

	// ChallanNo is the generated challan number for the submitted
	// student. Surfaced in the success notification.
	ChallanNo string `json:"challan_no"`
}

// CSVImportResponse is the acknowledgement of POST /api/send-csv. The
// payload is implementation-defined on the backend side; only Status is
// displayed.
type CSVImportResponse struct {
	Status string `json:"status"`
}
