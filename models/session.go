package models

import "time"

// Session is the client-local record of "who is currently authenticated".
// It is backed by a persisted credential; there is no stored "is active"
// flag, activity is always derived from the credential's presence so the
// two can never disagree.
type Session struct {
	// Token is the opaque bearer credential returned by the portal on a
	// successful login. The client assumes no structure: it is attached
	// to outbound requests verbatim and never inspected for logic.
	Token string `json:"token"`

	// Email is the subject identifier of the signed-in staff member.
	// Used only for display.
	Email string `json:"email"`

	// EstablishedAt is the moment the session was established on this
	// client.
	EstablishedAt time.Time `json:"established_at"`
}

// IsActive reports whether the session holds a non-empty credential.
func (s Session) IsActive() bool {
	return s.Token != ""
}
