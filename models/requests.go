package models

// SignupRequest is the body of POST /auth/signup. Field names follow the
// portal's wire contract (the backend stores the account email under
// "gmail").
type SignupRequest struct {
	// Name is the display name of the staff member.
	Name string `json:"name"`

	// Gmail is the account email used as the login identifier.
	Gmail string `json:"gmail"`

	// Password is the plaintext secret. Transmitted once over the
	// authentication exchange and never persisted on the client.
	Password string `json:"password"`

	// ConfirmPassword repeats Password. The backend re-checks the match;
	// the client never sends mismatched values in the first place.
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	// Gmail is the account email used as the login identifier.
	Gmail string `json:"gmail"`

	// Password is the plaintext secret.
	Password string `json:"password"`
}
