package store

// The session table is fixed-shape (a single row with id=1), so its
// queries are plain constants rather than built dynamically.
const (
	saveSession = `
		INSERT INTO session (id, token, email, established_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			token = excluded.token,
			email = excluded.email,
			established_at = excluded.established_at;`

	getSession = `
		SELECT token, email, established_at
		FROM session
		WHERE id = 1;`

	clearSession = `
		DELETE FROM session;`
)
