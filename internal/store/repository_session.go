package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/unidesk/challan-desk/internal/logger"
	"github.com/unidesk/challan-desk/models"
)

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository]. The session table holds at most one row (id=1);
// Save upserts it, so establishing a new session always overwrites the
// previous one.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// Save implements [SessionRepository]. Only token, email, and the
// establishment timestamp are persisted; no derived activity flag is ever
// written.
func (r *sessionRepository) Save(ctx context.Context, session models.Session) error {
	_, err := r.db.ExecContext(ctx, saveSession, session.Token, session.Email, session.EstablishedAt)
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.Save").Msg("error saving session")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

// Get implements [SessionRepository]. Returns [ErrSessionNotFound] when
// the session row is absent.
func (r *sessionRepository) Get(ctx context.Context) (models.Session, error) {
	var session models.Session

	row := r.db.QueryRowContext(ctx, getSession)
	if err := row.Scan(&session.Token, &session.Email, &session.EstablishedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		r.logger.Err(err).Str("func", "*sessionRepository.Get").Msg("error scanning session row")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return session, nil
}

// Clear implements [SessionRepository]. Deleting an absent row is a
// successful no-op, which keeps session termination idempotent.
func (r *sessionRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, clearSession)
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.Clear").Msg("error clearing session")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}
