package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/unidesk/challan-desk/internal/logger"
	"github.com/unidesk/challan-desk/internal/store"
	"github.com/unidesk/challan-desk/models"
)

type sessionService struct {
	sessions store.SessionRepository

	mu      sync.RWMutex
	current models.Session

	logger *logger.Logger
}

func NewSessionService(sessions store.SessionRepository, logger *logger.Logger) SessionService {
	return &sessionService{sessions: sessions, logger: logger.GetChildLogger("session service")}
}

// Establish implements [SessionService]. The in-memory session is updated
// before the persistence attempt, so a failed write leaves the running
// process authenticated; only the next launch would lose the session.
func (s *sessionService) Establish(ctx context.Context, token, email string) error {
	session := models.Session{
		Token:         token,
		Email:         email,
		EstablishedAt: time.Now(),
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Error().Err(err).Msg("session persisted in memory only")
		return fmt.Errorf("persist session: %w", err)
	}

	return nil
}

// Restore implements [SessionService].
func (s *sessionService) Restore(ctx context.Context) (models.Session, error) {
	session, err := s.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, nil
		}
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	return session, nil
}

// Current implements [SessionService].
func (s *sessionService) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// IsActive implements [SessionService].
func (s *sessionService) IsActive() bool {
	return s.Current().IsActive()
}

// Token implements [SessionService].
func (s *sessionService) Token() string {
	return s.Current().Token
}

// TokenExpiry implements [SessionService]. The token is decoded without
// signature verification: the client holds no signing key, and the value
// is used only for display.
func (s *sessionService) TokenExpiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	expiry, err := parsed.Claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}, false
	}

	return expiry.Time, true
}

// Terminate implements [SessionService]. Memory is cleared first so no
// further request can pick up the stale credential while the store is
// being updated.
func (s *sessionService) Terminate(ctx context.Context) error {
	s.mu.Lock()
	s.current = models.Session{}
	s.mu.Unlock()

	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}

	return nil
}
