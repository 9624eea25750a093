package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/unidesk/challan-desk/internal/adapter"
	"github.com/unidesk/challan-desk/internal/logger"
	"github.com/unidesk/challan-desk/models"
)

type authService struct {
	adapter  adapter.PortalAdapter
	sessions SessionService

	logger *logger.Logger
}

func NewAuthService(portalAdapter adapter.PortalAdapter, sessions SessionService, logger *logger.Logger) AuthService {
	return &authService{adapter: portalAdapter, sessions: sessions, logger: logger.GetChildLogger("auth service")}
}

// Register implements [AuthService]. Validation failures never reach the
// network.
func (a *authService) Register(ctx context.Context, name, gmail, password, confirmPassword string) (string, error) {
	if isBlank(name) || isBlank(gmail) || isBlank(password) || isBlank(confirmPassword) {
		return "", ErrValidationBlankFields
	}
	if password != confirmPassword {
		return "", ErrPasswordsDoNotMatch
	}

	resp, err := a.adapter.Signup(ctx, models.SignupRequest{
		Name:            strings.TrimSpace(name),
		Gmail:           strings.TrimSpace(gmail),
		Password:        password,
		ConfirmPassword: confirmPassword,
	})
	if err != nil {
		return "", fmt.Errorf("signup: %w", err)
	}

	a.logger.Info().Str("gmail", strings.TrimSpace(gmail)).Msg("account registered")

	return resp.Message, nil
}

// Login implements [AuthService].
func (a *authService) Login(ctx context.Context, gmail, password string) error {
	if isBlank(gmail) || isBlank(password) {
		return ErrValidationBlankFields
	}

	gmail = strings.TrimSpace(gmail)

	resp, err := a.adapter.Login(ctx, models.LoginRequest{Gmail: gmail, Password: password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if strings.TrimSpace(resp.Token) == "" {
		return ErrEmptyTokenIssued
	}

	if err := a.sessions.Establish(ctx, strings.TrimSpace(resp.Token), gmail); err != nil {
		return err
	}

	a.logger.Info().Str("gmail", gmail).Msg("session established")

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
