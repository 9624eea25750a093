package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/unidesk/challan-desk/internal/logger"
	"github.com/unidesk/challan-desk/internal/service"
	"github.com/unidesk/challan-desk/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, fmt.Errorf("services and ui are required")
	}
	return &App{services: services, tui: ui, logger: logger}, nil
}

// Run implements [Client]. It restores the persisted session so a
// returning user lands on the dashboard, then runs UI sessions until the
// user quits. A logout loops back into a fresh UI session starting at the
// welcome screen.
func (a *App) Run() error {
	ctx := context.Background()

	if _, err := a.services.SessionService.Restore(ctx); err != nil {
		a.logger.Error().Err(err).Msg("session restore failed, starting signed out")
	}

	for {
		logout, err := a.tui.Run(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
		if !logout {
			return nil
		}
	}
}
