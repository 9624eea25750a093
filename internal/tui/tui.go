// Package tui implements the interactive terminal front end: welcome,
// sign-in and registration screens, the dashboard menu, the CSV batch
// import and manual entry forms, and the delivery-status monitor.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/unidesk/challan-desk/internal/adapter"
	"github.com/unidesk/challan-desk/internal/logger"
	"github.com/unidesk/challan-desk/internal/service"
)

type TUI struct {
	services *service.ClientServices
	portal   adapter.PortalAdapter
	logger   *logger.Logger
}

func New(services *service.ClientServices, portal adapter.PortalAdapter, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, portal: portal, logger: logger}, nil
}

// Run starts one UI session and blocks until the user quits or logs out.
// With an active session the dashboard opens directly; otherwise the flow
// starts at the welcome screen.
//
// While the program runs, any 401 answered by the portal is forwarded into
// the event loop as a [sessionExpiredMsg], which terminates the session
// and forces the sign-in screen regardless of the current one.
//
// Returns logout=true when the user chose to log out, so the caller can
// start a fresh session.
func (t *TUI) Run(ctx context.Context) (logout bool, err error) {
	var model appModel
	if t.services.SessionService.IsActive() {
		model = newAuthenticatedAppModel(ctx, t.services)
	} else {
		model = newAppModel(ctx, t.services)
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	t.portal.SetUnauthorizedHook(func() {
		program.Send(sessionExpiredMsg{})
	})

	finalModel, runErr := program.Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.err != nil {
		return false, result.err
	}

	return result.logout, nil
}
