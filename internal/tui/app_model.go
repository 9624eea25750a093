package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/unidesk/challan-desk/internal/service"
	"github.com/unidesk/challan-desk/models"
)

var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenMenu
	screenUpload
	screenManual
	screenMonitor
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	currentScreen screen

	welcome  welcomeModel
	login    loginModel
	register registerModel
	menu     menuModel
	upload   uploadModel
	manual   manualModel
	monitor  monitorModel

	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	logout        bool
}

func newAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		menu:          newMenuModel(),
		upload:        newUploadModel(),
		manual:        newManualModel(),
		monitor:       newMonitorModel(),
	}
}

// newAuthenticatedAppModel opens the dashboard directly for a restored
// session.
func newAuthenticatedAppModel(ctx context.Context, services *service.ClientServices) appModel {
	m := newAppModel(ctx, services)
	m.currentScreen = screenMenu
	m.fillMenuSession()
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDeleteChallan(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}

	case sessionExpiredMsg:
		m.login = newLoginModel()
		m.currentScreen = screenLogin
		m.showErrorf("Session expired. Please sign in again.")
		return m, m.cmdTerminateSilently()

	case authDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.login = newLoginModel()
		m.fillMenuSession()
		m.currentScreen = screenMenu
		return m, nil

	case registerDoneMsg:
		m.register.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		// No credential is issued on signup; the user signs in next.
		m.register = newRegisterModel()
		m.login = newLoginModel()
		m.login.status = msg.message
		m.currentScreen = screenLogin
		return m, nil

	case listLoadedMsg:
		m.monitor.loading = false
		m.monitor.refreshing = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			if !msg.fromCache {
				// Live listing failed; fall back to the last fetched one.
				return m, m.cmdLoadCachedChallans()
			}
			return m, nil
		}
		m.monitor.entries = msg.entries
		m.monitor.fromCache = msg.fromCache
		m.clampMonitorCursor()
		return m, nil

	case csvSentMsg:
		m.upload.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.upload = newUploadModel()
		m.upload.status = msg.status
		return m, nil

	case manualSentMsg:
		m.manual.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.manual = newManualModel()
		m.manual.status = fmt.Sprintf("Challan %s generated and emailed", msg.challanNo)
		return m, nil

	case challanDeletedMsg:
		m.pendingDelete = ""
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.removeMonitorEntry(msg.email)
		m.monitor.status = "Deleted"
		return m, cmdClearStatus()

	case logoutDoneMsg:
		m.logout = true
		return m, tea.Quit

	case copiedMsg:
		m.monitor.status = "Email copied to clipboard"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.monitor.status = ""
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenMenu:
		return m.updateMenu(msg)
	case screenUpload:
		return m.updateUpload(msg)
	case screenManual:
		return m.updateManual(msg)
	case screenMonitor:
		return m.updateMonitor(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenMenu:
		body = m.menu.View()
	case screenUpload:
		body = m.upload.View()
	case screenManual:
		body = m.manual.View()
	case screenMonitor:
		body = m.monitor.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) fillMenuSession() {
	session := m.services.SessionService.Current()
	m.menu.email = session.Email
	m.menu.signedInAt = session.EstablishedAt
	if expiry, ok := m.services.SessionService.TokenExpiry(); ok {
		m.menu.expiry = expiry
	} else {
		m.menu.expiry = time.Time{}
	}
}

func (m *appModel) clampMonitorCursor() {
	visible := len(m.monitor.visible())
	if m.monitor.idx >= visible {
		m.monitor.idx = visible - 1
	}
	if m.monitor.idx < 0 {
		m.monitor.idx = 0
	}
}

func (m *appModel) removeMonitorEntry(email string) {
	entries := m.monitor.entries[:0]
	for _, entry := range m.monitor.entries {
		if entry.Email != email {
			entries = append(entries, entry)
		}
	}
	m.monitor.entries = entries
	m.clampMonitorCursor()
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login.focus = cycleFocus(m.login.inputs, m.login.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.focus = cycleFocus(m.login.inputs, m.login.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			gmail := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if gmail == "" || pass == "" {
				m.showErrorf("Gmail and password are required")
				return m, nil
			}
			m.login.status = ""
			m.login.submitting = true
			return m, m.cmdLogin(gmail, pass)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.focus = cycleFocus(m.register.inputs, m.register.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.focus = cycleFocus(m.register.inputs, m.register.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.register.inputs[0].Value())
			gmail := strings.TrimSpace(m.register.inputs[1].Value())
			pass := m.register.inputs[2].Value()
			confirm := m.register.inputs[3].Value()
			if name == "" || gmail == "" || pass == "" || confirm == "" {
				m.showErrorf("All fields are required")
				return m, nil
			}
			if pass != confirm {
				m.showErrorf("Passwords do not match")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(name, gmail, pass, confirm)
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menu.idx > 0 {
			m.menu.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menu.idx < len(m.menu.items)-1 {
			m.menu.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.menu.status = ""
		switch m.menu.idx {
		case 0:
			m.upload = newUploadModel()
			m.currentScreen = screenUpload
		case 1:
			m.manual = newManualModel()
			m.currentScreen = screenManual
		case 2:
			return m.openMonitor()
		case 3:
			return m, m.cmdLogout()
		}
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) openMonitor() (tea.Model, tea.Cmd) {
	m.monitor = newMonitorModel()
	m.currentScreen = screenMonitor
	return m, tea.Batch(m.monitor.spinner.Tick, m.cmdLoadChallans())
}

func (m appModel) updateUpload(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.upload.submitting {
				return m, nil
			}
			path := strings.TrimSpace(m.upload.pathInput.Value())
			if path == "" {
				m.showErrorf("Choose a .csv file first")
				return m, nil
			}
			if !strings.EqualFold(filepath.Ext(path), ".csv") {
				m.showErrorf("Only CSV files are allowed")
				return m, nil
			}
			m.upload.status = ""
			m.upload.submitting = true
			return m, m.cmdUploadCSV(path)
		}
	}

	var cmd tea.Cmd
	m.upload.pathInput, cmd = m.upload.pathInput.Update(msg)
	return m, cmd
}

func (m appModel) updateManual(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.manual.focus = cycleFocus(m.manual.inputs, m.manual.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.manual.focus = cycleFocus(m.manual.inputs, m.manual.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.manual.submitting {
				return m, nil
			}
			entry := m.manual.entry()
			if entry.StudentName == "" || entry.RollNumber == "" || entry.ClassName == "" || entry.Email == "" {
				m.showErrorf("Student name, roll number, class and email are required")
				return m, nil
			}
			m.manual.status = ""
			m.manual.submitting = true
			return m, m.cmdManualEntry(entry)
		}
	}

	var cmd tea.Cmd
	m.manual.inputs[m.manual.focus], cmd = m.manual.inputs[m.manual.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateMonitor(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.monitor.searching {
			switch {
			case key.Matches(msg, keys.enter), key.Matches(msg, keys.esc):
				m.monitor.searching = false
				m.monitor.search.Blur()
				m.monitor.idx = 0
				return m, nil
			}
			var cmd tea.Cmd
			m.monitor.search, cmd = m.monitor.search.Update(msg)
			m.clampMonitorCursor()
			return m, cmd
		}

		switch {
		case key.Matches(msg, keys.up):
			if m.monitor.idx > 0 {
				m.monitor.idx--
			}
		case key.Matches(msg, keys.down):
			if m.monitor.idx < len(m.monitor.visible())-1 {
				m.monitor.idx++
			}
		case key.Matches(msg, keys.search):
			m.monitor.searching = true
			m.monitor.search.Focus()
			return m, nil
		case key.Matches(msg, keys.refresh):
			if m.monitor.refreshing {
				return m, nil
			}
			m.monitor.refreshing = true
			return m, tea.Batch(m.monitor.spinner.Tick, m.cmdLoadChallans())
		case key.Matches(msg, keys.delete):
			entry, ok := m.monitor.current()
			if !ok {
				return m, nil
			}
			m.showConfirm = true
			m.confirm.message = entry.StudentName
			m.pendingDelete = entry.Email
			return m, nil
		case key.Matches(msg, keys.copy):
			entry, ok := m.monitor.current()
			if !ok {
				return m, nil
			}
			return m, cmdCopyToClipboard(entry.Email)
		case key.Matches(msg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(msg, keys.quit):
			m.err = ErrUserQuit
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.monitor.loading || m.monitor.refreshing {
			var cmd tea.Cmd
			m.monitor.spinner, cmd = m.monitor.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) cmdLogin(gmail, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		err := auth.Login(ctx, gmail, pass)
		return authDoneMsg{email: gmail, err: err}
	}
}

func (m appModel) cmdRegister(name, gmail, pass, confirm string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		message, err := auth.Register(ctx, name, gmail, pass, confirm)
		return registerDoneMsg{message: message, err: err}
	}
}

func (m appModel) cmdLoadChallans() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ChallanService
	return func() tea.Msg {
		entries, err := svc.List(ctx)
		return listLoadedMsg{entries: entries, err: err}
	}
}

func (m appModel) cmdLoadCachedChallans() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ChallanService
	return func() tea.Msg {
		entries, err := svc.CachedList(ctx)
		return listLoadedMsg{entries: entries, fromCache: true, err: err}
	}
}

func (m appModel) cmdUploadCSV(path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ChallanService
	return func() tea.Msg {
		resp, err := svc.UploadCSV(ctx, path)
		return csvSentMsg{status: resp.Status, err: err}
	}
}

func (m appModel) cmdManualEntry(entry models.ManualEntry) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ChallanService
	return func() tea.Msg {
		resp, err := svc.SubmitManual(ctx, entry)
		return manualSentMsg{challanNo: resp.ChallanNo, err: err}
	}
}

func (m appModel) cmdDeleteChallan(email string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ChallanService
	return func() tea.Msg {
		err := svc.Delete(ctx, email)
		return challanDeletedMsg{email: email, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	return func() tea.Msg {
		_ = sessions.Terminate(ctx)
		return logoutDoneMsg{}
	}
}

func (m appModel) cmdTerminateSilently() tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	return func() tea.Msg {
		_ = sessions.Terminate(ctx)
		return nil
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return challanDeletedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cycleFocus(inputs []textinput.Model, focus, delta int) int {
	inputs[focus].Blur()
	focus = (focus + delta + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}
