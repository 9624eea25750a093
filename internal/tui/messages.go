package tui

import (
	"github.com/unidesk/challan-desk/models"
)

type authDoneMsg struct {
	email string
	err   error
}

type registerDoneMsg struct {
	message string
	err     error
}

type listLoadedMsg struct {
	entries   []models.ChallanEntry
	fromCache bool
	err       error
}

type csvSentMsg struct {
	status string
	err    error
}

type manualSentMsg struct {
	challanNo string
	err       error
}

type challanDeletedMsg struct {
	email string
	err   error
}

type logoutDoneMsg struct{}

// sessionExpiredMsg is injected from outside the program when the portal
// answers 401 on any request.
type sessionExpiredMsg struct{}

type copiedMsg struct{}

type clearStatusMsg struct{}
