package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
}

func newLoginModel() loginModel {
	gmailInput := textinput.New()
	gmailInput.Placeholder = "gmail"
	gmailInput.CharLimit = 254
	gmailInput.Width = 40
	gmailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{gmailInput, passwordInput}}
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString(viewTitle("Sign in"))
	b.WriteString("\n")
	b.WriteString("Gmail    [" + m.inputs[0].View() + "]\n")
	b.WriteString("Password [" + m.inputs[1].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter submit  tab next field  esc back  ctrl+c quit"))
	return b.String()
}
