package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
}

func newRegisterModel() registerModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "full name"
	nameInput.CharLimit = 100
	nameInput.Width = 40
	nameInput.Focus()

	gmailInput := textinput.New()
	gmailInput.Placeholder = "gmail"
	gmailInput.CharLimit = 254
	gmailInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	confirmInput := textinput.New()
	confirmInput.Placeholder = "confirm password"
	confirmInput.CharLimit = 256
	confirmInput.Width = 40
	confirmInput.EchoMode = textinput.EchoPassword
	confirmInput.EchoCharacter = '*'

	return registerModel{inputs: []textinput.Model{nameInput, gmailInput, passwordInput, confirmInput}}
}

func (m registerModel) View() string {
	var b strings.Builder
	b.WriteString(viewTitle("Create an account"))
	b.WriteString("\n")
	b.WriteString("Name             [" + m.inputs[0].View() + "]\n")
	b.WriteString("Gmail            [" + m.inputs[1].View() + "]\n")
	b.WriteString("Password         [" + m.inputs[2].View() + "]\n")
	b.WriteString("Confirm password [" + m.inputs[3].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter submit  tab next field  esc back  ctrl+c quit"))
	return b.String()
}
