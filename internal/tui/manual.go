package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/unidesk/challan-desk/models"
)

type manualModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
}

func newManualModel() manualModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "student name"
	nameInput.CharLimit = 100
	nameInput.Width = 40
	nameInput.Focus()

	rollInput := textinput.New()
	rollInput.Placeholder = "roll number"
	rollInput.CharLimit = 30
	rollInput.Width = 40

	classInput := textinput.New()
	classInput.Placeholder = "class"
	classInput.CharLimit = 50
	classInput.Width = 40

	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40

	expiryInput := textinput.New()
	expiryInput.Placeholder = "expiry date (YYYY-MM-DD, optional)"
	expiryInput.CharLimit = 10
	expiryInput.Width = 40

	return manualModel{inputs: []textinput.Model{nameInput, rollInput, classInput, emailInput, expiryInput}}
}

func (m manualModel) entry() models.ManualEntry {
	return models.ManualEntry{
		StudentName: strings.TrimSpace(m.inputs[0].Value()),
		RollNumber:  strings.TrimSpace(m.inputs[1].Value()),
		ClassName:   strings.TrimSpace(m.inputs[2].Value()),
		Email:       strings.TrimSpace(m.inputs[3].Value()),
		ExpiryDate:  strings.TrimSpace(m.inputs[4].Value()),
	}
}

func (m manualModel) View() string {
	var b strings.Builder
	b.WriteString(viewTitle("Manual entry"))
	b.WriteString("\n")
	b.WriteString("Student name [" + m.inputs[0].View() + "]\n")
	b.WriteString("Roll number  [" + m.inputs[1].View() + "]\n")
	b.WriteString("Class        [" + m.inputs[2].View() + "]\n")
	b.WriteString("Email        [" + m.inputs[3].View() + "]\n")
	b.WriteString("Expiry date  [" + m.inputs[4].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Generating challan...]\n")
	} else {
		b.WriteString("\n[Generate and send]\n")
	}

	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter submit  tab next field  esc back  ctrl+c quit"))
	return b.String()
}
