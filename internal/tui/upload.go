package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type uploadModel struct {
	pathInput  textinput.Model
	submitting bool
	status     string
}

func newUploadModel() uploadModel {
	pathInput := textinput.New()
	pathInput.Placeholder = "/path/to/students.csv"
	pathInput.CharLimit = 512
	pathInput.Width = 60
	pathInput.Focus()

	return uploadModel{pathInput: pathInput}
}

func (m uploadModel) View() string {
	var b strings.Builder
	b.WriteString(viewTitle("Batch import"))
	b.WriteString("\nPath to a .csv file with columns student_name, roll_number, class_name, email:\n\n")
	b.WriteString("File [" + m.pathInput.View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Uploading and sending emails...]\n")
	} else {
		b.WriteString("\n[Upload]\n")
	}

	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter upload  esc back  ctrl+c quit"))
	return b.String()
}
