package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "Delete the challan for \"" + m.message + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
