package tui

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Log in", "Create an account"}}
}

func (m welcomeModel) View() string {
	out := viewTitle("Challan Desk") + "\n"
	out += "Generate fee challans for your students and track email delivery.\n"
	out += "Sign in, import a student batch from CSV or add a single record,\n"
	out += "and the portal emails each challan and reports its status here.\n"
	out += "\nChoose an action:\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	out += "\n" + helpStyle.Render("q quit")
	return out
}
