package tui

import (
	"fmt"
	"time"
)

type menuModel struct {
	items      []string
	idx        int
	email      string
	signedInAt time.Time
	expiry     time.Time
	status     string
}

func newMenuModel() menuModel {
	return menuModel{
		items: []string{"Batch import (CSV)", "Manual entry", "Delivery monitor", "Log out"},
	}
}

func (m menuModel) View() string {
	out := viewTitle("Challan Desk")

	if m.email != "" {
		out += "\nSigned in as " + m.email
		if !m.signedInAt.IsZero() {
			out += helpStyle.Render("  since " + m.signedInAt.Format("2006-01-02 15:04"))
		}
		if !m.expiry.IsZero() {
			out += helpStyle.Render(fmt.Sprintf("  (session valid until %s)", m.expiry.Format("2006-01-02 15:04")))
		}
		out += "\n"
	}

	if m.status != "" {
		out += "\nOK: " + m.status + "\n"
	}

	out += "\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}

	out += "\n" + helpStyle.Render("enter select  ↑/↓ navigate  q quit")
	return out
}
