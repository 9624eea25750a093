package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/unidesk/challan-desk/internal/service"
	"github.com/unidesk/challan-desk/models"
)

type monitorModel struct {
	entries    []models.ChallanEntry
	idx        int
	loading    bool
	refreshing bool
	fromCache  bool
	spinner    spinner.Model
	search     textinput.Model
	searching  bool
	status     string
}

func newMonitorModel() monitorModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Placeholder = "name, email or status"
	search.CharLimit = 100
	search.Width = 40

	return monitorModel{spinner: s, search: search, loading: true}
}

// visible returns the entries matching the current search query.
func (m monitorModel) visible() []models.ChallanEntry {
	return service.FilterEntries(m.entries, m.search.Value())
}

func (m monitorModel) current() (models.ChallanEntry, bool) {
	visible := m.visible()
	if len(visible) == 0 || m.idx < 0 || m.idx >= len(visible) {
		return models.ChallanEntry{}, false
	}
	return visible[m.idx], true
}

func (m monitorModel) View() string {
	header := titleStyle.Render("Delivery monitor")
	if m.refreshing {
		header += "  " + m.spinner.View()
	}
	if m.fromCache {
		header += helpStyle.Render("  (cached)")
	}
	out := header + "\n" + uiDivider + "\n"

	counts := service.CountByStatus(m.entries)
	out += fmt.Sprintf("\nsent %d   delivered %d   pending %d   failed %d\n",
		counts[models.StatusSent], counts[models.StatusDelivered],
		counts[models.StatusPending], counts[models.StatusFailed])

	if m.searching || m.search.Value() != "" {
		out += "\nSearch [" + m.search.View() + "]\n"
	}

	out += "\n"
	visible := m.visible()

	switch {
	case m.loading:
		out += "Loading...\n"
	case len(m.entries) == 0:
		out += "No challans yet. Import a batch or add a manual entry.\n"
	case len(visible) == 0:
		out += "Nothing matches the search.\n"
	default:
		for i, entry := range visible {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%-22s %-28s %-10s %s\n",
				cursor,
				fitText(entry.StudentName, 22),
				fitText(entry.Email, 28),
				fitText(string(entry.Status), 10),
				fitText(entry.CreatedAt, 19))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	hotkeys := "r refresh  / search  d delete  c copy email  esc back  q quit"
	if m.searching {
		hotkeys = "enter apply  esc close search"
	}
	out += "\n" + helpStyle.Render(hotkeys)
	return out
}
