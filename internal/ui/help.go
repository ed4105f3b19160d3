package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/homes/internal/views"
)

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

// helpSections lists the shortcuts, current screen first.
func (m Model) helpSections() []helpSection {
	list := helpSection{
		title: "Listings",
		items: []helpItem{
			{"j/k", "Move down/up"},
			{"g/G", "Go to top/bottom"},
			{"enter", "View details"},
			{"a", "Add home"},
			{"r", "Reload"},
		},
	}
	details := helpSection{
		title: "Home details",
		items: []helpItem{
			{"d", "Delete listing"},
			{"j/k", "Scroll"},
			{"ctrl+d/u", "Half page down/up"},
			{"r", "Reload"},
			{"esc/b", "Back to listings"},
		},
	}
	form := helpSection{
		title: "Add home",
		items: []helpItem{
			{"tab", "Next field"},
			{"shift+tab", "Previous field"},
			{"ctrl+s", "Create home"},
			{"esc", "Cancel"},
		},
	}
	general := helpSection{
		title: "General",
		items: []helpItem{
			{"T", "Cycle theme"},
			{"L", "Diagnostic log"},
			{"h/?", "Toggle help"},
			{"q/ctrl+c", "Quit"},
		},
	}

	switch m.route {
	case views.RouteDetails:
		return []helpSection{details, list, form, general}
	case views.RouteCreate:
		return []helpSection{form, list, details, general}
	default:
		return []helpSection{list, details, form, general}
	}
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	sections := m.helpSections()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(12)
	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(40)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
