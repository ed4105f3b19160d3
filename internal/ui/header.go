package ui

import (
	"fmt"
	"strings"

	"github.com/five82/homes/internal/views"
)

// renderHeader renders the status line: logo, screen, endpoint and load state.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{
		bg.Render("homes", styles.Logo),
		bg.Render(m.screenTitle(), styles.Text.Bold(true)),
	}
	if state := m.headerState(styles, bg); state != "" {
		parts = append(parts, state)
	}
	if m.apiBase != "" {
		api := truncateMiddle(m.apiBase, 40)
		parts = append(parts, bg.Render("api", styles.FaintText)+bg.Space()+bg.Render(api, styles.MutedText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

func (m Model) screenTitle() string {
	switch m.route {
	case views.RouteDetails:
		if m.details != nil && !m.details.ID().Empty() {
			return fmt.Sprintf("Home #%s", m.details.ID())
		}
		return "Home"
	case views.RouteCreate:
		return "Add Home"
	default:
		return "Listings"
	}
}

// headerState summarises the active controller in a word or two.
func (m Model) headerState(styles Styles, bg BgStyle) string {
	switch {
	case m.list != nil:
		switch m.list.Status() {
		case views.StatusLoading:
			return bg.Render("loading", styles.WarningText)
		case views.StatusError:
			return bg.Render("● offline", styles.DangerText)
		default:
			return bg.Render(fmt.Sprintf("%d homes", len(m.list.Homes())), styles.SuccessText)
		}
	case m.details != nil:
		switch {
		case m.details.Deleting():
			return bg.Render("deleting", styles.WarningText)
		case m.details.Status() == views.StatusLoading:
			return bg.Render("loading", styles.WarningText)
		case m.details.Status() == views.StatusError:
			return bg.Render("● error", styles.DangerText)
		}
	case m.create != nil:
		if m.create.Submitting() {
			return bg.Render("saving", styles.WarningText)
		}
	}
	return ""
}

// renderCommandBar renders the key hints for the active screen.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.route {
	case views.RouteDetails:
		commands = []cmd{
			{"d", "Delete"},
			{"j/k", "Scroll"},
			{"r", "Reload"},
			{"esc", "Back"},
			{"L", "Log"},
			{"?", "More"},
		}
	case views.RouteCreate:
		commands = []cmd{
			{"tab", "Next"},
			{"shift+tab", "Prev"},
			{"ctrl+s", "Create"},
			{"esc", "Cancel"},
		}
	default:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"enter", "Open"},
			{"a", "Add Home"},
			{"r", "Reload"},
			{"L", "Log"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	if m.route != views.RouteCreate {
		segments = append(segments,
			bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
