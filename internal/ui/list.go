package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/homes/internal/homes"
	"github.com/five82/homes/internal/views"
)

const (
	listTitle    = "Explore Homes"
	listSubtitle = "Find your perfect stay"
	addHomeHint  = "+ Add Home"

	// cardHeight is the rendered height of one card including its border.
	cardHeight = 6
)

// cardLocation, cardFacts and cardPrice are the text lines of a listing card.
func cardLocation(h homes.Home) string {
	return "📍 " + h.Location
}

func cardFacts(h homes.Home) string {
	return fmt.Sprintf("👥 %d guests • 🛏️ %d bed • 🛁 %d bath", h.Guests, h.Bedrooms, h.Bathrooms)
}

func cardPrice(h homes.Home) string {
	return fmt.Sprintf("$%d / night", h.PricePerNight)
}

// clampSelection keeps the cursor inside the loaded list.
func (m *Model) clampSelection() {
	if m.list == nil {
		m.selected = 0
		return
	}
	n := len(m.list.Homes())
	switch {
	case n == 0:
		m.selected = 0
	case m.selected >= n:
		m.selected = n - 1
	case m.selected < 0:
		m.selected = 0
	}
}

// renderList renders the listings screen.
func (m Model) renderList() string {
	styles := m.theme.Styles()
	height := m.contentHeight()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(listTitle))
	b.WriteString("  ")
	b.WriteString(styles.MutedText.Render(listSubtitle))
	b.WriteString(strings.Repeat(" ", 2))
	b.WriteString(styles.AccentText.Bold(true).Render(addHomeHint))
	b.WriteString(styles.FaintText.Render(" (a)"))
	b.WriteString("\n")

	body := m.renderListBody(max(height-1, 1))
	b.WriteString(body)
	return b.String()
}

func (m Model) renderListBody(height int) string {
	styles := m.theme.Styles()
	center := func(s string) string {
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, s)
	}

	if m.list == nil {
		return center(styles.MutedText.Render(views.MsgLoadingList))
	}
	switch m.list.Status() {
	case views.StatusLoading:
		return center(styles.MutedText.Render(views.MsgLoadingList))
	case views.StatusError:
		return center(styles.DangerText.Render(m.list.Err()) + "\n" +
			styles.FaintText.Render("press r to retry"))
	}
	if m.list.Empty() {
		return center(styles.MutedText.Render(views.MsgListEmpty))
	}

	items := m.list.Homes()
	visible := max(height/cardHeight, 1)
	first := 0
	if m.selected >= visible {
		first = m.selected - visible + 1
	}
	last := min(first+visible, len(items))

	cards := make([]string, 0, last-first)
	for i := first; i < last; i++ {
		cards = append(cards, m.renderCard(items[i], m.width, i == m.selected))
	}
	out := strings.Join(cards, "\n")
	if len(items) > visible {
		out += "\n" + styles.FaintText.Render(fmt.Sprintf("%d of %d", m.selected+1, len(items)))
	}
	return out
}

// renderCard renders one listing as a bordered card.
func (m Model) renderCard(h homes.Home, width int, selected bool) string {
	styles := m.theme.Styles()
	inner := max(width-4, 10)

	border := m.theme.Border
	titleStyle := styles.Text.Bold(true)
	if selected {
		border = m.theme.BorderFocus
		titleStyle = styles.AccentText.Bold(true)
	}

	lines := []string{
		titleStyle.Render(truncate(h.Title, inner)),
		styles.MutedText.Render(truncate(cardLocation(h), inner)),
		styles.Text.Render(cardFacts(h)),
		styles.PriceText.Render(cardPrice(h)),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(inner).
		Render(strings.Join(lines, "\n"))
}
