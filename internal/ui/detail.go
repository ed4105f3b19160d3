package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/homes/internal/homes"
	"github.com/five82/homes/internal/views"
)

const (
	sectionAbout     = "About this place"
	sectionAmenities = "Amenities"
)

// syncDetailViewport refreshes the scrollable details body from the
// controller. It is a no-op off the details screen.
func (m *Model) syncDetailViewport() {
	if m.details == nil || m.detailViewport.Width == 0 {
		return
	}
	home, ok := m.details.Home()
	if !ok {
		m.detailViewport.SetContent("")
		return
	}
	m.detailViewport.SetContent(m.detailContent(home, m.detailViewport.Width))
}

// renderDetails renders the single-home screen.
func (m Model) renderDetails() string {
	styles := m.theme.Styles()
	height := m.contentHeight()
	center := func(s string) string {
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, s)
	}

	if m.details == nil {
		return center(styles.MutedText.Render(views.MsgLoadingDetails))
	}
	switch m.details.Status() {
	case views.StatusLoading:
		return center(styles.MutedText.Render(views.MsgLoadingDetails))
	case views.StatusError:
		return center(styles.DangerText.Render(m.details.Err()) + "\n" +
			styles.FaintText.Render("press esc to go back"))
	}

	home, _ := m.details.Home()
	title := truncate(home.Title, max(m.width-8, 10))
	return m.renderTitledBox(title, m.detailViewport.View(), m.width, height, true)
}

// detailContent lays out every section of a home for the viewport.
func (m Model) detailContent(h homes.Home, width int) string {
	styles := m.theme.Styles()
	rule := styles.FaintText.Render(strings.Repeat("─", max(width, 1)))

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(h.Title))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(cardLocation(h)))
	b.WriteString("\n\n")

	facts := []string{
		fmt.Sprintf("👥 Guests %d", h.Guests),
		fmt.Sprintf("🛏️ Bedrooms %d", h.Bedrooms),
		fmt.Sprintf("🛁 Bathrooms %d", h.Bathrooms),
	}
	b.WriteString(styles.Text.Render(strings.Join(facts, "    ")))
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")

	b.WriteString(styles.AccentText.Bold(true).Render(sectionAbout))
	b.WriteString("\n")
	b.WriteString(styles.Text.Render(wrap(h.Description, width)))
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")

	b.WriteString(styles.AccentText.Bold(true).Render(sectionAmenities))
	b.WriteString("\n")
	if len(h.Amenities) == 0 {
		b.WriteString(styles.FaintText.Render("None listed"))
		b.WriteString("\n")
	}
	for _, amenity := range h.Amenities {
		b.WriteString(styles.SuccessText.Render("✓") + " " + styles.Text.Render(amenity))
		b.WriteString("\n")
	}
	b.WriteString(rule)
	b.WriteString("\n")

	b.WriteString(styles.PriceText.Render(fmt.Sprintf("$%d", h.PricePerNight)))
	b.WriteString(styles.MutedText.Render(" / night"))
	if url := strings.TrimSpace(h.ImageURL); url != "" {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("image ") + styles.InfoText.Render(truncateMiddle(url, max(width-6, 10))))
	}
	return b.String()
}

// renderTitledBox renders content in a box with the title embedded in the top border.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr, bgColorStr := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColorStr, bgColorStr = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 1)
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	top := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)
	bottom := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(bgColorStr))
	contentLines := strings.Split(content, "\n")
	rows := make([]string, 0, max(height-2, 0))
	for i := 0; i < height-2; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows, bg.Render("│", borderStyle)+contentStyle.Render(line)+bg.Render("│", borderStyle))
	}
	return top + "\n" + strings.Join(rows, "\n") + "\n" + bottom
}
