package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/homes/internal/views"
)

const (
	formTitle       = "Add a new home"
	submitLabel     = "Create Home"
	submittingLabel = "Creating..."
)

var placeholders = map[views.Field]string{
	views.FieldTitle:         "Cozy cabin in the woods",
	views.FieldDescription:   "What makes this place special?",
	views.FieldPricePerNight: "120",
	views.FieldLocation:      "Asheville, NC",
	views.FieldImageURL:      "https://...",
	views.FieldAmenities:     "wifi, kitchen, parking",
}

// initFormInputs builds one text input per form field, seeded from form.
func (m *Model) initFormInputs(form views.Form) {
	fields := views.Fields()
	m.inputs = make([]textinput.Model, len(fields))
	for i, field := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[field]
		ti.SetValue(form.Value(field))
		m.inputs[i] = ti
	}
	m.focusField = 0
}

// focusInput moves focus to index i, wrapping around.
func (m *Model) focusInput(i int) tea.Cmd {
	n := len(m.inputs)
	if n == 0 {
		return nil
	}
	i = ((i % n) + n) % n
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focusField = i
	return m.inputs[i].Focus()
}

// updateFocusedInput feeds a key to the focused input and mirrors the value
// into the controller.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	if m.create == nil || len(m.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	m.inputs[m.focusField], cmd = m.inputs[m.focusField].Update(msg)
	field := views.Fields()[m.focusField]
	m.create.SetField(field, m.inputs[m.focusField].Value())
	return cmd
}

// renderForm renders the add-home screen.
func (m Model) renderForm() string {
	styles := m.theme.Styles()
	if m.create == nil {
		return ""
	}

	missing := make(map[views.Field]bool)
	for _, f := range m.create.Missing() {
		missing[f] = true
	}

	labelWidth := 30
	inputWidth := max(m.width-labelWidth-6, 10)
	labelStyle := lipgloss.NewStyle().Width(labelWidth)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(formTitle))
	b.WriteString("\n\n")

	for i, field := range views.Fields() {
		label := field.Label()
		if field.Required() {
			label += " *"
		}
		ls := styles.MutedText
		if i == m.focusField {
			ls = styles.AccentText.Bold(true)
		}
		b.WriteString(labelStyle.Render(ls.Render(label)))

		input := m.inputs[i]
		input.Width = inputWidth
		b.WriteString(input.View())
		if missing[field] {
			b.WriteString("  ")
			b.WriteString(styles.DangerText.Render("required"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	button := submitLabel
	buttonStyle := styles.Selected.Bold(true).Padding(0, 2)
	if m.create.Submitting() {
		button = submittingLabel
		buttonStyle = styles.FaintText.Padding(0, 2)
	}
	b.WriteString(buttonStyle.Render(button))
	b.WriteString("  ")
	b.WriteString(styles.FaintText.Render("ctrl+s to submit, esc to cancel"))
	return b.String()
}
