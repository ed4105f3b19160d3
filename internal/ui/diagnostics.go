package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/homes/internal/logtail"
)

// diagnosticsLimit is how many log entries the overlay shows.
const diagnosticsLimit = 200

type diagnosticsState struct {
	open     bool
	loading  bool
	entries  []logtail.Entry
	err      error
	viewport viewport.Model
}

type diagnosticsMsg struct {
	entries []logtail.Entry
	err     error
}

func (d *diagnosticsState) resize(width, height int) {
	d.viewport.Width = max(width-4, 10)
	d.viewport.Height = max(height-5, 1)
}

// openDiagnostics shows the overlay and reads the log tail in the background.
func (m *Model) openDiagnostics() tea.Cmd {
	m.diag.open = true
	m.diag.loading = true
	m.diag.resize(m.width, m.height)
	path := m.logFile
	return func() tea.Msg {
		if path == "" {
			return diagnosticsMsg{}
		}
		entries, err := logtail.Read(path, diagnosticsLimit)
		return diagnosticsMsg{entries: entries, err: err}
	}
}

func (m *Model) applyDiagnostics(msg diagnosticsMsg) {
	if !m.diag.open {
		return
	}
	m.diag.loading = false
	m.diag.entries = msg.entries
	m.diag.err = msg.err
	m.diag.viewport.SetContent(m.diagnosticsContent())
	m.diag.viewport.GotoBottom()
}

func (m Model) handleDiagnosticsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Diagnostics), msg.Type == tea.KeyEsc, key.Matches(msg, m.keys.Quit):
		m.diag.open = false
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		cmd := m.openDiagnostics()
		return m, cmd
	case key.Matches(msg, m.keys.Down):
		m.diag.viewport.LineDown(1)
	case key.Matches(msg, m.keys.Up):
		m.diag.viewport.LineUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.diag.viewport.HalfViewDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.diag.viewport.HalfViewUp()
	case key.Matches(msg, m.keys.Top):
		m.diag.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.diag.viewport.GotoBottom()
	}
	return m, nil
}

func (m Model) diagnosticsContent() string {
	styles := m.theme.Styles()
	if m.diag.err != nil {
		return styles.DangerText.Render(fmt.Sprintf("read log: %v", m.diag.err))
	}
	if len(m.diag.entries) == 0 {
		return styles.MutedText.Render("No log entries yet.")
	}
	lines := make([]string, 0, len(m.diag.entries))
	for _, e := range m.diag.entries {
		lines = append(lines, m.styleEntry(e))
	}
	return strings.Join(lines, "\n")
}

func (m Model) styleEntry(e logtail.Entry) string {
	styles := m.theme.Styles()
	if e.Raw != "" {
		return styles.FaintText.Render(e.Raw)
	}
	var levelStyle lipgloss.Style
	switch e.Level {
	case "error", "fatal", "panic":
		levelStyle = styles.DangerText
	case "warn":
		levelStyle = styles.WarningText.Bold(true)
	case "info":
		levelStyle = styles.SuccessText
	default:
		levelStyle = styles.InfoText
	}
	line := e.String()
	label := logtail.LevelLabel(e.Level)
	if idx := strings.Index(line, label); idx >= 0 {
		return styles.FaintText.Render(line[:idx]) +
			levelStyle.Render(label) +
			styles.Text.Render(line[idx+len(label):])
	}
	return styles.Text.Render(line)
}

func (m Model) renderDiagnostics() string {
	styles := m.theme.Styles()
	var body string
	if m.diag.loading {
		body = styles.MutedText.Render("Reading log...")
	} else {
		body = m.diag.viewport.View()
	}
	title := "Diagnostic Log"
	if m.logFile != "" {
		title += " " + truncateMiddle(m.logFile, max(m.width/2, 10))
	}
	box := m.renderTitledBox(title, body, m.width, max(m.height-1, 3), true)
	hint := styles.FaintText.Render("j/k scroll  r reload  esc close")
	return box + "\n" + hint
}
