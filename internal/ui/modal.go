package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/homes/internal/views"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

type confirmResultMsg struct {
	confirmed bool
}

type noticeClosedMsg struct {
	then *views.NavigateMsg
}

// confirmModal asks a yes/no question.
type confirmModal struct {
	question string
}

func newConfirmModal(question string) confirmModal {
	return confirmModal{question: question}
}

func (c confirmModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	switch {
	case key.Matches(k, keys.Confirm):
		return c, resultCmd(true), true
	case key.Matches(k, keys.Cancel):
		return c, resultCmd(false), true
	}
	return c, nil, false
}

func resultCmd(confirmed bool) tea.Cmd {
	return func() tea.Msg { return confirmResultMsg{confirmed: confirmed} }
}

func (c confirmModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	var b strings.Builder
	b.WriteString(styles.WarningText.Bold(true).Render("Confirm"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(c.question))
	b.WriteString("\n\n")
	b.WriteString(styles.AccentText.Render("y") + styles.MutedText.Render(" yes   ") +
		styles.AccentText.Render("n") + styles.MutedText.Render(" no"))
	return placeDialog(theme, theme.Warning, b.String(), width, height)
}

// noticeModal blocks until the user acknowledges an outcome.
type noticeModal struct {
	notice views.NoticeMsg
}

func newNoticeModal(n views.NoticeMsg) noticeModal {
	return noticeModal{notice: n}
}

func (n noticeModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || !key.Matches(k, keys.Dismiss) {
		return n, nil, false
	}
	then := n.notice.Then
	return n, func() tea.Msg { return noticeClosedMsg{then: then} }, true
}

func (n noticeModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	title := styles.SuccessText.Render("Success")
	border := theme.Success
	if n.notice.Failure {
		title = styles.DangerText.Render("Error")
		border = theme.Danger
	}
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(n.notice.Text))
	b.WriteString("\n\n")
	b.WriteString(styles.AccentText.Render("enter") + styles.MutedText.Render(" OK"))
	return placeDialog(theme, border, b.String(), width, height)
}

// placeDialog centers a bordered dialog over the screen.
func placeDialog(theme Theme, border, content string, width, height int) string {
	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(1, 2).
		Width(min(max(width-4, 20), 56)).
		Render(content)
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		dialog,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

func (m Model) renderModal() string {
	return m.modal.View(m.theme, m.width, m.height)
}
