package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/homes/internal/views"
)

// handleKey routes keyboard input: modal first, then overlays, then the
// active screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		next, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = next
		}
		return m, cmd
	}

	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.diag.open {
		return m.handleDiagnosticsKey(msg)
	}

	// The form owns printable keys so typing never triggers global actions.
	if m.route == views.RouteCreate {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Diagnostics):
		cmd := m.openDiagnostics()
		return m, cmd
	}

	switch m.route {
	case views.RouteDetails:
		return m.handleDetailsKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		cmd := m.navigate(views.NavigateMsg{Route: views.RouteCreate})
		return m, cmd
	case key.Matches(msg, m.keys.Reload):
		cmd := m.navigate(views.NavigateMsg{Route: views.RouteList})
		return m, cmd
	}

	if m.list == nil {
		return m, nil
	}
	items := m.list.Homes()
	if len(items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(items)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = len(items) - 1
	case key.Matches(msg, m.keys.Open):
		m.clampSelection()
		id := items[m.selected].ID
		cmd := m.navigate(views.NavigateMsg{Route: views.RouteDetails, ID: id})
		return m, cmd
	}
	return m, nil
}

func (m Model) handleDetailsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		cmd := m.navigate(views.NavigateMsg{Route: views.RouteList})
		return m, cmd
	case key.Matches(msg, m.keys.Delete):
		if m.details != nil && m.details.RequestDelete() {
			m.modal = newConfirmModal(views.MsgConfirmDelete)
		}
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		if m.details != nil {
			cmd := m.navigate(views.NavigateMsg{Route: views.RouteDetails, ID: m.details.ID()})
			return m, cmd
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.detailViewport.LineDown(1)
	case key.Matches(msg, m.keys.Up):
		m.detailViewport.LineUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.detailViewport.HalfViewDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.detailViewport.HalfViewUp()
	case key.Matches(msg, m.keys.Top):
		m.detailViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.detailViewport.GotoBottom()
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.create == nil {
		return m, nil
	}
	switch {
	case msg.Type == tea.KeyEsc:
		cmd := m.navigate(views.NavigateMsg{Route: views.RouteList})
		return m, cmd
	case key.Matches(msg, m.keys.Submit):
		return m, m.create.Submit(m.ctx)
	case key.Matches(msg, m.keys.NextField):
		cmd := m.focusInput(m.focusField + 1)
		return m, cmd
	case key.Matches(msg, m.keys.PrevField):
		cmd := m.focusInput(m.focusField - 1)
		return m, cmd
	case msg.Type == tea.KeyEnter:
		if m.focusField == len(m.inputs)-1 {
			return m, m.create.Submit(m.ctx)
		}
		cmd := m.focusInput(m.focusField + 1)
		return m, cmd
	}
	cmd := m.updateFocusedInput(msg)
	return m, cmd
}
