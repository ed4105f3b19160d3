package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/homes/internal/homes"
	"github.com/five82/homes/internal/logging"
	"github.com/five82/homes/internal/prefs"
	"github.com/five82/homes/internal/views"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Gateway   homes.Gateway
	Logger    zerolog.Logger
	Start     views.NavigateMsg
	APIBase   string
	LogFile   string
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	gateway   homes.Gateway
	baseLog   zerolog.Logger // untagged; handed to controllers
	log       zerolog.Logger
	apiBase   string
	logFile   string
	prefsPath string
	keys      keyMap

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Active screen; exactly one controller is non-nil.
	route   views.Route
	list    *views.List
	details *views.Details
	create  *views.Create

	// List state
	selected int

	// Details state
	detailViewport viewport.Model

	// Create state
	inputs     []textinput.Model
	focusField int

	// Overlays
	modal    Modal
	showHelp bool
	diag     diagnosticsState

	startCmd tea.Cmd
}

// New creates the root model and mounts the start screen.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	m := Model{
		ctx:       ctx,
		gateway:   opts.Gateway,
		baseLog:   opts.Logger,
		log:       logging.Component(opts.Logger, "ui"),
		apiBase:   opts.APIBase,
		logFile:   opts.LogFile,
		prefsPath: opts.PrefsPath,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
	}
	m.startCmd = m.navigate(opts.Start)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.startCmd
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeViewports()
		return m, nil

	case views.NavigateMsg:
		cmd := m.navigate(msg)
		return m, cmd

	case views.NoticeMsg:
		m.modal = newNoticeModal(msg)
		return m, nil

	case noticeClosedMsg:
		if msg.then != nil {
			cmd := m.navigate(*msg.then)
			return m, cmd
		}
		return m, nil

	case confirmResultMsg:
		cmd := m.resolveDelete(msg.confirmed)
		return m, cmd

	case diagnosticsMsg:
		m.applyDiagnostics(msg)
		return m, nil
	}

	cmd := m.forward(msg)
	m.syncDetailViewport()
	if m.create != nil && len(m.inputs) > 0 {
		// Cursor blink and similar input-internal messages.
		var inputCmd tea.Cmd
		m.inputs[m.focusField], inputCmd = m.inputs[m.focusField].Update(msg)
		cmd = tea.Batch(cmd, inputCmd)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.modal != nil {
		return m.renderModal()
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.diag.open {
		return m.renderDiagnostics()
	}
	return m.renderMain()
}

// navigate tears down the active controller and mounts the one for nav.
func (m *Model) navigate(nav views.NavigateMsg) tea.Cmd {
	m.unmountActive()
	m.route = nav.Route
	m.log.Debug().Str("route", nav.Route.String()).Str("home_id", nav.ID.String()).Msg("navigate")

	switch nav.Route {
	case views.RouteDetails:
		m.details = views.NewDetails(m.gateway, m.baseLog, nav.ID)
		m.detailViewport.SetYOffset(0)
		cmd := m.details.Mount(m.ctx)
		m.syncDetailViewport()
		return cmd
	case views.RouteCreate:
		m.create = views.NewCreate(m.gateway, m.baseLog)
		m.initFormInputs(m.create.Form())
		return tea.Batch(m.create.Mount(m.ctx), m.focusInput(0))
	default:
		m.route = views.RouteList
		m.list = views.NewList(m.gateway, m.baseLog)
		m.selected = 0
		return m.list.Mount(m.ctx)
	}
}

func (m *Model) unmountActive() {
	if m.list != nil {
		m.list.Unmount()
		m.list = nil
	}
	if m.details != nil {
		m.details.Unmount()
		m.details = nil
	}
	if m.create != nil {
		m.create.Unmount()
		m.create = nil
		m.inputs = nil
	}
}

// forward hands result messages to the mounted controller.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	switch {
	case m.list != nil:
		cmd := m.list.Update(msg)
		m.clampSelection()
		return cmd
	case m.details != nil:
		return m.details.Update(msg)
	case m.create != nil:
		return m.create.Update(msg)
	}
	return nil
}

func (m *Model) resolveDelete(confirmed bool) tea.Cmd {
	if m.details == nil {
		return nil
	}
	if !confirmed {
		m.details.CancelDelete()
		return nil
	}
	return m.details.ConfirmDelete(m.ctx)
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.log.Warn().Err(err).Msg("save prefs failed")
	}
}

// contentHeight is the space left under the header and command bar.
func (m Model) contentHeight() int {
	return max(m.height-2, 3)
}

func (m *Model) resizeViewports() {
	m.detailViewport.Width = max(m.width-4, 10)
	m.detailViewport.Height = max(m.contentHeight()-2, 1)
	m.syncDetailViewport()
	m.diag.resize(m.width, m.height)
}

// renderMain renders the header, command bar and active screen.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

func (m Model) renderContent() string {
	switch m.route {
	case views.RouteDetails:
		return m.renderDetails()
	case views.RouteCreate:
		return m.renderForm()
	default:
		return m.renderList()
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
