package views

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/homes/internal/homes"
	"github.com/five82/homes/internal/logging"
)

// List owns the state of the home list screen. A List is mounted once; a
// fresh one is built every time the screen is entered.
type List struct {
	gateway homes.Gateway
	log     zerolog.Logger
	life    lifecycle
	mounted bool

	status Status
	homes  []homes.Home
	err    string
}

type listLoadedMsg struct {
	gen   uint64
	homes []homes.Home
	err   error
}

// NewList builds an unmounted list controller.
func NewList(gateway homes.Gateway, logger zerolog.Logger) *List {
	return &List{
		gateway: gateway,
		log:     logging.Component(logger, "list"),
		status:  StatusLoading,
	}
}

// Mount issues the one and only ListHomes call for this controller.
func (l *List) Mount(ctx context.Context) tea.Cmd {
	if l.mounted {
		return nil
	}
	l.mounted = true
	gen := l.life.begin()
	l.status = StatusLoading

	gw := l.gateway
	if gw == nil {
		l.fail(errNoGateway)
		return nil
	}
	return func() tea.Msg {
		items, err := gw.ListHomes(ctx)
		return listLoadedMsg{gen: gen, homes: items, err: err}
	}
}

// Unmount drops any result still in flight.
func (l *List) Unmount() {
	l.life.end()
}

// Update applies results addressed to this controller.
func (l *List) Update(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(listLoadedMsg)
	if !ok {
		return nil
	}
	if !l.life.accepts(loaded.gen) {
		l.log.Debug().Uint64("generation", loaded.gen).Msg("discarding stale list result")
		return nil
	}
	if loaded.err != nil {
		l.fail(loaded.err)
		return nil
	}
	l.status = StatusSuccess
	l.homes = loaded.homes
	l.log.Debug().Int("count", len(loaded.homes)).Msg("homes loaded")
	return nil
}

func (l *List) fail(err error) {
	l.status = StatusError
	l.err = MsgListFailed
	l.log.Error().Err(err).Msg("list homes failed")
}

// Status returns the current load state.
func (l *List) Status() Status { return l.status }

// Err returns the user-facing error text, empty unless Status is StatusError.
func (l *List) Err() string { return l.err }

// Empty reports a successful load that returned no homes.
func (l *List) Empty() bool {
	return l.status == StatusSuccess && len(l.homes) == 0
}

// Homes returns the loaded homes in server order.
func (l *List) Homes() []homes.Home {
	if len(l.homes) == 0 {
		return nil
	}
	out := make([]homes.Home, len(l.homes))
	copy(out, l.homes)
	return out
}
