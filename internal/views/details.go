package views

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/five82/homes/internal/homes"
	"github.com/five82/homes/internal/logging"
)

var errNoGateway = errors.New("no gateway configured")

// Details owns the state of a single home screen, including its delete flow.
type Details struct {
	gateway homes.Gateway
	log     zerolog.Logger
	id      homes.ID
	life    lifecycle
	mounted bool

	status    Status
	home      homes.Home
	err       string
	missingID bool

	confirming bool
	deleting   bool
	deleted    bool
}

type homeLoadedMsg struct {
	gen  uint64
	home homes.Home
	err  error
}

type homeDeletedMsg struct {
	gen uint64
	id  homes.ID
	err error
}

// NewDetails builds an unmounted details controller for id.
func NewDetails(gateway homes.Gateway, logger zerolog.Logger, id homes.ID) *Details {
	return &Details{
		gateway: gateway,
		log:     logging.Component(logger, "details").With().Str("home_id", id.String()).Logger(),
		id:      id,
		status:  StatusLoading,
	}
}

// Mount fetches the home. Without an id it fails at once and sends nothing.
func (d *Details) Mount(ctx context.Context) tea.Cmd {
	if d.mounted {
		return nil
	}
	d.mounted = true
	gen := d.life.begin()

	if d.id.Empty() {
		d.status = StatusError
		d.err = MsgMissingID
		d.missingID = true
		d.log.Warn().Msg("details opened without a home id")
		return nil
	}
	gw := d.gateway
	if gw == nil {
		d.failLoad(errNoGateway)
		return nil
	}
	id := d.id
	d.status = StatusLoading
	return func() tea.Msg {
		home, err := gw.GetHome(ctx, id)
		return homeLoadedMsg{gen: gen, home: home, err: err}
	}
}

// Unmount drops any result still in flight.
func (d *Details) Unmount() {
	d.life.end()
}

// Update applies results addressed to this controller.
func (d *Details) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case homeLoadedMsg:
		if !d.life.accepts(msg.gen) {
			d.log.Debug().Uint64("generation", msg.gen).Msg("discarding stale home result")
			return nil
		}
		if msg.err != nil {
			d.failLoad(msg.err)
			return nil
		}
		d.status = StatusSuccess
		d.home = msg.home
		return nil

	case homeDeletedMsg:
		if !d.life.accepts(msg.gen) {
			d.log.Debug().Uint64("generation", msg.gen).Msg("discarding stale delete result")
			return nil
		}
		d.deleting = false
		if msg.err != nil {
			d.log.Error().Err(msg.err).Msg("delete home failed")
			return notify(NoticeMsg{Text: MsgDeleteFailed, Failure: true})
		}
		d.deleted = true
		d.log.Info().Msg("home deleted")
		return notify(NoticeMsg{Text: MsgDeleted, Then: &NavigateMsg{Route: RouteList}})
	}
	return nil
}

func (d *Details) failLoad(err error) {
	d.status = StatusError
	d.err = MsgHomeNotFound
	d.log.Error().Err(err).Msg("get home failed")
}

// RequestDelete opens the confirmation step. It refuses when no home is shown
// or a delete is already underway.
func (d *Details) RequestDelete() bool {
	if d.status != StatusSuccess || d.deleting || d.deleted || d.confirming {
		return false
	}
	d.confirming = true
	return true
}

// CancelDelete closes the confirmation without calling the server.
func (d *Details) CancelDelete() {
	d.confirming = false
}

// ConfirmDelete sends the delete for the displayed home. It does nothing
// unless a confirmation is open.
func (d *Details) ConfirmDelete(ctx context.Context) tea.Cmd {
	if !d.confirming || d.deleting || !d.life.live {
		return nil
	}
	d.confirming = false
	d.deleting = true

	gw := d.gateway
	id := d.home.ID
	gen := d.life.gen
	return func() tea.Msg {
		err := gw.DeleteHome(ctx, id)
		return homeDeletedMsg{gen: gen, id: id, err: err}
	}
}

// ID returns the identifier the screen was opened with.
func (d *Details) ID() homes.ID { return d.id }

// Status returns the current load state.
func (d *Details) Status() Status { return d.status }

// Err returns the user-facing error text.
func (d *Details) Err() string { return d.err }

// MissingID reports that the screen was opened without an identifier.
func (d *Details) MissingID() bool { return d.missingID }

// Home returns the displayed home and whether one is loaded.
func (d *Details) Home() (homes.Home, bool) {
	return d.home, d.status == StatusSuccess
}

// Confirming reports an open delete confirmation.
func (d *Details) Confirming() bool { return d.confirming }

// Deleting reports a delete request in flight.
func (d *Details) Deleting() bool { return d.deleting }
