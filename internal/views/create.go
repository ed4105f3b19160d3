package views

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/homes/internal/homes"
	"github.com/five82/homes/internal/logging"
)

// Create owns the state of the add-home screen.
type Create struct {
	gateway homes.Gateway
	log     zerolog.Logger
	life    lifecycle

	form       Form
	missing    []Field
	submitting bool
}

type homeCreatedMsg struct {
	gen  uint64
	home homes.Home
	err  error
}

// NewCreate builds an unmounted create controller with a fresh form.
func NewCreate(gateway homes.Gateway, logger zerolog.Logger) *Create {
	return &Create{
		gateway: gateway,
		log:     logging.Component(logger, "create"),
		form:    NewForm(),
	}
}

// Mount activates the controller. The create screen issues no request on
// entry so the returned command is always nil.
func (c *Create) Mount(context.Context) tea.Cmd {
	if !c.life.live {
		c.life.begin()
	}
	return nil
}

// Unmount drops any submission still in flight.
func (c *Create) Unmount() {
	c.life.end()
}

// Form returns a copy of the current form.
func (c *Create) Form() Form { return c.form }

// SetField edits one field. Editing clears its missing marker.
func (c *Create) SetField(field Field, value string) {
	c.form.Set(field, value)
	if value == "" || len(c.missing) == 0 {
		return
	}
	kept := c.missing[:0]
	for _, f := range c.missing {
		if f != field {
			kept = append(kept, f)
		}
	}
	c.missing = kept
}

// Missing lists the required fields flagged by the last submit attempt.
func (c *Create) Missing() []Field {
	if len(c.missing) == 0 {
		return nil
	}
	out := make([]Field, len(c.missing))
	copy(out, c.missing)
	return out
}

// Submitting reports a create request in flight.
func (c *Create) Submitting() bool { return c.submitting }

// Submit validates the form and sends it. It returns nil while a request is
// already in flight, when validation fails, or when not mounted.
func (c *Create) Submit(ctx context.Context) tea.Cmd {
	if c.submitting || !c.life.live {
		return nil
	}
	c.missing = c.form.Missing()
	if len(c.missing) > 0 {
		c.log.Debug().Int("missing", len(c.missing)).Msg("create blocked by empty required fields")
		return nil
	}
	gw := c.gateway
	if gw == nil {
		c.log.Error().Err(errNoGateway).Msg("create home failed")
		return notify(NoticeMsg{Text: MsgCreateFailed, Failure: true})
	}

	listing := c.form.Listing()
	gen := c.life.gen
	c.submitting = true
	return func() tea.Msg {
		home, err := gw.CreateHome(ctx, listing)
		return homeCreatedMsg{gen: gen, home: home, err: err}
	}
}

// Update applies results addressed to this controller.
func (c *Create) Update(msg tea.Msg) tea.Cmd {
	created, ok := msg.(homeCreatedMsg)
	if !ok {
		return nil
	}
	if !c.life.accepts(created.gen) {
		c.log.Debug().Uint64("generation", created.gen).Msg("discarding stale create result")
		return nil
	}
	c.submitting = false
	if created.err != nil {
		c.log.Error().Err(created.err).Msg("create home failed")
		return notify(NoticeMsg{Text: MsgCreateFailed, Failure: true})
	}
	c.log.Info().Str("home_id", created.home.ID.String()).Msg("home created")
	return notify(NoticeMsg{Text: MsgCreated, Then: &NavigateMsg{Route: RouteList}})
}
