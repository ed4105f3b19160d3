package views

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/homes/internal/homes"
)

// Route names a screen of the application.
type Route int

const (
	RouteList Route = iota
	RouteDetails
	RouteCreate
)

func (r Route) String() string {
	switch r {
	case RouteDetails:
		return "details"
	case RouteCreate:
		return "create"
	default:
		return "list"
	}
}

// Status is the load state of a view.
type Status int

const (
	StatusLoading Status = iota
	StatusSuccess
	StatusError
)

// User-facing messages. Causes are logged, never shown.
const (
	MsgListFailed     = "Failed to fetch homes. Please try again later."
	MsgListEmpty      = "No homes found."
	MsgMissingID      = "Home ID is missing."
	MsgHomeNotFound   = "Could not find the requested home."
	MsgConfirmDelete  = "Are you sure you want to delete this listing?"
	MsgDeleted        = "Listing deleted successfully!"
	MsgDeleteFailed   = "Failed to delete the listing."
	MsgCreated        = "New home added successfully!"
	MsgCreateFailed   = "Failed to add new home. Please check the details and try again."
	MsgLoadingList    = "Loading listings..."
	MsgLoadingDetails = "Loading home details..."
)

// NavigateMsg asks the root model to switch screens.
type NavigateMsg struct {
	Route Route
	ID    homes.ID
}

// NoticeMsg is a blocking notification. When Then is set the root model
// navigates there once the notice is dismissed.
type NoticeMsg struct {
	Text    string
	Failure bool
	Then    *NavigateMsg
}

func notify(n NoticeMsg) tea.Cmd {
	return func() tea.Msg { return n }
}

// generations is shared by every controller so that two mounts never hand
// out the same number, even across controller instances.
var generations atomic.Uint64

// lifecycle tracks whether a controller is mounted and which generation its
// outstanding requests belong to.
type lifecycle struct {
	gen  uint64
	live bool
}

func (l *lifecycle) begin() uint64 {
	l.gen = generations.Add(1)
	l.live = true
	return l.gen
}

func (l *lifecycle) end() {
	l.live = false
	l.gen = 0
}

// accepts reports whether a result issued under gen may still be applied.
func (l *lifecycle) accepts(gen uint64) bool {
	return l.live && gen != 0 && gen == l.gen
}
