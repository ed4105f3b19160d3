package homes

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies gateway failures.
type Kind int

const (
	// KindTransport means the request never produced a response.
	KindTransport Kind = iota + 1
	// KindStatus means the server answered with a non-2xx status.
	KindStatus
	// KindDecode means the response body was not the expected JSON.
	KindDecode
	// KindPrecondition means required input was missing and nothing was sent.
	KindPrecondition
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	case KindPrecondition:
		return "precondition"
	default:
		return "unknown"
	}
}

// ErrMissingID is returned when an operation needs an identifier and got none.
var ErrMissingID = errors.New("home id is required")

// Error is the single failure signal returned by every Gateway operation.
type Error struct {
	Op     string
	Kind   Kind
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("%s: server returned status %d", e.Op, e.Status)
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s failure", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the failure kind of err, or 0 when err is not a gateway error.
func KindOf(err error) Kind {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Kind
	}
	return 0
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Status
	}
	return 0
}
