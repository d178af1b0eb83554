// Package transport provides the bidirectional message channel to the conversational agent.
package transport

import "errors"

// ErrNotOpen is returned by Send when the channel cannot currently accept frames
var ErrNotOpen = errors.New("channel is not open")

// EventKind is the lifecycle stage an Event reports
type EventKind int

// Channel lifecycle events
const (
	EventOpen EventKind = iota
	EventMessage
	EventClose
	EventError
)

func (k EventKind) String() string {
	switch k {
	case EventOpen:
		return "open"
	case EventMessage:
		return "message"
	case EventClose:
		return "close"
	case EventError:
		return "error"
	}
	return "unknown"
}

// Event is delivered on Channel.Events. Data is set for EventMessage, Err for EventError.
type Event struct {
	Kind EventKind
	Data []byte
	Err  error
}

// Channel is a message link to the agent. Events delivers EventOpen first,
// then any number of EventMessage, then at most one EventClose or EventError,
// after which the events channel is closed. It is also closed, possibly
// without a terminal event, once Close has been called.
type Channel interface {
	Events() <-chan Event
	// Send is best effort and fails with ErrNotOpen unless the channel is open.
	Send(raw []byte) error
	Close() error
}
