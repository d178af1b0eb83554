package db

import (
	"time"

	"github.com/google/uuid"
)

// Session states stored in chat_sessions.state
const (
	SessionStateActive = "active"
	SessionStateClosed = "closed"
	SessionStateFailed = "failed"
)

// Frame directions stored in chat_frames.direction
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// ValidDirection reports whether direction is a known frame direction
func ValidDirection(direction string) bool {
	return direction == DirectionInbound || direction == DirectionOutbound
}

// Session represents a journaled conversation
type Session struct {
	ID        uuid.UUID  `json:"id"`
	AgentURL  string     `json:"agent_url"`
	State     string     `json:"state"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

// Frame is one raw protocol frame as it crossed the wire
type Frame struct {
	SessionID  uuid.UUID `json:"session_id"`
	Seq        int       `json:"seq"`
	Direction  string    `json:"direction"`
	Payload    []byte    `json:"payload"`
	ReceivedAt time.Time `json:"received_at"`
}
