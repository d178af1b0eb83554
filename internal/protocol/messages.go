package protocol

import (
	"encoding/json"

	"github.com/jonathan/resume-chat/internal/types"
)

// Kind is the "type" discriminator of a frame
type Kind string

// Frame kinds
const (
	KindQuestion Kind = "question"
	KindUpdate   Kind = "update"
	KindComplete Kind = "complete"
	KindError    Kind = "error"
	KindAnswer   Kind = "answer"
)

// Envelope is the outer shape of every inbound frame
type Envelope struct {
	Type string          `json:"type" validate:"required"`
	Data json.RawMessage `json:"data"`
}

// Event is a decoded inbound frame: one of *Question, *Update, *Complete or *AgentError.
type Event interface {
	Kind() Kind
}

// Question asks the user something and optionally announces the field the
// answer will fill.
type Question struct {
	Text  string `json:"question" validate:"required"`
	Field string `json:"field,omitempty"`
}

// Update delivers the value of one field. Value is kept raw until the field
// is known to be addressable.
type Update struct {
	Field string          `json:"field" validate:"required"`
	Value json.RawMessage `json:"value" validate:"required"`
}

// Complete ends the conversation and carries the whole final document.
type Complete struct {
	Message     string          `json:"message" validate:"required"`
	FinalResume json.RawMessage `json:"finalResume" validate:"required"`

	// Resume is FinalResume decoded after schema validation
	Resume *types.Resume `json:"-"`
}

// AgentError is an error reported by the agent itself.
type AgentError struct {
	Message string `json:"message" validate:"required"`
}

// Answer is the outbound frame carrying the user's text
type Answer struct {
	Type    Kind   `json:"type"`
	Content string `json:"content"`
}

// Kind implements Event
func (*Question) Kind() Kind { return KindQuestion }

// Kind implements Event
func (*Update) Kind() Kind { return KindUpdate }

// Kind implements Event
func (*Complete) Kind() Kind { return KindComplete }

// Kind implements Event
func (*AgentError) Kind() Kind { return KindError }
