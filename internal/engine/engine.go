// Package engine drives a form-filling conversation: it applies agent frames
// to the resume document, tracks pending fields and keeps the dialogue log.
package engine

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/resume-chat/internal/conversation"
	"github.com/jonathan/resume-chat/internal/pending"
	"github.com/jonathan/resume-chat/internal/protocol"
	"github.com/jonathan/resume-chat/internal/resume"
	"github.com/jonathan/resume-chat/internal/types"
)

var (
	// ErrBlankAnswer is returned by SubmitAnswer for empty or whitespace-only text
	ErrBlankAnswer = errors.New("answer is blank")
	// ErrNotAccepting is returned by SubmitAnswer unless the conversation is active
	ErrNotAccepting = errors.New("conversation is not accepting answers")
)

// State is the connection lifecycle stage of an Engine
type State int

// Engine states. Closed is terminal.
const (
	StateConnecting State = iota
	StateActive
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateActive:
		return "active"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// Frame directions passed to Journal.Record
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// Sender delivers outbound frames to the agent
type Sender interface {
	Send(raw []byte) error
}

// Journal records raw frames as they cross the engine boundary
type Journal interface {
	Record(direction string, raw []byte) error
}

// Option configures an Engine
type Option func(*Engine)

// WithObserver registers fn to be called with a fresh View after every change.
// fn runs synchronously and must not call back into the engine.
func WithObserver(fn func(View)) Option {
	return func(e *Engine) {
		e.observers = append(e.observers, fn)
	}
}

// WithJournal records every inbound frame and every successfully sent answer.
func WithJournal(j Journal) Option {
	return func(e *Engine) {
		e.journal = j
	}
}

// Engine owns the document, the pending set and the conversation log for one
// session. It is not safe for concurrent use; Run serializes all input.
type Engine struct {
	sender  Sender
	store   *resume.Store
	pending *pending.Set
	log     *conversation.Log

	state          State
	initialLoading bool

	observers []func(View)
	journal   Journal
}

// New creates an Engine in the connecting state that sends answers through sender.
func New(sender Sender, opts ...Option) *Engine {
	e := &Engine{
		sender:         sender,
		store:          resume.NewStore(nil),
		pending:        pending.NewSet(),
		log:            conversation.NewLog(),
		state:          StateConnecting,
		initialLoading: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// HandleOpen marks the conversation active. It only has an effect while connecting.
func (e *Engine) HandleOpen() {
	if e.state != StateConnecting {
		return
	}
	e.state = StateActive
	e.initialLoading = false
	e.notify()
}

// HandleClose ends the conversation. Nothing is left loading afterwards.
func (e *Engine) HandleClose() {
	if e.state == StateClosed {
		return
	}
	e.shutdown()
}

// HandleError ends the conversation after a transport failure.
func (e *Engine) HandleError(err error) {
	if e.state == StateClosed {
		return
	}
	log.Printf("[engine] connection failed: %v", err)
	e.shutdown()
}

func (e *Engine) shutdown() {
	e.state = StateClosed
	e.initialLoading = false
	e.pending.ClearAll()
	e.notify()
}

// HandleMessage decodes and applies one inbound frame. Frames that cannot be
// decoded or address an unknown field are dropped without changing state.
func (e *Engine) HandleMessage(raw []byte) {
	switch e.state {
	case StateClosed:
		return
	case StateConnecting:
		log.Printf("[engine] dropping frame received before open")
		return
	}

	e.record(DirectionInbound, raw)

	event, err := protocol.Decode(raw)
	if err != nil {
		log.Printf("[engine] dropping frame: %v", err)
		return
	}

	switch ev := event.(type) {
	case *protocol.Question:
		e.log.Append(conversation.SenderBot, ev.Text)
		if ev.Field != "" {
			if p, ok := resume.ParsePath(ev.Field); ok {
				e.pending.Mark(p)
			} else {
				log.Printf("[engine] question announces unknown field %q", ev.Field)
			}
		}
	case *protocol.Update:
		p, ok := resume.ParsePath(ev.Field)
		if !ok {
			log.Printf("[engine] dropping update for unknown field %q", ev.Field)
			return
		}
		value, err := resume.DecodeValue(p, ev.Value)
		if err != nil {
			log.Printf("[engine] dropping update: %v", err)
			return
		}
		if err := e.store.Apply(p, value); err != nil {
			log.Printf("[engine] dropping update: %v", err)
			return
		}
		e.pending.Clear(p)
	case *protocol.Complete:
		e.log.Append(conversation.SenderBot, ev.Message)
		e.store.Replace(ev.Resume)
		e.pending.ClearAll()
	case *protocol.AgentError:
		e.log.Append(conversation.SenderBot, "Error: "+ev.Message)
	default:
		log.Printf("[engine] dropping unhandled %s frame", event.Kind())
		return
	}

	e.notify()
}

// SubmitAnswer sends text to the agent as typed and, once the send succeeds,
// appends it to the conversation log. The document is not touched.
func (e *Engine) SubmitAnswer(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrBlankAnswer
	}
	if e.state != StateActive {
		return ErrNotAccepting
	}

	frame, err := protocol.EncodeAnswer(text)
	if err != nil {
		return err
	}
	if err := e.sender.Send(frame); err != nil {
		return fmt.Errorf("failed to send answer: %w", err)
	}
	e.record(DirectionOutbound, frame)

	e.log.Append(conversation.SenderUser, text)
	e.notify()
	return nil
}

func (e *Engine) record(direction string, raw []byte) {
	if e.journal == nil {
		return
	}
	if err := e.journal.Record(direction, raw); err != nil {
		log.Printf("[journal] failed to record %s frame: %v", direction, err)
	}
}

func (e *Engine) notify() {
	if len(e.observers) == 0 {
		return
	}
	view := e.Snapshot()
	for _, fn := range e.observers {
		fn(view)
	}
}

// State returns the current lifecycle state
func (e *Engine) State() State {
	return e.state
}

// CurrentDocument returns the current immutable snapshot
func (e *Engine) CurrentDocument() *types.Resume {
	return e.store.Current()
}

// IsPending reports whether p was announced and has not been delivered yet
func (e *Engine) IsPending(p resume.Path) bool {
	return e.pending.Has(p)
}

// InitialLoading reports whether the channel has not opened yet
func (e *Engine) InitialLoading() bool {
	return e.initialLoading
}

// IsLoading reports whether p should be shown as loading
func (e *Engine) IsLoading(p resume.Path) bool {
	return e.initialLoading || e.pending.Has(p)
}

// ConversationLog returns a copy of the dialogue so far
func (e *Engine) ConversationLog() []conversation.Message {
	return e.log.Messages()
}

// Snapshot captures everything a presentation layer needs
func (e *Engine) Snapshot() View {
	return View{
		State:          e.state,
		Document:       e.store.Current(),
		Version:        e.store.Version(),
		Pending:        e.pending.Paths(),
		InitialLoading: e.initialLoading,
		Messages:       e.log.Messages(),
	}
}
