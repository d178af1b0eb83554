package engine

import (
	"context"
	"errors"
	"log"

	"github.com/jonathan/resume-chat/internal/transport"
)

// Run applies channel events and user answers one at a time, in arrival order,
// until the conversation is closed. ch is normally the channel the engine was
// created with. Cancelling ctx closes ch and returns ctx.Err().
// A closed answers channel only stops answer input.
func (e *Engine) Run(ctx context.Context, ch transport.Channel, answers <-chan string) error {
	events := ch.Events()

	for e.state != StateClosed {
		select {
		case <-ctx.Done():
			if err := ch.Close(); err != nil {
				log.Printf("[engine] failed to close channel: %v", err)
			}
			e.HandleClose()
			return ctx.Err()

		case event, ok := <-events:
			if !ok {
				e.HandleClose()
				continue
			}
			e.dispatch(event)

		case text, ok := <-answers:
			if !ok {
				answers = nil
				continue
			}
			if err := e.SubmitAnswer(text); err != nil && !errors.Is(err, ErrBlankAnswer) {
				log.Printf("[engine] answer not sent: %v", err)
			}
		}
	}
	return nil
}

func (e *Engine) dispatch(event transport.Event) {
	switch event.Kind {
	case transport.EventOpen:
		e.HandleOpen()
	case transport.EventMessage:
		e.HandleMessage(event.Data)
	case transport.EventClose:
		e.HandleClose()
	case transport.EventError:
		e.HandleError(event.Err)
	default:
		log.Printf("[engine] ignoring %s event", event.Kind)
	}
}
