package transport

import "sync"

// memBuffer bounds how many undelivered events a MemChannel holds
const memBuffer = 256

// MemChannel is an in-process Channel. The owner drives the lifecycle with
// Open, Deliver, Fail and Close; frames passed to Send are recorded.
// It is used to replay journaled sessions and in tests.
type MemChannel struct {
	mu         sync.Mutex
	events     chan Event
	open       bool
	terminated bool
	sent       [][]byte
	sendErr    error
}

// NewMemChannel creates a MemChannel that has not been opened yet
func NewMemChannel() *MemChannel {
	return &MemChannel{events: make(chan Event, memBuffer)}
}

// Events implements Channel
func (m *MemChannel) Events() <-chan Event {
	return m.events
}

// Open queues EventOpen and starts accepting Send.
func (m *MemChannel) Open() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.terminated || m.open {
		return
	}
	m.open = true
	m.events <- Event{Kind: EventOpen}
}

// Deliver queues an inbound frame.
func (m *MemChannel) Deliver(raw []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.terminated {
		return
	}
	m.events <- Event{Kind: EventMessage, Data: raw}
}

// Fail queues EventError and terminates the channel.
func (m *MemChannel) Fail(err error) {
	m.terminate(Event{Kind: EventError, Err: err})
}

// Close implements Channel: it queues EventClose and terminates the channel.
func (m *MemChannel) Close() error {
	m.terminate(Event{Kind: EventClose})
	return nil
}

func (m *MemChannel) terminate(event Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.terminated {
		return
	}
	m.terminated = true
	m.open = false
	m.events <- event
	close(m.events)
}

// Send implements Channel
func (m *MemChannel) Send(raw []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return ErrNotOpen
	}
	if m.sendErr != nil {
		return m.sendErr
	}
	frame := make([]byte, len(raw))
	copy(frame, raw)
	m.sent = append(m.sent, frame)
	return nil
}

// SetSendError makes every later Send fail with err; nil restores normal sends.
func (m *MemChannel) SetSendError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sendErr = err
}

// Sent returns the frames accepted by Send, in order.
func (m *MemChannel) Sent() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.sent))
	copy(out, m.sent)
	return out
}
