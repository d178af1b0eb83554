package transport

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// Settings controls websocket timeouts
type Settings struct {
	HandshakeTimeout time.Duration
	WriteTimeout     time.Duration
	// PingInterval must be shorter than PongWait; every pong extends the read deadline by PongWait
	PingInterval time.Duration
	PongWait     time.Duration
	EventBuffer  int
}

// DefaultSettings returns the settings used when none are configured
func DefaultSettings() *Settings {
	return &Settings{
		HandshakeTimeout: 10 * time.Second,
		WriteTimeout:     5 * time.Second,
		PingInterval:     20 * time.Second,
		PongWait:         60 * time.Second,
		EventBuffer:      16,
	}
}

// WSChannel is a Channel over a websocket connection. Frames are JSON text messages.
type WSChannel struct {
	ctx    context.Context
	cancel context.CancelFunc

	conn     *websocket.Conn
	settings *Settings
	events   chan Event

	// gorilla allows one concurrent writer
	writeMu   sync.Mutex
	open      atomic.Bool
	closeOnce sync.Once
}

// Dial connects to the agent at url. The returned channel has already queued EventOpen.
func Dial(ctx context.Context, url string, settings *Settings) (*WSChannel, error) {
	if settings == nil {
		settings = DefaultSettings()
	}

	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: settings.HandshakeTimeout,
	}
	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial agent %s: %w", url, err)
	}

	return NewWSChannel(ctx, conn, settings), nil
}

// NewWSChannel wraps an established connection and starts its read and ping loops.
func NewWSChannel(ctx context.Context, conn *websocket.Conn, settings *Settings) *WSChannel {
	if settings == nil {
		settings = DefaultSettings()
	}
	buffer := settings.EventBuffer
	if buffer < 1 {
		buffer = 1
	}

	cancelCtx, cancel := context.WithCancel(ctx)
	c := &WSChannel{
		ctx:      cancelCtx,
		cancel:   cancel,
		conn:     conn,
		settings: settings,
		events:   make(chan Event, buffer),
	}
	c.open.Store(true)
	c.events <- Event{Kind: EventOpen}

	go c.readLoop()
	if settings.PingInterval > 0 {
		go c.pingLoop()
	}
	return c
}

// Events implements Channel
func (c *WSChannel) Events() <-chan Event {
	return c.events
}

// Send implements Channel
func (c *WSChannel) Send(raw []byte) error {
	if !c.open.Load() {
		return ErrNotOpen
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(c.settings.WriteTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
		// a websocket write deadline cannot be recovered from
		c.open.Store(false)
		return fmt.Errorf("failed to send frame: %w", err)
	}
	return nil
}

// Close sends a normal closure frame and tears the connection down. It is safe
// to call more than once and concurrently with Send.
func (c *WSChannel) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.open.Store(false)
		closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = c.conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(c.settings.WriteTimeout))
		c.cancel()
		if closeErr := c.conn.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
			err = fmt.Errorf("failed to close connection: %w", closeErr)
		}
	})
	return err
}

func (c *WSChannel) readLoop() {
	defer func() {
		c.open.Store(false)
		c.cancel()
		c.conn.Close()
		close(c.events)
	}()

	if c.settings.PongWait > 0 {
		c.conn.SetReadDeadline(time.Now().Add(c.settings.PongWait)) //nolint:errcheck
		c.conn.SetPongHandler(func(string) error {
			return c.conn.SetReadDeadline(time.Now().Add(c.settings.PongWait))
		})
	}

	for {
		messageType, message, err := c.conn.ReadMessage()
		if err != nil {
			c.open.Store(false)
			if c.ctx.Err() != nil {
				// closed locally
				return
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[transport] agent closed the connection")
				c.emit(Event{Kind: EventClose})
			} else {
				log.Printf("[transport] read error: %v", err)
				c.emit(Event{Kind: EventError, Err: err})
			}
			return
		}

		switch messageType {
		case websocket.TextMessage, websocket.BinaryMessage:
			if !c.emit(Event{Kind: EventMessage, Data: message}) {
				return
			}
		}
	}
}

func (c *WSChannel) pingLoop() {
	ticker := time.NewTicker(c.settings.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			// WriteControl may run concurrently with WriteMessage
			err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(c.settings.WriteTimeout))
			if err != nil {
				log.Printf("[transport] ping failed: %v", err)
				return
			}
		}
	}
}

func (c *WSChannel) emit(event Event) bool {
	select {
	case c.events <- event:
		return true
	case <-c.ctx.Done():
		return false
	}
}
