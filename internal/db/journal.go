package db

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// journalWriteTimeout bounds a single frame insert
const journalWriteTimeout = 5 * time.Second

// FrameAppender is the storage a SessionJournal writes to; *DB implements it.
type FrameAppender interface {
	AppendFrame(ctx context.Context, sessionID uuid.UUID, seq int, direction string, payload []byte) error
}

// SessionJournal appends the frames of one session in arrival order.
type SessionJournal struct {
	ctx       context.Context
	store     FrameAppender
	sessionID uuid.UUID

	mu  sync.Mutex
	seq int
}

// NewSessionJournal creates a journal for sessionID. ctx bounds every write.
func NewSessionJournal(ctx context.Context, store FrameAppender, sessionID uuid.UUID) *SessionJournal {
	return &SessionJournal{ctx: ctx, store: store, sessionID: sessionID}
}

// SessionID returns the session the journal writes to
func (j *SessionJournal) SessionID() uuid.UUID {
	return j.sessionID
}

// Record stores raw under the next sequence number. A failed write does not
// consume a sequence number.
func (j *SessionJournal) Record(direction string, raw []byte) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	ctx, cancel := context.WithTimeout(j.ctx, journalWriteTimeout)
	defer cancel()

	if err := j.store.AppendFrame(ctx, j.sessionID, j.seq+1, direction, raw); err != nil {
		return err
	}
	j.seq++
	return nil
}
