// Package db provides PostgreSQL storage for conversation session journals.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS chat_sessions (
	id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	agent_url  TEXT NOT NULL,
	state      TEXT NOT NULL DEFAULT 'active',
	started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	ended_at   TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS chat_frames (
	session_id  UUID NOT NULL REFERENCES chat_sessions(id) ON DELETE CASCADE,
	seq         INTEGER NOT NULL,
	direction   TEXT NOT NULL CHECK (direction IN ('inbound', 'outbound')),
	payload     TEXT NOT NULL,
	received_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (session_id, seq)
);
`

// EnsureSchema creates the journal tables if they do not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to create journal schema: %w", err)
	}
	return nil
}

// CreateSession starts a new session record and returns its ID
func (db *DB) CreateSession(ctx context.Context, agentURL string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO chat_sessions (agent_url, state)
		 VALUES ($1, $2)
		 RETURNING id`,
		agentURL, SessionStateActive,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// EndSession records the final state of a session
func (db *DB) EndSession(ctx context.Context, sessionID uuid.UUID, state string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE chat_sessions SET state = $1, ended_at = NOW() WHERE id = $2`,
		state, sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("session not found: %s", sessionID)
	}
	return nil
}

// GetSession retrieves a session by ID. Returns nil if it does not exist.
func (db *DB) GetSession(ctx context.Context, sessionID uuid.UUID) (*Session, error) {
	var s Session
	err := db.pool.QueryRow(ctx,
		`SELECT id, agent_url, state, started_at, ended_at
		 FROM chat_sessions WHERE id = $1`,
		sessionID,
	).Scan(&s.ID, &s.AgentURL, &s.State, &s.StartedAt, &s.EndedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

// ListSessions retrieves the most recent sessions
func (db *DB) ListSessions(ctx context.Context, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, agent_url, state, started_at, ended_at
		 FROM chat_sessions ORDER BY started_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.AgentURL, &s.State, &s.StartedAt, &s.EndedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// AppendFrame stores one raw frame at position seq within the session
func (db *DB) AppendFrame(ctx context.Context, sessionID uuid.UUID, seq int, direction string, payload []byte) error {
	if !ValidDirection(direction) {
		return fmt.Errorf("invalid frame direction: %q", direction)
	}
	_, err := db.pool.Exec(ctx,
		`INSERT INTO chat_frames (session_id, seq, direction, payload)
		 VALUES ($1, $2, $3, $4)`,
		sessionID, seq, direction, string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to append frame %d: %w", seq, err)
	}
	return nil
}

// ListFrames retrieves every frame of a session in journal order
func (db *DB) ListFrames(ctx context.Context, sessionID uuid.UUID) ([]Frame, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT session_id, seq, direction, payload, received_at
		 FROM chat_frames WHERE session_id = $1 ORDER BY seq ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list frames: %w", err)
	}
	defer rows.Close()

	var frames []Frame
	for rows.Next() {
		var f Frame
		var payload string
		if err := rows.Scan(&f.SessionID, &f.Seq, &f.Direction, &payload, &f.ReceivedAt); err != nil {
			return nil, fmt.Errorf("failed to scan frame: %w", err)
		}
		f.Payload = []byte(payload)
		frames = append(frames, f)
	}
	return frames, rows.Err()
}
