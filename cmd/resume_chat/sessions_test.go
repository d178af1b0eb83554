package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-chat/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintSessions(t *testing.T) {
	ended := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	sessions := []db.Session{
		{
			ID:        uuid.MustParse("6f1c2a9e-3b4d-4c5e-8f70-1a2b3c4d5e6f"),
			AgentURL:  "ws://localhost:8000/ws",
			State:     db.SessionStateActive,
			StartedAt: time.Date(2024, 3, 2, 14, 0, 0, 0, time.UTC),
		},
		{
			ID:        uuid.MustParse("0a9b8c7d-6e5f-4a3b-9c2d-1e0f9a8b7c6d"),
			AgentURL:  "wss://agent.example.com/ws",
			State:     db.SessionStateClosed,
			StartedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
			EndedAt:   &ended,
		},
	}

	var out bytes.Buffer
	printSessions(&out, sessions)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "6f1c2a9e-3b4d-4c5e-8f70-1a2b3c4d5e6f"))
	assert.Contains(t, lines[0], "2024-03-02T14:00:00Z")
	assert.Contains(t, lines[0], "ws://localhost:8000/ws")
	assert.Contains(t, lines[1], db.SessionStateClosed)
	assert.Contains(t, lines[1], "wss://agent.example.com/ws")
}

func TestPrintSessions_Empty(t *testing.T) {
	var out bytes.Buffer
	printSessions(&out, nil)

	assert.Equal(t, "No sessions journaled yet\n", out.String())
}
