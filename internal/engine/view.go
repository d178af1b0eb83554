package engine

import (
	"slices"

	"github.com/jonathan/resume-chat/internal/conversation"
	"github.com/jonathan/resume-chat/internal/resume"
	"github.com/jonathan/resume-chat/internal/types"
)

// View is a read-only copy of engine state taken at one point in time
type View struct {
	State    State
	Document *types.Resume
	// Version increases with every document change
	Version        int
	Pending        []resume.Path
	InitialLoading bool
	Messages       []conversation.Message
}

// IsLoading reports whether p should be shown as loading in this view
func (v View) IsLoading(p resume.Path) bool {
	return v.InitialLoading || slices.Contains(v.Pending, p)
}
