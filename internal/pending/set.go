// Package pending tracks resume fields that were announced but not yet delivered.
package pending

import (
	"sort"

	"github.com/jonathan/resume-chat/internal/resume"
)

// Set is a set of pending fields. All operations are idempotent.
// The zero value is ready to use; a Set is not safe for concurrent use.
type Set struct {
	paths map[resume.Path]struct{}
}

// NewSet creates an empty Set
func NewSet() *Set {
	return &Set{paths: make(map[resume.Path]struct{})}
}

// Mark records p as pending.
func (s *Set) Mark(p resume.Path) {
	if s.paths == nil {
		s.paths = make(map[resume.Path]struct{})
	}
	s.paths[p] = struct{}{}
}

// Clear removes p. Clearing an absent path is a no-op.
func (s *Set) Clear(p resume.Path) {
	delete(s.paths, p)
}

// Has reports whether p is pending.
func (s *Set) Has(p resume.Path) bool {
	_, ok := s.paths[p]
	return ok
}

// ClearAll empties the set.
func (s *Set) ClearAll() {
	clear(s.paths)
}

// Len returns the number of pending fields.
func (s *Set) Len() int {
	return len(s.paths)
}

// Paths returns the pending fields in lexical order.
func (s *Set) Paths() []resume.Path {
	out := make([]resume.Path, 0, len(s.paths))
	for p := range s.paths {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
