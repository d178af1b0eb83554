package resume

import "github.com/jonathan/resume-chat/internal/types"

// Store holds the current resume snapshot. Every change swaps in a new
// snapshot; previously returned snapshots stay valid and unchanged.
// A Store is not safe for concurrent use.
type Store struct {
	current *types.Resume
	version int
}

// NewStore creates a Store starting from initial, or from an empty resume when
// initial is nil.
func NewStore(initial *types.Resume) *Store {
	if initial == nil {
		initial = types.EmptyResume()
	}
	return &Store{current: initial}
}

// Current returns the current snapshot. Callers must treat it as read-only.
func (s *Store) Current() *types.Resume {
	return s.current
}

// Version counts the snapshots produced since the store was created.
func (s *Store) Version() int {
	return s.version
}

// Apply writes value at p. On error the current snapshot is kept.
func (s *Store) Apply(p Path, value any) error {
	next, err := Write(s.current, p, value)
	if err != nil {
		return err
	}
	s.current = next
	s.version++
	return nil
}

// Replace swaps in doc wholesale. The store takes ownership of doc.
func (s *Store) Replace(doc *types.Resume) {
	if doc == nil {
		doc = &types.Resume{}
	}
	s.current = doc
	s.version++
}
