package themes

import (
	"sync"

	"github.com/platefront/platefront/internal/palette"
)

// PreviewStore holds the palette currently shown on each draft's live
// preview. It is the in-process preview surface the CSS endpoint reads
// from; writes replace the whole palette at once.
type PreviewStore struct {
	mu       sync.RWMutex
	palettes map[uint]palette.Palette
}

// NewPreviewStore returns an empty store.
func NewPreviewStore() *PreviewStore {
	return &PreviewStore{palettes: make(map[uint]palette.Palette)}
}

// Set replaces the preview palette for a draft.
func (s *PreviewStore) Set(draftID uint, p palette.Palette) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.palettes[draftID] = p
}

// Get returns the preview palette for a draft, falling back to the
// extraction defaults when no logo has been processed yet.
func (s *PreviewStore) Get(draftID uint) palette.Palette {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.palettes[draftID]; ok {
		return p
	}
	return palette.DefaultPalette()
}

// Lookup returns the preview palette for a draft and whether one has
// been set.
func (s *PreviewStore) Lookup(draftID uint) (palette.Palette, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.palettes[draftID]
	return p, ok
}

// Drop removes a draft's preview palette.
func (s *PreviewStore) Drop(draftID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.palettes, draftID)
}
