package themes

import (
	"errors"
	"sync"

	"github.com/platefront/platefront/internal/palette"
)

// ErrStalePalette is returned when a palette from a superseded logo
// upload arrives after a newer upload has already been applied.
var ErrStalePalette = errors.New("palette superseded by a newer upload")

// Sink receives a finished palette. SetFormColors writes the three
// color fields into the draft's form state; SetPreviewColors updates
// the live preview surface. Implementations must keep SetPreviewColors
// free of partial effects so a failed apply never leaves the preview
// and the form disagreeing.
type Sink interface {
	SetFormColors(p palette.Palette) error
	SetPreviewColors(p palette.Palette) error
}

// draftState tracks one draft's upload generations. Its lock is held
// for the whole of an apply, staleness check and sink writes included,
// so applies for the same draft are serialized and a stale token can
// never slip its writes in around a newer one.
type draftState struct {
	mu      sync.Mutex
	latest  uint64
	applied uint64
}

// Applier pushes palettes into a Sink, one upload event at a time.
// Decodes run asynchronously, so two uploads for the same draft can
// finish out of order; each upload takes a generation token up front
// and a token older than the last applied one is refused.
type Applier struct {
	mu     sync.Mutex
	drafts map[uint]*draftState
}

// NewApplier returns an Applier with no recorded generations.
func NewApplier() *Applier {
	return &Applier{
		drafts: make(map[uint]*draftState),
	}
}

func (a *Applier) state(draftID uint) *draftState {
	a.mu.Lock()
	defer a.mu.Unlock()

	st, ok := a.drafts[draftID]
	if !ok {
		st = &draftState{}
		a.drafts[draftID] = st
	}
	return st
}

// Begin reserves a generation token for one upload event on a draft.
func (a *Applier) Begin(draftID uint) uint64 {
	st := a.state(draftID)
	st.mu.Lock()
	defer st.mu.Unlock()

	st.latest++
	return st.latest
}

// Apply writes the palette through the sink, form state first, then
// the preview surface. A token below the last applied generation is a
// no-op returning ErrStalePalette. All three colors are written
// together; there is no partial update. Applies for the same draft run
// one at a time.
func (a *Applier) Apply(draftID uint, token uint64, p palette.Palette, sink Sink) error {
	st := a.state(draftID)
	st.mu.Lock()
	defer st.mu.Unlock()

	if token < st.applied {
		return ErrStalePalette
	}

	if err := sink.SetFormColors(p); err != nil {
		return err
	}
	if err := sink.SetPreviewColors(p); err != nil {
		return err
	}

	if token > st.applied {
		st.applied = token
	}

	return nil
}
