package themes

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/platefront/platefront/internal/palette"
)

type recordingSink struct {
	calls       []string
	form        palette.Palette
	preview     palette.Palette
	formErr     error
	previewErr  error
	formApplied bool
}

func (s *recordingSink) SetFormColors(p palette.Palette) error {
	s.calls = append(s.calls, "form")
	if s.formErr != nil {
		return s.formErr
	}
	s.form = p
	s.formApplied = true
	return nil
}

func (s *recordingSink) SetPreviewColors(p palette.Palette) error {
	s.calls = append(s.calls, "preview")
	if s.previewErr != nil {
		return s.previewErr
	}
	s.preview = p
	return nil
}

func TestApplyWritesFormThenPreview(t *testing.T) {
	applier := NewApplier()
	sink := &recordingSink{}
	p := palette.Palette{Primary: "#112233", Secondary: "#445566", Accent: "#778899"}

	token := applier.Begin(1)
	if err := applier.Apply(1, token, p, sink); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if len(sink.calls) != 2 || sink.calls[0] != "form" || sink.calls[1] != "preview" {
		t.Fatalf("unexpected call order: %v", sink.calls)
	}
	if sink.form != p || sink.preview != p {
		t.Fatalf("palette not written to both surfaces: %+v / %+v", sink.form, sink.preview)
	}
}

func TestApplyRefusesStaleGeneration(t *testing.T) {
	applier := NewApplier()
	sink := &recordingSink{}

	oldToken := applier.Begin(7)
	newToken := applier.Begin(7)

	newer := palette.Palette{Primary: "#00ff00", Secondary: "#008800", Accent: "#004400"}
	if err := applier.Apply(7, newToken, newer, sink); err != nil {
		t.Fatalf("apply newer: %v", err)
	}

	older := palette.Palette{Primary: "#ff0000", Secondary: "#880000", Accent: "#440000"}
	err := applier.Apply(7, oldToken, older, sink)
	if !errors.Is(err, ErrStalePalette) {
		t.Fatalf("expected ErrStalePalette, got %v", err)
	}
	if sink.form != newer {
		t.Fatalf("stale apply overwrote newer palette: %+v", sink.form)
	}
}

func TestApplyGenerationsAreIndependentPerDraft(t *testing.T) {
	applier := NewApplier()
	sink := &recordingSink{}

	tokenA := applier.Begin(1)
	applier.Begin(1)
	tokenB := applier.Begin(2)

	p := palette.DefaultPalette()
	if err := applier.Apply(2, tokenB, p, sink); err != nil {
		t.Fatalf("draft 2 apply: %v", err)
	}
	if err := applier.Apply(1, tokenA, p, sink); err != nil {
		t.Fatalf("draft 1 first-token apply should succeed before a newer apply: %v", err)
	}
}

// stallingSink blocks the first form write until released, simulating
// a slow database write from an older upload's extraction.
type stallingSink struct {
	inner   *recordingSink
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (s *stallingSink) SetFormColors(p palette.Palette) error {
	s.once.Do(func() {
		close(s.entered)
		<-s.release
	})
	return s.inner.SetFormColors(p)
}

func (s *stallingSink) SetPreviewColors(p palette.Palette) error {
	return s.inner.SetPreviewColors(p)
}

func TestApplySlowOlderUploadCannotClobberNewer(t *testing.T) {
	applier := NewApplier()
	inner := &recordingSink{}
	sink := &stallingSink{
		inner:   inner,
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}

	oldToken := applier.Begin(9)
	newToken := applier.Begin(9)

	older := palette.Palette{Primary: "#ff0000", Secondary: "#880000", Accent: "#440000"}
	newer := palette.Palette{Primary: "#00ff00", Secondary: "#008800", Accent: "#004400"}

	var oldErr, newErr error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		oldErr = applier.Apply(9, oldToken, older, sink)
	}()
	<-sink.entered

	// The older apply is stalled mid-write; the newer one must wait
	// for it rather than interleave.
	go func() {
		defer wg.Done()
		newErr = applier.Apply(9, newToken, newer, sink)
	}()
	time.Sleep(10 * time.Millisecond)
	close(sink.release)
	wg.Wait()

	if oldErr != nil {
		t.Fatalf("older apply: %v", oldErr)
	}
	if newErr != nil {
		t.Fatalf("newer apply: %v", newErr)
	}
	if inner.form != newer || inner.preview != newer {
		t.Fatalf("older upload's palette ended up final: form %+v, preview %+v", inner.form, inner.preview)
	}
}

func TestApplyStopsAfterFormFailure(t *testing.T) {
	applier := NewApplier()
	sink := &recordingSink{formErr: errors.New("database gone")}

	token := applier.Begin(3)
	err := applier.Apply(3, token, palette.DefaultPalette(), sink)
	if err == nil {
		t.Fatal("expected error from form sink")
	}

	for _, call := range sink.calls {
		if call == "preview" {
			t.Fatal("preview must not be touched when the form write fails")
		}
	}
}

func TestApplyRetriesAfterFailureWithSameToken(t *testing.T) {
	applier := NewApplier()
	failing := &recordingSink{formErr: errors.New("transient")}

	token := applier.Begin(4)
	if err := applier.Apply(4, token, palette.DefaultPalette(), failing); err == nil {
		t.Fatal("expected failure")
	}

	working := &recordingSink{}
	if err := applier.Apply(4, token, palette.DefaultPalette(), working); err != nil {
		t.Fatalf("retry with unapplied token should succeed: %v", err)
	}
	if !working.formApplied {
		t.Fatal("retry did not write the form colors")
	}
}
