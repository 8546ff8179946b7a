package state

import (
	"testing"

	"github.com/atomicstack/tvgrid/internal/grid"
	"github.com/atomicstack/tvgrid/internal/resolve"
)

func TestModalOpenBindsBeforeShowing(t *testing.T) {
	var m Modal
	var phaseDuringBind Phase = Open
	opened := m.Open("t1", func() (resolve.Overlay, bool) {
		phaseDuringBind = m.Phase()
		return resolve.Overlay{Title: "Show A"}, true
	})
	if !opened || !m.IsOpen() {
		t.Fatalf("expected modal open")
	}
	if phaseDuringBind != Closed {
		t.Fatalf("content must be bound while closed, phase was %v", phaseDuringBind)
	}
	if m.BoundTileID() != "t1" || m.Content().Title != "Show A" {
		t.Fatalf("unexpected binding %q %+v", m.BoundTileID(), m.Content())
	}
}

func TestModalOpenWhileOpenIsNoop(t *testing.T) {
	var m Modal
	m.Open("t1", func() (resolve.Overlay, bool) { return resolve.Overlay{Title: "A"}, true })
	called := false
	if m.Open("t2", func() (resolve.Overlay, bool) { called = true; return resolve.Overlay{Title: "B"}, true }) {
		t.Fatalf("second open must be ignored")
	}
	if called {
		t.Fatalf("bind must not run while open")
	}
	if m.BoundTileID() != "t1" || m.Content().Title != "A" {
		t.Fatalf("binding changed: %q %+v", m.BoundTileID(), m.Content())
	}
}

func TestModalOpenFailedBindStaysClosed(t *testing.T) {
	var m Modal
	if m.Open("t1", func() (resolve.Overlay, bool) { return resolve.Overlay{}, false }) {
		t.Fatalf("expected open to fail")
	}
	if m.IsOpen() || m.BoundTileID() != "" {
		t.Fatalf("modal must stay closed and unbound")
	}
}

func TestModalClose(t *testing.T) {
	var m Modal
	if m.Close() {
		t.Fatalf("closing a closed modal must be a no-op")
	}
	m.Open("t1", func() (resolve.Overlay, bool) { return resolve.Overlay{Title: "A"}, true })
	if !m.Close() {
		t.Fatalf("expected close")
	}
	if m.IsOpen() || m.BoundTileID() != "" || m.Content() != (resolve.Overlay{}) {
		t.Fatalf("close must clear content, got %q %+v", m.BoundTileID(), m.Content())
	}
}

func TestModalReplaceImageSubstitutesPlaceholder(t *testing.T) {
	var m Modal
	if m.ReplaceImage("https://img/hero") {
		t.Fatalf("closed modal must not change")
	}
	m.Open("t1", func() (resolve.Overlay, bool) {
		return resolve.Overlay{HeroImageURL: "https://img/hero", TitleTreatmentURL: "https://img/tt"}, true
	})
	if m.ReplaceImage("https://img/other") {
		t.Fatalf("unrelated url must not change the overlay")
	}
	if !m.ReplaceImage("https://img/tt") {
		t.Fatalf("expected replacement")
	}
	got := m.Content()
	if got.HeroImageURL != "https://img/hero" || got.TitleTreatmentURL != grid.PlaceholderImage || got.FromTile {
		t.Fatalf("expected only title art replaced, got %+v", got)
	}
}
