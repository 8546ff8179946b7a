package state

import (
	"github.com/atomicstack/tvgrid/internal/grid"
	"github.com/atomicstack/tvgrid/internal/resolve"
)

// Phase is the modal's visibility.
type Phase int

const (
	Closed Phase = iota
	Open
)

func (p Phase) String() string {
	if p == Open {
		return "open"
	}
	return "closed"
}

// Modal is the detail overlay state. Its phase is the single source of truth
// for whether navigation is suppressed.
type Modal struct {
	phase   Phase
	tileID  string
	content resolve.Overlay
}

// Open binds content for tileID and then shows it. bind runs while the modal
// is still closed; when it reports false nothing changes. Opening an already
// open modal is a no-op.
func (m *Modal) Open(tileID string, bind func() (resolve.Overlay, bool)) bool {
	if m.phase == Open {
		return false
	}
	content, ok := bind()
	if !ok {
		return false
	}
	m.tileID = tileID
	m.content = content
	m.phase = Open
	return true
}

// Close hides the modal first, then clears the bound content.
func (m *Modal) Close() bool {
	if m.phase != Open {
		return false
	}
	m.phase = Closed
	m.tileID = ""
	m.content = resolve.Overlay{}
	return true
}

// IsOpen reports whether the overlay is shown.
func (m *Modal) IsOpen() bool { return m.phase == Open }

// Phase returns the current phase.
func (m *Modal) Phase() Phase { return m.phase }

// BoundTileID returns the tile the open overlay describes.
func (m *Modal) BoundTileID() string { return m.tileID }

// Content returns the bound overlay content.
func (m *Modal) Content() resolve.Overlay { return m.content }

// ReplaceImage swaps the placeholder asset in for a failed overlay image.
// Only the field showing url changes. It reports whether anything changed.
func (m *Modal) ReplaceImage(url string) bool {
	if m.phase != Open || url == "" {
		return false
	}
	changed := false
	if m.content.HeroImageURL == url {
		m.content.HeroImageURL = grid.PlaceholderImage
		changed = true
	}
	if m.content.TitleTreatmentURL == url {
		m.content.TitleTreatmentURL = grid.PlaceholderImage
		changed = true
	}
	return changed
}
