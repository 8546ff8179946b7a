package ui

import (
	"github.com/atomicstack/tvgrid/internal/backend"
	"github.com/atomicstack/tvgrid/internal/grid"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForImageEvent(p ImageProber) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-p.Events()
		if !ok {
			return imageDoneMsg{}
		}
		return imageEventMsg{event: evt}
	}
}

type imageEventMsg struct {
	event backend.Event
}

type imageDoneMsg struct{}

func (m *Model) handleImageEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(imageEventMsg)
	if !ok {
		return nil
	}
	m.dispatcher.Handle(eventMsg.event)
	if m.images != nil {
		return waitForImageEvent(m.images)
	}
	return nil
}

func (m *Model) handleImageDoneMsg(msg tea.Msg) tea.Cmd {
	m.images = nil
	return nil
}

// probeTiles queues image checks for freshly installed tiles.
func (m *Model) probeTiles(tiles []*grid.Tile) {
	if m.images == nil {
		return
	}
	for _, tile := range tiles {
		m.images.Submit(tile.ID, tile.ImageSource)
	}
}

func (m *Model) probeOverlay() {
	if m.images == nil || !m.modal.IsOpen() {
		return
	}
	content := m.modal.Content()
	if content.FromTile {
		return
	}
	id := m.modal.BoundTileID()
	m.images.Submit(id, content.HeroImageURL)
	m.images.Submit(id, content.TitleTreatmentURL)
}
