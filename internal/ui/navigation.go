package ui

import (
	"github.com/atomicstack/tvgrid/internal/grid"
	"github.com/atomicstack/tvgrid/internal/logging/events"
	"github.com/atomicstack/tvgrid/internal/population"
	"github.com/atomicstack/tvgrid/internal/resolve"
	"github.com/atomicstack/tvgrid/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	in, dir := m.keys.resolve(keyMsg)
	events.Nav.Key(keyMsg.String(), in.String())
	switch in {
	case intentQuit:
		return tea.Quit
	case intentMove:
		m.move(dir)
	case intentActivate:
		m.activate()
	case intentDismiss:
		m.dismiss()
	}
	return nil
}

// move runs one directional intent through the limiter and then the
// navigation engine. The limiter sees every intent, including those the
// open overlay will swallow.
func (m *Model) move(dir state.Direction) {
	if !m.limiter.Allow() {
		events.Nav.Dropped(dir.String())
		return
	}
	if m.grid == nil {
		events.Nav.Blocked(dir.String(), state.BlockedEmpty.String())
		return
	}
	next, changed := state.Move(m.grid, m.selected, dir, m.modal.IsOpen())
	if changed == nil {
		_, outcome := state.Step(m.grid, m.selected, dir, m.modal.IsOpen())
		events.Nav.Blocked(dir.String(), outcome.String())
		return
	}
	m.selected = next
	m.onSelectionChanged(*changed)
}

func (m *Model) onSelectionChanged(evt state.SelectionChanged) {
	events.Nav.Move(evt.Direction.String(), evt.ContainerID, evt.TileID, evt.Selection.Container, evt.Selection.Tile)
	m.syncViewports()
}

func (m *Model) activate() {
	if m.modal.IsOpen() {
		events.Modal.Ignored("already-open")
		return
	}
	tile, ok := m.grid.Tile(m.selected.Container, m.selected.Tile)
	if !ok {
		events.Modal.Ignored("no-selection")
		return
	}
	opened := m.modal.Open(tile.ID, func() (resolve.Overlay, bool) {
		display, _ := m.cache.Resolve(tile.Raw.ID(), tile.Raw)
		return resolve.OverlayFor(display, tile.ImageSource), true
	})
	if !opened {
		return
	}
	events.Modal.Open(tile.ID, m.modal.Content().FromTile)
	m.probeOverlay()
}

func (m *Model) dismiss() {
	id := m.modal.BoundTileID()
	if !m.modal.Close() {
		events.Modal.Ignored("closed")
		return
	}
	events.Modal.Close(id)
}

func (m *Model) installGrid(g *grid.Grid) {
	if m.lazy != nil {
		m.lazy.Close()
	}
	m.grid = g
	m.columns = make([]state.Viewport, g.Len())
	m.rows = state.Viewport{}
	m.selected = state.Selection{}
	m.lazy = population.New(g, population.Options{
		Source:     m.source,
		Fetcher:    m.catalog,
		Spawner:    m.bus,
		Cache:      m.cache,
		MaxRetries: m.retries,
		Context:    m.ctx,
	})
	m.lazy.Install()
	for _, c := range g.Containers() {
		m.probeTiles(c.Tiles())
	}
	m.ensureSelection()
	m.syncViewports()
}

// ensureSelection parks the selection on the first row with tiles while the
// current one points at nothing, which only happens before any row above it
// has content.
func (m *Model) ensureSelection() {
	if m.grid == nil || state.Valid(m.grid, m.selected) {
		return
	}
	for i := 0; i < m.grid.Len(); i++ {
		if m.grid.TileCount(i) > 0 {
			m.selected = state.Selection{Container: i}
			return
		}
	}
}

// syncViewports scrolls the row window and the selected row's tile window so
// the selection is on screen, then reports the visible rows to the lazy
// population controller. The row just below the window counts as visible:
// vertical moves into an empty row are rejected, so without it the selection
// could never reach an unfetched row. Skippable rows below the window are
// looked past the same way navigation steps over them.
func (m *Model) syncViewports() {
	if m.grid == nil {
		return
	}
	rows := m.maxVisibleRows()
	m.rows.Ensure(m.selected.Container, m.grid.Len(), rows)
	if m.selected.Container >= 0 && m.selected.Container < len(m.columns) {
		m.columns[m.selected.Container].Ensure(m.selected.Tile, m.grid.TileCount(m.selected.Container), m.maxVisibleTiles())
	}
	if rows < 0 {
		// nothing is known to be on screen until the first resize
		return
	}
	start, end := m.rows.Window(m.grid.Len(), rows)
	for end < m.grid.Len() && m.grid.Skippable(end) {
		end++
	}
	if end < m.grid.Len() {
		end++
	}
	visible := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		visible = append(visible, m.grid.ContainerID(i))
	}
	m.source.Notify(visible)
}
