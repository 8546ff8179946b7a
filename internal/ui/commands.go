package ui

import (
	"context"

	"github.com/atomicstack/tvgrid/internal/catalog"
	"github.com/atomicstack/tvgrid/internal/logging"
	"github.com/atomicstack/tvgrid/internal/logging/events"
	"github.com/atomicstack/tvgrid/internal/population"
	tea "github.com/charmbracelet/bubbletea"
)

// homeLoadedMsg mirrors the catalog root response.
type homeLoadedMsg struct {
	home catalog.Home
	err  error
}

func loadHomeCmd(ctx context.Context, c Catalog) tea.Cmd {
	return func() tea.Msg {
		home, err := c.FetchHome(ctx)
		if err != nil {
			logging.Error(err)
		}
		return homeLoadedMsg{home: home, err: err}
	}
}

func (m *Model) handleHomeLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(homeLoadedMsg)
	if !ok {
		return nil
	}
	m.loading = false
	if loaded.err != nil {
		m.errMsg = loaded.err.Error()
		events.App.CatalogFailed(loaded.err)
		return nil
	}
	m.errMsg = ""
	m.home = loaded.home
	m.installGrid(population.BuildGrid(loaded.home, m.cache))
	events.App.CatalogLoaded(loaded.home.Title, m.grid.Len())
	return nil
}

func (m *Model) handleCompletionMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(population.Completion)
	if !ok || m.lazy == nil {
		return nil
	}
	res := m.lazy.Complete(done)
	if res.Stale {
		return nil
	}
	m.probeTiles(res.Tiles)
	m.ensureSelection()
	m.syncViewports()
	return nil
}
