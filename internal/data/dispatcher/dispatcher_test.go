package dispatcher

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/atomicstack/tvgrid/internal/backend"
	"github.com/atomicstack/tvgrid/internal/catalog"
	"github.com/atomicstack/tvgrid/internal/grid"
	"github.com/atomicstack/tvgrid/internal/logging"
	"github.com/atomicstack/tvgrid/internal/resolve"
	"github.com/atomicstack/tvgrid/internal/ui/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*grid.Grid, *state.Modal, *Dispatcher) {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "tvgrid.log"))
	t.Cleanup(func() { logging.Configure("") })

	first := grid.NewContainer("one", "One")
	first.AppendTiles(
		grid.NewTile("a", catalog.RawItem{}, resolve.Display{TileImageURL: "https://img/a"}),
		grid.NewTile("b", catalog.RawItem{}, resolve.Display{TileImageURL: "https://img/b"}),
	)
	second := grid.NewContainer("two", "Two")
	second.AppendTiles(grid.NewTile("a", catalog.RawItem{}, resolve.Display{TileImageURL: "https://img/a"}))
	g := grid.New(first, second)
	modal := &state.Modal{}
	return g, modal, New(func() *grid.Grid { return g }, modal)
}

func TestHandleSubstitutesEveryCopy(t *testing.T) {
	g, _, d := setup(t)
	res := d.Handle(backend.Event{Kind: backend.KindImage, TileID: "a", URL: "https://img/a", Err: errors.New("404")})
	assert.Equal(t, 2, res.TilesUpdated)
	assert.True(t, res.Changed())
	for _, tile := range g.TilesByID("a") {
		assert.True(t, tile.Placeholder())
		assert.True(t, tile.ImageFailed)
	}
	b := g.TilesByID("b")
	require.Len(t, b, 1)
	assert.Equal(t, "https://img/b", b[0].ImageSource)
}

func TestHandleIgnoresStaleURL(t *testing.T) {
	g, _, d := setup(t)
	res := d.Handle(backend.Event{Kind: backend.KindImage, TileID: "b", URL: "https://img/old", Err: errors.New("gone")})
	assert.False(t, res.Changed())
	assert.False(t, g.TilesByID("b")[0].Placeholder())
}

func TestHandleUpdatesOpenOverlay(t *testing.T) {
	_, modal, d := setup(t)
	modal.Open("a", func() (resolve.Overlay, bool) {
		return resolve.OverlayFor(resolve.Display{Title: "A"}, "https://img/a"), true
	})
	res := d.Handle(backend.Event{Kind: backend.KindImage, TileID: "a", URL: "https://img/a", Err: errors.New("404")})
	assert.True(t, res.OverlayUpdated)
	assert.Equal(t, grid.PlaceholderImage, modal.Content().HeroImageURL)
}

func TestHandleOverlayFailureReplacesOnlyThatImage(t *testing.T) {
	_, modal, d := setup(t)
	modal.Open("b", func() (resolve.Overlay, bool) {
		display := resolve.Display{HeroImageURL: "https://img/hero", TitleTreatmentURL: "https://img/tt"}
		return resolve.OverlayFor(display, "https://img/b"), true
	})

	res := d.Handle(backend.Event{Kind: backend.KindImage, TileID: "b", URL: "https://img/tt", Err: errors.New("404")})
	assert.Zero(t, res.TilesUpdated)
	assert.True(t, res.OverlayUpdated)
	content := modal.Content()
	assert.Equal(t, "https://img/hero", content.HeroImageURL)
	assert.Equal(t, grid.PlaceholderImage, content.TitleTreatmentURL)
	assert.False(t, content.FromTile)

	res = d.Handle(backend.Event{Kind: backend.KindImage, TileID: "b", URL: "https://img/hero", Err: errors.New("404")})
	assert.True(t, res.OverlayUpdated)
	content = modal.Content()
	assert.Equal(t, grid.PlaceholderImage, content.HeroImageURL)
	assert.Equal(t, grid.PlaceholderImage, content.TitleTreatmentURL)
	assert.Equal(t, "https://img/b", d.grid().TilesByID("b")[0].ImageSource)
}

func TestHandleWithoutGrid(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "tvgrid.log"))
	t.Cleanup(func() { logging.Configure("") })
	d := New(func() *grid.Grid { return nil }, nil)
	res := d.Handle(backend.Event{Kind: backend.KindImage, TileID: "x", URL: "u", Err: errors.New("e")})
	assert.False(t, res.Changed())
}
