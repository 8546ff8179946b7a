package dispatcher

import (
	"github.com/atomicstack/tvgrid/internal/backend"
	"github.com/atomicstack/tvgrid/internal/grid"
	"github.com/atomicstack/tvgrid/internal/logging"
	"github.com/atomicstack/tvgrid/internal/logging/events"
	"github.com/atomicstack/tvgrid/internal/ui/state"
)

// Result reports what a backend event changed.
type Result struct {
	TilesUpdated   int
	OverlayUpdated bool
}

// Changed reports whether anything visible changed.
func (r Result) Changed() bool {
	return r.TilesUpdated > 0 || r.OverlayUpdated
}

// Dispatcher applies backend events to the grid and the open overlay. It is
// the only place image failures are handled.
type Dispatcher struct {
	grid  func() *grid.Grid
	modal *state.Modal
}

// New returns a dispatcher. The grid is looked up per event because it only
// exists once the catalog root has loaded.
func New(g func() *grid.Grid, modal *state.Modal) *Dispatcher {
	return &Dispatcher{grid: g, modal: modal}
}

// Handle substitutes the placeholder for a failed image. A tile is never
// re-resolved; it keeps the placeholder for the rest of the session.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Kind != backend.KindImage {
		return res
	}
	logging.Error(evt.Err)
	events.Image.Failed(evt.TileID, evt.URL, evt.Err)

	var g *grid.Grid
	if d.grid != nil {
		g = d.grid()
	}
	for _, tile := range g.TilesByID(evt.TileID) {
		if tile.ImageSource == evt.URL {
			tile.ImageSource = grid.PlaceholderImage
			tile.ImageFailed = true
			res.TilesUpdated++
		}
	}

	if d.modal != nil && d.modal.BoundTileID() == evt.TileID {
		res.OverlayUpdated = d.modal.ReplaceImage(evt.URL)
	}
	events.Image.Substituted(evt.TileID, res.TilesUpdated, res.OverlayUpdated)
	return res
}
