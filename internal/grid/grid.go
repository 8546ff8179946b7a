// Package grid holds the catalog rows and their tiles.
package grid

import (
	"errors"
	"fmt"

	"github.com/atomicstack/tvgrid/internal/catalog"
	"github.com/atomicstack/tvgrid/internal/resolve"
)

// PlaceholderImage is shown when a tile has no image source or its image
// failed to load.
const PlaceholderImage = "assets/default-image.jpg"

// ErrIllegalTransition is returned for population state changes outside
// Unpopulated → Pending → Populated and the failure revert Pending → Unpopulated.
var ErrIllegalTransition = errors.New("illegal population transition")

// PopulationState tracks whether a container's tiles have been installed.
type PopulationState int

const (
	Unpopulated PopulationState = iota
	Pending
	Populated
)

func (s PopulationState) String() string {
	switch s {
	case Unpopulated:
		return "unpopulated"
	case Pending:
		return "pending"
	case Populated:
		return "populated"
	default:
		return fmt.Sprintf("PopulationState(%d)", int(s))
	}
}

// Tile is one selectable catalog item.
type Tile struct {
	ID      string
	Raw     catalog.RawItem
	Display resolve.Display
	// ImageSource is what the tile currently shows: the resolved URL or
	// PlaceholderImage.
	ImageSource string
	ImageFailed bool
}

// NewTile builds a tile from a resolved record.
func NewTile(id string, raw catalog.RawItem, display resolve.Display) *Tile {
	src := display.TileImageURL
	if src == "" {
		src = PlaceholderImage
	}
	return &Tile{ID: id, Raw: raw, Display: display, ImageSource: src}
}

// Placeholder reports whether the tile is showing the placeholder asset.
func (t *Tile) Placeholder() bool {
	return t.ImageSource == PlaceholderImage
}

// Container is one row of tiles.
type Container struct {
	ID    string
	Title string
	state PopulationState
	tiles []*Tile
	// abandoned is set once a pending container has no fetch left to wait on.
	abandoned bool
}

// NewContainer returns an unpopulated container.
func NewContainer(id, title string) *Container {
	return &Container{ID: id, Title: title}
}

// State returns the population state.
func (c *Container) State() PopulationState { return c.state }

// Tiles returns the installed tiles in order.
func (c *Container) Tiles() []*Tile { return c.tiles }

// Len returns the number of installed tiles.
func (c *Container) Len() int { return len(c.tiles) }

func (c *Container) transition(from []PopulationState, to PopulationState) error {
	for _, allowed := range from {
		if c.state == allowed {
			c.state = to
			return nil
		}
	}
	return fmt.Errorf("%w: container %s %s → %s", ErrIllegalTransition, c.ID, c.state, to)
}

// MarkPending moves an unpopulated container to Pending.
func (c *Container) MarkPending() error {
	return c.transition([]PopulationState{Unpopulated}, Pending)
}

// MarkPopulated finishes population. Containers shipped with their items go
// straight from Unpopulated.
func (c *Container) MarkPopulated() error {
	return c.transition([]PopulationState{Unpopulated, Pending}, Populated)
}

// Revert returns a pending container to Unpopulated after a failed fetch so it
// can be fetched again.
func (c *Container) Revert() error {
	return c.transition([]PopulationState{Pending}, Unpopulated)
}

// Abandon records that a pending container will not be fetched again. It
// stays Pending.
func (c *Container) Abandon() error {
	if c.state != Pending {
		return fmt.Errorf("%w: container %s %s → abandoned", ErrIllegalTransition, c.ID, c.state)
	}
	c.abandoned = true
	return nil
}

// Abandoned reports whether Abandon was called.
func (c *Container) Abandoned() bool { return c.abandoned }

// Settled reports whether the container's tiles will never change again.
func (c *Container) Settled() bool {
	return c.state == Populated || c.abandoned
}

// AppendTiles installs tiles at the end of the row, preserving order.
func (c *Container) AppendTiles(tiles ...*Tile) {
	c.tiles = append(c.tiles, tiles...)
}

// Grid is the ordered sequence of containers. Its order is fixed at creation.
type Grid struct {
	containers []*Container
	index      map[string]int
}

// New builds a grid. Later containers with a duplicate id are unreachable by
// Find but keep their position.
func New(containers ...*Container) *Grid {
	g := &Grid{
		containers: containers,
		index:      make(map[string]int, len(containers)),
	}
	for i, c := range containers {
		if _, exists := g.index[c.ID]; !exists {
			g.index[c.ID] = i
		}
	}
	return g
}

// Len returns the number of containers.
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.containers)
}

// At returns the container at index i.
func (g *Grid) At(i int) (*Container, bool) {
	if g == nil || i < 0 || i >= len(g.containers) {
		return nil, false
	}
	return g.containers[i], true
}

// Containers returns all containers in order.
func (g *Grid) Containers() []*Container {
	if g == nil {
		return nil
	}
	return g.containers
}

// Find looks a container up by id.
func (g *Grid) Find(id string) (*Container, int, bool) {
	if g == nil {
		return nil, -1, false
	}
	i, ok := g.index[id]
	if !ok {
		return nil, -1, false
	}
	return g.containers[i], i, true
}

// Tile returns the tile at (container, tile).
func (g *Grid) Tile(container, tile int) (*Tile, bool) {
	c, ok := g.At(container)
	if !ok || tile < 0 || tile >= len(c.tiles) {
		return nil, false
	}
	return c.tiles[tile], true
}

// TilesByID returns every installed tile carrying id; the same catalog item
// can appear in several rows.
func (g *Grid) TilesByID(id string) []*Tile {
	var found []*Tile
	for _, c := range g.Containers() {
		for _, t := range c.tiles {
			if t.ID == id {
				found = append(found, t)
			}
		}
	}
	return found
}

// TileCount returns the number of tiles in container i, or 0 when i is out of
// range.
func (g *Grid) TileCount(i int) int {
	c, ok := g.At(i)
	if !ok {
		return 0
	}
	return len(c.tiles)
}

// Skippable reports whether container i is settled without tiles, so vertical
// navigation and visibility look past it.
func (g *Grid) Skippable(i int) bool {
	c, ok := g.At(i)
	if !ok {
		return false
	}
	return c.Settled() && len(c.tiles) == 0
}

// ContainerID returns the id of container i.
func (g *Grid) ContainerID(i int) string {
	c, ok := g.At(i)
	if !ok {
		return ""
	}
	return c.ID
}

// TileID returns the id of the tile at (container, tile).
func (g *Grid) TileID(container, tile int) string {
	t, ok := g.Tile(container, tile)
	if !ok {
		return ""
	}
	return t.ID
}
