// Package state holds the pure navigation state of the catalog grid.
package state

import "fmt"

// Direction is a navigation intent.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Shape is the read-only view of the grid the navigation engine needs.
type Shape interface {
	Len() int
	TileCount(container int) int
	ContainerID(container int) string
	TileID(container, tile int) string
	// Skippable reports a row that is settled without tiles.
	Skippable(container int) bool
}

// Selection points at exactly one tile.
type Selection struct {
	Container int
	Tile      int
}

// SelectionChanged is emitted once per accepted move.
type SelectionChanged struct {
	ContainerID string
	TileID      string
	Selection   Selection
	Direction   Direction
}

// Outcome explains why a move was or was not applied.
type Outcome int

const (
	Moved Outcome = iota
	BlockedModal
	BlockedEmpty
	BlockedBounds
	BlockedTarget
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case BlockedModal:
		return "modal-open"
	case BlockedEmpty:
		return "empty"
	case BlockedBounds:
		return "bounds"
	case BlockedTarget:
		return "empty-target"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Move applies one directional intent. It never mutates its inputs: a rejected
// move returns the original selection and a nil event. Vertical moves reset
// the tile index to 0, step over skippable rows and are rejected while the
// target row has no tiles.
func Move(shape Shape, sel Selection, dir Direction, modalOpen bool) (Selection, *SelectionChanged) {
	next, outcome := Step(shape, sel, dir, modalOpen)
	if outcome != Moved {
		return sel, nil
	}
	return next, &SelectionChanged{
		ContainerID: shape.ContainerID(next.Container),
		TileID:      shape.TileID(next.Container, next.Tile),
		Selection:   next,
		Direction:   dir,
	}
}

// Step is Move without the event, reporting the outcome instead.
func Step(shape Shape, sel Selection, dir Direction, modalOpen bool) (Selection, Outcome) {
	if modalOpen {
		return sel, BlockedModal
	}
	rows := shape.Len()
	if rows == 0 || sel.Container < 0 || sel.Container >= rows || shape.TileCount(sel.Container) == 0 {
		return sel, BlockedEmpty
	}
	next := sel
	switch dir {
	case Left:
		if sel.Tile <= 0 {
			return sel, BlockedBounds
		}
		next.Tile--
	case Right:
		if sel.Tile >= shape.TileCount(sel.Container)-1 {
			return sel, BlockedBounds
		}
		next.Tile++
	case Up, Down:
		target, ok := verticalTarget(shape, sel.Container, dir)
		if !ok {
			return sel, BlockedBounds
		}
		next = Selection{Container: target}
	default:
		return sel, BlockedBounds
	}
	if shape.TileCount(next.Container) == 0 {
		return sel, BlockedTarget
	}
	return next, Moved
}

func verticalTarget(shape Shape, from int, dir Direction) (int, bool) {
	step := 1
	if dir == Up {
		step = -1
	}
	for i := from + step; i >= 0 && i < shape.Len(); i += step {
		if !shape.Skippable(i) {
			return i, true
		}
	}
	return from, false
}

// Valid reports whether sel points at an existing tile.
func Valid(shape Shape, sel Selection) bool {
	return sel.Container >= 0 && sel.Container < shape.Len() &&
		sel.Tile >= 0 && sel.Tile < shape.TileCount(sel.Container)
}
