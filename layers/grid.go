package layers

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/scifi6546/ski-tycoon-v2/core"
)

// GridLayer is a weighted 4-neighbour lattice. It is immutable once built.
type GridLayer struct {
	width, height int
	cells         []GridNode
}

// NewGridLayer builds a GridLayer of width×height cells from x-major cells
// (cell (x, y) at index x*height + y). The slice is copied.
// Returns ErrEmptyGrid or ErrDimensionMismatch on malformed input.
func NewGridLayer(width, height int, cells []GridNode) (*GridLayer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: got %d cells for %dx%d", ErrDimensionMismatch, len(cells), width, height)
	}
	out := make([]GridNode, len(cells))
	copy(out, cells)

	return &GridLayer{width: width, height: height, cells: out}, nil
}

// Width returns the number of columns (X extent).
func (g *GridLayer) Width() int { return g.width }

// Height returns the number of rows (Y extent).
func (g *GridLayer) Height() int { return g.height }

// InBounds reports whether n lies within the grid.
func (g *GridLayer) InBounds(n core.Node) bool {
	return n.X >= 0 && n.X < int64(g.width) && n.Y >= 0 && n.Y < int64(g.height)
}

// Bound returns the inclusive planar extent of the grid's nodes.
func (g *GridLayer) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{0, 0},
		Max: orb.Point{float64(g.width - 1), float64(g.height - 1)},
	}
}

// Cell returns the GridNode at n, or false when n is outside the grid.
func (g *GridLayer) Cell(n core.Node) (GridNode, bool) {
	if !g.InBounds(n) {
		return GridNode{}, false
	}

	return g.cells[g.index(n)], true
}

// Children returns the cardinal neighbours of n reachable through a finite
// weight. Infinite directions are omitted. Nodes outside the grid have no
// children.
func (g *GridLayer) Children(n core.Node) []core.Hop {
	cell, ok := g.Cell(n)
	if !ok {
		return nil
	}
	out := make([]core.Hop, 0, len(offsets))
	for _, o := range offsets {
		w := cell.weight(o.dir)
		if !w.IsFinite() {
			continue
		}
		out = append(out, core.Hop{Node: n.Offset(o.dx, o.dy), Weight: w})
	}

	return out
}

// EdgeWeight returns the weight stored on src toward an adjacent dst, or
// core.Infinity when dst is not a cardinal neighbour or src is off-grid.
func (g *GridLayer) EdgeWeight(src, dst core.Node) core.Weight {
	cell, ok := g.Cell(src)
	if !ok {
		return core.Infinity
	}
	dx, dy := dst.X-src.X, dst.Y-src.Y
	for _, o := range offsets {
		if o.dx == dx && o.dy == dy {
			return cell.weight(o.dir)
		}
	}

	return core.Infinity
}

// Describe summarises the grid dimensions.
func (g *GridLayer) Describe() string {
	return fmt.Sprintf("Grid, width: %d height: %d", g.width, g.height)
}

// index maps n to its x-major slot.
func (g *GridLayer) index(n core.Node) int {
	return int(n.X)*g.height + int(n.Y)
}
