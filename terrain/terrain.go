package terrain

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/scifi6546/ski-tycoon-v2/core"
)

// Terrain is an immutable height map.
type Terrain struct {
	tiles         []Tile
	width, height int
}

// NewCone builds a width×height cone of snow: every tile is
// centerHeight + slope·r, where r is its distance from center.
func NewCone(width, height int, center orb.Point, centerHeight, slope float32) (*Terrain, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyTerrain, width, height)
	}
	tiles := make([]Tile, 0, width*height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			r := math.Hypot(float64(x)-center.X(), float64(y)-center.Y())
			tiles = append(tiles, Tile{Height: centerHeight + float32(r)*slope, Type: Snow})
		}
	}

	return &Terrain{tiles: tiles, width: width, height: height}, nil
}

// FromTiles wraps x-major tiles. The slice is copied.
func FromTiles(tiles []Tile, width, height int) (*Terrain, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyTerrain, width, height)
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("%w: got %d tiles for %dx%d", ErrDimensionMismatch, len(tiles), width, height)
	}
	out := make([]Tile, len(tiles))
	copy(out, tiles)

	return &Terrain{tiles: out, width: width, height: height}, nil
}

// Dimensions returns the width (X extent) and height (Y extent).
func (t *Terrain) Dimensions() (width, height int) { return t.width, t.height }

// Bound returns the inclusive planar extent of the terrain's nodes.
func (t *Terrain) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{0, 0},
		Max: orb.Point{float64(t.width - 1), float64(t.height - 1)},
	}
}

// Contains reports whether n lies on the terrain.
func (t *Terrain) Contains(n core.Node) bool {
	return n.X >= 0 && n.X < int64(t.width) && n.Y >= 0 && n.Y < int64(t.height)
}

// Tile returns the tile under n.
func (t *Terrain) Tile(n core.Node) (Tile, bool) {
	if !t.Contains(n) {
		return Tile{}, false
	}

	return t.tiles[int(n.X)*t.height+int(n.Y)], true
}

// Transform returns the world position of n: (x, tile height, y).
func (t *Terrain) Transform(n core.Node) (core.Vec3, bool) {
	tile, ok := t.Tile(n)
	if !ok {
		return core.Vec3{}, false
	}

	return core.Vec3{X: float32(n.X), Y: tile.Height, Z: float32(n.Y)}, true
}

// TransformRounded truncates (x, y) to a node, clamps it onto the terrain
// and returns its world position.
func (t *Terrain) TransformRounded(x, y float32) core.Vec3 {
	n := core.Node{X: clamp(x, t.width), Y: clamp(y, t.height)}
	v, _ := t.Transform(n)

	return v
}

func clamp(v float32, size int) int64 {
	switch {
	case math.IsNaN(float64(v)) || v < 0:
		return 0
	case v >= float32(size):
		return int64(size - 1)
	default:
		return int64(v)
	}
}

// Heights returns the tile heights in x-major order.
func (t *Terrain) Heights() []float32 {
	out := make([]float32, len(t.tiles))
	for i, tile := range t.tiles {
		out[i] = tile.Height
	}

	return out
}
