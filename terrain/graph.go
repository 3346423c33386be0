package terrain

import (
	"math"

	"github.com/scifi6546/ski-tycoon-v2/core"
	"github.com/scifi6546/ski-tycoon-v2/layers"
)

// EdgeWeight returns the cost of stepping from src to dst under c.
func (t *Terrain) EdgeWeight(src, dst core.Node, c Costs) core.Weight {
	from, ok := t.Tile(src)
	if !ok {
		return core.Infinity
	}
	to, ok := t.Tile(dst)
	if !ok {
		return core.Infinity
	}
	drop := from.Height - to.Height
	// Drops in (-1, 0) truncate to 0 and count as downhill.
	mult := c.Uphill
	if int32(drop) >= 0 {
		mult = c.Downhill
	}

	return toWeight(math.Abs(float64(drop * mult)))
}

func toWeight(v float64) core.Weight {
	if math.IsNaN(v) || v > math.MaxInt32 {
		return core.Infinity
	}

	return core.MustWeight(int32(v))
}

// BuildGraph derives the grid layer of the terrain under c.
func (t *Terrain) BuildGraph(c Costs) (*layers.GridLayer, error) {
	cells := make([]layers.GridNode, 0, len(t.tiles))
	for x := 0; x < t.width; x++ {
		for y := 0; y < t.height; y++ {
			n := core.Node{X: int64(x), Y: int64(y)}
			cells = append(cells, layers.GridNode{
				XPlus:  t.EdgeWeight(n, n.Offset(1, 0), c),
				XMinus: t.EdgeWeight(n, n.Offset(-1, 0), c),
				ZPlus:  t.EdgeWeight(n, n.Offset(0, 1), c),
				ZMinus: t.EdgeWeight(n, n.Offset(0, -1), c),
			})
		}
	}

	return layers.NewGridLayer(t.width, t.height, cells)
}
