package follow

import (
	"errors"

	"github.com/scifi6546/ski-tycoon-v2/core"
)

// ErrMissingTransform indicates a path hop the terrain cannot place in 3-D.
var ErrMissingTransform = errors.New("follow: no terrain transform for node")

// Terrain maps a grid node to its world position.
type Terrain interface {
	Transform(n core.Node) (core.Vec3, bool)
}

// TerrainFunc adapts an ordinary function to the Terrain interface.
type TerrainFunc func(n core.Node) (core.Vec3, bool)

// Transform calls f(n).
func (f TerrainFunc) Transform(n core.Node) (core.Vec3, bool) { return f(n) }
