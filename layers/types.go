package layers

import (
	"errors"

	"github.com/scifi6546/ski-tycoon-v2/core"
)

// Sentinel errors for layer construction.
var (
	// ErrEmptyGrid indicates a grid with no columns or no rows.
	ErrEmptyGrid = errors.New("layers: grid must have at least one column and one row")

	// ErrDimensionMismatch indicates the cell slice does not match width*height.
	ErrDimensionMismatch = errors.New("layers: cell count does not match grid dimensions")
)

// Layer is one source of edges. Both GridLayer and LiftLayer implement it.
type Layer interface {
	core.Graph

	// EdgeWeight returns the weight of the direct edge src→dst in this layer,
	// or core.Infinity when the layer has no such edge.
	EdgeWeight(src, dst core.Node) core.Weight

	// Describe returns a one-line human summary of the layer.
	Describe() string
}

// GridNode holds the four outgoing weights of one grid cell.
// The Z axis of the terrain is the Y coordinate of a core.Node.
type GridNode struct {
	XPlus  core.Weight
	XMinus core.Weight
	ZPlus  core.Weight
	ZMinus core.Weight
}

// ClosedNode returns a GridNode with every direction impassable.
func ClosedNode() GridNode {
	return GridNode{
		XPlus:  core.Infinity,
		XMinus: core.Infinity,
		ZPlus:  core.Infinity,
		ZMinus: core.Infinity,
	}
}

// direction identifies one of the four cardinal offsets.
type direction int

const (
	xPlus direction = iota
	xMinus
	zPlus
	zMinus
)

// offsets lists the cardinal directions in the order children are emitted.
var offsets = [...]struct {
	dir    direction
	dx, dy int64
}{
	{xPlus, 1, 0},
	{xMinus, -1, 0},
	{zPlus, 0, 1},
	{zMinus, 0, -1},
}

// weight returns the outgoing weight of n toward d.
func (n GridNode) weight(d direction) core.Weight {
	switch d {
	case xPlus:
		return n.XPlus
	case xMinus:
		return n.XMinus
	case zPlus:
		return n.ZPlus
	default:
		return n.ZMinus
	}
}

// Option configures a List.
type Option func(*listOptions)

type listOptions struct {
	onExpand func(core.Node)
}

// WithExpandHook registers fn to be called every time Children is queried on
// the List. Searches query each expanded node once, so the hook counts search
// expansions. fn must be safe for concurrent use when the List is shared.
func WithExpandHook(fn func(core.Node)) Option {
	return func(o *listOptions) {
		if fn != nil {
			o.onExpand = fn
		}
	}
}
