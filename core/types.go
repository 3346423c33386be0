package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core value construction.
var (
	// ErrNegativeWeight indicates that a negative finite weight was requested.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Node is an integer grid coordinate. Y is the terrain's second horizontal
// axis (the world Z axis once a node is lifted into 3-D).
type Node struct {
	X, Y int64
}

// Offset returns the node displaced by (dx, dy).
func (n Node) Offset(dx, dy int64) Node {
	return Node{X: n.X + dx, Y: n.Y + dy}
}

// String renders the node as "(x, y)".
func (n Node) String() string {
	return fmt.Sprintf("(%d, %d)", n.X, n.Y)
}

// Hop is one step of a Path or one outgoing edge of a Graph: the node reached
// and the weight of the edge that reached it.
type Hop struct {
	Node   Node
	Weight Weight
}

// Graph is the single capability shortest-path searches need.
//
// Children returns every edge leaving n. Implementations may return several
// edges to the same neighbour; callers that need the cheapest one select it.
// A node the graph knows nothing about has no children.
type Graph interface {
	Children(n Node) []Hop
}

// GraphFunc adapts an ordinary function to the Graph interface.
type GraphFunc func(n Node) []Hop

// Children calls f(n).
func (f GraphFunc) Children(n Node) []Hop { return f(n) }

// Vec3 is a world-space position.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v*s.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Lerp linearly interpolates from v toward o; t=0 yields v and t=1 yields o.
func (v Vec3) Lerp(o Vec3, t float32) Vec3 {
	return o.Sub(v).Scale(t).Add(v)
}
