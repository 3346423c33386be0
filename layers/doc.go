// Package layers composes the edge sources of the simulation into a single
// core.Graph.
//
// What:
//
//   - GridLayer: a 4-neighbour weighted lattice built from terrain. Every cell
//     stores one outgoing weight per cardinal direction (GridNode).
//   - LiftLayer: exactly one directed edge, Start → End.
//   - List:      a read-only stack of layers presented as one core.Graph.
//     Children concatenates every layer's edges without merging them.
//
// Lift queries:
//
//   - FindLifts returns every LiftLayer in insertion order.
//   - LiftsAt returns the lifts whose base is a given node, answered from an
//     R-tree over lift bases.
//
// Grid storage is x-major: cell (x, y) lives at index x*Height + y.
//
// Complexity:
//
//   - GridLayer.Children: O(1).
//   - List.Children:      O(L) for L layers.
//   - List.LiftsAt:       O(log K + k) for K lifts, k of them at the node.
//
// Errors:
//
//   - ErrEmptyGrid:         width or height is zero.
//   - ErrDimensionMismatch: len(cells) != width*height.
//
// A List is never mutated after NewList; rebuild it when a lift is added.
package layers
