// Package astar implements heuristic-guided shortest-path search over a
// core.Graph.
//
// The open set is a min-heap keyed on f = g + h. A node already in the open
// set is re-prioritised in place (heap.Fix) when a cheaper route to it is
// found; settled nodes move to the closed map, whose parent links rebuild the
// path once the destination is popped.
//
// With an admissible heuristic the path is optimal. Manhattan is admissible
// only when every step costs at least 1; Zero degenerates to Dijkstra.
//
// An empty open set before the destination is reached yields ErrUnreachable.
// A search never panics.
package astar
