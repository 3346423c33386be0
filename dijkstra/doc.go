// Package dijkstra finds the cheapest path between two nodes of a core.Graph
// whose edge weights are non-negative.
//
// Overview:
//
//   - Single-source search driven by a min-heap keyed on the best known
//     distance. No heuristic; every settled node is final.
//   - The graph is discovered lazily through core.Graph.Children, so it can be
//     a layers.List spanning terrain and lifts, or any ad-hoc adjacency.
//   - Infinite edges are never traversed.
//
// Result:
//
//   - On success the returned core.Path runs source → destination and each
//     hop carries the weight of the edge that reached it (Some(0) for the
//     source).
//   - If the destination is never reached, Dijkstra returns ErrUnreachable
//     together with the degenerate single-hop path [destination], so callers
//     that only check Len() or Endpoint() keep working.
//
// Options:
//
//   - WithMaxDistance(d): stop expanding once the frontier is farther than d.
//   - WithOnVisit(fn):    hook called for every settled node with its distance.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) with the lazy decrease-key heap.
//
// Weights are non-negative by construction (see core.NewWeight), so no
// runtime negative-weight check is needed.
package dijkstra
