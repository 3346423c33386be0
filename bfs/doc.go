// Package bfs provides breadth-first reachability over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (hops) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error).
//   - Allows filtering of individual edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Infinite edges are never followed; all finite edges count as one hop.
//
// Why
//
//   - Answer "can this node reach that one at all" without paying for
//     weighted search; the simulation uses it to explain stranded skiers.
//
// Determinism
//
//	Children are enqueued in the order core.Graph.Children returns them, so
//	the visit sequence is reproducible for a deterministic graph.
//
// Complexity (V = reachable nodes, E = their edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(list, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(50),
//	)
//	if err == nil && res.Reached(liftBase) { ... }
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err()           on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
