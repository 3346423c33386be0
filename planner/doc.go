// Package planner chooses what a skier does next by bounded-depth lookahead
// over a small decision tree.
//
// Moves:
//
//   - SearchStart: the root. Costs Finite(0), stays in place.
//   - Up:          ride a lift whose base is the current node.
//   - Down:        ski (A* with the Manhattan heuristic) to the cheapest
//     reachable lift base.
//
// Every move has the children [Up, Down].
//
// BestPath(n, depth, ...) evaluates n, then recursively the best plan of
// depth-1 for each child from n's endpoint, and keeps the child plan whose
// summed cost is minimal. A child replaces the running best (initially
// Infinite) when its total is <= it, so the first child is always taken and
// a later child wins an exact tie. A plan of depth d has d+1 decisions, and
// 2^d leaves are evaluated.
//
// Costs are Numbers: Finite(float32) or Infinite. "No lift here" and "no
// route to any lift" are Infinite costs, never errors, so an impossible move
// loses to any finite alternative.
//
// Plan runs BestPath from SearchStart and folds the decisions' trajectories
// into one follow.Path.
package planner
