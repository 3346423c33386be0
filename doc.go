// Package skitycoon is the planning core of a ski resort simulation: skiers
// move over a height-mapped mountain, ride lifts and choose, a few moves
// ahead, the cheapest way to keep skiing.
//
// What is inside?
//
//	• Graph primitives: grid nodes, saturating edge weights, hop paths
//	• Layers: a terrain grid plus lift edges, stacked into one graph
//	• Shortest paths: Dijkstra and A* with typed "unreachable" results
//	• Trajectories: time-parameterised 3-D paths sampled every tick
//	• Decisions: bounded-depth lookahead over {Search Start, Up, Down}
//	• Simulation: a world of skiers replanning in parallel, with metrics
//
// Packages:
//
//	core/        Node, Weight, Hop, Path, Graph, Vec3
//	layers/      GridLayer, LiftLayer and the List that stacks them
//	bfs/         hop-count reachability, used for stranded-skier diagnostics
//	dijkstra/    single-source shortest path over core.Graph
//	astar/       heuristic search with Manhattan and Zero heuristics
//	follow/      follow.Path: the skier's trajectory clock
//	planner/     Number, Decision, TreeNode, BestPath, Plan
//	terrain/     height maps: cones, tiles, ASCII PGM; grid construction
//	scenario/    YAML scenario library and the built-in resorts
//	sim/         World: lifts, skiers, ticks, Prometheus metrics
//	cmd/skisim   headless runner printing a per-skier report
//
// Quick ASCII example (heights, lift from the foot to the top):
//
//	x:    0   1   2   3   4
//	h:    0   1   2   3   4
//	      ^===============╯   lift (0,0) → (4,0)
//
// A skier at (4,0) plans [Search Start, Down, Up, Down, Up]: ski to the lift
// base, ride up, repeat.
//
//	go run ./cmd/skisim -name "Cone World" -ticks 200
package skitycoon
