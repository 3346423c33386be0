// Package sim runs skiers over a resort.
//
// A World owns one terrain, the grid layer derived from it, the lifts placed
// on it and the skiers spawned into it. The layer list is rebuilt whenever a
// lift is added and is never mutated while skiers plan.
//
// Each Tick is two-phase:
//
//  1. Read: every skier whose trajectory is finished replans from its
//     endpoint with a planner.Plan lookahead. Replans only read the shared
//     layer list, so they run on up to Options.Workers goroutines.
//  2. Write: new trajectories are installed, and every other skier advances
//     its clock by Options.TickStep and samples its position.
//
// AddLift and Tick are serialised; a lift added during a tick is visible to
// the next one.
//
// Planning failures are logged and counted; the affected skier keeps its old
// trajectory and retries on the next tick.
package sim
