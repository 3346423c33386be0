// Package follow turns a core.Path into a time-parameterised 3-D trajectory.
//
// A Path holds one world-space waypoint per hop of the source path and a
// clock t that advances one unit per hop:
//
//   - Incr(dt) advances t. The clock never runs backwards.
//   - Get() samples the position at t by linear interpolation between
//     waypoint floor(t) and the next one, clamping to the last waypoint.
//   - AtEnd() reports t > Len().
//
// Waypoint heights come from a Terrain. New fails with ErrMissingTransform
// when a hop has no height.
//
// Append concatenates two trajectories. The receiver's clock and start are
// kept. The endpoint is taken from the argument when it has one.
package follow
