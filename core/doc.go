// Package core defines the value types shared by every layer, search and
// planning package of the simulation: grid vertices, edge weights, hop
// sequences and the Graph capability the searches walk.
//
// What:
//
//   - Node:   integer 2-D grid coordinate identifying a graph vertex.
//   - Weight: non-negative edge cost with a saturating Infinity sentinel.
//   - Hop:    one (node, weight-that-reached-it) pair.
//   - Path:   ordered hop sequence produced by a search.
//   - Graph:  anything that can list the outgoing edges of a Node.
//   - Vec3:   3-D world position used when animating a Path.
//
// Weight ordering:
//
//	Some(a) < Some(b)  iff a < b
//	Some(_) < Infinity
//	Infinity == Infinity
//
// Weight addition saturates: Infinity absorbs everything, and a finite sum
// that would overflow int32 becomes Infinity. The zero Weight is Some(0), so
// summing an empty sequence yields Some(0).
//
// Errors:
//
//   - ErrNegativeWeight: NewWeight was given a negative value.
//
// The non-negativity invariant is enforced by NewWeight/MustWeight; Weight
// fields are unexported, so a negative Weight can never reach a search.
package core
