package astar

import (
	"errors"
	"math"

	"github.com/scifi6546/ski-tycoon-v2/core"
)

// Sentinel errors returned by AStar.
var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic indicates a nil heuristic.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrUnreachable indicates the open set emptied before the destination was reached.
	ErrUnreachable = errors.New("astar: destination unreachable")

	// ErrExpansionLimit indicates MaxExpansions nodes were settled without reaching the destination.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// Heuristic estimates the remaining cost from one node to the destination.
type Heuristic func(from, to core.Node, g core.Graph) core.Weight

// Manhattan returns |dx| + |dy|, saturating at core.Infinity.
func Manhattan(from, to core.Node, _ core.Graph) core.Weight {
	d := abs(to.X-from.X) + abs(to.Y-from.Y)
	if d < 0 || d > math.MaxInt32 {
		return core.Infinity
	}

	return core.MustWeight(int32(d))
}

// Zero always estimates Some(0), turning A* into Dijkstra.
func Zero(_, _ core.Node, _ core.Graph) core.Weight { return core.Weight{} }

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

// Options configures AStar.
//
// MaxExpansions – settle at most this many nodes; 0 means unlimited.
// OnVisit       – called once per settled node with its g score.
type Options struct {
	MaxExpansions int
	OnVisit       func(n core.Node, g core.Weight)
}

// Option is a functional option for AStar.
type Option func(*Options)

// WithMaxExpansions bounds the number of settled nodes. Negative values are
// treated as unlimited.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxExpansions = n
	}
}

// WithOnVisit registers a hook invoked for every settled node.
func WithOnVisit(fn func(n core.Node, g core.Weight)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// DefaultOptions returns Options with no expansion limit and no hooks.
func DefaultOptions() Options {
	return Options{}
}
