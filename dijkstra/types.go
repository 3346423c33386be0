package dijkstra

import (
	"errors"

	"github.com/scifi6546/ski-tycoon-v2/core"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates that a nil core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnreachable indicates that the destination cannot be reached from the source.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance – nodes whose distance exceeds this are never expanded.
// Default is core.Infinity (no cap).
//
// OnVisit – called once per settled node, in settle order.
type Options struct {
	MaxDistance core.Weight
	OnVisit     func(n core.Node, dist core.Weight)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance caps the explored distance.
func WithMaxDistance(d core.Weight) Option {
	return func(o *Options) {
		o.MaxDistance = d
	}
}

// WithOnVisit registers a hook invoked for every settled node.
func WithOnVisit(fn func(n core.Node, dist core.Weight)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// DefaultOptions returns Options with no distance cap and no hooks.
func DefaultOptions() Options {
	return Options{
		MaxDistance: core.Infinity,
		OnVisit:     nil,
	}
}
