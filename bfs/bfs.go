// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// BFS explores nodes in increasing hop count from a start node,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/scifi6546/ski-tycoon-v2/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  core.Node
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Edge weights are ignored except that infinite edges are never followed.
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad options,
// the context error on cancellation, or any user-supplied hook error.
func BFS(g core.Graph, start core.Node, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		res: &BFSResult{
			Depth:  make(map[core.Node]int),
			Parent: make(map[core.Node]core.Node),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0, nil)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks n discovered at depth d, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(n core.Node, d int, parent *core.Node) {
	w.res.Depth[n] = d
	if parent != nil {
		w.res.Parent[n] = *parent
	}
	w.queue = append(w.queue, queueItem{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %s: %w", item.node, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each
// unseen child reached through a finite edge.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, hop := range w.graph.Children(item.node) {
		if !hop.Weight.IsFinite() || !w.opts.FilterNeighbor(item.node, hop) {
			continue
		}
		// first time seen?
		if _, seen := w.res.Depth[hop.Node]; !seen {
			w.enqueue(hop.Node, nextDepth, &item.node)
		}
	}
}
