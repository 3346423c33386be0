package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/scifi6546/ski-tycoon-v2/core"
)

// Dijkstra computes the cheapest path from source to destination in g.
//
// Returns:
//
//   - path: source → destination, one hop per visited node.
//   - err:  ErrNilGraph for a nil graph; ErrUnreachable (with the degenerate
//     path [destination]) when no route exists or the route lies beyond
//     MaxDistance.
//
// Ties between equal-cost routes are broken arbitrarily.
func Dijkstra(source, destination core.Node, g core.Graph, opts ...Option) (core.Path, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return core.Path{}, ErrNilGraph
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[core.Node]core.Weight),
		prev:    make(map[core.Node]core.Hop),
		visited: make(map[core.Node]bool),
		pq:      make(nodePQ, 0, 16),
	}
	r.init(source)
	r.process(destination)

	return r.reconstruct(source, destination)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       core.Graph
	options Options
	dist    map[core.Node]core.Weight // absent = unknown (infinite)
	prev    map[core.Node]core.Hop    // node → (predecessor, weight of edge into node)
	visited map[core.Node]bool
	pq      nodePQ
}

// init seeds the source at distance Some(0).
func (r *runner) init(source core.Node) {
	r.dist[source] = core.Weight{}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{node: source, dist: core.Weight{}})
}

// process settles nodes in distance order until the heap drains, the
// destination is settled, or the frontier passes MaxDistance.
func (r *runner) process(destination core.Node) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.node, item.dist

		// Stale entry from the lazy decrease-key.
		if r.visited[u] {
			continue
		}
		if r.options.MaxDistance.Less(d) {
			break
		}
		r.visited[u] = true
		if r.options.OnVisit != nil {
			r.options.OnVisit(u, d)
		}
		if u == destination {
			return
		}
		r.relax(u, d)
	}
}

// relax improves the distance of every child of u through u.
func (r *runner) relax(u core.Node, d core.Weight) {
	for _, child := range r.g.Children(u) {
		if !child.Weight.IsFinite() {
			continue
		}
		v := child.Node
		if r.visited[v] {
			continue
		}
		total := child.Weight.Add(d)
		if !total.IsFinite() {
			continue
		}
		// Strictly better only; equal-cost alternatives keep the first route.
		if known, ok := r.dist[v]; ok && !total.Less(known) {
			continue
		}
		r.dist[v] = total
		r.prev[v] = core.Hop{Node: u, Weight: child.Weight}
		heap.Push(&r.pq, &nodeItem{node: v, dist: total})
	}
}

// reconstruct walks prev backward from destination to source.
func (r *runner) reconstruct(source, destination core.Node) (core.Path, error) {
	if source == destination {
		return core.NewPath(core.Hop{Node: source}), nil
	}
	if !r.visited[destination] {
		return core.NewPath(core.Hop{Node: destination}),
			fmt.Errorf("%w: %s → %s", ErrUnreachable, source, destination)
	}

	hops := make([]core.Hop, 0, 16)
	cur := destination
	for cur != source {
		p := r.prev[cur]
		hops = append(hops, core.Hop{Node: cur, Weight: p.Weight})
		cur = p.Node
	}
	hops = append(hops, core.Hop{Node: source})
	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}

	return core.NewPath(hops...), nil
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	node core.Node
	dist core.Weight
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist.Less(pq[j].dist) }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
