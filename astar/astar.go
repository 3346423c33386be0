package astar

import (
	"container/heap"
	"fmt"

	"github.com/scifi6546/ski-tycoon-v2/core"
)

// AStar computes a path from source to destination in g guided by h.
//
// The returned path starts at source with weight Some(0) and each later hop
// carries the weight of the edge that reached it. When source equals
// destination the path is the single hop [source].
func AStar(source, destination core.Node, g core.Graph, h Heuristic, opts ...Option) (core.Path, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return core.Path{}, ErrNilGraph
	}
	if h == nil {
		return core.Path{}, ErrNilHeuristic
	}

	open := &openSet{}
	heap.Init(open)
	openMap := make(map[core.Node]*entry)
	closed := make(map[core.Node]*entry)

	start := &entry{node: source, h: h(source, destination, g)}
	start.f = start.h
	heap.Push(open, start)
	openMap[source] = start

	seq := 0
	for open.Len() > 0 {
		current := heap.Pop(open).(*entry)
		delete(openMap, current.node)
		closed[current.node] = current
		if cfg.OnVisit != nil {
			cfg.OnVisit(current.node, current.g)
		}

		if current.node == destination {
			return reconstruct(closed, source, destination), nil
		}
		if cfg.MaxExpansions > 0 && len(closed) >= cfg.MaxExpansions {
			return core.Path{}, fmt.Errorf("%w: %d nodes settled", ErrExpansionLimit, len(closed))
		}

		for _, child := range g.Children(current.node) {
			if !child.Weight.IsFinite() {
				continue
			}
			if _, done := closed[child.Node]; done {
				continue
			}
			tentative := current.g.Add(child.Weight)
			if !tentative.IsFinite() {
				continue
			}

			neighbor, exists := openMap[child.Node]
			if !exists {
				seq++
				neighbor = &entry{
					node:   child.Node,
					g:      tentative,
					h:      h(child.Node, destination, g),
					parent: current.node,
					step:   child.Weight,
					seq:    seq,
				}
				neighbor.f = neighbor.g.Add(neighbor.h)
				heap.Push(open, neighbor)
				openMap[child.Node] = neighbor
			} else if tentative.Less(neighbor.g) {
				neighbor.g = tentative
				neighbor.f = neighbor.g.Add(neighbor.h)
				neighbor.parent = current.node
				neighbor.step = child.Weight
				heap.Fix(open, neighbor.index)
			}
		}
	}

	return core.Path{}, fmt.Errorf("%w: %s → %s", ErrUnreachable, source, destination)
}

// reconstruct follows parent links in closed from destination back to source.
func reconstruct(closed map[core.Node]*entry, source, destination core.Node) core.Path {
	hops := make([]core.Hop, 0, 16)
	for cur := closed[destination]; ; cur = closed[cur.parent] {
		if cur.node == source {
			hops = append(hops, core.Hop{Node: source})
			break
		}
		hops = append(hops, core.Hop{Node: cur.node, Weight: cur.step})
	}
	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}

	return core.NewPath(hops...)
}

// entry is one node of the search frontier or closed map.
type entry struct {
	node   core.Node
	g      core.Weight // cost from source
	h      core.Weight // heuristic to destination
	f      core.Weight // g + h
	parent core.Node
	step   core.Weight // weight of the edge parent → node
	seq    int         // insertion order, for deterministic ties
	index  int         // position in the heap
}

// openSet implements heap.Interface ordered by f, then insertion order.
type openSet []*entry

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	if c := s[i].f.Compare(s[j].f); c != 0 {
		return c < 0
	}

	return s[i].seq < s[j].seq
}

func (s openSet) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
	s[i].index = i
	s[j].index = j
}

func (s *openSet) Push(x interface{}) {
	e := x.(*entry)
	e.index = len(*s)
	*s = append(*s, e)
}

func (s *openSet) Pop() interface{} {
	old := *s
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*s = old[:n-1]

	return e
}
