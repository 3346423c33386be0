package core

// Path is an ordered hop sequence. The front is the source-adjacent end and
// the back is the destination. Each hop carries the weight of the edge that
// reached it; the first hop conventionally carries Some(0).
//
// A Path is immutable: Append and the accessors never alias the receiver's
// storage.
type Path struct {
	hops []Hop
}

// NewPath builds a Path from hops, copying them.
func NewPath(hops ...Hop) Path {
	if len(hops) == 0 {
		return Path{}
	}
	out := make([]Hop, len(hops))
	copy(out, hops)

	return Path{hops: out}
}

// Hops returns a copy of the hop sequence.
func (p Path) Hops() []Hop {
	out := make([]Hop, len(p.hops))
	copy(out, p.hops)

	return out
}

// Nodes returns the visited nodes in order.
func (p Path) Nodes() []Node {
	out := make([]Node, len(p.hops))
	for i, h := range p.hops {
		out[i] = h.Node
	}

	return out
}

// Len returns the number of hops.
func (p Path) Len() int { return len(p.hops) }

// IsEmpty reports whether p has no hops.
func (p Path) IsEmpty() bool { return len(p.hops) == 0 }

// Start returns the first node of p, if any.
func (p Path) Start() (Node, bool) {
	if len(p.hops) == 0 {
		return Node{}, false
	}

	return p.hops[0].Node, true
}

// Endpoint returns the last node of p, if any.
func (p Path) Endpoint() (Node, bool) {
	if len(p.hops) == 0 {
		return Node{}, false
	}

	return p.hops[len(p.hops)-1].Node, true
}

// Append returns p followed by o.
func (p Path) Append(o Path) Path {
	out := make([]Hop, 0, len(p.hops)+len(o.hops))
	out = append(out, p.hops...)
	out = append(out, o.hops...)

	return Path{hops: out}
}

// Total sums the hop weights of p. An empty path totals Some(0).
func (p Path) Total() Weight {
	var total Weight
	for _, h := range p.hops {
		total = total.Add(h.Weight)
	}

	return total
}
