package layers

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/scifi6546/ski-tycoon-v2/core"
)

// liftBaseTol is the half-extent of the box indexed around each lift base.
// Boxes of adjacent integer nodes never touch.
const liftBaseTol = 0.25

// liftEntry wraps a lift for R-tree storage, keyed by its base.
type liftEntry struct {
	order int
	lift  *LiftLayer
	box   rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *liftEntry) Bounds() rtreego.Rect { return e.box }

// List is a read-only composition of layers seen as one core.Graph.
type List struct {
	layers   []Layer
	lifts    []*LiftLayer
	index    *rtreego.Rtree
	onExpand func(core.Node)
}

// NewList stacks ls in order. Nil layers are skipped.
func NewList(ls []Layer, opts ...Option) *List {
	var cfg listOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &List{
		layers:   make([]Layer, 0, len(ls)),
		index:    rtreego.NewTree(2, 25, 50),
		onExpand: cfg.onExpand,
	}
	for _, layer := range ls {
		if layer == nil {
			continue
		}
		l.layers = append(l.layers, layer)
		lift, ok := layer.(*LiftLayer)
		if !ok {
			continue
		}
		box, err := nodeBox(lift.Start)
		if err != nil {
			continue
		}
		l.index.Insert(&liftEntry{order: len(l.lifts), lift: lift, box: box})
		l.lifts = append(l.lifts, lift)
	}

	return l
}

// Layers returns the stacked layers in order.
func (l *List) Layers() []Layer {
	out := make([]Layer, len(l.layers))
	copy(out, l.layers)

	return out
}

// Children concatenates the children of n from every layer, in layer order.
// Parallel edges from different layers are all returned.
func (l *List) Children(n core.Node) []core.Hop {
	if l.onExpand != nil {
		l.onExpand(n)
	}
	var out []core.Hop
	for _, layer := range l.layers {
		out = append(out, layer.Children(n)...)
	}

	return out
}

// EdgeWeight returns the cheapest direct src→dst edge across all layers.
func (l *List) EdgeWeight(src, dst core.Node) core.Weight {
	best := core.Infinity
	for _, layer := range l.layers {
		if w := layer.EdgeWeight(src, dst); w.Less(best) {
			best = w
		}
	}

	return best
}

// FindLifts returns every lift layer in insertion order. Grid layers are not
// included.
func (l *List) FindLifts() []*LiftLayer {
	out := make([]*LiftLayer, len(l.lifts))
	copy(out, l.lifts)

	return out
}

// LiftsAt returns the lifts whose base is n, in insertion order.
func (l *List) LiftsAt(n core.Node) []*LiftLayer {
	if len(l.lifts) == 0 {
		return nil
	}
	box, err := nodeBox(n)
	if err != nil {
		return nil
	}
	hits := l.index.SearchIntersect(box)
	entries := make([]*liftEntry, 0, len(hits))
	for _, item := range hits {
		e := item.(*liftEntry)
		if e.lift.Start == n {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].order < entries[j].order })

	out := make([]*LiftLayer, len(entries))
	for i, e := range entries {
		out[i] = e.lift
	}

	return out
}

// Describe returns one summary line per layer.
func (l *List) Describe() []string {
	out := make([]string, len(l.layers))
	for i, layer := range l.layers {
		out[i] = layer.Describe()
	}

	return out
}

// nodeBox returns the small square indexed around n.
func nodeBox(n core.Node) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{float64(n.X) - liftBaseTol, float64(n.Y) - liftBaseTol},
		[]float64{2 * liftBaseTol, 2 * liftBaseTol},
	)
}
