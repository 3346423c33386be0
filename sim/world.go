package sim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/paulmach/orb"
	"golang.org/x/sync/errgroup"

	"github.com/scifi6546/ski-tycoon-v2/bfs"
	"github.com/scifi6546/ski-tycoon-v2/core"
	"github.com/scifi6546/ski-tycoon-v2/follow"
	"github.com/scifi6546/ski-tycoon-v2/layers"
	"github.com/scifi6546/ski-tycoon-v2/planner"
	"github.com/scifi6546/ski-tycoon-v2/terrain"
)

// World is a resort with lifts and skiers. It is safe for concurrent use.
type World struct {
	mu      sync.Mutex
	opts    Options
	terrain *terrain.Terrain
	grid    *layers.GridLayer
	lifts   []*layers.LiftLayer
	list    *layers.List
	skiers  []*skier
	nextID  int
	ticks   int
}

type skier struct {
	id        int
	route     *follow.Path
	position  core.Vec3
	decisions []planner.DecisionInfo
	replans   int
}

// NewWorld builds a world on t with no lifts and no skiers.
func NewWorld(t *terrain.Terrain, opts ...Option) (*World, error) {
	if t == nil {
		return nil, ErrNilTerrain
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	grid, err := t.BuildGraph(cfg.Costs)
	if err != nil {
		return nil, fmt.Errorf("sim: build grid: %w", err)
	}

	w := &World{opts: cfg, terrain: t, grid: grid}
	w.rebuild()

	return w, nil
}

// rebuild restacks the grid and lifts. Callers hold w.mu.
func (w *World) rebuild() {
	ls := make([]layers.Layer, 0, len(w.lifts)+1)
	ls = append(ls, w.grid)
	for _, l := range w.lifts {
		ls = append(ls, l)
	}
	var lopts []layers.Option
	if m := w.opts.Metrics; m != nil {
		lopts = append(lopts, layers.WithExpandHook(func(core.Node) { m.ExpandedNodes.Inc() }))
		m.Lifts.Set(float64(len(w.lifts)))
	}
	w.list = layers.NewList(ls, lopts...)
}

// AddLift places a lift from start to end with the configured lift weight.
func (w *World) AddLift(start, end core.Node) error {
	return w.AddLiftWeighted(start, end, w.opts.LiftWeight)
}

// AddLiftWeighted places a lift from start to end with the given weight.
// Both endpoints must lie on the terrain.
func (w *World) AddLiftWeighted(start, end core.Node, weight core.Weight) error {
	bound := w.terrain.Bound()
	for _, n := range []core.Node{start, end} {
		if !bound.Contains(orb.Point{float64(n.X), float64(n.Y)}) {
			return fmt.Errorf("%w: %s", ErrLiftOutOfBounds, n)
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.lifts = append(w.lifts, &layers.LiftLayer{Start: start, End: end, Weight: weight})
	w.rebuild()
	w.opts.Logger.Info("lift added", "start", start.String(), "end", end.String(), "weight", weight.String())

	return nil
}

// SpawnSkier plans a first trajectory from pos and adds the skier. It returns
// the skier's ID.
func (w *World) SpawnSkier(ctx context.Context, pos core.Node) (int, error) {
	if !w.terrain.Contains(pos) {
		return 0, fmt.Errorf("%w: %s", ErrSpawnOutOfBounds, pos)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	route, infos, err := w.plan(pos)
	if err != nil {
		return 0, err
	}
	s := &skier{id: w.nextID, route: route, decisions: infos, replans: 1}
	s.position, _ = w.terrain.Transform(pos)
	if !route.IsEmpty() {
		s.position = route.Get()
	}
	w.nextID++
	w.skiers = append(w.skiers, s)
	if m := w.opts.Metrics; m != nil {
		m.Skiers.Set(float64(len(w.skiers)))
	}
	w.opts.Logger.Debug("skier spawned", "id", s.id, "at", pos.String(), "waypoints", route.Len())
	if _, ok := route.Endpoint(); !ok {
		w.logStranded(ctx, s.id, pos)
	}

	return s.id, nil
}

// logStranded explains why a skier has nowhere to go. Callers hold w.mu.
func (w *World) logStranded(ctx context.Context, id int, pos core.Node) {
	res, err := bfs.BFS(w.list, pos, bfs.WithContext(ctx))
	if err != nil {
		return
	}
	bases := 0
	for _, l := range w.lifts {
		if res.Reached(l.Start) {
			bases++
		}
	}
	w.opts.Logger.Warn("skier stranded", "id", id, "at", pos.String(),
		"reachable", len(res.Order), "liftBases", bases, "lifts", len(w.lifts))
}

// Reachable lists every node reachable from pos over the current layers,
// in breadth-first order with hop distances.
func (w *World) Reachable(ctx context.Context, pos core.Node) (*bfs.BFSResult, error) {
	list := w.Layers()

	return bfs.BFS(list, pos, bfs.WithContext(ctx))
}

// plan runs one lookahead from pos against the current layer list.
func (w *World) plan(pos core.Node) (*follow.Path, []planner.DecisionInfo, error) {
	start := time.Now()
	route, decisions, err := planner.Plan(w.opts.SearchDepth, w.list, pos, w.terrain)
	m := w.opts.Metrics
	if err != nil {
		if m != nil {
			m.PlanFailures.Inc()
		}
		return nil, nil, fmt.Errorf("sim: plan from %s: %w", pos, err)
	}
	if m != nil {
		m.PlanSeconds.Observe(time.Since(start).Seconds())
		m.Replans.Inc()
		for _, d := range decisions {
			m.Decisions.WithLabelValues(d.Name).Inc()
		}
	}

	return route, planner.Summarize(decisions), nil
}

// replan is the result of one phase-one replan.
type replan struct {
	route *follow.Path
	infos []planner.DecisionInfo
	ok    bool
}

// Tick advances the world by one step. It returns ctx's error if ctx is
// cancelled during replanning; no skier is updated in that case.
func (w *World) Tick(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	results := make([]replan, len(w.skiers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.opts.Workers)
	for i, s := range w.skiers {
		if !s.route.AtEnd() {
			continue
		}
		end, ok := s.route.Endpoint()
		if !ok {
			continue
		}
		i, s := i, s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			route, infos, err := w.plan(end)
			if err != nil {
				w.opts.Logger.Warn("replan failed", "skier", s.id, "from", end.String(), "err", err)
				return nil
			}
			results[i] = replan{route: route, infos: infos, ok: true}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, s := range w.skiers {
		r := results[i]
		switch {
		case r.ok:
			if !r.route.IsEmpty() {
				s.position = s.route.Get()
			}
			s.route, s.decisions = r.route, r.infos
			s.replans++
		case !s.route.AtEnd():
			s.route.Incr(w.opts.TickStep)
			if !s.route.IsEmpty() {
				s.position = s.route.Get()
			}
		}
	}
	w.ticks++

	return nil
}

// Run calls Tick n times, stopping at the first error.
func (w *World) Run(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := w.Tick(ctx); err != nil {
			return err
		}
	}

	return nil
}

// Ticks returns the number of completed ticks.
func (w *World) Ticks() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.ticks
}

// Skiers returns a snapshot of every skier in spawn order.
func (w *World) Skiers() []SkierState {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]SkierState, len(w.skiers))
	for i, s := range w.skiers {
		target, ok := s.route.Endpoint()
		out[i] = SkierState{
			ID:        s.id,
			Position:  s.position,
			Target:    target,
			HasTarget: ok,
			Replans:   s.replans,
			Decisions: append([]planner.DecisionInfo(nil), s.decisions...),
		}
	}

	return out
}

// Layers returns the current layer list.
func (w *World) Layers() *layers.List {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.list
}

// Lifts returns the placed lifts in insertion order.
func (w *World) Lifts() []layers.LiftLayer {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]layers.LiftLayer, len(w.lifts))
	for i, l := range w.lifts {
		out[i] = *l
	}

	return out
}

// Terrain returns the world's terrain.
func (w *World) Terrain() *terrain.Terrain { return w.terrain }

// Describe returns one summary line per layer.
func (w *World) Describe() []string {
	return w.Layers().Describe()
}
