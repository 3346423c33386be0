package scenario

import (
	"context"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/scifi6546/ski-tycoon-v2/core"
	"github.com/scifi6546/ski-tycoon-v2/sim"
	"github.com/scifi6546/ski-tycoon-v2/terrain"
)

// Validate checks s and fills defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: scenario without a name", ErrInvalid)
	}
	t := &s.Terrain
	switch t.Kind {
	case KindCone:
		if t.Width <= 0 || t.Height <= 0 {
			return fmt.Errorf("%w: %q: cone dimensions must be positive", ErrInvalid, s.Name)
		}
	case KindPGM:
		if t.File == "" {
			return fmt.Errorf("%w: %q: pgm terrain needs a file", ErrInvalid, s.Name)
		}
		if t.Scaling == 0 {
			t.Scaling = 1
		}
	default:
		return fmt.Errorf("%w: %q in %q", ErrUnknownTerrain, t.Kind, s.Name)
	}
	for i, l := range s.Lifts {
		if l.Weight < 0 {
			return fmt.Errorf("%w: %q: lift %d has negative weight", ErrInvalid, s.Name, i)
		}
	}
	for i, a := range s.Spawns.Areas {
		if a.Max[0] < a.Min[0] || a.Max[1] < a.Min[1] {
			return fmt.Errorf("%w: %q: spawn area %d is inverted", ErrInvalid, s.Name, i)
		}
	}
	p := s.Planner
	if p.Depth < 0 || p.TickStep < 0 || p.Workers < 0 {
		return fmt.Errorf("%w: %q: planner settings must be non-negative", ErrInvalid, s.Name)
	}

	return nil
}

// BuildTerrain constructs the scenario's terrain.
func (s *Scenario) BuildTerrain() (*terrain.Terrain, error) {
	t := s.Terrain
	switch t.Kind {
	case KindCone:
		return terrain.NewCone(t.Width, t.Height, orb.Point(t.Center), t.CenterHeight, t.Slope)
	case KindPGM:
		if s.fsys == nil {
			return nil, fmt.Errorf("scenario: %q: no file system for %s", s.Name, t.File)
		}
		f, err := s.fsys.Open(t.File)
		if err != nil {
			return nil, fmt.Errorf("scenario: %q: %w", s.Name, err)
		}
		defer f.Close()
		tr, err := terrain.FromPGM(f, t.Scaling)
		if err != nil {
			return nil, fmt.Errorf("scenario: %q: %s: %w", s.Name, t.File, err)
		}
		return tr, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTerrain, t.Kind)
	}
}

// SpawnPoints expands points and areas, x-major within each area.
func (s *Scenario) SpawnPoints() []core.Node {
	var out []core.Node
	for _, p := range s.Spawns.Points {
		out = append(out, p.Node())
	}
	for _, a := range s.Spawns.Areas {
		for x := a.Min[0]; x < a.Max[0]; x++ {
			for y := a.Min[1]; y < a.Max[1]; y++ {
				out = append(out, core.Node{X: x, Y: y})
			}
		}
	}

	return out
}

// Options converts the scenario's planner and cost settings to sim options.
func (s *Scenario) Options() []sim.Option {
	var opts []sim.Option
	if s.Planner.Depth > 0 {
		opts = append(opts, sim.WithSearchDepth(s.Planner.Depth))
	}
	if s.Planner.TickStep > 0 {
		opts = append(opts, sim.WithTickStep(s.Planner.TickStep))
	}
	if s.Planner.Workers > 0 {
		opts = append(opts, sim.WithWorkers(s.Planner.Workers))
	}
	if s.Costs != nil {
		opts = append(opts, sim.WithCosts(*s.Costs))
	}

	return opts
}

// Build creates the world: terrain, then lifts, then skiers. opts are applied
// after the scenario's own settings.
func (s *Scenario) Build(ctx context.Context, opts ...sim.Option) (*sim.World, error) {
	tr, err := s.BuildTerrain()
	if err != nil {
		return nil, err
	}
	w, err := sim.NewWorld(tr, append(s.Options(), opts...)...)
	if err != nil {
		return nil, err
	}
	for _, l := range s.Lifts {
		if l.Weight > 0 {
			err = w.AddLiftWeighted(l.Start.Node(), l.End.Node(), core.MustWeight(l.Weight))
		} else {
			err = w.AddLift(l.Start.Node(), l.End.Node())
		}
		if err != nil {
			return nil, fmt.Errorf("scenario: %q: %w", s.Name, err)
		}
	}
	for _, p := range s.SpawnPoints() {
		if _, err := w.SpawnSkier(ctx, p); err != nil {
			return nil, fmt.Errorf("scenario: %q: %w", s.Name, err)
		}
	}

	return w, nil
}
