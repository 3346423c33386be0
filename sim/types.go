package sim

import (
	"errors"
	"log/slog"

	"github.com/scifi6546/ski-tycoon-v2/core"
	"github.com/scifi6546/ski-tycoon-v2/planner"
	"github.com/scifi6546/ski-tycoon-v2/terrain"
)

// Sentinel errors returned by World.
var (
	// ErrNilTerrain indicates NewWorld was called without terrain.
	ErrNilTerrain = errors.New("sim: terrain is nil")

	// ErrLiftOutOfBounds indicates a lift endpoint outside the terrain.
	ErrLiftOutOfBounds = errors.New("sim: lift endpoint outside terrain")

	// ErrSpawnOutOfBounds indicates a skier spawn point outside the terrain.
	ErrSpawnOutOfBounds = errors.New("sim: spawn point outside terrain")

	// ErrBadSearchDepth indicates a negative lookahead depth.
	ErrBadSearchDepth = errors.New("sim: SearchDepth must be non-negative")

	// ErrBadTickStep indicates a non-positive tick step.
	ErrBadTickStep = errors.New("sim: TickStep must be positive")

	// ErrBadWorkers indicates fewer than one planning worker.
	ErrBadWorkers = errors.New("sim: Workers must be at least 1")

	// ErrBadCosts indicates a negative terrain cost multiplier.
	ErrBadCosts = errors.New("sim: terrain costs must be non-negative")
)

// Options configures a World.
//
// SearchDepth – lookahead depth passed to planner.Plan (default 4).
// TickStep    – trajectory clock advance per tick (default 0.1).
// Workers     – concurrent replans per tick (default 1).
// LiftWeight  – edge weight of lifts added with AddLift (default Some(1)).
// Costs       – terrain edge multipliers (default terrain.DefaultCosts()).
// Logger      – structured logger (default slog.Default()).
// Metrics     – optional Prometheus collectors; nil disables them.
type Options struct {
	SearchDepth int
	TickStep    float64
	Workers     int
	LiftWeight  core.Weight
	Costs       terrain.Costs
	Logger      *slog.Logger
	Metrics     *Metrics
}

// Option is a functional option for NewWorld.
type Option func(*Options)

// DefaultOptions returns the standard configuration.
func DefaultOptions() Options {
	return Options{
		SearchDepth: 4,
		TickStep:    0.1,
		Workers:     1,
		LiftWeight:  core.MustWeight(1),
		Costs:       terrain.DefaultCosts(),
		Logger:      slog.Default(),
	}
}

// WithSearchDepth sets the lookahead depth.
func WithSearchDepth(d int) Option {
	return func(o *Options) { o.SearchDepth = d }
}

// WithTickStep sets the clock advance per tick.
func WithTickStep(step float64) Option {
	return func(o *Options) { o.TickStep = step }
}

// WithWorkers sets the number of concurrent replans.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLiftWeight sets the weight of lifts added with AddLift.
func WithLiftWeight(w core.Weight) Option {
	return func(o *Options) { o.LiftWeight = w }
}

// WithCosts sets the terrain edge multipliers.
func WithCosts(c terrain.Costs) Option {
	return func(o *Options) { o.Costs = c }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics enables metric collection.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

func (o Options) validate() error {
	switch {
	case o.SearchDepth < 0:
		return ErrBadSearchDepth
	case o.TickStep <= 0:
		return ErrBadTickStep
	case o.Workers < 1:
		return ErrBadWorkers
	case o.Costs.Downhill < 0 || o.Costs.Uphill < 0:
		return ErrBadCosts
	}

	return nil
}

// SkierState is a snapshot of one skier.
type SkierState struct {
	ID        int                    `json:"id"`
	Position  core.Vec3              `json:"position"`
	Target    core.Node              `json:"target"`
	HasTarget bool                   `json:"hasTarget"`
	Replans   int                    `json:"replans"`
	Decisions []planner.DecisionInfo `json:"decisions"`
}
