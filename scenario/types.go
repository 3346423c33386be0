package scenario

import (
	"errors"
	"io/fs"

	"github.com/scifi6546/ski-tycoon-v2/core"
	"github.com/scifi6546/ski-tycoon-v2/terrain"
)

// Sentinel errors returned by the loader.
var (
	// ErrNotFound indicates no scenario has the requested name.
	ErrNotFound = errors.New("scenario: not found")

	// ErrUnknownTerrain indicates an unsupported terrain kind.
	ErrUnknownTerrain = errors.New("scenario: unknown terrain kind")

	// ErrInvalid indicates a scenario that fails validation.
	ErrInvalid = errors.New("scenario: invalid")
)

// Terrain kinds.
const (
	KindCone = "cone"
	KindPGM  = "pgm"
)

// Point is an [x, y] grid coordinate.
type Point [2]int64

// Node converts p to a core.Node.
func (p Point) Node() core.Node { return core.Node{X: p[0], Y: p[1]} }

// Library is a named collection of scenarios.
type Library struct {
	Scenarios []Scenario `yaml:"scenarios"`

	fsys fs.FS
}

// Scenario describes one resort setup.
type Scenario struct {
	Name    string         `yaml:"name"`
	Terrain TerrainConfig  `yaml:"terrain"`
	Costs   *terrain.Costs `yaml:"costs,omitempty"`
	Lifts   []LiftConfig   `yaml:"lifts"`
	Spawns  SpawnConfig    `yaml:"spawns"`
	Planner PlannerConfig  `yaml:"planner"`

	fsys fs.FS
}

// TerrainConfig selects and parameterises a terrain constructor.
type TerrainConfig struct {
	Kind         string     `yaml:"kind"`
	Width        int        `yaml:"width,omitempty"`
	Height       int        `yaml:"height,omitempty"`
	Center       [2]float64 `yaml:"center,omitempty"`
	CenterHeight float32    `yaml:"center_height,omitempty"`
	Slope        float32    `yaml:"slope,omitempty"`
	File         string     `yaml:"file,omitempty"`
	Scaling      float32    `yaml:"scaling,omitempty"`
}

// LiftConfig places one lift. A zero Weight means the world default.
type LiftConfig struct {
	Start  Point `yaml:"start"`
	End    Point `yaml:"end"`
	Weight int32 `yaml:"weight,omitempty"`
}

// SpawnConfig lists skier spawn points.
type SpawnConfig struct {
	Points []Point `yaml:"points,omitempty"`
	Areas  []Area  `yaml:"areas,omitempty"`
}

// Area is the half-open rectangle [Min, Max).
type Area struct {
	Min Point `yaml:"min"`
	Max Point `yaml:"max"`
}

// PlannerConfig overrides sim options. Zero values keep the defaults.
type PlannerConfig struct {
	Depth    int     `yaml:"depth,omitempty"`
	TickStep float64 `yaml:"tick_step,omitempty"`
	Workers  int     `yaml:"workers,omitempty"`
}
