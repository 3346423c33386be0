package terrain

import (
	"errors"
	"fmt"
)

// Sentinel errors for terrain construction.
var (
	// ErrEmptyTerrain indicates a width or height of zero.
	ErrEmptyTerrain = errors.New("terrain: dimensions must be positive")

	// ErrDimensionMismatch indicates the tile count does not match width*height.
	ErrDimensionMismatch = errors.New("terrain: tile count does not match dimensions")
)

// Sentinel errors carried by ParseError.
var (
	ErrEmptyFile        = errors.New("pgm: empty file")
	ErrInvalidMagic     = errors.New("pgm: invalid magic number")
	ErrInvalidNumber    = errors.New("pgm: invalid number")
	ErrMissingWidth     = errors.New("pgm: missing width")
	ErrMissingHeight    = errors.New("pgm: missing height")
	ErrMissingMaxHeight = errors.New("pgm: missing max height")
	ErrMissingDatapoint = errors.New("pgm: missing datapoint")
)

// Context names the PGM field being read when parsing failed.
type Context int

const (
	ContextMagic Context = iota
	ContextWidth
	ContextHeight
	ContextMaxHeight
	ContextDatapoint
)

func (c Context) String() string {
	switch c {
	case ContextMagic:
		return "magic number"
	case ContextWidth:
		return "width"
	case ContextHeight:
		return "height"
	case ContextMaxHeight:
		return "max height"
	case ContextDatapoint:
		return "datapoint"
	default:
		return fmt.Sprintf("Context(%d)", int(c))
	}
}

// ParseError reports a malformed PGM height map.
type ParseError struct {
	Context Context
	Kind    error
	Token   string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%v (reading %s)", e.Kind, e.Context)
	}

	return fmt.Sprintf("%v (reading %s): %q", e.Kind, e.Context, e.Token)
}

// Unwrap exposes Kind to errors.Is.
func (e *ParseError) Unwrap() error { return e.Kind }

// TileType is the surface of a tile.
type TileType int

const (
	Snow TileType = iota
)

func (t TileType) String() string {
	if t == Snow {
		return "Snow"
	}

	return fmt.Sprintf("TileType(%d)", int(t))
}

// Tile is one cell of the height map.
type Tile struct {
	Height float32
	Type   TileType
}

// Costs scales height differences into edge weights.
type Costs struct {
	Downhill float32 `yaml:"downhill"`
	Uphill   float32 `yaml:"uphill"`
}

// DefaultCosts returns the standard multipliers: 100 per unit of drop and 10
// per unit of climb.
func DefaultCosts() Costs {
	return Costs{Downhill: 100, Uphill: 10}
}
