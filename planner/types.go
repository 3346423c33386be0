package planner

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/scifi6546/ski-tycoon-v2/core"
	"github.com/scifi6546/ski-tycoon-v2/follow"
	"github.com/scifi6546/ski-tycoon-v2/layers"
)

// Sentinel errors returned by the planner.
var (
	// ErrNilLayers indicates a move was evaluated without a layer list.
	ErrNilLayers = errors.New("planner: layer list is nil")

	// ErrNegativeDepth indicates a negative lookahead depth.
	ErrNegativeDepth = errors.New("planner: search depth must be non-negative")
)

// Number is a decision cost: Finite(v) or Infinite. The zero value is
// Finite(0).
type Number struct {
	v   float32
	inf bool
}

// Infinite is the cost of an impossible move.
var Infinite = Number{inf: true}

// Finite returns the finite cost v.
func Finite(v float32) Number { return Number{v: v} }

// FromWeight converts a graph weight into a cost.
func FromWeight(w core.Weight) Number {
	n, ok := w.Value()
	if !ok {
		return Infinite
	}

	return Finite(float32(n))
}

// IsFinite reports whether n is not Infinite.
func (n Number) IsFinite() bool { return !n.inf }

// Value returns the finite value and true, or 0 and false for Infinite.
func (n Number) Value() (float32, bool) {
	if n.inf {
		return 0, false
	}

	return n.v, true
}

// Add returns n+o; Infinite absorbs.
func (n Number) Add(o Number) Number {
	if n.inf || o.inf {
		return Infinite
	}

	return Number{v: n.v + o.v}
}

// Compare returns -1, 0 or +1 as n is less than, equal to or greater than o.
func (n Number) Compare(o Number) int {
	switch {
	case n.inf && o.inf:
		return 0
	case n.inf:
		return 1
	case o.inf:
		return -1
	case n.v < o.v:
		return -1
	case n.v > o.v:
		return 1
	default:
		return 0
	}
}

// Less reports whether n < o.
func (n Number) Less(o Number) bool { return n.Compare(o) < 0 }

// LessEq reports whether n <= o.
func (n Number) LessEq(o Number) bool { return n.Compare(o) <= 0 }

// String renders n as "Finite(v)" or "Infinite".
func (n Number) String() string {
	if n.inf {
		return "Infinite"
	}

	return fmt.Sprintf("Finite(%g)", n.v)
}

// MarshalJSON encodes a finite cost as a number and Infinite as the string
// "Infinite".
func (n Number) MarshalJSON() ([]byte, error) {
	if n.inf {
		return json.Marshal("Infinite")
	}

	return json.Marshal(n.v)
}

// UnmarshalJSON accepts the forms written by MarshalJSON.
func (n *Number) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "Infinite" {
			return fmt.Errorf("planner: invalid cost %q", s)
		}
		*n = Infinite
		return nil
	}
	var v float32
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("planner: invalid cost: %w", err)
	}
	*n = Finite(v)

	return nil
}

// Decision is the outcome of evaluating one move at one position.
type Decision struct {
	Cost     Number
	Name     string
	Path     *follow.Path
	Endpoint core.Node
}

// TreeNode is one move of the decision tree.
type TreeNode interface {
	// Name identifies the move in plans and reports.
	Name() string

	// Cost evaluates the move from pos.
	Cost(list *layers.List, pos core.Node, terrain follow.Terrain) (Decision, error)

	// Children lists the moves that may follow this one.
	Children() []TreeNode
}
