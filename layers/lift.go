package layers

import (
	"fmt"

	"github.com/scifi6546/ski-tycoon-v2/core"
)

// LiftLayer is a single directed transport edge Start → End.
type LiftLayer struct {
	Start  core.Node
	End    core.Node
	Weight core.Weight
}

// Children returns the lift edge when n is the lift base, and nothing otherwise.
func (l *LiftLayer) Children(n core.Node) []core.Hop {
	if n != l.Start {
		return nil
	}

	return []core.Hop{{Node: l.End, Weight: l.Weight}}
}

// EdgeWeight returns the lift weight for exactly Start→End.
func (l *LiftLayer) EdgeWeight(src, dst core.Node) core.Weight {
	if src == l.Start && dst == l.End {
		return l.Weight
	}

	return core.Infinity
}

// Describe summarises the lift endpoints.
func (l *LiftLayer) Describe() string {
	return fmt.Sprintf("Lift start: %s end: %s", l.Start, l.End)
}
