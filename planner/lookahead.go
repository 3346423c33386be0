package planner

import (
	"fmt"

	"github.com/scifi6546/ski-tycoon-v2/core"
	"github.com/scifi6546/ski-tycoon-v2/follow"
	"github.com/scifi6546/ski-tycoon-v2/layers"
)

// BestPath returns the cheapest plan of depth+1 decisions starting with n at
// pos. Depth 0 yields exactly n's own decision.
func BestPath(n TreeNode, depth int, list *layers.List, pos core.Node, terrain follow.Terrain) ([]Decision, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	self, err := n.Cost(list, pos, terrain)
	if err != nil {
		return nil, err
	}
	if depth == 0 {
		return []Decision{self}, nil
	}

	best := Infinite
	plan := []Decision{self}
	for _, child := range n.Children() {
		sub, err := BestPath(child, depth-1, list, self.Endpoint, terrain)
		if err != nil {
			return nil, err
		}
		if total := Total(sub); total.LessEq(best) {
			best = total
			plan = append([]Decision{self}, sub...)
		}
	}

	return plan, nil
}

// Total sums the decision costs of plan from Finite(0).
func Total(plan []Decision) Number {
	sum := Finite(0)
	for _, d := range plan {
		sum = sum.Add(d.Cost)
	}

	return sum
}

// Plan runs a depth-limited lookahead from SearchStart at pos and joins the
// chosen decisions into a single trajectory.
func Plan(depth int, list *layers.List, pos core.Node, terrain follow.Terrain) (*follow.Path, []Decision, error) {
	decisions, err := BestPath(SearchStart, depth, list, pos, terrain)
	if err != nil {
		return nil, nil, err
	}
	route, err := follow.New(core.Path{}, terrain)
	if err != nil {
		return nil, nil, err
	}
	for _, d := range decisions {
		route = route.Append(d.Path)
	}

	return route, decisions, nil
}
