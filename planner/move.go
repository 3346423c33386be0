package planner

import (
	"errors"
	"fmt"

	"github.com/scifi6546/ski-tycoon-v2/astar"
	"github.com/scifi6546/ski-tycoon-v2/core"
	"github.com/scifi6546/ski-tycoon-v2/follow"
	"github.com/scifi6546/ski-tycoon-v2/layers"
)

// Move is the closed set of skier moves.
type Move int

const (
	SearchStart Move = iota
	Up
	Down
)

// Name implements TreeNode.
func (m Move) Name() string {
	switch m {
	case SearchStart:
		return "Search Start"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}

// String returns Name.
func (m Move) String() string { return m.Name() }

// Children implements TreeNode. Every move may be followed by Up or Down.
func (m Move) Children() []TreeNode {
	return []TreeNode{Up, Down}
}

// Cost implements TreeNode.
func (m Move) Cost(list *layers.List, pos core.Node, terrain follow.Terrain) (Decision, error) {
	switch m {
	case SearchStart:
		return decide(m, Finite(0), core.Path{}, pos, terrain)
	case Up:
		return m.up(list, pos, terrain)
	case Down:
		return m.down(list, pos, terrain)
	default:
		return Decision{}, fmt.Errorf("planner: unknown move %d", int(m))
	}
}

// up rides the cheapest lift based at pos.
func (m Move) up(list *layers.List, pos core.Node, terrain follow.Terrain) (Decision, error) {
	if list == nil {
		return Decision{}, ErrNilLayers
	}
	cost, best := Infinite, core.Path{}
	for _, lift := range list.LiftsAt(pos) {
		c := FromWeight(lift.Weight)
		if !c.Less(cost) {
			continue
		}
		cost = c
		best = core.NewPath(
			core.Hop{Node: lift.Start},
			core.Hop{Node: lift.End, Weight: lift.Weight},
		)
	}

	return decide(m, cost, best, pos, terrain)
}

// down skis to the cheapest reachable lift base.
func (m Move) down(list *layers.List, pos core.Node, terrain follow.Terrain) (Decision, error) {
	if list == nil {
		return Decision{}, ErrNilLayers
	}
	cost, best := Infinite, core.Path{}
	for _, lift := range list.FindLifts() {
		p, err := astar.AStar(pos, lift.Start, list, astar.Manhattan)
		if errors.Is(err, astar.ErrUnreachable) {
			continue
		}
		if err != nil {
			return Decision{}, fmt.Errorf("planner: route to lift at %s: %w", lift.Start, err)
		}
		if p.Len() <= 1 {
			continue
		}
		c := FromWeight(p.Total())
		if !c.Less(cost) {
			continue
		}
		cost, best = c, p
	}

	return decide(m, cost, best, pos, terrain)
}

// decide packages a chosen path. An empty path leaves the skier at pos.
func decide(m Move, cost Number, p core.Path, pos core.Node, terrain follow.Terrain) (Decision, error) {
	fp, err := follow.New(p, terrain)
	if err != nil {
		return Decision{}, fmt.Errorf("planner: %s: %w", m.Name(), err)
	}
	end, ok := p.Endpoint()
	if !ok {
		end = pos
	}

	return Decision{Cost: cost, Name: m.Name(), Path: fp, Endpoint: end}, nil
}
