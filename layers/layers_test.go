package layers_test

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scifi6546/ski-tycoon-v2/core"
	"github.com/scifi6546/ski-tycoon-v2/layers"
)

func w(n int32) core.Weight { return core.MustWeight(n) }

func node(x, y int64) core.Node { return core.Node{X: x, Y: y} }

// uniformGrid builds a width×height grid where every in-bounds move costs c
// and moves leaving the grid are impassable.
func uniformGrid(t *testing.T, width, height int, c int32) *layers.GridLayer {
	t.Helper()
	cells := make([]layers.GridNode, 0, width*height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			cell := layers.ClosedNode()
			if x+1 < width {
				cell.XPlus = w(c)
			}
			if x > 0 {
				cell.XMinus = w(c)
			}
			if y+1 < height {
				cell.ZPlus = w(c)
			}
			if y > 0 {
				cell.ZMinus = w(c)
			}
			cells = append(cells, cell)
		}
	}
	g, err := layers.NewGridLayer(width, height, cells)
	require.NoError(t, err)

	return g
}

//----------------------------------------------------------------------------//
// GridLayer
//----------------------------------------------------------------------------//

func TestNewGridLayer_Errors(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		cells         []layers.GridNode
		err           error
	}{
		{"ZeroWidth", 0, 1, nil, layers.ErrEmptyGrid},
		{"ZeroHeight", 1, 0, nil, layers.ErrEmptyGrid},
		{"TooFewCells", 2, 2, make([]layers.GridNode, 3), layers.ErrDimensionMismatch},
		{"TooManyCells", 1, 1, make([]layers.GridNode, 2), layers.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := layers.NewGridLayer(tc.width, tc.height, tc.cells)
			assert.True(t, errors.Is(err, tc.err), "got %v; want %v", err, tc.err)
		})
	}
}

func TestGridLayer_ChildrenFiltersInfinite(t *testing.T) {
	g := uniformGrid(t, 3, 2, 4)

	// Corner (0,0): only +x and +z are finite.
	assert.ElementsMatch(t, []core.Hop{
		{Node: node(1, 0), Weight: w(4)},
		{Node: node(0, 1), Weight: w(4)},
	}, g.Children(node(0, 0)))

	// Interior edge cell (1,0): ±x and +z.
	assert.Len(t, g.Children(node(1, 0)), 3)
	for _, h := range g.Children(node(1, 0)) {
		assert.True(t, h.Weight.IsFinite())
	}
}

func TestGridLayer_DirectionMapping(t *testing.T) {
	cell := layers.GridNode{XPlus: w(1), XMinus: w(2), ZPlus: w(3), ZMinus: w(4)}
	g, err := layers.NewGridLayer(1, 1, []layers.GridNode{cell})
	require.NoError(t, err)

	assert.Equal(t, []core.Hop{
		{Node: node(1, 0), Weight: w(1)},
		{Node: node(-1, 0), Weight: w(2)},
		{Node: node(0, 1), Weight: w(3)},
		{Node: node(0, -1), Weight: w(4)},
	}, g.Children(node(0, 0)))

	assert.Equal(t, w(3), g.EdgeWeight(node(0, 0), node(0, 1)))
	assert.Equal(t, w(4), g.EdgeWeight(node(0, 0), node(0, -1)))
	assert.Equal(t, core.Infinity, g.EdgeWeight(node(0, 0), node(1, 1)), "diagonal")
	assert.Equal(t, core.Infinity, g.EdgeWeight(node(0, 0), node(0, 0)), "self")
}

func TestGridLayer_OutOfBounds(t *testing.T) {
	g := uniformGrid(t, 2, 2, 1)
	for _, n := range []core.Node{node(-1, 0), node(2, 0), node(0, 2), node(0, -1)} {
		assert.False(t, g.InBounds(n), "%s", n)
		assert.Empty(t, g.Children(n), "%s", n)
		assert.Equal(t, core.Infinity, g.EdgeWeight(n, n.Offset(1, 0)))
	}
	assert.True(t, g.InBounds(node(1, 1)))
}

func TestGridLayer_XMajorIndexing(t *testing.T) {
	// 2 columns, 3 rows; tag each cell with a distinct XPlus weight x*10+y.
	cells := make([]layers.GridNode, 0, 6)
	for x := 0; x < 2; x++ {
		for y := 0; y < 3; y++ {
			cells = append(cells, layers.GridNode{XPlus: w(int32(x*10 + y))})
		}
	}
	g, err := layers.NewGridLayer(2, 3, cells)
	require.NoError(t, err)

	cell, ok := g.Cell(node(1, 2))
	require.True(t, ok)
	assert.Equal(t, w(12), cell.XPlus)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 3, g.Height())
}

func TestGridLayer_Bound(t *testing.T) {
	g := uniformGrid(t, 4, 3, 1)
	b := g.Bound()
	assert.Equal(t, orb.Point{0, 0}, b.Min)
	assert.Equal(t, orb.Point{3, 2}, b.Max)
	assert.True(t, b.Contains(orb.Point{3, 2}))
	assert.False(t, b.Contains(orb.Point{4, 0}))
}

//----------------------------------------------------------------------------//
// LiftLayer
//----------------------------------------------------------------------------//

func TestLiftLayer_ExactEdge(t *testing.T) {
	lift := &layers.LiftLayer{Start: node(0, 0), End: node(5, 5), Weight: w(1)}

	assert.Equal(t, []core.Hop{{Node: node(5, 5), Weight: w(1)}}, lift.Children(node(0, 0)))
	assert.Empty(t, lift.Children(node(1, 1)))
	assert.Empty(t, lift.Children(node(5, 5)), "lifts are one-way")

	assert.Equal(t, w(1), lift.EdgeWeight(node(0, 0), node(5, 5)))
	assert.Equal(t, core.Infinity, lift.EdgeWeight(node(5, 5), node(0, 0)))
	assert.Equal(t, "Lift start: (0, 0) end: (5, 5)", lift.Describe())
}

//----------------------------------------------------------------------------//
// List
//----------------------------------------------------------------------------//

func TestList_ChildrenConcatenates(t *testing.T) {
	g := uniformGrid(t, 2, 1, 7)
	parallel := &layers.LiftLayer{Start: node(0, 0), End: node(1, 0), Weight: w(1)}
	list := layers.NewList([]layers.Layer{g, parallel})

	got := list.Children(node(0, 0))
	assert.Equal(t, []core.Hop{
		{Node: node(1, 0), Weight: w(7)},
		{Node: node(1, 0), Weight: w(1)},
	}, got, "parallel edges are kept, in layer order")

	assert.Equal(t, w(1), list.EdgeWeight(node(0, 0), node(1, 0)))
	assert.Empty(t, list.Children(node(9, 9)))
}

func TestList_FindLiftsSkipsGrid(t *testing.T) {
	g := uniformGrid(t, 2, 2, 1)
	a := &layers.LiftLayer{Start: node(0, 0), End: node(1, 1), Weight: w(1)}
	b := &layers.LiftLayer{Start: node(1, 0), End: node(0, 1), Weight: w(2)}
	list := layers.NewList([]layers.Layer{a, g, nil, b})

	assert.Equal(t, []*layers.LiftLayer{a, b}, list.FindLifts())
	assert.Len(t, list.Layers(), 3)
	assert.Equal(t, []string{
		"Lift start: (0, 0) end: (1, 1)",
		"Grid, width: 2 height: 2",
		"Lift start: (1, 0) end: (0, 1)",
	}, list.Describe())
}

func TestList_LiftsAt(t *testing.T) {
	a := &layers.LiftLayer{Start: node(3, 3), End: node(9, 9), Weight: w(1)}
	b := &layers.LiftLayer{Start: node(4, 3), End: node(9, 9), Weight: w(1)}
	c := &layers.LiftLayer{Start: node(3, 3), End: node(0, 9), Weight: w(5)}
	list := layers.NewList([]layers.Layer{a, b, c})

	assert.Equal(t, []*layers.LiftLayer{a, c}, list.LiftsAt(node(3, 3)))
	assert.Equal(t, []*layers.LiftLayer{b}, list.LiftsAt(node(4, 3)))
	assert.Empty(t, list.LiftsAt(node(3, 4)))
	assert.Empty(t, layers.NewList(nil).LiftsAt(node(0, 0)))
}

func TestList_ExpandHook(t *testing.T) {
	var seen []core.Node
	g := uniformGrid(t, 2, 2, 1)
	list := layers.NewList([]layers.Layer{g}, layers.WithExpandHook(func(n core.Node) {
		seen = append(seen, n)
	}))
	list.Children(node(0, 0))
	list.Children(node(1, 1))
	assert.Equal(t, []core.Node{node(0, 0), node(1, 1)}, seen)
}
