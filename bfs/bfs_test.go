package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/scifi6546/ski-tycoon-v2/bfs"
	"github.com/scifi6546/ski-tycoon-v2/core"
	"github.com/scifi6546/ski-tycoon-v2/layers"
)

func node(x, y int64) core.Node { return core.Node{X: x, Y: y} }

// adjacency is a directed test graph keyed by source node.
type adjacency map[core.Node][]core.Hop

func (a adjacency) Children(n core.Node) []core.Hop { return a[n] }

func edge(x, y int64) core.Hop { return core.Hop{Node: node(x, y), Weight: core.MustWeight(1)} }

// square is the directed cycle (0,0)→(1,0)→(1,1)→(0,1)→(0,0) plus a
// shortcut (0,0)→(0,1) and an impassable edge (1,1)→(5,5).
var square = adjacency{
	node(0, 0): {edge(1, 0), edge(0, 1)},
	node(1, 0): {edge(1, 1)},
	node(1, 1): {edge(0, 1), {Node: node(5, 5), Weight: core.Infinity}},
	node(0, 1): {edge(0, 0)},
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, node(0, 0)); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := bfs.BFS(square, node(0, 0), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_Isolated covers a start node without children.
func TestBFS_Isolated(t *testing.T) {
	res, err := bfs.BFS(square, node(9, 9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []core.Node{node(9, 9)}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[node(9, 9)]; d != 0 {
		t.Errorf("Depth = %d; want 0", d)
	}
}

// TestBFS_DepthsAndParents checks hop counts ignore weights and skip Infinity.
func TestBFS_DepthsAndParents(t *testing.T) {
	res, err := bfs.BFS(square, node(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	want := []core.Node{node(0, 0), node(1, 0), node(0, 1), node(1, 1)}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[node(0, 1)]; d != 1 {
		t.Errorf("Depth[(0, 1)] = %d; want 1 via the shortcut", d)
	}
	if d := res.Depth[node(1, 1)]; d != 2 {
		t.Errorf("Depth[(1, 1)] = %d; want 2", d)
	}
	if res.Reached(node(5, 5)) {
		t.Errorf("(5, 5) reached through an infinite edge")
	}

	path, err := res.PathTo(node(1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.Node{node(0, 0), node(1, 0), node(1, 1)}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo = %v; want %v", path, want)
	}
	if _, err := res.PathTo(node(5, 5)); err == nil {
		t.Errorf("PathTo unreached node: want error")
	}
}

// TestBFS_MaxDepthAndFilter limits exploration.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	res, err := bfs.BFS(square, node(0, 0), bfs.WithMaxDepth(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 3 || res.Reached(node(1, 1)) {
		t.Errorf("MaxDepth(1): Order = %v", res.Order)
	}

	noShortcut := func(curr core.Node, next core.Hop) bool {
		return !(curr == node(0, 0) && next.Node == node(0, 1))
	}
	res, err = bfs.BFS(square, node(0, 0), bfs.WithFilterNeighbor(noShortcut))
	if err != nil {
		t.Fatal(err)
	}
	if d := res.Depth[node(0, 1)]; d != 3 {
		t.Errorf("filtered Depth[(0, 1)] = %d; want 3", d)
	}
}

// TestBFS_HookAndCancel covers OnVisit errors and context cancellation.
func TestBFS_HookAndCancel(t *testing.T) {
	stop := errors.New("stop")
	visits := 0
	_, err := bfs.BFS(square, node(0, 0), bfs.WithOnVisit(func(core.Node, int) error {
		visits++
		if visits == 2 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("hook error: got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(square, node(0, 0), bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: got %v", err)
	}
}

// TestBFS_LayerList walks a grid with a one-way lift.
func TestBFS_LayerList(t *testing.T) {
	cells := []layers.GridNode{layers.ClosedNode(), layers.ClosedNode(), layers.ClosedNode()}
	cells[1].XMinus = core.MustWeight(4)
	cells[2].XMinus = core.MustWeight(4)
	grid, err := layers.NewGridLayer(3, 1, cells)
	if err != nil {
		t.Fatal(err)
	}
	lift := &layers.LiftLayer{Start: node(0, 0), End: node(2, 0), Weight: core.MustWeight(1)}

	res, err := bfs.BFS(layers.NewList([]layers.Layer{grid}), node(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 1 {
		t.Errorf("without lift: Order = %v; want only the start", res.Order)
	}

	res, err = bfs.BFS(layers.NewList([]layers.Layer{grid, lift}), node(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 3 || res.Depth[node(1, 0)] != 2 {
		t.Errorf("with lift: Order = %v Depth = %v", res.Order, res.Depth)
	}
}
