package follow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scifi6546/ski-tycoon-v2/core"
	"github.com/scifi6546/ski-tycoon-v2/follow"
)

// flat places every node at height 1 inside a 10×10 square.
var flat = follow.TerrainFunc(func(n core.Node) (core.Vec3, bool) {
	if n.X < 0 || n.Y < 0 || n.X >= 10 || n.Y >= 10 {
		return core.Vec3{}, false
	}
	return core.Vec3{X: float32(n.X), Y: 1, Z: float32(n.Y)}, true
})

func hop(x, y int64, weight int32) core.Hop {
	return core.Hop{Node: core.Node{X: x, Y: y}, Weight: core.MustWeight(weight)}
}

func TestInterpolation(t *testing.T) {
	p := follow.FromWaypoints(core.Vec3{}, core.Vec3{X: 2})

	cases := []struct {
		name  string
		t     float64
		want  core.Vec3
		atEnd bool
	}{
		{"Start", 0, core.Vec3{}, false},
		{"Midway", 0.5, core.Vec3{X: 1}, false},
		{"PastLastSegment", 1.5, core.Vec3{X: 2}, false},
		{"AtCount", 2, core.Vec3{X: 2}, false},
		{"BeyondCount", 2.5, core.Vec3{X: 2}, true},
	}
	var clock float64
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p.Incr(tc.t - clock)
			clock = tc.t
			assert.InDelta(t, tc.t, p.T(), 1e-9)
			assert.Equal(t, tc.want, p.Get())
			assert.Equal(t, tc.atEnd, p.AtEnd())
		})
	}
}

func TestIncrIsMonotonic(t *testing.T) {
	p := follow.FromWaypoints(core.Vec3{}, core.Vec3{X: 1})
	p.Incr(0.75)
	p.Incr(-0.5)
	assert.InDelta(t, 0.75, p.T(), 1e-9)
}

func TestNewPlacesEveryHop(t *testing.T) {
	src := core.NewPath(hop(0, 0, 0), hop(1, 0, 3), hop(1, 1, 3))
	p, err := follow.New(src, flat)
	require.NoError(t, err)
	require.Equal(t, 3, p.Len())
	assert.Equal(t, []core.Vec3{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1, Z: 1}}, p.Waypoints())

	start, ok := p.Start()
	require.True(t, ok)
	assert.Equal(t, core.Node{}, start)
	end, ok := p.Endpoint()
	require.True(t, ok)
	assert.Equal(t, core.Node{X: 1, Y: 1}, end)
}

func TestNewMissingTransform(t *testing.T) {
	_, err := follow.New(core.NewPath(hop(0, 0, 0), hop(-1, 0, 1)), flat)
	require.ErrorIs(t, err, follow.ErrMissingTransform)
}

func TestEmpty(t *testing.T) {
	p, err := follow.New(core.Path{}, flat)
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
	assert.Equal(t, core.Vec3{}, p.Get())
	_, ok := p.Endpoint()
	assert.False(t, ok)
	_, ok = p.Start()
	assert.False(t, ok)
}

func TestAppend(t *testing.T) {
	first, err := follow.New(core.NewPath(hop(0, 0, 0), hop(1, 0, 1)), flat)
	require.NoError(t, err)
	second, err := follow.New(core.NewPath(hop(1, 0, 0), hop(2, 0, 1)), flat)
	require.NoError(t, err)
	first.Incr(0.5)

	joined := first.Append(second)
	assert.Equal(t, 4, joined.Len())
	assert.InDelta(t, 0.5, joined.T(), 1e-9)
	start, _ := joined.Start()
	assert.Equal(t, core.Node{}, start)
	end, _ := joined.Endpoint()
	assert.Equal(t, core.Node{X: 2}, end)

	// An argument without an endpoint keeps the receiver's.
	kept := first.Append(follow.FromWaypoints(core.Vec3{X: 9}))
	end, ok := kept.Endpoint()
	require.True(t, ok)
	assert.Equal(t, core.Node{X: 1}, end)

	// The receiver is unchanged.
	assert.Equal(t, 2, first.Len())
}

func TestFoldFromEmpty(t *testing.T) {
	acc, err := follow.New(core.Path{}, flat)
	require.NoError(t, err)
	for _, src := range []core.Path{
		core.NewPath(hop(3, 3, 0)),
		core.Path{},
		core.NewPath(hop(3, 3, 0), hop(3, 4, 2)),
	} {
		next, err := follow.New(src, flat)
		require.NoError(t, err)
		acc = acc.Append(next)
	}
	assert.Equal(t, 3, acc.Len())
	_, ok := acc.Start()
	assert.False(t, ok, "start comes from the empty seed")
	end, ok := acc.Endpoint()
	require.True(t, ok)
	assert.Equal(t, core.Node{X: 3, Y: 4}, end)
}
