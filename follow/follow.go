package follow

import (
	"fmt"
	"math"

	"github.com/scifi6546/ski-tycoon-v2/core"
)

// Path is a trajectory along world-space waypoints. The zero value is an
// empty trajectory with no start and no endpoint.
type Path struct {
	waypoints []core.Vec3
	start     core.Node
	hasStart  bool
	endpoint  core.Node
	hasEnd    bool
	t         float64
}

// New places every hop of p on terrain. The clock starts at 0.
func New(p core.Path, terrain Terrain) (*Path, error) {
	hops := p.Hops()
	fp := &Path{waypoints: make([]core.Vec3, 0, len(hops))}
	for _, h := range hops {
		v, ok := terrain.Transform(h.Node)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingTransform, h.Node)
		}
		fp.waypoints = append(fp.waypoints, v)
	}
	fp.start, fp.hasStart = p.Start()
	fp.endpoint, fp.hasEnd = p.Endpoint()

	return fp, nil
}

// FromWaypoints builds a trajectory directly from world positions. It has
// no grid start or endpoint.
func FromWaypoints(waypoints ...core.Vec3) *Path {
	out := make([]core.Vec3, len(waypoints))
	copy(out, waypoints)

	return &Path{waypoints: out}
}

// Incr advances the clock by dt. Negative dt is ignored.
func (p *Path) Incr(dt float64) {
	if dt > 0 {
		p.t += dt
	}
}

// T returns the current clock value.
func (p *Path) T() float64 { return p.t }

// Get samples the position at the current clock. An empty trajectory
// yields the zero vector.
func (p *Path) Get() core.Vec3 {
	n := len(p.waypoints)
	if n == 0 {
		return core.Vec3{}
	}
	t0 := math.Floor(p.t)
	if t0 >= float64(n) {
		return p.waypoints[n-1]
	}
	i := int(t0)
	if i+1 >= n {
		return p.waypoints[i]
	}

	return p.waypoints[i].Lerp(p.waypoints[i+1], float32(p.t-t0))
}

// AtEnd reports whether the clock has passed the waypoint count.
func (p *Path) AtEnd() bool { return p.t > float64(len(p.waypoints)) }

// Start returns the first grid node of the source path, if known.
func (p *Path) Start() (core.Node, bool) { return p.start, p.hasStart }

// Endpoint returns the last grid node of the source path, if known.
func (p *Path) Endpoint() (core.Node, bool) { return p.endpoint, p.hasEnd }

// Append returns p followed by o. The result keeps p's clock and start; its
// endpoint is o's when o has one, otherwise p's.
func (p *Path) Append(o *Path) *Path {
	out := &Path{
		waypoints: make([]core.Vec3, 0, len(p.waypoints)+o.Len()),
		start:     p.start,
		hasStart:  p.hasStart,
		endpoint:  p.endpoint,
		hasEnd:    p.hasEnd,
		t:         p.t,
	}
	out.waypoints = append(out.waypoints, p.waypoints...)
	if o == nil {
		return out
	}
	out.waypoints = append(out.waypoints, o.waypoints...)
	if o.hasEnd {
		out.endpoint, out.hasEnd = o.endpoint, true
	}

	return out
}

// Len returns the number of waypoints.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}

	return len(p.waypoints)
}

// IsEmpty reports whether there are no waypoints.
func (p *Path) IsEmpty() bool { return p.Len() == 0 }

// Waypoints returns a copy of the world positions.
func (p *Path) Waypoints() []core.Vec3 {
	out := make([]core.Vec3, len(p.waypoints))
	copy(out, p.waypoints)

	return out
}
