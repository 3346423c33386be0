package planner

import (
	"fmt"

	"github.com/scifi6546/ski-tycoon-v2/core"
)

// DecisionInfo is the printable summary of one Decision.
type DecisionInfo struct {
	Name    string    `json:"name"`
	Cost    Number    `json:"cost"`
	PathLen int       `json:"pathLen"`
	Start   core.Node `json:"start"`
	End     core.Node `json:"end"`
}

// String renders "name: cost, path len: n, start: (x, y), end: (x, y)".
func (i DecisionInfo) String() string {
	return fmt.Sprintf("%s: %s, path len: %d, start: %s, end: %s", i.Name, i.Cost, i.PathLen, i.Start, i.End)
}

// Summarize describes each decision. A decision without a path starts and
// ends at its endpoint.
func Summarize(decisions []Decision) []DecisionInfo {
	out := make([]DecisionInfo, len(decisions))
	for i, d := range decisions {
		start, pathLen := d.Endpoint, 0
		if d.Path != nil {
			if s, ok := d.Path.Start(); ok {
				start = s
			}
			pathLen = d.Path.Len()
		}
		out[i] = DecisionInfo{
			Name:    d.Name,
			Cost:    d.Cost,
			PathLen: pathLen,
			Start:   start,
			End:     d.Endpoint,
		}
	}

	return out
}
