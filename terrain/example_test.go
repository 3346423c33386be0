package terrain_test

import (
	"fmt"
	"strings"

	"github.com/scifi6546/ski-tycoon-v2/core"
	"github.com/scifi6546/ski-tycoon-v2/terrain"
)

// ExampleFromPGM loads a two-tile slope and inspects its grid weights.
func ExampleFromPGM() {
	src := `P2
# two tiles along x
2 1
255
30 10
`
	tr, err := terrain.FromPGM(strings.NewReader(src), 0.1)
	if err != nil {
		fmt.Println(err)
		return
	}
	g, _ := tr.BuildGraph(terrain.DefaultCosts())
	top, _ := g.Cell(core.Node{})
	bottom, _ := g.Cell(core.Node{X: 1})
	fmt.Println("down:", top.XPlus)
	fmt.Println("up:", bottom.XMinus)
	// Output:
	// down: Some(200)
	// up: Some(20)
}
