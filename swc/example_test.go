package swc_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/graphmesh/swc"
)

// ExampleParse reads a three-sample arbor.
func ExampleParse() {
	in := `# tiny arbor
1 1 0 0 0 2.0 -1
2 3 0 5 0 0.5 1
3 3 0 9 1 0.3 2
`
	g, err := swc.Parse(strings.NewReader(in))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Println(e.From, "->", e.To, e.Radius, e.Type)
	}

	// Output:
	// 2 -> 1 0.5 3
	// 3 -> 2 0.3 3
}
