package builder_test

import (
	"fmt"

	"github.com/katalvlaran/graphmesh/builder"
)

// ExampleTree grows a three-generation bifurcation tree.
func ExampleTree() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1)},
		builder.Tree(3, builder.DefaultTreeParams()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s := g.Stats()
	fmt.Println(s.Nodes, s.Edges, s.Leaves, s.MaxRadius)

	// Output:
	// 8 7 5 0.5
}
