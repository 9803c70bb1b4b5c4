package coloring_test

import (
	"fmt"

	"github.com/katalvlaran/graphmesh/branch"
	"github.com/katalvlaran/graphmesh/coloring"
	"github.com/katalvlaran/graphmesh/mesh"
)

// ExampleReduce recolors a star of four arms with a disjoint segment.
func ExampleReduce() {
	coords := [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {-1, 0, 0}, {0, -1, 0}, {5, 5, 0}, {6, 5, 0}}
	m, _ := mesh.New(coords, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {5, 6}})

	tg := branch.Extract(m)
	out, _ := coloring.Reduce(m, tg.Colors, tg.Endpoints)
	fmt.Println(tg.Colors, "->", out)

	// Output:
	// [1 2 3 4 5] -> [1 2 3 4 1]
}
