package branch_test

import (
	"fmt"

	"github.com/katalvlaran/graphmesh/branch"
	"github.com/katalvlaran/graphmesh/mesh"
)

// ExampleWalk colors a small fork and walks its long arm.
func ExampleWalk() {
	coords := [][3]float64{{0, 0, 0}, {1, 0, 0}, {2, 1, 0}, {2, -1, 0}, {3, -1, 0}}
	m, _ := mesh.New(coords, [][2]int{{0, 1}, {1, 2}, {1, 3}, {3, 4}})

	tg := branch.Extract(m)
	fmt.Println(tg.Colors, tg.Endpoints[3])

	verts, _ := branch.Walk(m, tg.Colors, 3)
	fmt.Println(verts)

	// Output:
	// [1 2 3 3] [1 4]
	// [1 3 4]
}
