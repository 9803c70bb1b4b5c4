package orient_test

import (
	"fmt"

	"github.com/katalvlaran/graphmesh/branch"
	"github.com/katalvlaran/graphmesh/mesh"
	"github.com/katalvlaran/graphmesh/orient"
)

// ExampleResolve labels the ends of a bent segment whose cells were stored
// in opposite directions.
func ExampleResolve() {
	coords := [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}
	m, _ := mesh.New(coords, [][2]int{{1, 0}, {1, 2}})

	tg := branch.Extract(m)
	tau, _ := orient.WalkTangents(m, tg)
	res, _ := orient.Resolve(m, tg.Colors, tau)

	fmt.Println("inlets:", res[1].Inlets(), "outlets:", res[1].Outlets())

	// Output:
	// inlets: [0] outlets: [2]
}
