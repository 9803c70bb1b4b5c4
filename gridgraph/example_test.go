package gridgraph_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/graphmesh/gridgraph"
)

// ExampleRandomUnitSquare keeps every edge when the drop probability is 0.
func ExampleRandomUnitSquare() {
	g, mask, err := gridgraph.RandomUnitSquare(2, 0, rand.New(rand.NewSource(1)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.NodeCount(), g.EdgeCount(), len(mask))

	// Output:
	// 9 16 16
}
