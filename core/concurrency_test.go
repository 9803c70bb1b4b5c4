package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphmesh/core"
)

// TestGraph_ConcurrentAccess verifies that parallel writers and readers keep the
// arena consistent (run with -race).
func TestGraph_ConcurrentAccess(t *testing.T) {
	const workers = 8
	const perWorker = 50

	g := core.NewGraph()
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			base := w * perWorker
			for i := 0; i < perWorker; i++ {
				assert.NoError(t, g.AddNode(base+i, [3]float64{float64(i), float64(w), 0}))
				if i > 0 {
					_, err := g.AddEdge(base+i-1, base+i, 1)
					assert.NoError(t, err)
				}
				_ = g.Stats()
				_ = g.Edges()
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, g.NodeCount())
	assert.Equal(t, workers*(perWorker-1), g.EdgeCount())
	assert.NoError(t, g.Validate())
}
