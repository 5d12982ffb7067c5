package kdmetrics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-kdindex/kdmetrics"
)

// countingCollector is a trivial Collector used to verify call-through
// behavior from kdtree/bkdtree.
type countingCollector struct {
	visited, pruned, sizes int64
}

func (c *countingCollector) IncNodesVisited(n int64) { c.visited += n }
func (c *countingCollector) IncPlanesPruned(n int64) { c.pruned += n }
func (c *countingCollector) ObserveTreeSize(n int64) { c.sizes += n }

func TestNop_DoesNotPanic(t *testing.T) {
	c := kdmetrics.Nop()
	require.NotPanics(t, func() {
		c.IncNodesVisited(5)
		c.IncPlanesPruned(3)
		c.ObserveTreeSize(100)
	})
}

func TestCustomCollector_Accumulates(t *testing.T) {
	c := &countingCollector{}
	var collector kdmetrics.Collector = c
	collector.IncNodesVisited(2)
	collector.IncNodesVisited(3)
	collector.IncPlanesPruned(1)
	collector.ObserveTreeSize(7)

	require.Equal(t, int64(5), c.visited)
	require.Equal(t, int64(1), c.pruned)
	require.Equal(t, int64(7), c.sizes)
}
