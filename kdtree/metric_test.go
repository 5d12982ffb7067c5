package kdtree_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-kdindex/kdbuilder"
	"github.com/katalvlaran/lvlath-kdindex/kdcore"
	"github.com/katalvlaran/lvlath-kdindex/kdtree"
)

func metricPoints(pts ...kdbuilder.Point2D) []kdcore.MetricComparable {
	out := make([]kdcore.MetricComparable, len(pts))
	for i, p := range pts {
		out[i] = p
	}

	return out
}

// TestMetricKDT_Scenario4 covers spec boundary scenario 4: D=2, points
// {(0,0),(10,10),(3,4)}, query (1,1); nearest_neighbor returns (0,0) with
// squared distance 2.
func TestMetricKDT_Scenario4(t *testing.T) {
	tree, err := kdtree.NewMetric(2, metricPoints(
		kdbuilder.Point2D{X: 0, Y: 0},
		kdbuilder.Point2D{X: 10, Y: 10},
		kdbuilder.Point2D{X: 3, Y: 4},
	))
	require.NoError(t, err)

	found, neighbor, sq := tree.NearestNeighbor(kdbuilder.Point2D{X: 1, Y: 1})
	require.True(t, found)
	require.Equal(t, kdbuilder.Point2D{X: 0, Y: 0}, neighbor)
	require.Equal(t, 2.0, sq)
}

func TestMetricKDT_NearestNeighbor_MatchesBruteForce(t *testing.T) {
	pts := kdbuilder.RandomPoints2D(200, 1000, 7)
	tree, err := kdtree.NewMetric(2, metricPointsFromSlice(pts))
	require.NoError(t, err)

	queries := kdbuilder.RandomPoints2D(20, 1000, 99)
	for _, q := range queries {
		_, neighbor, sq := tree.NearestNeighbor(q)

		wantSq := math.Inf(1)
		for _, p := range pts {
			d := kdcore.SquaredDistance(q, p, 2)
			if d < wantSq {
				wantSq = d
			}
		}
		require.InDelta(t, wantSq, sq, 1e-9)
		require.InDelta(t, wantSq, kdcore.SquaredDistance(q, neighbor, 2), 1e-9)
	}
}

func metricPointsFromSlice(pts []kdbuilder.Point2D) []kdcore.MetricComparable {
	out := make([]kdcore.MetricComparable, len(pts))
	for i, p := range pts {
		out[i] = p
	}

	return out
}
