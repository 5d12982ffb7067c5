package bkdtree_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-kdindex/bkdtree"
	"github.com/katalvlaran/lvlath-kdindex/kdbuilder"
	"github.com/katalvlaran/lvlath-kdindex/kdcore"
)

// TestMetricBKDT_Scenario5 covers spec boundary scenario 5:
// MetricBKDT(block=2), insert (0,0),(5,5),(1,1),(4,4); query (0.5,0.5):
// nearest is (0,0) with squared distance 0.5.
func TestMetricBKDT_Scenario5(t *testing.T) {
	tree, err := bkdtree.NewMetric(2, bkdtree.WithBlockSize(2))
	require.NoError(t, err)

	for _, p := range []kdbuilder.Point2D{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 1, Y: 1}, {X: 4, Y: 4}} {
		require.NoError(t, tree.Insert(p))
	}

	found, neighbor, sq := tree.NearestNeighbor(kdbuilder.Point2D{X: 0.5, Y: 0.5})
	require.True(t, found)
	require.Equal(t, kdbuilder.Point2D{X: 0, Y: 0}, neighbor)
	require.Equal(t, 0.5, sq)
}

func TestMetricBKDT_NearestNeighbor_MatchesBruteForce(t *testing.T) {
	tree, err := bkdtree.NewMetric(2, bkdtree.WithBlockSize(8))
	require.NoError(t, err)

	pts := kdbuilder.RandomPoints2D(150, 500, 17)
	for _, p := range pts {
		require.NoError(t, tree.Insert(p))
	}

	queries := kdbuilder.RandomPoints2D(15, 500, 31)
	for _, q := range queries {
		_, _, sq := tree.NearestNeighbor(q)

		wantSq := math.Inf(1)
		for _, p := range pts {
			d := kdcore.SquaredDistance(q, p, 2)
			if d < wantSq {
				wantSq = d
			}
		}
		require.InDelta(t, wantSq, sq, 1e-9)
	}
}

func TestMetricBKDT_RejectsInvalidDimension(t *testing.T) {
	_, err := bkdtree.NewMetric(0)
	require.ErrorIs(t, err, kdcore.ErrInvalidDimension)
}

func TestMetricBKDT_GetAll_MatchesInsertedMultiset(t *testing.T) {
	tree, err := bkdtree.NewMetric(2, bkdtree.WithBlockSize(3))
	require.NoError(t, err)
	pts := kdbuilder.RandomPoints2D(20, 10, 5)
	for _, p := range pts {
		require.NoError(t, tree.Insert(p))
	}

	all := tree.GetAll()
	require.Len(t, all, len(pts))
}

// TestMetricBKDT_ContainsAndGet covers the base read surface MetricBKDT
// shares with BKDT: exact-match lookup across the base buffer and every
// occupied slot, including a duplicate inserted after a merge cascade.
func TestMetricBKDT_ContainsAndGet(t *testing.T) {
	tree, err := bkdtree.NewMetric(2, bkdtree.WithBlockSize(2))
	require.NoError(t, err)

	p := kdbuilder.Point2D{X: 2, Y: 2}
	for _, v := range []kdbuilder.Point2D{{X: 0, Y: 0}, {X: 1, Y: 1}, p, p} {
		require.NoError(t, tree.Insert(v))
	}

	require.True(t, tree.Contains(p))
	require.False(t, tree.Contains(kdbuilder.Point2D{X: 9, Y: 9}))
	require.Len(t, tree.Get(p), 2)
}

// TestMetricBKDT_ForEachInRange covers the range-query surface MetricBKDT
// shares with BKDT, across a cascade of multiple slots plus the base
// buffer, checked against a brute-force filter.
func TestMetricBKDT_ForEachInRange(t *testing.T) {
	tree, err := bkdtree.NewMetric(2, bkdtree.WithBlockSize(4))
	require.NoError(t, err)

	pts := kdbuilder.RandomPoints2D(60, 100, 2024)
	for _, p := range pts {
		require.NoError(t, tree.Insert(p))
	}

	lo := kdbuilder.Point2D{X: 20, Y: 20}
	hi := kdbuilder.Point2D{X: 80, Y: 80}
	got := tree.GetRange(lo, hi, true)

	var want []kdcore.Comparable
	for _, p := range pts {
		if kdcore.InRange(2, p, lo, hi, true) {
			want = append(want, p)
		}
	}
	require.ElementsMatch(t, want, got)
}
