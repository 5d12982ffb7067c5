package kdcore_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-kdindex/kdcore"
)

// point2 is a minimal two-dimensional MetricComparable used only to exercise
// kdcore in isolation from kdtree/bkdtree.
type point2 struct{ x, y float64 }

func (p point2) CompareDim(other kdcore.Comparable, d int) kdcore.Ordering {
	o := other.(point2)
	var a, b float64
	if d == 0 {
		a, b = p.x, o.x
	} else {
		a, b = p.y, o.y
	}
	switch {
	case a < b:
		return kdcore.LT
	case a > b:
		return kdcore.GT
	default:
		return kdcore.EQ
	}
}

func (p point2) Coord(d int) float64 {
	if d == 0 {
		return p.x
	}
	return p.y
}

func TestEqual(t *testing.T) {
	require.True(t, kdcore.Equal(point2{1, 2}, point2{1, 2}, 2))
	require.False(t, kdcore.Equal(point2{1, 2}, point2{1, 3}, 2))
}

func TestSquaredDistance(t *testing.T) {
	require.Equal(t, 2.0, kdcore.SquaredDistance(point2{0, 0}, point2{1, 1}, 2))
	require.Equal(t, 0.0, kdcore.SquaredDistance(point2{3, 4}, point2{3, 4}, 2))
}

func TestDimCompare_SortsByAxis(t *testing.T) {
	pts := []kdcore.Comparable{
		point2{3, 0}, point2{1, 9}, point2{2, 5},
	}
	sort.Slice(pts, func(i, j int) bool {
		return kdcore.DimCompare{Dim: 0}.Less(pts[i], pts[j])
	})
	require.Equal(t, point2{1, 9}, pts[0])
	require.Equal(t, point2{2, 5}, pts[1])
	require.Equal(t, point2{3, 0}, pts[2])

	// Sorting on dimension 1 gives a different order.
	sort.Slice(pts, func(i, j int) bool {
		return kdcore.DimCompare{Dim: 1}.Less(pts[i], pts[j])
	})
	require.Equal(t, point2{3, 0}, pts[0])
	require.Equal(t, point2{2, 5}, pts[1])
	require.Equal(t, point2{1, 9}, pts[2])
}

func TestDimCompare_Compare(t *testing.T) {
	c := kdcore.DimCompare{Dim: 0}
	require.Equal(t, kdcore.LT, c.Compare(point2{1, 0}, point2{2, 0}))
	require.Equal(t, kdcore.EQ, c.Compare(point2{2, 0}, point2{2, 5}))
	require.Equal(t, kdcore.GT, c.Compare(point2{3, 0}, point2{2, 0}))
}
