package kdtree

import (
	"fmt"

	"github.com/katalvlaran/lvlath-kdindex/kdcore"
)

// MetricKDT specializes KDT with Euclidean nearest-neighbor search. It
// composes a *KDT rather than duplicating its fields — the metric
// capability is resolved once at construction (see kdcore.MetricComparable)
// rather than probed per call.
type MetricKDT struct {
	*KDT
}

// NewMetric builds a MetricKDT over dim dimensions from items.
//
// Errors: same as New.
func NewMetric(dim int, items []kdcore.MetricComparable, opts ...Option) (*MetricKDT, error) {
	plain := make([]kdcore.Comparable, len(items))
	for i, it := range items {
		plain[i] = it
	}
	base, err := New(dim, plain, opts...)
	if err != nil {
		return nil, fmt.Errorf("kdtree: NewMetric: %w", err)
	}

	return &MetricKDT{KDT: base}, nil
}

// NearestNeighbor returns the stored item of minimum Euclidean squared
// distance to q. found is false only when the tree is empty (which New
// disallows, so this can only happen on the zero-value MetricKDT).
//
// Ties are broken by first-found: the best is only replaced on a strictly
// smaller squared distance.
func (t *MetricKDT) NearestNeighbor(q kdcore.MetricComparable) (found bool, neighbor kdcore.MetricComparable, sqDist float64) {
	if t.KDT == nil || len(t.values) == 0 {
		return false, nil, 0
	}

	s := &nnSearch{tree: t.KDT, q: q, haveBest: false}
	s.search(0, len(t.values)-1, 0)

	return s.haveBest, s.best, s.bestSq
}

type nnSearch struct {
	tree     *KDT
	q        kdcore.MetricComparable
	best     kdcore.MetricComparable
	bestSq   float64
	haveBest bool
}

func (s *nnSearch) search(l, r, depth int) {
	m := (l + r) / 2
	s.tree.collector.IncNodesVisited(1)

	v := s.tree.values[m].(kdcore.MetricComparable)
	sq := kdcore.SquaredDistance(s.q, v, s.tree.dim)
	if !s.haveBest || sq < s.bestSq {
		s.best = v
		s.bestSq = sq
		s.haveBest = true
	}

	d := depth % s.tree.dim
	c := s.q.CompareDim(v, d)

	wasRight := false
	forceLeft := false

	if c != kdcore.LT && m+1 <= r {
		s.search(m+1, r, depth+1)
		wasRight = true
		planeSq := planeDistance(s.q, v, d)
		if !s.haveBest || planeSq < s.bestSq {
			forceLeft = true
		}
	}

	if c == kdcore.LT || (c == kdcore.EQ && s.tree.dirty[m]) || forceLeft {
		if l <= m-1 {
			s.search(l, m-1, depth+1)
		}
		if !wasRight {
			planeSq := planeDistance(s.q, v, d)
			if (!s.haveBest || planeSq < s.bestSq) && m+1 <= r {
				s.search(m+1, r, depth+1)
			} else {
				s.tree.collector.IncPlanesPruned(1)
			}
		}
	} else {
		s.tree.collector.IncPlanesPruned(1)
	}
}

// planeDistance is the squared perpendicular distance from q to the
// splitting hyperplane at v on dimension d, used to decide whether the
// far side of the split can be pruned.
func planeDistance(q kdcore.MetricComparable, v kdcore.MetricComparable, d int) float64 {
	diff := v.Coord(d) - q.Coord(d)

	return diff * diff
}
