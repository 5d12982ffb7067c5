package kdtree

import "github.com/katalvlaran/lvlath-kdindex/kdcore"

// ForEachInRange visits every stored item v satisfying lo <= v and (v <= hi
// if hiInclusive else v < hi), calling cb for each. Either bound may be nil
// to leave that side unconstrained. Bounds are compared dimension by
// dimension: v satisfies lo <= v iff CompareDim(v, lo, d) >= 0 for every d,
// and v <= hi iff CompareDim(v, hi, d) <= 0 for every d (< 0 when
// hiInclusive is false).
//
// If both bounds are present and lo is greater than hi on any dimension,
// ForEachInRange visits nothing and returns false.
//
// It returns true iff cb requested cancellation.
func (t *KDT) ForEachInRange(cb Callback, lo, hi kdcore.Comparable, hiInclusive bool) bool {
	if len(t.values) == 0 {
		return false
	}
	if lo != nil && hi != nil {
		for d := 0; d < t.dim; d++ {
			if lo.CompareDim(hi, d) == kdcore.GT {
				return false
			}
		}
	}

	return t.visitRange(lo, hi, hiInclusive, 0, len(t.values)-1, 0, cb)
}

// GetRange returns every stored item in [lo, hi] (or [lo, hi) when
// hiInclusive is false).
func (t *KDT) GetRange(lo, hi kdcore.Comparable, hiInclusive bool) []kdcore.Comparable {
	var out []kdcore.Comparable
	t.ForEachInRange(func(item kdcore.Comparable) bool {
		out = append(out, item)
		return false
	}, lo, hi, hiInclusive)

	return out
}

func (t *KDT) visitRange(lo, hi kdcore.Comparable, hiInclusive bool, l, r, depth int, cb Callback) bool {
	m := (l + r) / 2
	t.collector.IncNodesVisited(1)

	if kdcore.InRange(t.dim, t.values[m], lo, hi, hiInclusive) {
		if cb(t.values[m]) {
			return true
		}
	}

	d := depth % t.dim

	var cHi kdcore.Ordering
	hasHi := hi != nil
	if hasHi {
		cHi = hi.CompareDim(t.values[m], d)
	}
	var cLo kdcore.Ordering
	hasLo := lo != nil
	if hasLo {
		cLo = lo.CompareDim(t.values[m], d)
	}

	// Right half may contain keys <= hi on d.
	if (!hasHi || cHi != kdcore.LT) && m+1 <= r {
		if t.visitRange(lo, hi, hiInclusive, m+1, r, depth+1, cb) {
			return true
		}
	} else if hasHi {
		t.collector.IncPlanesPruned(1)
	}

	// Left half may contain keys >= lo on d; the dirty clause catches
	// duplicates equal to hi on d that live left of m.
	if (!hasLo || cLo != kdcore.GT) || (t.dirty[m] && hasHi && cHi == kdcore.EQ) {
		if l <= m-1 {
			if t.visitRange(lo, hi, hiInclusive, l, m-1, depth+1, cb) {
				return true
			}
		}
	} else if hasLo {
		t.collector.IncPlanesPruned(1)
	}

	return false
}
