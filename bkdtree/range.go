package bkdtree

import "github.com/katalvlaran/lvlath-kdindex/kdcore"

// ForEachInRange visits every inserted item v satisfying lo <= v and (v <=
// hi if hiInclusive else v < hi) — see kdtree.KDT.ForEachInRange for the
// exact per-dimension bound semantics. Either bound may be nil. If both
// bounds are present and lo is greater than hi on any dimension,
// ForEachInRange visits nothing and returns false; this pre-check applies
// per call, independent of what any individual slot would otherwise find.
//
// It returns true iff cb requested cancellation.
func (t *BKDT) ForEachInRange(cb Callback, lo, hi kdcore.Comparable, hiInclusive bool) bool {
	if lo != nil && hi != nil {
		for d := 0; d < t.dim; d++ {
			if lo.CompareDim(hi, d) == kdcore.GT {
				return false
			}
		}
	}

	t.enter()
	defer t.exit()
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, v := range t.base {
		if kdcore.InRange(t.dim, v, lo, hi, hiInclusive) {
			if cb(v) {
				return true
			}
		}
	}
	for _, s := range t.slots {
		if s == nil {
			continue
		}
		if s.ForEachInRange(cb, lo, hi, hiInclusive) {
			return true
		}
	}

	return false
}

// GetRange returns every inserted item in [lo, hi] (or [lo, hi) when
// hiInclusive is false).
func (t *BKDT) GetRange(lo, hi kdcore.Comparable, hiInclusive bool) []kdcore.Comparable {
	var out []kdcore.Comparable
	t.ForEachInRange(func(item kdcore.Comparable) bool {
		out = append(out, item)
		return false
	}, lo, hi, hiInclusive)

	return out
}
