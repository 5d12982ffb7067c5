package kdtree

import "github.com/katalvlaran/lvlath-kdindex/kdcore"

// Callback is invoked once per matching item during ForEach/ForEachInRange.
// Returning true cancels the traversal immediately; ForEach then returns
// true.
type Callback func(item kdcore.Comparable) (cancel bool)

// Contains reports whether key matches any stored item on every dimension.
// Complexity: O(log N) average.
func (t *KDT) Contains(key kdcore.Comparable) bool {
	found := false
	t.ForEach(key, func(kdcore.Comparable) bool {
		found = true
		return true // short-circuit on first match
	})

	return found
}

// Get returns every stored item equal to key on all dimensions.
// Complexity: O(log N + k) where k is the number of matches.
func (t *KDT) Get(key kdcore.Comparable) []kdcore.Comparable {
	var out []kdcore.Comparable
	t.ForEach(key, func(item kdcore.Comparable) bool {
		out = append(out, item)
		return false
	})

	return out
}

// ForEach visits every stored item equal to key on all dimensions, calling
// cb for each. It returns true iff cb requested cancellation.
//
// The dirty-bit-gated left descent on equality is the correctness-critical
// rule here: without it, duplicates buried left of a median are missed.
func (t *KDT) ForEach(key kdcore.Comparable, cb Callback) bool {
	if len(t.values) == 0 {
		return false
	}

	return t.visitEqual(key, 0, len(t.values)-1, 0, cb)
}

func (t *KDT) visitEqual(key kdcore.Comparable, l, r, depth int, cb Callback) bool {
	m := (l + r) / 2
	t.collector.IncNodesVisited(1)

	if kdcore.Equal(key, t.values[m], t.dim) {
		if cb(t.values[m]) {
			return true
		}
	}

	d := depth % t.dim
	c := key.CompareDim(t.values[m], d)

	if c != kdcore.LT && m+1 <= r {
		if t.visitEqual(key, m+1, r, depth+1, cb) {
			return true
		}
	} else {
		t.collector.IncPlanesPruned(1)
	}

	if c == kdcore.LT || (c == kdcore.EQ && t.dirty[m]) {
		if l <= m-1 {
			if t.visitEqual(key, l, m-1, depth+1, cb) {
				return true
			}
		}
	} else {
		t.collector.IncPlanesPruned(1)
	}

	return false
}

// GetAll returns every stored item, in the tree's internal traversal
// order (deterministic, not sorted).
func (t *KDT) GetAll() []kdcore.Comparable {
	var out []kdcore.Comparable
	t.ForEachAll(func(item kdcore.Comparable) bool {
		out = append(out, item)
		return false
	})

	return out
}

// ForEachAll visits every stored item exactly once, in internal traversal
// order. It returns true iff cb requested cancellation.
func (t *KDT) ForEachAll(cb Callback) bool {
	if len(t.values) == 0 {
		return false
	}

	return t.visitAll(0, len(t.values)-1, cb)
}

func (t *KDT) visitAll(l, r int, cb Callback) bool {
	if l > r {
		return false
	}
	m := (l + r) / 2
	t.collector.IncNodesVisited(1)
	if cb(t.values[m]) {
		return true
	}
	if t.visitAll(l, m-1, cb) {
		return true
	}

	return t.visitAll(m+1, r, cb)
}
