package bkdtree

import (
	"github.com/katalvlaran/lvlath-kdindex/kdcore"
	"github.com/katalvlaran/lvlath-kdindex/kdtree"
)

// Callback is invoked once per matching item. Returning true cancels the
// fan-out across the base buffer and every slot immediately.
type Callback = kdtree.Callback

// Contains reports whether key matches any inserted item, scanning the
// base buffer first and then every occupied slot in ascending order,
// short-circuiting on the first match.
func (t *BKDT) Contains(key kdcore.Comparable) bool {
	found := false
	t.ForEach(key, func(kdcore.Comparable) bool {
		found = true
		return true
	})

	return found
}

// Get returns every inserted item equal to key on all dimensions.
func (t *BKDT) Get(key kdcore.Comparable) []kdcore.Comparable {
	var out []kdcore.Comparable
	t.ForEach(key, func(item kdcore.Comparable) bool {
		out = append(out, item)
		return false
	})

	return out
}

// ForEach visits every inserted item equal to key on all dimensions, base
// buffer first then every occupied slot in ascending order. It returns
// true iff cb requested cancellation.
func (t *BKDT) ForEach(key kdcore.Comparable, cb Callback) bool {
	t.enter()
	defer t.exit()
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, v := range t.base {
		if kdcore.Equal(key, v, t.dim) {
			if cb(v) {
				return true
			}
		}
	}
	for _, s := range t.slots {
		if s == nil {
			continue
		}
		if s.ForEach(key, cb) {
			return true
		}
	}

	return false
}

// GetAll returns every inserted item, base buffer first then every
// occupied slot in ascending order.
func (t *BKDT) GetAll() []kdcore.Comparable {
	var out []kdcore.Comparable
	t.ForEachAll(func(item kdcore.Comparable) bool {
		out = append(out, item)
		return false
	})

	return out
}

// ForEachAll visits every inserted item exactly once, base buffer first
// then every occupied slot in ascending order. It returns true iff cb
// requested cancellation.
func (t *BKDT) ForEachAll(cb Callback) bool {
	t.enter()
	defer t.exit()
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, v := range t.base {
		if cb(v) {
			return true
		}
	}
	for _, s := range t.slots {
		if s == nil {
			continue
		}
		if s.ForEachAll(cb) {
			return true
		}
	}

	return false
}
