package bkdtree

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/lvlath-kdindex/kdcore"
	"github.com/katalvlaran/lvlath-kdindex/kdmetrics"
	"github.com/katalvlaran/lvlath-kdindex/kdtree"
)

// MetricBKDT is the growing counterpart to kdtree.MetricKDT: the same
// Bentley–Saxe cascade as BKDT, but every slot holds a frozen
// *kdtree.MetricKDT so NearestNeighbor can be served without re-deriving
// the metric capability per query.
//
// MetricBKDT does not embed BKDT: its slots hold a different leaf type, so
// the cascade bookkeeping (base, slots, count, enumCount) is duplicated
// here rather than shared through composition, matching how MetricKDT
// composes *KDT directly instead of reimplementing it — here the reverse
// is true, and duplication is the simpler, clearer choice.
type MetricBKDT struct {
	dim       int
	blockSize int
	collector kdmetrics.Collector

	mu        sync.RWMutex
	base      []kdcore.MetricComparable
	slots     []*kdtree.MetricKDT
	count     int
	enumCount int32
}

// NewMetric builds an empty MetricBKDT over dim dimensions.
//
// Errors: same as New.
func NewMetric(dim int, opts ...Option) (*MetricBKDT, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("bkdtree: NewMetric: %w: dim=%d", kdcore.ErrInvalidDimension, dim)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.blockSize < 2 {
		return nil, fmt.Errorf("bkdtree: NewMetric: %w: block_size=%d", kdcore.ErrInvalidBlockSize, cfg.blockSize)
	}

	return &MetricBKDT{
		dim:       dim,
		blockSize: cfg.blockSize,
		collector: cfg.collector,
		base:      make([]kdcore.MetricComparable, 0, cfg.blockSize),
	}, nil
}

// Count returns the total number of items inserted.
func (t *MetricBKDT) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.count
}

// Dim returns the dimension count the tree was built with.
func (t *MetricBKDT) Dim() int {
	return t.dim
}

// Insert appends value to the structure. See BKDT.Insert for the error
// conditions and the enumeration-guard discipline, which apply identically
// here.
func (t *MetricBKDT) Insert(value kdcore.MetricComparable) error {
	if value == nil {
		return fmt.Errorf("bkdtree: Insert: %w", kdcore.ErrNilItem)
	}
	if atomic.LoadInt32(&t.enumCount) != 0 {
		return fmt.Errorf("bkdtree: Insert: %w", kdcore.ErrConcurrentModification)
	}
	if !t.mu.TryLock() {
		return fmt.Errorf("bkdtree: Insert: %w", kdcore.ErrConcurrentModification)
	}
	defer t.mu.Unlock()

	if len(t.base) >= t.blockSize {
		if err := t.mergeCascade(); err != nil {
			return err
		}
	}
	t.base = append(t.base, value)
	t.count++

	return nil
}

func (t *MetricBKDT) mergeCascade() error {
	k0 := 0
	for k0 < len(t.slots) && t.slots[k0] != nil {
		k0++
	}
	if k0 >= MaxSlotIndex {
		return fmt.Errorf("bkdtree: Insert: %w: slot %d", kdcore.ErrCapacityExceeded, k0)
	}

	size := t.blockSize << uint(k0)
	items := make([]kdcore.MetricComparable, 0, size)
	items = append(items, t.base...)
	for i := 0; i < k0; i++ {
		for _, v := range t.slots[i].GetAll() {
			items = append(items, v.(kdcore.MetricComparable))
		}
		t.slots[i] = nil
	}

	leaf, err := kdtree.NewMetric(t.dim, items, kdtree.WithMetricsCollector(t.collector))
	if err != nil {
		return fmt.Errorf("bkdtree: Insert: merge build: %w", err)
	}

	if k0 == len(t.slots) {
		t.slots = append(t.slots, leaf)
	} else {
		t.slots[k0] = leaf
	}
	t.base = t.base[:0]

	return nil
}

// GetAll returns every inserted MetricComparable item, base buffer first
// then every occupied slot in ascending order. MetricBKDT's items are
// known to be MetricComparable (Insert requires it), so this avoids the
// kdcore.Comparable round-trip a generic GetAll would need.
func (t *MetricBKDT) GetAll() []kdcore.MetricComparable {
	t.enter()
	defer t.exit()
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]kdcore.MetricComparable, 0, t.count)
	out = append(out, t.base...)
	for _, s := range t.slots {
		if s == nil {
			continue
		}
		for _, v := range s.GetAll() {
			out = append(out, v.(kdcore.MetricComparable))
		}
	}

	return out
}

// Contains reports whether key matches any inserted item, scanning the
// base buffer first and then every occupied slot in ascending order,
// short-circuiting on the first match.
func (t *MetricBKDT) Contains(key kdcore.Comparable) bool {
	found := false
	t.ForEach(key, func(kdcore.Comparable) bool {
		found = true
		return true
	})

	return found
}

// Get returns every inserted item equal to key on all dimensions.
func (t *MetricBKDT) Get(key kdcore.Comparable) []kdcore.Comparable {
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
func (t *MetricBKDT) ForEach(key kdcore.Comparable, cb Callback) bool {
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

// ForEachAll visits every inserted item exactly once, base buffer first
// then every occupied slot in ascending order. It returns true iff cb
// requested cancellation.
func (t *MetricBKDT) ForEachAll(cb Callback) bool {
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

// ForEachInRange visits every inserted item v satisfying lo <= v and (v <=
// hi if hiInclusive else v < hi) — see kdtree.KDT.ForEachInRange for the
// exact per-dimension bound semantics. Either bound may be nil. If both
// bounds are present and lo is greater than hi on any dimension,
// ForEachInRange visits nothing and returns false.
//
// It returns true iff cb requested cancellation.
func (t *MetricBKDT) ForEachInRange(cb Callback, lo, hi kdcore.Comparable, hiInclusive bool) bool {
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
func (t *MetricBKDT) GetRange(lo, hi kdcore.Comparable, hiInclusive bool) []kdcore.Comparable {
	var out []kdcore.Comparable
	t.ForEachInRange(func(item kdcore.Comparable) bool {
		out = append(out, item)
		return false
	}, lo, hi, hiInclusive)

	return out
}

// NearestNeighbor returns the inserted item of minimum Euclidean squared
// distance to q, taking the minimum over the base buffer (scanned
// linearly) and every occupied slot's own NearestNeighbor. Ties are broken
// by first-found: strict improvement is required to replace the current
// best. Slots are considered before the base buffer — they hold the
// older, already-settled data, so a tie resolves in favor of the
// longest-standing candidate rather than the most recently inserted one.
func (t *MetricBKDT) NearestNeighbor(q kdcore.MetricComparable) (found bool, neighbor kdcore.MetricComparable, sqDist float64) {
	t.enter()
	defer t.exit()
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, s := range t.slots {
		if s == nil {
			continue
		}
		if ok, n, sq := s.NearestNeighbor(q); ok {
			if !found || sq < sqDist {
				found, neighbor, sqDist = true, n, sq
			}
		}
	}
	for _, v := range t.base {
		sq := kdcore.SquaredDistance(q, v, t.dim)
		if !found || sq < sqDist {
			found, neighbor, sqDist = true, v, sq
		}
	}

	return found, neighbor, sqDist
}

func (t *MetricBKDT) enter() { atomic.AddInt32(&t.enumCount, 1) }
func (t *MetricBKDT) exit()  { atomic.AddInt32(&t.enumCount, -1) }
