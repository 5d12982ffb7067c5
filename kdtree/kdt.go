package kdtree

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath-kdindex/kdcore"
	"github.com/katalvlaran/lvlath-kdindex/kdmetrics"
)

// KDT is a static k-d tree: built once from a bulk collection, immutable
// thereafter. Values live in a single contiguous slice reordered in place
// into a balanced layout; a parallel dirty bit per index records the
// duplicate-handling fact described in the package doc.
type KDT struct {
	dim       int
	values    []kdcore.Comparable
	dirty     []bool
	collector kdmetrics.Collector
}

// New builds a KDT over dim dimensions from items. items is copied into the
// tree's own storage and reordered; the caller's slice is left untouched.
//
// Errors: kdcore.ErrInvalidDimension if dim <= 0, kdcore.ErrEmptyItems if
// items is empty, kdcore.ErrNilItem if any item is nil.
func New(dim int, items []kdcore.Comparable, opts ...Option) (*KDT, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("kdtree: New: %w: dim=%d", kdcore.ErrInvalidDimension, dim)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("kdtree: New: %w", kdcore.ErrEmptyItems)
	}
	for i, it := range items {
		if it == nil {
			return nil, fmt.Errorf("kdtree: New: %w: index %d", kdcore.ErrNilItem, i)
		}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &KDT{
		dim:       dim,
		values:    append([]kdcore.Comparable(nil), items...),
		dirty:     make([]bool, len(items)),
		collector: cfg.collector,
	}
	t.build(0, len(t.values)-1, 0)
	t.collector.ObserveTreeSize(int64(len(t.values)))

	return t, nil
}

// Len returns the number of items stored in the tree.
func (t *KDT) Len() int {
	return len(t.values)
}

// Dim returns the dimension count the tree was built with.
func (t *KDT) Dim() int {
	return t.dim
}

// build recursively partitions values[l..r] on the split dimension for
// depth, setting the median's dirty bit, then recurses into both halves.
// Median choice is the floor (l+r)/2; findFirstEqual assumes this exact
// indexing.
func (t *KDT) build(l, r, depth int) {
	if l > r {
		return
	}
	d := depth % t.dim
	sortSegment(t.values, t.dirty, l, r, d)

	m := (l + r) / 2
	f := t.findFirstEqual(t.values[m], l, r, d)
	t.dirty[m] = f >= 0 && f < m

	if l <= m-1 {
		t.build(l, m-1, depth+1)
	}
	if m+1 <= r {
		t.build(m+1, r, depth+1)
	}
}

// findFirstEqual returns the least index i in [l, r] with
// values[i].CompareDim(key, d) == EQ, when values[l..r] (sorted on d) holds
// such an index. When it holds none, the result is -1 if the last probe
// sorted before key and the last probe's index otherwise; build only calls
// it with a key taken from [l, r]. It is a binary search that, on hitting
// EQ, recurses left to find the earliest equal index — see the package doc
// for why this matters.
func (t *KDT) findFirstEqual(key kdcore.Comparable, l, r, d int) int {
	var c kdcore.Ordering
	var m int
	for r >= l {
		m = (l + r) / 2
		c = key.CompareDim(t.values[m], d)
		switch c {
		case kdcore.LT:
			if r == m {
				// Narrowed as far as possible without finding EQ on this
				// side; fall through to the post-loop return below, which
				// this call's caller (the EQ branch one level up) only
				// consults when this range was non-empty.
				r = m - 1 // force loop exit via r < l
			} else {
				r = m
			}
		case kdcore.GT:
			l = m + 1
		default: // EQ
			i := t.findFirstEqual(key, l, m-1, d)
			if i >= l && i <= m-1 {
				return i
			}
			return m
		}
	}
	if c == kdcore.GT {
		return -1
	}

	return m
}

// sortSegment sorts values[l..r] by comparison on dimension d, permuting
// dirty[l..r] in lockstep so each dirty bit stays attached to its value.
// Stability is not required: the dirty-bit mechanism set by build
// compensates for any placement a non-stable sort produces.
func sortSegment(values []kdcore.Comparable, dirty []bool, l, r, d int) {
	seg := dimSegment{values: values[l : r+1], dirty: dirty[l : r+1], dim: d}
	sort.Sort(seg)
}

// dimSegment adapts a values/dirty pair into sort.Interface ordered by one
// dimension, used only during build.
type dimSegment struct {
	values []kdcore.Comparable
	dirty  []bool
	dim    int
}

func (s dimSegment) Len() int { return len(s.values) }
func (s dimSegment) Less(i, j int) bool {
	return s.values[i].CompareDim(s.values[j], s.dim) == kdcore.LT
}
func (s dimSegment) Swap(i, j int) {
	s.values[i], s.values[j] = s.values[j], s.values[i]
	s.dirty[i], s.dirty[j] = s.dirty[j], s.dirty[i]
}
