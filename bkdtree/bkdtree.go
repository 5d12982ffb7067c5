package bkdtree

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/lvlath-kdindex/kdcore"
	"github.com/katalvlaran/lvlath-kdindex/kdmetrics"
	"github.com/katalvlaran/lvlath-kdindex/kdtree"
)

// BKDT is a growing, insert-only B-k-d tree. See the package doc for the
// Bentley–Saxe cascade it maintains.
type BKDT struct {
	dim       int
	blockSize int
	collector kdmetrics.Collector

	// mu guards base, slots, and count. enumCount is a separate atomic
	// signal so queries never block each other, and Insert fails fast
	// (TryLock) instead of waiting behind an in-flight enumeration.
	mu        sync.RWMutex
	base      []kdcore.Comparable
	slots     []*kdtree.KDT // slots[k] == nil means unoccupied
	count     int
	enumCount int32
}

// New builds an empty BKDT over dim dimensions.
//
// Errors: kdcore.ErrInvalidDimension if dim <= 0, kdcore.ErrInvalidBlockSize
// if the configured block size is < 2.
func New(dim int, opts ...Option) (*BKDT, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("bkdtree: New: %w: dim=%d", kdcore.ErrInvalidDimension, dim)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.blockSize < 2 {
		return nil, fmt.Errorf("bkdtree: New: %w: block_size=%d", kdcore.ErrInvalidBlockSize, cfg.blockSize)
	}

	return &BKDT{
		dim:       dim,
		blockSize: cfg.blockSize,
		collector: cfg.collector,
		base:      make([]kdcore.Comparable, 0, cfg.blockSize),
	}, nil
}

// Count returns the total number of items inserted.
func (t *BKDT) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.count
}

// Dim returns the dimension count the tree was built with.
func (t *BKDT) Dim() int {
	return t.dim
}

// Insert appends value to the structure, amortizing via the Bentley–Saxe
// cascade described in the package doc when the base buffer overflows.
//
// Errors: kdcore.ErrNilItem if value is nil; kdcore.ErrConcurrentModification
// if a query (ForEach/ForEachInRange/GetAll/NearestNeighbor, including one
// suspended mid-callback on this same goroutine) is in progress;
// kdcore.ErrCapacityExceeded if the cascade would need a slot beyond
// MaxSlotIndex.
func (t *BKDT) Insert(value kdcore.Comparable) error {
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

// mergeCascade collects the base buffer and every occupied slot below the
// first empty slot index k0 into one new frozen KDT at slots[k0], clearing
// its predecessors and the base buffer. Caller must hold mu.
func (t *BKDT) mergeCascade() error {
	k0 := 0
	for k0 < len(t.slots) && t.slots[k0] != nil {
		k0++
	}
	if k0 >= MaxSlotIndex {
		return fmt.Errorf("bkdtree: Insert: %w: slot %d", kdcore.ErrCapacityExceeded, k0)
	}

	size := t.blockSize << uint(k0)
	items := make([]kdcore.Comparable, 0, size)
	items = append(items, t.base...)
	for i := 0; i < k0; i++ {
		items = append(items, t.slots[i].GetAll()...)
		t.slots[i] = nil
	}

	leaf, err := kdtree.New(t.dim, items, t.leafOptions()...)
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

func (t *BKDT) leafOptions() []kdtree.Option {
	return []kdtree.Option{kdtree.WithMetricsCollector(t.collector)}
}

func (t *BKDT) enter() { atomic.AddInt32(&t.enumCount, 1) }
func (t *BKDT) exit()  { atomic.AddInt32(&t.enumCount, -1) }
