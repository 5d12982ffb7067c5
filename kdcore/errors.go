package kdcore

import "errors"

// Sentinel errors shared by kdtree and bkdtree. Callers should match them
// with errors.Is; package-level call sites wrap them with context via
// fmt.Errorf("<pkg>: <context>: %w", ...).
var (
	// ErrInvalidDimension is returned when D <= 0 is passed to a constructor.
	ErrInvalidDimension = errors.New("kdcore: dimension must be positive")

	// ErrEmptyItems is returned by KDT/MetricKDT construction with zero items.
	ErrEmptyItems = errors.New("kdcore: construction requires at least one item")

	// ErrNilItem is returned when a nil item is supplied where one is forbidden
	// (construction input or Insert). Query methods return no error and do
	// not check their key for nil.
	ErrNilItem = errors.New("kdcore: item is nil")

	// ErrInvalidBlockSize is returned when block_size < 2 is passed to a BKDT
	// constructor.
	ErrInvalidBlockSize = errors.New("kdcore: block size must be at least 2")

	// ErrCapacityExceeded is returned when a BKDT's slot cascade would need a
	// 33rd slot (N > block_size * 2^32: block_size * (2^32 - 1) items in the
	// slots plus a full base buffer).
	ErrCapacityExceeded = errors.New("kdcore: slot cascade capacity exceeded")

	// ErrConcurrentModification is returned by Insert when an enumeration
	// (a query that fans out lazily over base + slots) is in progress.
	ErrConcurrentModification = errors.New("kdcore: modification during enumeration")
)
