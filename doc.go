// Package kdindex is a small family of multidimensional indexes over
// arbitrary user-supplied items: a static k-d tree for bulk-built
// collections, and a growing B-k-d tree that amortizes repeated bulk
// rebuilds via a Bentley–Saxe forest of frozen trees.
//
// What's here:
//
//	A pure-Go library built around two capabilities an item must supply:
//
//	  - Per-dimension comparison (kdcore.Comparable), for ordering and
//	    exact-match / range queries.
//	  - Per-dimension scalar coordinates (kdcore.MetricComparable), for
//	    Euclidean nearest-neighbor search.
//
// Why it looks the way it does:
//
//   - Static and growing variants share one query discipline — the
//     dirty-bit duplicate fix described in kdtree's package doc — rather
//     than two divergent implementations.
//   - No rebalancing, no deletion: the growing tree amortizes inserts by
//     rebuilding, never by restructuring in place.
//   - Observability is an interface (kdmetrics.Collector), not a hard
//     dependency: wire in whatever counters your service already uses.
//
// Organized under five subpackages:
//
//	kdcore/     — item capability contracts, per-axis comparator, sentinel errors
//	kdtree/     — KDT and MetricKDT, the static bulk-built tree
//	bkdtree/    — BKDT and MetricBKDT, the insert-only growing forest
//	kdmetrics/  — optional counters collector interface
//	kdbuilder/  — synthetic point generators for tests, benchmarks, and examples
//
//	go get github.com/katalvlaran/lvlath-kdindex
package kdindex
