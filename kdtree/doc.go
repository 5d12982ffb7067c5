// Package kdtree implements a static, bulk-built k-d tree over items
// supplying kdcore.Comparable (KDT) or kdcore.MetricComparable (MetricKDT).
//
// The tree is built once, in place, on a single contiguous values slice: a
// recursive median-of-sort partition cycles the split dimension with depth
// (depth mod D) and never rebalances afterward. Construction, exact-match
// lookup, range iteration, and (for MetricKDT) nearest-neighbor search are
// the only operations; there is no Insert and no Remove.
//
// Duplicate handling — the "dirty bit":
//
// When the median of a subtree has duplicates on the split dimension, some
// of those duplicates may land to the left of the median after sorting.
// Every traversal that descends on equality along the split axis must also
// consider the left subtree, or it will silently miss those duplicates.
// Rather than relying on a particular sort's stability, each node records
// a dirty bit at construction time: set iff an item equal to the median on
// the split dimension was placed left of it. Get, ForEach, and
// NearestNeighbor all consult this bit instead of re-deriving it.
//
// Complexity:
//
//   - Construction: O(N log^2 N) (N log N per level of recursive sort,
//     O(log N) levels).
//   - Get / Contains / ForEach(key): O(log N) average, O(N) worst case
//     under heavy duplication on every split axis.
//   - ForEachInRange: O(sqrt(N) + k) average for a 2-D tree, generalizing to
//     O(N^(1-1/D) + k) for D dimensions, where k is the number of matches.
//   - NearestNeighbor: O(log N) average, O(N) worst case.
package kdtree
