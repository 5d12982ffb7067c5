// Package bkdtree implements a growing B-k-d tree (BKDT): an insert-only
// structure that amortizes repeated bulk-built static k-d trees (kdtree.KDT)
// via a logarithmic forest, the classic Bentley–Saxe transform.
//
// A BKDT holds a small base buffer of up to blockSize uncommitted inserts
// plus a sparse slots array; slots[k], when occupied, holds a frozen KDT of
// exactly blockSize*2^k items. On base overflow, the base and every
// occupied slot below the first empty one are concatenated into one new
// frozen tree and placed in that slot, emptying their predecessors:
//
//	slot 0 (B items) + slot 1 (2B) + ... + slot k-1 (2^(k-1)B) + base (B)
//	  = B*2^k items, placed at slot k
//
// Every query fans out over the base buffer (scanned linearly) and every
// occupied slot (a KDT traversal each), aggregating results per operation:
// union for Get/ForEach, min for NearestNeighbor, short-circuit OR for
// Contains. Queries run base-first, then slots in ascending order, except
// MetricBKDT.NearestNeighbor, which considers the slots before the base
// buffer.
//
// There is no deletion and no rebalancing; Insert is the only mutator.
// Concurrent structural mutation during a query is prevented by an
// enumeration counter — see Insert's doc comment.
//
// Complexity: amortized O(log^2 N / D) per Insert (the standard Bentley–Saxe
// bound), since an item participates in O(log N) merges and each merge
// rebuilds a tree in O(size log^2 size).
package bkdtree
