// Package kdbuilder generates synthetic point sets for tests, benchmarks,
// and examples that exercise kdtree and bkdtree. It is not part of the
// index core: item/point types are explicitly out of scope for kdcore,
// kdtree, and bkdtree, and Point2D here is just one concrete, deliberately
// simple implementation of kdcore.MetricComparable used to drive them.
//
// Random generators always take an explicit seed or *rand.Rand, never the
// global math/rand source, so callers (and tests) get reproducible point
// sets.
package kdbuilder
