package kdbuilder

import "math/rand"

// GridPoints2D returns an nx*ny lattice of Point2D at integer coordinates
// (0,0) through (nx-1, ny-1). Useful for deterministic range-query fixtures.
func GridPoints2D(nx, ny int) []Point2D {
	pts := make([]Point2D, 0, nx*ny)
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			pts = append(pts, Point2D{X: float64(x), Y: float64(y)})
		}
	}

	return pts
}

// RandomPoints2D returns n uniformly random Point2D with coordinates in
// [0, bound), seeded deterministically by seed so repeated calls with the
// same arguments reproduce the same point set.
func RandomPoints2D(n int, bound float64, seed int64) []Point2D {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]Point2D, n)
	for i := range pts {
		pts[i] = Point2D{X: rng.Float64() * bound, Y: rng.Float64() * bound}
	}

	return pts
}

// WithDuplicates returns a copy of pts with each point repeated times times,
// interleaved round-robin (not grouped), useful for exercising the
// dirty-bit duplicate-handling discipline under a reproducible shape.
func WithDuplicates(pts []Point2D, times int) []Point2D {
	out := make([]Point2D, 0, len(pts)*times)
	for i := 0; i < times; i++ {
		out = append(out, pts...)
	}

	return out
}
