package kdbuilder

import "github.com/katalvlaran/lvlath-kdindex/kdcore"

// Point2D is a simple two-dimensional item implementing both
// kdcore.Comparable and kdcore.MetricComparable, used by this package's
// generators and by kdtree/bkdtree's own tests and examples.
type Point2D struct {
	X, Y float64
}

var (
	_ kdcore.Comparable       = Point2D{}
	_ kdcore.MetricComparable = Point2D{}
)

// CompareDim compares the receiver to other on dimension d (0 -> X, 1 -> Y).
func (p Point2D) CompareDim(other kdcore.Comparable, d int) kdcore.Ordering {
	o := other.(Point2D)
	a, b := p.component(d), o.component(d)
	switch {
	case a < b:
		return kdcore.LT
	case a > b:
		return kdcore.GT
	default:
		return kdcore.EQ
	}
}

// Coord returns the scalar coordinate on dimension d.
func (p Point2D) Coord(d int) float64 {
	return p.component(d)
}

func (p Point2D) component(d int) float64 {
	if d == 0 {
		return p.X
	}

	return p.Y
}
