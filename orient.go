package arc

import (
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/bigxy"
	"github.com/twpayne/go-geom/xy/orientation"
)

// IsCounterClockwise reports whether the traversal p0→p1→p2 turns
// counter-clockwise, i.e. whether p2 lies to the left of the directed line
// from p0 to p1. The underlying predicate falls back to exact arithmetic when
// the floating-point result is uncertain.
func IsCounterClockwise(p0, p1, p2 geom.Coord) bool {
	return bigxy.OrientationIndex(p0, p1, p2) == orientation.CounterClockwise
}

// Collinear reports whether the three positions lie on a single line.
// Coincident positions are collinear.
func Collinear(p0, p1, p2 geom.Coord) bool {
	return bigxy.OrientationIndex(p0, p1, p2) == orientation.Collinear
}
