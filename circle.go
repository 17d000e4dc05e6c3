package arc

import (
	"errors"
	"fmt"
	"math"

	"github.com/twpayne/go-geom"
)

// ErrDegenerateArc is returned when three positions are collinear or
// coincident, so that no finite circle passes through them.
var ErrDegenerateArc = errors.New("arc: degenerate arc")

// Circle is a circle with center (X, Y) and radius Radius.
type Circle struct {
	X      float64
	Y      float64
	Radius float64
}

// CircleThroughPoints returns the unique circle through the three positions.
// Only the planar coordinates of the positions are considered. It returns
// [ErrDegenerateArc] if the positions are collinear or coincident.
func CircleThroughPoints(p0, p1, p2 geom.Coord) (Circle, error) {
	if Collinear(p0, p1, p2) {
		return Circle{}, fmt.Errorf("%w: no circle through %v, %v, %v", ErrDegenerateArc, p0, p1, p2)
	}

	// Solve for the circumcenter in coordinates relative to p0. The
	// translation keeps the determinant free of the large squared terms
	// that the absolute form accumulates.
	bx := p1[0] - p0[0]
	by := p1[1] - p0[1]
	cx := p2[0] - p0[0]
	cy := p2[1] - p0[1]
	d := 2 * (bx*cy - by*cx)
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy
	ux := (cy*b2 - by*c2) / d
	uy := (bx*c2 - cx*b2) / d
	return Circle{
		X:      p0[0] + ux,
		Y:      p0[1] + uy,
		Radius: math.Hypot(ux, uy),
	}, nil
}

// Center returns the planar center of the circle.
func (c Circle) Center() geom.Coord {
	return geom.Coord{c.X, c.Y}
}

// IsInf reports whether the center or radius is infinite.
func (c Circle) IsInf() bool {
	return math.IsInf(c.X, 0) || math.IsInf(c.Y, 0) || math.IsInf(c.Radius, 0)
}

// IsNaN reports whether the center or radius is NaN.
func (c Circle) IsNaN() bool {
	return math.IsNaN(c.X) || math.IsNaN(c.Y) || math.IsNaN(c.Radius)
}
