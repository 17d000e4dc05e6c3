package arc

import (
	"errors"
	"fmt"
	"math"

	"github.com/twpayne/go-geom"
)

var (
	// ErrInvalidInput is returned when a position is nil, the layout has
	// fewer than two dimensions, or a position does not match the layout.
	ErrInvalidInput = errors.New("arc: invalid input")

	// ErrToleranceOutOfRange is returned by linearization calls when the
	// tolerance is not in (0, radius).
	ErrToleranceOutOfRange = errors.New("arc: tolerance out of range")
)

// Linearizer approximates the circular arc through three positions with
// polylines. The circle fit and the winding classification happen at
// construction; the tolerance is validated against the fitted radius at each
// linearization call.
//
// A Linearizer is immutable and may be shared between goroutines. Repeated
// calls with the same tolerance produce identical, independent results.
type Linearizer struct {
	layout    geom.Layout
	p0        geom.Coord
	p1        geom.Coord
	p2        geom.Coord
	tolerance float64
	circle    Circle
	ccw       bool
}

// NewLinearizer returns a Linearizer for the arc from p0 through p1 to p2.
// The positions must all match the layout, which must have at least the two
// planar dimensions. The sign of tolerance is discarded.
//
// It returns [ErrInvalidInput] for nil or mismatched positions and
// [ErrDegenerateArc] if the positions do not define a circle.
func NewLinearizer(layout geom.Layout, p0, p1, p2 geom.Coord, tolerance float64) (*Linearizer, error) {
	stride := layout.Stride()
	if stride < 2 {
		return nil, fmt.Errorf("%w: layout %v has fewer than 2 dimensions", ErrInvalidInput, layout)
	}
	for _, p := range []geom.Coord{p0, p1, p2} {
		if p == nil {
			return nil, fmt.Errorf("%w: nil position", ErrInvalidInput)
		}
		if len(p) != stride {
			return nil, fmt.Errorf("%w: position %v does not match layout %v", ErrInvalidInput, p, layout)
		}
	}
	c, err := CircleThroughPoints(p0, p1, p2)
	if err != nil {
		return nil, err
	}
	return &Linearizer{
		layout:    layout,
		p0:        p0,
		p1:        p1,
		p2:        p2,
		tolerance: math.Abs(tolerance),
		circle:    c,
		ccw:       IsCounterClockwise(p0, p1, p2),
	}, nil
}

// Circle returns the circle fitted through the three positions.
func (l *Linearizer) Circle() Circle { return l.circle }

// Radius returns the radius of the fitted circle.
func (l *Linearizer) Radius() float64 { return l.circle.Radius }

// CounterClockwise reports whether the arc is traversed counter-clockwise.
func (l *Linearizer) CounterClockwise() bool { return l.ccw }

// Arc approximates the open arc from p0 through p1 to p2. The result starts
// at p0, ends at p2, and contains p1 verbatim where the traversal crosses it;
// interior positions lie on the fitted circle at equal angular increments
// small enough to bound the chord error by the tolerance.
func (l *Linearizer) Arc() (*geom.LineString, error) {
	maxIncr, err := l.angleIncrement()
	if err != nil {
		return nil, err
	}
	theta0 := l.angleTo(l.p0)
	theta1 := l.angleTo(l.p1)
	theta2 := l.angleTo(l.p2)

	flat := make([]float64, 0, l.estimateCap(maxIncr))
	flat = append(flat, l.p0...)
	flat = l.appendInterior(flat, theta0, theta1, l.p0, l.p1, maxIncr)
	flat = append(flat, l.p1...)
	flat = l.appendInterior(flat, theta1, theta2, l.p1, l.p2, maxIncr)
	flat = append(flat, l.p2...)
	return geom.NewLineStringFlat(l.layout, flat), nil
}

// FullCircle approximates the full circle implied by p0 and p1, treating the
// arc as continuing one whole turn past its start in the traversal direction.
// The result starts and ends at p0 and contains p1 verbatim; p2 contributes
// to the circle fit and the winding but not to the angular span.
func (l *Linearizer) FullCircle() (*geom.LineString, error) {
	maxIncr, err := l.angleIncrement()
	if err != nil {
		return nil, err
	}
	theta0 := l.angleTo(l.p0)
	theta1 := l.angleTo(l.p1)
	turn := 2 * math.Pi
	if !l.ccw {
		turn = -turn
	}

	flat := make([]float64, 0, l.estimateCap(maxIncr))
	flat = append(flat, l.p0...)
	flat = l.appendInterior(flat, theta0, theta1, l.p0, l.p1, maxIncr)
	flat = append(flat, l.p1...)
	flat = l.appendInterior(flat, theta1, theta0+turn, l.p1, l.p0, maxIncr)
	flat = append(flat, l.p0...)
	return geom.NewLineStringFlat(l.layout, flat), nil
}

// angleIncrement derives the maximum angular increment per segment from the
// tolerance t and the radius r. A chord spanning an angle Δθ ≤ acos((r−t)/r)
// stays within t of the circle.
func (l *Linearizer) angleIncrement() (float64, error) {
	r := l.circle.Radius
	if l.tolerance <= 0 || l.tolerance >= r {
		return 0, fmt.Errorf("%w: tolerance %g with radius %g, need 0 < tolerance < radius",
			ErrToleranceOutOfRange, l.tolerance, r)
	}
	incr := math.Acos((r - l.tolerance) / r)
	if incr == 0 {
		// (r−t)/r rounded to 1: the tolerance is too small relative to
		// the radius to yield a positive increment.
		return 0, fmt.Errorf("%w: tolerance %g underflows against radius %g",
			ErrToleranceOutOfRange, l.tolerance, r)
	}
	return incr, nil
}

// angleTo returns the angular coordinate of p on the fitted circle,
// normalized to the traversal direction: [0, 2π) for counter-clockwise arcs,
// (−2π, 0] for clockwise arcs. The normalization lets both spans walk
// monotonically in one direction.
func (l *Linearizer) angleTo(p geom.Coord) float64 {
	theta := math.Atan2(p[1]-l.circle.Y, p[0]-l.circle.X)
	if l.ccw {
		if theta < 0 {
			theta += 2 * math.Pi
		}
	} else if theta > 0 {
		theta -= 2 * math.Pi
	}
	return theta
}

// appendInterior appends the positions strictly between the angles theta0 and
// theta1 to flat and returns it. The span is subdivided into
// ceil(|theta1−theta0| / maxIncr) equal angular steps, so per-step increments
// never exceed maxIncr; the loop is indexed by integer step so the interior
// point count does not depend on floating-point loop-boundary comparisons.
// Coordinates beyond x and y are interpolated linearly from from to to in
// step index.
func (l *Linearizer) appendInterior(flat []float64, theta0, theta1 float64, from, to geom.Coord, maxIncr float64) []float64 {
	steps := int(math.Ceil(math.Abs(theta1-theta0) / maxIncr))
	if steps == 0 {
		return flat
	}
	incr := (theta1 - theta0) / float64(steps)
	stride := l.layout.Stride()
	for i := 1; i < steps; i++ {
		sin, cos := math.Sincos(theta0 + float64(i)*incr)
		flat = append(flat, l.circle.X+l.circle.Radius*cos, l.circle.Y+l.circle.Radius*sin)
		for j := 2; j < stride; j++ {
			flat = append(flat, from[j]+float64(i)*(to[j]-from[j])/float64(steps))
		}
	}
	return flat
}

// estimateCap returns a capacity estimate for a result's flat coordinates.
// A full turn needs at most ceil(2π/maxIncr) interior positions plus the
// three span boundaries.
func (l *Linearizer) estimateCap(maxIncr float64) int {
	return l.layout.Stride() * (int(math.Ceil(2*math.Pi/maxIncr)) + 3)
}
