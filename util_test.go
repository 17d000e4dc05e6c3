package arc

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/twpayne/go-geom"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approxEqual(x, y float64) bool {
	return math.Abs(x-y) < 1e-9
}

// angles maps every position of ls to its normalized angular coordinate on
// l's fitted circle.
func angles(l *Linearizer, ls *geom.LineString) []float64 {
	out := make([]float64, ls.NumCoords())
	for i := range out {
		out[i] = l.angleTo(ls.Coord(i))
	}
	return out
}

// maxChordDeviation returns the largest perpendicular distance between c and
// the chords connecting consecutive positions of ls.
func maxChordDeviation(c Circle, ls *geom.LineString) float64 {
	var worst float64
	for i := 1; i < ls.NumCoords(); i++ {
		p := ls.Coord(i - 1)
		q := ls.Coord(i)
		mx := 0.5 * (p[0] + q[0])
		my := 0.5 * (p[1] + q[1])
		dev := c.Radius - math.Hypot(mx-c.X, my-c.Y)
		worst = max(worst, math.Abs(dev))
	}
	return worst
}
