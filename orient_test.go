package arc

import (
	"testing"

	"github.com/twpayne/go-geom"
)

func TestIsCounterClockwise(t *testing.T) {
	tests := []struct {
		name       string
		p0, p1, p2 geom.Coord
		want       bool
	}{
		{"left turn", geom.Coord{0, 0}, geom.Coord{1, 0}, geom.Coord{0, 1}, true},
		{"right turn", geom.Coord{0, 0}, geom.Coord{0, 1}, geom.Coord{1, 0}, false},
		{"upper half circle", geom.Coord{1, 0}, geom.Coord{0, 1}, geom.Coord{-1, 0}, true},
		{"lower half circle", geom.Coord{1, 0}, geom.Coord{0, -1}, geom.Coord{-1, 0}, false},
		{"collinear", geom.Coord{0, 0}, geom.Coord{1, 1}, geom.Coord{2, 2}, false},
		{"barely left", geom.Coord{0, 0}, geom.Coord{1, 1}, geom.Coord{2, 2 + 1e-12}, true},
		{"barely right", geom.Coord{0, 0}, geom.Coord{1, 1}, geom.Coord{2, 2 - 1e-12}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCounterClockwise(tt.p0, tt.p1, tt.p2); got != tt.want {
				t.Errorf("got %t, expected %t", got, tt.want)
			}
		})
	}
}

func TestCollinear(t *testing.T) {
	tests := []struct {
		name       string
		p0, p1, p2 geom.Coord
		want       bool
	}{
		{"diagonal", geom.Coord{0, 0}, geom.Coord{1, 1}, geom.Coord{2, 2}, true},
		{"vertical", geom.Coord{4, -1}, geom.Coord{4, 0}, geom.Coord{4, 7}, true},
		{"coincident", geom.Coord{3, 3}, geom.Coord{3, 3}, geom.Coord{3, 3}, true},
		{"two coincident", geom.Coord{3, 3}, geom.Coord{3, 3}, geom.Coord{0, 1}, true},
		{"triangle", geom.Coord{0, 0}, geom.Coord{1, 0}, geom.Coord{0, 1}, false},
		{"barely off", geom.Coord{0, 0}, geom.Coord{1, 1}, geom.Coord{2, 2 + 1e-12}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collinear(tt.p0, tt.p1, tt.p2); got != tt.want {
				t.Errorf("got %t, expected %t", got, tt.want)
			}
		})
	}
}
