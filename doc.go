// Package arc approximates circular arcs with polylines.
//
// An arc is defined by three positions on its boundary: a start position, an
// intermediate position, and an end position. [Linearizer] fits the unique
// circle through the three positions, classifies the traversal direction, and
// produces a sequence of positions whose straight-line segments deviate from
// the true arc by no more than a caller-supplied tolerance. It can linearize
// the open arc ([Linearizer.Arc]) or the full circle implied by the first two
// positions ([Linearizer.FullCircle]).
//
// Positions are [geom.Coord] values from [github.com/twpayne/go-geom], with
// the coordinate dimension given by a [geom.Layout]. Coordinates 0 and 1 are
// the planar x and y; any further coordinates (Z, M) are carried through and
// interpolated linearly along the arc. Results are returned as
// [geom.LineString] values.
//
// The input positions are always reproduced verbatim in the output, at the
// indices where the traversal crosses them. Interior positions are computed
// from the fitted circle at equal angular increments per span.
//
// The tolerance t must satisfy 0 < t < r for the fitted radius r; the angular
// increment per segment is derived as acos((r−t)/r). Linearization calls with
// a tolerance outside that range fail with [ErrToleranceOutOfRange].
//
// A Linearizer is immutable after construction and safe for concurrent use;
// every linearization call allocates and returns an independent result.
//
// This package also exports the two primitives the linearizer is built on:
// [CircleThroughPoints], the three-point circle fit, and
// [IsCounterClockwise], the robust winding classification.
package arc
