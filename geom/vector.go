package geom

import (
	"math"

	jb "github.com/jbeda/geom"
)

// Coord is the planar vector type used throughout the package. It comes from
// jbeda/geom, which provides the chainable Plus/Minus/Times/Unit arithmetic;
// the handful of operations it lacks live below.
type Coord = jb.Coord

// XY is a small literal helper so callers don't need the field names.
func XY(x, y float64) Coord {
	return Coord{X: x, Y: y}
}

// FromAngle returns the unit vector pointing at angle a.
func FromAngle(a float64) Coord {
	return Coord{X: math.Cos(a), Y: math.Sin(a)}
}

// AngleOf returns the angle of v, in (-π, π].
func AngleOf(v Coord) float64 {
	return math.Atan2(v.Y, v.X)
}

func Dot(a, b Coord) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Det is the z component of the cross product a × b. Its sign tells which
// side of a the vector b lies on.
func Det(a, b Coord) float64 {
	return a.X*b.Y - a.Y*b.X
}

// PerpCW rotates v a quarter turn clockwise.
func PerpCW(v Coord) Coord {
	return Coord{X: v.Y, Y: -v.X}
}

// PerpCCW rotates v a quarter turn counterclockwise.
func PerpCCW(v Coord) Coord {
	return Coord{X: -v.Y, Y: v.X}
}

func Midpoint(a, b Coord) Coord {
	return a.Plus(b).Times(0.5)
}

// Tolerance is the distance below which two coordinates (or two scalar
// lengths) are considered equal. Coordinates in this package live at pixel
// scale, so absolute tolerances are fine.
const Tolerance = 1e-6

// Equal compares floats with tolerance. Exact comparison would make nearly
// every tangency predicate flap on the last bit.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func CoordsEqual(a, b Coord) bool {
	return a.DistanceFrom(b) < Tolerance
}

// nearestTo picks the candidate closest to ref. This is the explicit
// tie-break rule used whenever a circle intersection yields two points and a
// caller needs "the one that continues the current geometry": the point
// nearest the position the vertex had before the operation.
func nearestTo(ref Coord, candidates []Coord) Coord {
	best := candidates[0]
	bestD := ref.DistanceFrom(best)
	for _, c := range candidates[1:] {
		if d := ref.DistanceFrom(c); d < bestD {
			best, bestD = c, d
		}
	}
	return best
}
