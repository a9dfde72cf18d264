package geom

import "math"

const (
	// AngleEpsilon is the tolerance for angular comparisons. Arcs spanning
	// less than this are considered degenerate.
	AngleEpsilon = 1e-9

	// RadiusEpsilon is the smallest circle radius treated as a real circle.
	RadiusEpsilon = 1e-6

	// quadEpsilon decides when the leading coefficient of a quadratic is
	// effectively zero and the equation degrades to a linear one.
	quadEpsilon = 1e-12
)

// NormalizeAngle maps a into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// DiffCCW is the non-negative angular distance traveled counterclockwise
// from one angle to another, in [0, 2π). DiffCCW(a, b) + DiffCW(a, b) is 2π
// except in the degenerate a == b case, where both are zero.
func DiffCCW(from, to float64) float64 {
	return NormalizeAngle(to - from)
}

// DiffCW is the clockwise counterpart of DiffCCW.
func DiffCW(from, to float64) float64 {
	return NormalizeAngle(from - to)
}

// IsBetweenCCW reports whether angle lies on the counterclockwise sweep from
// `from` to `to`. Both boundaries are inclusive up to AngleEpsilon; arc span
// predicates need endpoint containment to hold exactly at the endpoints.
func IsBetweenCCW(angle, from, to float64) bool {
	return DiffCCW(from, angle) <= DiffCCW(from, to)+AngleEpsilon
}

// IsBetweenCW reports whether angle lies on the clockwise sweep from `from`
// to `to`.
func IsBetweenCW(angle, from, to float64) bool {
	return DiffCW(from, angle) <= DiffCW(from, to)+AngleEpsilon
}

// SignedAngleBetween returns the angle that rotates a onto b, normalized
// into [0, 2π).
func SignedAngleBetween(a, b Coord) float64 {
	return NormalizeAngle(math.Atan2(Det(a, b), Dot(a, b)))
}

// SolveQuadratic returns the real roots of ax² + bx + c, in ascending order.
// A leading coefficient near zero falls back to the linear root -c/b; if b
// is degenerate too there is nothing useful to report and the result is
// empty.
func SolveQuadratic(a, b, c float64) []float64 {
	if math.Abs(a) < quadEpsilon {
		if math.Abs(b) < quadEpsilon {
			return nil
		}
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(d)
	r1 := (-b - sq) / (2 * a)
	r2 := (-b + sq) / (2 * a)
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return []float64{r1, r2}
}
