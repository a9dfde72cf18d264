package geom

import "math"

// Arc is a circular arc described by its underlying circle plus a signed
// angular span around a midpoint angle.
type Arc struct {
	// Mid is the angle (about Center) of the middle of the arc.
	Mid float64
	// Span is the signed angle subtended. Positive means the endpoint is
	// Span radians counterclockwise from the start point, negative means
	// clockwise.
	Span   float64
	Radius float64
	Center Coord
}

// ArcFromAnglesCW builds the arc running clockwise from start to end.
func ArcFromAnglesCW(start, end, radius float64, center Coord) Arc {
	span := -DiffCW(start, end)
	return Arc{Mid: start + span/2, Span: span, Radius: radius, Center: center}
}

// ArcFromAnglesCCW builds the arc running counterclockwise from start to end.
func ArcFromAnglesCCW(start, end, radius float64, center Coord) Arc {
	span := DiffCCW(start, end)
	return Arc{Mid: start + span/2, Span: span, Radius: radius, Center: center}
}

// BendToAngle converts a signed bend (height of the arc's extreme point as a
// fraction of the radius) into the signed span of the arc from a to b. A
// positive bend bulges to the left of the chord, which is traversed
// clockwise about its center, hence the sign flip.
func BendToAngle(bend float64) float64 {
	return math.Copysign(2*math.Acos(1-math.Abs(bend)), -bend)
}

// ArcFromBendAndEndpoints builds the arc from a to b with the given signed
// bend (see CircleFromEndpointsAndBend for the bend convention).
func ArcFromBendAndEndpoints(a, b Coord, bend float64) Arc {
	circle := CircleFromEndpointsAndBend(a, b, bend)
	extreme := Midpoint(a, b).Plus(PerpCCW(b.Minus(a).Unit()).Times(bend * circle.Radius))
	return Arc{
		Mid:    AngleOf(extreme.Minus(circle.Center)),
		Span:   BendToAngle(bend),
		Radius: circle.Radius,
		Center: circle.Center,
	}
}

func (a Arc) ToCircle() Circle {
	return Circle{Radius: a.Radius, Center: a.Center}
}

// WithRadius returns a copy with the radius replaced.
func (a Arc) WithRadius(radius float64) Arc {
	a.Radius = radius
	return a
}

// WithSpan returns a copy with the span replaced.
func (a Arc) WithSpan(span float64) Arc {
	a.Span = span
	return a
}

func (a Arc) StartAngle() float64 {
	return a.Mid - a.Span/2
}

func (a Arc) EndAngle() float64 {
	return a.Mid + a.Span/2
}

func (a Arc) StartPoint() Coord {
	return a.Center.Plus(FromAngle(a.StartAngle()).Times(a.Radius))
}

func (a Arc) EndPoint() Coord {
	return a.Center.Plus(FromAngle(a.EndAngle()).Times(a.Radius))
}

func (a Arc) MidPoint() Coord {
	return a.Center.Plus(FromAngle(a.Mid).Times(a.Radius))
}

// Params flattens the arc's scalar fields, mostly for finiteness checks.
func (a Arc) Params() [5]float64 {
	return [5]float64{a.Mid, a.Span, a.Radius, a.Center.X, a.Center.Y}
}

// Valid reports whether the arc is drawable and intersectable: finite
// parameters, a non-degenerate radius, and a non-degenerate span. Invalid
// arcs are skipped rather than treated as errors.
func (a Arc) Valid() bool {
	for _, f := range a.Params() {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return math.Abs(a.Radius) > RadiusEpsilon && math.Abs(a.Span) > AngleEpsilon
}

// InSpan reports whether the angle of p about the arc's center lies within
// the arc's angular extent, respecting winding direction.
func (a Arc) InSpan(p Coord) bool {
	angle := AngleOf(p.Minus(a.Center))
	if a.Span < 0 {
		return IsBetweenCW(angle, a.StartAngle(), a.EndAngle())
	}
	return IsBetweenCCW(angle, a.StartAngle(), a.EndAngle())
}

// Intersect returns the intersection points of two arcs: the intersections
// of their underlying circles, filtered to the points on both arcs. Invalid
// arcs intersect nothing.
func (a Arc) Intersect(b Arc) []Coord {
	if !a.Valid() || !b.Valid() {
		return nil
	}
	var out []Coord
	for _, p := range a.ToCircle().Intersect(b.ToCircle()) {
		if a.InSpan(p) && b.InSpan(p) {
			out = append(out, p)
		}
	}
	return out
}

// DistanceToPoint returns the minimum distance from p to the arc: the
// nearer endpoint, or the radial distance when p projects onto the arc's
// span.
func (a Arc) DistanceToPoint(p Coord) float64 {
	d := math.Min(p.DistanceFrom(a.StartPoint()), p.DistanceFrom(a.EndPoint()))
	if a.InSpan(p) {
		d = math.Min(d, math.Abs(p.DistanceFrom(a.Center)-math.Abs(a.Radius)))
	}
	return d
}
