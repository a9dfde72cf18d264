package geom

import "math"

// Circle is a plain center + radius pair. The radius is allowed to be
// negative: some operations use the sign to encode which side of a tangency
// a circle sits on. Point-set operations (Intersect) work on the absolute
// value; the tangency solver keeps the sign exact.
type Circle struct {
	Radius float64
	Center Coord
}

func NewCircle(radius float64, center Coord) Circle {
	return Circle{Radius: radius, Center: center}
}

func (c Circle) minus(o Circle) Circle {
	return Circle{Radius: c.Radius - o.Radius, Center: c.Center.Minus(o.Center)}
}

// Intersect returns the 0, 1, or 2 intersection points of two circles.
//
// The two-point order is deterministic: the first point is offset clockwise
// from the center line (as seen from c toward o), the second counter-
// clockwise. Callers rely on this to pick consistent sides by index.
func (c Circle) Intersect(o Circle) []Coord {
	ra := math.Abs(c.Radius)
	rb := math.Abs(o.Radius)
	d := c.Center.DistanceFrom(o.Center)
	if d < Tolerance {
		// Concentric circles either miss or coincide; neither case has a
		// usable point set.
		return nil
	}
	if Equal(d, ra+rb) {
		return []Coord{c.Center.Plus(o.Center.Minus(c.Center).Unit().Times(ra))}
	}
	if d > ra+rb || d < math.Abs(ra-rb) {
		return nil
	}
	// Radical line construction: foot of the chord at distance alpha along
	// the center line, chord half-length h perpendicular to it.
	alpha := (ra*ra - rb*rb + d*d) / (2 * d)
	h := math.Sqrt(math.Max(0, ra*ra-alpha*alpha))
	dir := o.Center.Minus(c.Center).Times(1 / d)
	foot := c.Center.Plus(dir.Times(alpha))
	off := PerpCW(dir).Times(h)
	return []Coord{foot.Plus(off), foot.Minus(off)}
}

// CircleFromThreePoints returns the unique circle through three points,
// via the standard 3×3 determinant construction. Collinear inputs produce a
// non-finite result; callers validate with the usual finiteness checks.
func CircleFromThreePoints(p1, p2, p3 Coord) Circle {
	l1 := Dot(p1, p1)
	l2 := Dot(p2, p2)
	l3 := Dot(p3, p3)

	m1 := det3(p1.X, p1.Y, 1, p2.X, p2.Y, 1, p3.X, p3.Y, 1)
	m2 := det3(l1, p1.Y, 1, l2, p2.Y, 1, l3, p3.Y, 1)
	m3 := det3(l1, p1.X, 1, l2, p2.X, 1, l3, p3.X, 1)

	center := XY(m2, -m3).Times(0.5 / m1)
	return Circle{Radius: center.DistanceFrom(p1), Center: center}
}

// det3 is the determinant of a 3×3 matrix given row-major.
func det3(a, b, c, d, e, f, g, h, i float64) float64 {
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// CircleFromEndpointsAndBend returns the circle through a and b whose arc
// between them has the given bend. Bend is the height of the arc's extreme
// point as a fraction of the radius, in (0, 2); its sign picks the side of
// the chord (positive bulges counterclockwise-left of a→b).
func CircleFromEndpointsAndBend(a, b Coord, bend float64) Circle {
	ab := b.Minus(a)
	perp := PerpCCW(ab.Unit())
	absBend := math.Abs(bend)
	radius := ab.Magnitude() / (2 * math.Sqrt((2-absBend)*absBend))
	extreme := Midpoint(a, b).Plus(perp.Times(bend * radius))
	return CircleFromThreePoints(a, b, extreme)
}

// ThreeCircleTangent returns the circles (0, 1, or 2 of them) simultaneously
// tangent to all three inputs. Radii are signed: the tangency condition
// solved is dist(C, center_i) = R + radius_i before squaring, so a negative
// input radius asks for the opposite tangency sense on that circle.
//
// The problem is reduced by translating so that c becomes a point at the
// origin (subtract its center and radius from all three), solving the
// reduced two-circle problem, and mapping back.
func ThreeCircleTangent(a, b, c Circle) []Circle {
	reduced := a.minus(c).tangentToBothAndOrigin(b.minus(c))
	out := make([]Circle, 0, len(reduced))
	for _, s := range reduced {
		out = append(out, Circle{Radius: s.Radius - c.Radius, Center: s.Center.Plus(c.Center)})
	}
	return out
}

// tangentToBothAndOrigin finds circles tangent to a, to b, and to the point
// at the origin. Subtracting the origin condition |C| = R from each tangency
// condition leaves a linear system for the center C as an affine function of
// the unknown radius R; substituting back into |C| = R gives one quadratic
// in R, each real root of which is one tangent circle.
func (a Circle) tangentToBothAndOrigin(b Circle) []Circle {
	det := Det(a.Center, b.Center)
	if math.Abs(det) < quadEpsilon {
		// Centers collinear with the origin: the linear system is singular.
		return nil
	}
	alpha := 1 / (2 * det)
	betaA := Dot(a.Center, a.Center) - a.Radius*a.Radius
	betaB := Dot(b.Center, b.Center) - b.Radius*b.Radius
	gammaA := -2 * a.Radius
	gammaB := -2 * b.Radius
	deltaX := alpha * (b.Center.Y*gammaA - a.Center.Y*gammaB)
	deltaY := alpha * (-b.Center.X*gammaA + a.Center.X*gammaB)
	epsX := alpha * (b.Center.Y*betaA - a.Center.Y*betaB)
	epsY := alpha * (-b.Center.X*betaA + a.Center.X*betaB)

	qa := deltaX*deltaX + deltaY*deltaY - 1
	qb := 2 * (deltaX*epsX + deltaY*epsY)
	qc := epsX*epsX + epsY*epsY

	roots := SolveQuadratic(qa, qb, qc)
	out := make([]Circle, 0, len(roots))
	for _, r := range roots {
		out = append(out, Circle{
			Radius: r,
			Center: XY(deltaX*r+epsX, deltaY*r+epsY),
		})
	}
	return out
}
