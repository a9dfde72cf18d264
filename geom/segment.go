package geom

import "fmt"

// Bend records which way a segment's arc curves relative to the polygon
// interior. Inward arcs are concave (the polygon lies outside their
// circle); Outward arcs are convex and are the ones that can vanish under
// inward offsetting.
type Bend int

const (
	Inward Bend = iota
	Outward
)

func (b Bend) String() string {
	switch b {
	case Inward:
		return "inward"
	case Outward:
		return "outward"
	}
	fatalf("unknown bend %d", int(b))
	return ""
}

// Segment is one edge of an arc polygon. The arc runs from Initial of this
// segment to Initial of the cyclically next one, on the circle around
// Center. Segments never store their end point; it always belongs to the
// neighbor, which keeps the cyclic structure impossible to de-synchronize.
type Segment struct {
	Initial Coord
	Center  Coord
	Bend    Bend
}

func (s Segment) String() string {
	return fmt.Sprintf("segment((%.2f, %.2f), %s)", s.Initial.X, s.Initial.Y, s.Bend)
}

// Radius is the distance from the segment's circle center to its initial
// point.
func (s Segment) Radius() float64 {
	return s.Initial.DistanceFrom(s.Center)
}

// SignedRadius encodes the bend in the radius sign: positive for Inward,
// negative for Outward. Under inward offsetting by t every signed radius
// grows by t, which makes Inward circles grow, Outward circles shrink, and
// Outward circles vanish exactly when the offset reaches their radius.
func (s Segment) SignedRadius() float64 {
	if s.Bend == Inward {
		return s.Radius()
	}
	return -s.Radius()
}

// OffsetRadius is the magnitude-with-sign of the segment's circle radius
// after inward offsetting by t. A negative result means the circle vanished
// before t.
func (s Segment) OffsetRadius(t float64) float64 {
	if s.Bend == Inward {
		return s.Radius() + t
	}
	return s.Radius() - t
}

func (s Segment) Circle() Circle {
	return Circle{Radius: s.Radius(), Center: s.Center}
}

// SignedCircle is the segment's circle with SignedRadius, the form the
// three-circle tangency solver wants.
func (s Segment) SignedCircle() Circle {
	return Circle{Radius: s.SignedRadius(), Center: s.Center}
}

func (s Segment) StartAngle() float64 {
	return AngleOf(s.Initial.Minus(s.Center))
}

func (s Segment) EndAngle(next Coord) float64 {
	return AngleOf(next.Minus(s.Center))
}

// Arc reconstructs the segment's arc given the next segment's initial
// point. Inward arcs are traversed clockwise about their center, outward
// arcs counterclockwise; both follow from a counterclockwise-wound polygon.
func (s Segment) Arc(next Coord) Arc {
	if s.Bend == Inward {
		return ArcFromAnglesCW(s.StartAngle(), s.EndAngle(next), s.Radius(), s.Center)
	}
	return ArcFromAnglesCCW(s.StartAngle(), s.EndAngle(next), s.Radius(), s.Center)
}

// InSpan reports whether p's angle about the segment's center falls on the
// segment's arc.
func (s Segment) InSpan(p, next Coord) bool {
	angle := AngleOf(p.Minus(s.Center))
	if s.Bend == Inward {
		return IsBetweenCW(angle, s.StartAngle(), s.EndAngle(next))
	}
	return IsBetweenCCW(angle, s.StartAngle(), s.EndAngle(next))
}

// CollisionKind classifies the topological events that can interrupt a
// uniform shrink.
type CollisionKind int

const (
	// Opposite: two non-adjacent inward arcs' growing circles become
	// tangent, pinching the polygon into two loops.
	Opposite CollisionKind = iota
	// Neighbors: three consecutive arcs' offset circles become mutually
	// tangent; the middle segment degenerates to a point.
	Neighbors
	// RadiusZero: an outward arc's circle shrinks to nothing.
	RadiusZero
)

func (k CollisionKind) String() string {
	switch k {
	case Opposite:
		return "opposite"
	case Neighbors:
		return "neighbors"
	case RadiusZero:
		return "radius-zero"
	}
	fatalf("unknown collision kind %d", int(k))
	return ""
}

// Collision is one future shrink event: the offset amount at which it
// fires, where, and which segments are involved. Collisions are computed
// fresh from the current polygon on every shrink step and consumed once.
type Collision struct {
	// Time is the offset amount at which the event fires; always >= 0.
	Time  float64
	Place Coord
	Kind  CollisionKind
	// First is the involved segment index; Second is only meaningful for
	// Opposite, where (First, Second) are the two colliding segments.
	First, Second int
}

func (c Collision) String() string {
	switch c.Kind {
	case Opposite:
		return fmt.Sprintf("collision(%s %d/%d at t=%.3f)", c.Kind, c.First, c.Second, c.Time)
	default:
		return fmt.Sprintf("collision(%s %d at t=%.3f)", c.Kind, c.First, c.Time)
	}
}
