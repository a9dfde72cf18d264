package geom

import (
	"fmt"
	"math"
	"sort"

	"github.com/pkg/errors"

	"arcshrink/dbg"
)

// Flip on to print and draw each shrink step. The branch names are random
// but stable within a run, which makes interleaved split traces readable.
const debugShrink = false

// ErrDegenerate reports that a polygon has passed a topological limit the
// event system did not catch: an adjusted circle pair stopped intersecting,
// or the boundary flipped inside out. Callers stop offsetting that branch.
var ErrDegenerate = errors.New("polygon degenerated before reaching the requested offset")

// ErrUnsupported names the configurations the two-circle vertex rule cannot
// derive, such as adjacent segments on concentric circles (no radical
// line, so no vertex). Callers decide how to degrade.
var ErrUnsupported = errors.New("unsupported segment configuration")

const (
	// eventSlack is how far past an event time the polygon is offset before
	// the event's structural consequence is applied, so the post-event
	// geometry is strictly beyond the tangency.
	eventSlack = 1e-3

	// collisionProbe is how far short of a candidate neighbor event the
	// polygon is offset to validate the event against actual vertex
	// positions.
	collisionProbe = 1e-4

	// meetTolerance is the vertex-to-meeting-point distance below which a
	// probed neighbor collision is accepted. Spurious tangency roots sit
	// whole circle-radii away; real ones converge to the meeting point.
	// Tuned for pixel-scale coordinates, like everything else here.
	meetTolerance = 1.0

	// polyTolerance bounds how far a segment's circle may miss the next
	// segment's initial point before the polygon is considered
	// inconsistent. Looser than Tolerance because event resolution snaps
	// split points that are eventSlack past exact tangency.
	polyTolerance = 1e-2
)

// ArcPoly is a closed polygon whose edges are circular arcs: a cyclic
// ordered sequence of segments. Consecutive segments must be geometrically
// consistent: each segment's circle passes through its own initial point
// and the next segment's.
type ArcPoly struct {
	Segs []Segment
}

func (ap ArcPoly) Len() int {
	return len(ap.Segs)
}

// At indexes the segment list cyclically.
func (ap ArcPoly) At(i int) Segment {
	return ap.Segs[CircularIndex(i, len(ap.Segs))]
}

// NextInitial is the end point of segment i: the initial point of the
// cyclically next segment.
func (ap ArcPoly) NextInitial(i int) Coord {
	return ap.At(i + 1).Initial
}

// Arcs materializes every segment as an arc, in order. This is the form
// drawing collaborators and the Minkowski machinery consume.
func (ap ArcPoly) Arcs() []Arc {
	arcs := make([]Arc, len(ap.Segs))
	for i, s := range ap.Segs {
		arcs[i] = s.Arc(ap.NextInitial(i))
	}
	return arcs
}

// Valid checks the consistency invariant: at least three segments, and
// every segment's circle passing through both of its endpoints.
func (ap ArcPoly) Valid() bool {
	if len(ap.Segs) < 3 {
		return false
	}
	for i, s := range ap.Segs {
		if math.Abs(ap.NextInitial(i).DistanceFrom(s.Center)-s.Radius()) > polyTolerance {
			return false
		}
	}
	return true
}

// signedArea is the shoelace area of the vertex cycle. The arcs add bulges
// but never flip the sign in a non-degenerate polygon, so a non-positive
// value means the boundary has passed through itself.
func (ap ArcPoly) signedArea() float64 {
	var sum float64
	for i, s := range ap.Segs {
		next := ap.NextInitial(i)
		sum += Det(s.Initial, next)
	}
	return sum / 2
}

// ShrinkNaive offsets the whole polygon inward by amount, assuming no
// topological event happens on the way: every segment circle is offset
// (inward circles grow, outward circles shrink), and each vertex is moved
// to the intersection of its two adjusted neighbor circles nearest the
// vertex's previous position.
//
// The result is ErrDegenerate when the polygon is undefined at this offset
// (a circle vanished, an adjusted pair stopped intersecting twice, or the
// boundary flipped), and ErrUnsupported for configurations with no
// derivable vertex.
func (ap ArcPoly) ShrinkNaive(amount float64) (ArcPoly, error) {
	n := len(ap.Segs)
	out := ArcPoly{Segs: make([]Segment, n)}
	for i := 0; i < n; i++ {
		a := ap.At(i)
		b := ap.At(i + 1)
		ra := a.OffsetRadius(amount)
		rb := b.OffsetRadius(amount)
		if ra < 0 || rb < 0 {
			return ArcPoly{}, errors.Wrapf(ErrDegenerate, "segment circle vanished before offset %g", amount)
		}
		if a.Center.DistanceFrom(b.Center) < Tolerance {
			return ArcPoly{}, errors.Wrapf(ErrUnsupported, "segments %d and %d are concentric", i, CircularIndex(i+1, n))
		}
		ps := NewCircle(ra, a.Center).Intersect(NewCircle(rb, b.Center))
		if len(ps) < 2 {
			return ArcPoly{}, errors.Wrapf(ErrDegenerate, "segments %d and %d stopped intersecting", i, CircularIndex(i+1, n))
		}
		j := CircularIndex(i+1, n)
		out.Segs[j] = Segment{Initial: nearestTo(b.Initial, ps), Center: b.Center, Bend: b.Bend}
	}
	if out.signedArea() <= 0 {
		return ArcPoly{}, errors.Wrap(ErrDegenerate, "boundary flipped inside out")
	}
	return out, nil
}

// FutureCollisions returns every detectable event ahead of the current
// polygon, sorted ascending by offset amount. All times are non-negative.
func (ap ArcPoly) FutureCollisions() []Collision {
	cols := ap.oppositeCollisions()
	cols = append(cols, ap.neighborCollisions()...)
	cols = append(cols, ap.radiusZeroCollisions()...)
	sort.SliceStable(cols, func(i, j int) bool { return cols[i].Time < cols[j].Time })
	return cols
}

// oppositeCollisions finds the non-adjacent inward segment pairs whose
// growing circles will become externally tangent, pinching the boundary.
func (ap ArcPoly) oppositeCollisions() []Collision {
	n := len(ap.Segs)
	var cols []Collision
	for i := 0; i < n; i++ {
		for k := i + 2; k < n; k++ {
			if i == 0 && k == n-1 {
				continue // adjacent around the wrap
			}
			a, b := ap.Segs[i], ap.Segs[k]
			if a.Bend != Inward || b.Bend != Inward {
				continue
			}
			d := a.Center.DistanceFrom(b.Center)
			if d < Tolerance {
				continue
			}
			t := (d - a.Radius() - b.Radius()) / 2
			if t < 0 {
				continue
			}
			dir := b.Center.Minus(a.Center).Times(1 / d)
			p := a.Center.Plus(dir.Times(a.Radius() + t))
			if !ap.oppositeHits(i, k, t, p) {
				continue
			}
			cols = append(cols, Collision{Time: t, Place: p, Kind: Opposite, First: i, Second: k})
		}
	}
	return cols
}

// oppositeHits verifies that at the tangency moment the meeting point
// actually lies on both segments' arcs, not just on their full circles.
func (ap ArcPoly) oppositeHits(i, k int, t float64, p Coord) bool {
	shrunk, err := ap.ShrinkNaive(t)
	if err != nil {
		return false
	}
	return shrunk.At(i).InSpan(p, shrunk.NextInitial(i)) &&
		shrunk.At(k).InSpan(p, shrunk.NextInitial(k))
}

// neighborCollisions finds, for every consecutive triple, the moment all
// three offset circles pass through one point. The moment is a root of the
// three-circle tangency problem over the signed-radius circles; each
// candidate root is validated by probing the polygon just short of it.
func (ap ArcPoly) neighborCollisions() []Collision {
	n := len(ap.Segs)
	var cols []Collision
	for i := 0; i < n; i++ {
		prev, this, next := ap.At(i-1), ap.At(i), ap.At(i+1)
		sols := ThreeCircleTangent(prev.SignedCircle(), this.SignedCircle(), next.SignedCircle())
		for _, s := range sols {
			if s.Radius <= 0 {
				continue
			}
			if !ap.neighborHits(i, s.Radius, s.Center) {
				continue
			}
			cols = append(cols, Collision{Time: s.Radius, Place: s.Center, Kind: Neighbors, First: i})
			break // roots come ascending; the first accepted one is the event
		}
	}
	return cols
}

// neighborHits probes the polygon at t - collisionProbe and accepts the
// candidate only when both of the middle segment's vertices have converged
// near the predicted meeting point. This rejects the spurious roots the
// quadratic also produces.
func (ap ArcPoly) neighborHits(i int, t float64, p Coord) bool {
	shrunk, err := ap.ShrinkNaive(t - collisionProbe)
	if err != nil {
		return false
	}
	return shrunk.At(i).Initial.DistanceFrom(p) < meetTolerance &&
		shrunk.At(i+1).Initial.DistanceFrom(p) < meetTolerance
}

// radiusZeroCollisions lists the moments outward segments' circles shrink
// away entirely.
func (ap ArcPoly) radiusZeroCollisions() []Collision {
	var cols []Collision
	for i, s := range ap.Segs {
		if s.Bend != Outward {
			continue
		}
		cols = append(cols, Collision{Time: s.Radius(), Place: s.Center, Kind: RadiusZero, First: i})
	}
	return cols
}

// Shrunk computes the inward offset of the polygon by amount, resolving
// every topological event on the way. The result is the forest of disjoint
// offset polygons that remain; it is empty once the polygon has fully
// collapsed.
//
// Each step finds the earliest event strictly inside the remaining budget,
// offsets to just past it, applies its structural consequence (split the
// polygon, or drop the degenerate segment), and continues on each piece
// with the remaining budget. The recursion is expressed as an explicit
// work stack so adversarial inputs with many events cannot grow the call
// stack.
func (ap ArcPoly) Shrunk(amount float64) []ArcPoly {
	type item struct {
		poly ArcPoly
		left float64
	}
	stack := []item{{poly: ap, left: amount}}
	var out []ArcPoly

	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if debugShrink {
			fmt.Println("shrinking", dbg.Name(&it.poly.Segs[0]), "with", it.left, "left")
			it.poly.dbgDraw(1)
		}

		ev, ok := it.poly.firstEventBefore(it.left)
		if !ok || len(it.poly.Segs) <= 3 {
			if shrunk, err := it.poly.ShrinkNaive(it.left); err == nil {
				out = append(out, shrunk)
			}
			continue
		}

		// Resolve just past the tangency, except for a vanishing circle,
		// which only exists just short of its event.
		step := ev.Time + eventSlack
		if ev.Kind == RadiusZero {
			step = math.Max(0, ev.Time-eventSlack)
		}
		shrunk, err := it.poly.ShrinkNaive(step)
		if err != nil {
			continue
		}
		left := math.Max(0, it.left-step)

		switch ev.Kind {
		case Opposite:
			first, second := shrunk.splitAt(ev.First, ev.Second, ev.Place)
			stack = append(stack, item{poly: first, left: left}, item{poly: second, left: left})
		case Neighbors, RadiusZero:
			stack = append(stack, item{poly: shrunk.remove(ev.First), left: left})
		default:
			fatalf("unhandled collision kind %v", ev.Kind)
		}
	}
	return out
}

// firstEventBefore returns the earliest event strictly inside (0, amount).
func (ap ArcPoly) firstEventBefore(amount float64) (Collision, bool) {
	for _, c := range ap.FutureCollisions() {
		if c.Time > 0 && c.Time < amount {
			return c, true
		}
	}
	return Collision{}, false
}

// splitAt resolves an opposite collision between segments i and k by
// pinching the boundary at p into two loops. Each loop gets one of the
// colliding segments re-rooted at p plus its run of the remaining
// segments, so the two loops' segment counts always sum to n + 2.
func (ap ArcPoly) splitAt(i, k int, p Coord) (ArcPoly, ArcPoly) {
	n := len(ap.Segs)
	first := ArcPoly{Segs: []Segment{{Initial: p, Center: ap.Segs[i].Center, Bend: ap.Segs[i].Bend}}}
	for j := i + 1; ; j++ {
		jj := CircularIndex(j, n)
		first.Segs = append(first.Segs, ap.Segs[jj])
		if jj == k {
			break
		}
	}
	second := ArcPoly{Segs: []Segment{{Initial: p, Center: ap.Segs[k].Center, Bend: ap.Segs[k].Bend}}}
	for j := k + 1; ; j++ {
		jj := CircularIndex(j, n)
		second.Segs = append(second.Segs, ap.Segs[jj])
		if jj == i {
			break
		}
	}
	return first, second
}

// remove drops segment i. Used for neighbor and radius-zero events, where
// the dropped segment has already degenerated to (nearly) a point, so the
// surviving neighbors stay consistent.
func (ap ArcPoly) remove(i int) ArcPoly {
	out := make([]Segment, 0, len(ap.Segs)-1)
	out = append(out, ap.Segs[:i]...)
	out = append(out, ap.Segs[i+1:]...)
	return ArcPoly{Segs: out}
}
