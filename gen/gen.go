// Package gen produces deterministic arc polygons for demos and tests.
// The same seed and parameters always yield the same polygon; the package
// never holds onto a random source between calls.
package gen

import (
	"math"
	"math/rand"

	"arcshrink/geom"
)

// Params controls the generated polygon's rough shape.
type Params struct {
	// Vertices is the segment count.
	Vertices int
	// Radius is the radius of the circle the vertices are scattered around.
	Radius float64
	// OffsetNoise is how far each vertex may wander off that circle.
	OffsetNoise float64
	// BendMin and BendMax bound the absolute bend of each edge. Each edge
	// bends inward or outward with equal probability.
	BendMin, BendMax float64
}

// DefaultParams matches the demo defaults.
func DefaultParams() Params {
	return Params{
		Vertices:    5,
		Radius:      200,
		OffsetNoise: 30,
		BendMin:     0.4,
		BendMax:     0.5,
	}
}

// Generate builds the polygon for a seed and parameter set. Vertices are
// spread counterclockwise around a circle and jittered inside a noise
// disc; each edge gets a random bend magnitude and a random bend side.
func Generate(seed int64, p Params) geom.ArcPoly {
	rng := rand.New(rand.NewSource(seed))
	n := p.Vertices

	pts := make([]geom.Coord, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		noise := unitDisc(rng).Times(p.OffsetNoise)
		pts[i] = geom.FromAngle(angle).Times(p.Radius).Plus(noise)
	}

	segs := make([]geom.Segment, n)
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[geom.CircularIndex(i+1, n)]
		hi := math.Max(p.BendMin+0.01, p.BendMax)
		bend := p.BendMin + rng.Float64()*(hi-p.BendMin)
		if rng.Intn(2) == 0 {
			bend = -bend
		}
		circle := geom.CircleFromEndpointsAndBend(a, b, bend)
		tag := geom.Outward
		if bend > 0 {
			// A positive bend bulges left of the edge direction, which on a
			// counterclockwise polygon is toward the interior.
			tag = geom.Inward
		}
		segs[i] = geom.Segment{Initial: a, Center: circle.Center, Bend: tag}
	}
	return geom.ArcPoly{Segs: segs}
}

// unitDisc samples uniformly from the unit disc by rejection.
func unitDisc(rng *rand.Rand) geom.Coord {
	for {
		v := geom.XY(2*rng.Float64()-1, 2*rng.Float64()-1)
		if geom.Dot(v, v) <= 1 {
			return v
		}
	}
}
