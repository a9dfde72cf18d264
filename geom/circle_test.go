package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleIntersect(t *testing.T) {
	t.Run("two points in deterministic order", func(t *testing.T) {
		a := NewCircle(5, XY(0, 0))
		b := NewCircle(5, XY(6, 0))
		ps := a.Intersect(b)
		require.Len(t, ps, 2)
		// First point clockwise of the center line, second counterclockwise.
		assert.InDelta(t, 3, ps[0].X, 1e-9)
		assert.InDelta(t, -4, ps[0].Y, 1e-9)
		assert.InDelta(t, 3, ps[1].X, 1e-9)
		assert.InDelta(t, 4, ps[1].Y, 1e-9)

		// Swapping operands swaps the sides.
		sp := b.Intersect(a)
		require.Len(t, sp, 2)
		assert.InDelta(t, 4, sp[0].Y, 1e-9)
		assert.InDelta(t, -4, sp[1].Y, 1e-9)
	})

	t.Run("external tangency", func(t *testing.T) {
		ps := NewCircle(2, XY(0, 0)).Intersect(NewCircle(3, XY(5, 0)))
		require.Len(t, ps, 1)
		assert.True(t, CoordsEqual(XY(2, 0), ps[0]))
	})

	t.Run("disjoint", func(t *testing.T) {
		assert.Empty(t, NewCircle(1, XY(0, 0)).Intersect(NewCircle(1, XY(10, 0))))
	})

	t.Run("contained", func(t *testing.T) {
		assert.Empty(t, NewCircle(5, XY(0, 0)).Intersect(NewCircle(1, XY(1, 0))))
	})

	t.Run("concentric", func(t *testing.T) {
		assert.Empty(t, NewCircle(5, XY(1, 1)).Intersect(NewCircle(5, XY(1, 1))))
		assert.Empty(t, NewCircle(5, XY(1, 1)).Intersect(NewCircle(2, XY(1, 1))))
	})

	t.Run("negative radii intersect by magnitude", func(t *testing.T) {
		ps := NewCircle(-5, XY(0, 0)).Intersect(NewCircle(-5, XY(6, 0)))
		require.Len(t, ps, 2)
		assert.InDelta(t, 3, ps[0].X, 1e-9)
		assert.InDelta(t, -4, ps[0].Y, 1e-9)
	})
}

func TestCircleFromThreePoints(t *testing.T) {
	c := CircleFromThreePoints(XY(7, 1), XY(2, 6), XY(-3, 1))
	assert.InDelta(t, 5, c.Radius, 1e-9)
	assert.InDelta(t, 2, c.Center.X, 1e-9)
	assert.InDelta(t, 1, c.Center.Y, 1e-9)

	// Collinear points have no circle; the result is non-finite rather than
	// a panic.
	c = CircleFromThreePoints(XY(0, 0), XY(1, 1), XY(2, 2))
	assert.False(t, isFinite(c.Radius) && isFinite(c.Center.X) && isFinite(c.Center.Y))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func TestCircleFromEndpointsAndBend(t *testing.T) {
	a, b := XY(-1, 0), XY(1, 0)

	t.Run("positive bend bulges left of the chord", func(t *testing.T) {
		c := CircleFromEndpointsAndBend(a, b, 0.5)
		assert.InDelta(t, 2/math.Sqrt(3), c.Radius, 1e-9)
		assert.InDelta(t, 0, c.Center.X, 1e-9)
		// The extreme point sits above the chord, so the center is below it.
		assert.InDelta(t, -1/math.Sqrt(3), c.Center.Y, 1e-9)
		assert.InDelta(t, c.Radius, a.DistanceFrom(c.Center), 1e-9)
		assert.InDelta(t, c.Radius, b.DistanceFrom(c.Center), 1e-9)
	})

	t.Run("negative bend mirrors across the chord", func(t *testing.T) {
		c := CircleFromEndpointsAndBend(a, b, -0.5)
		assert.InDelta(t, 2/math.Sqrt(3), c.Radius, 1e-9)
		assert.InDelta(t, 1/math.Sqrt(3), c.Center.Y, 1e-9)
	})

	t.Run("bend one is a semicircle", func(t *testing.T) {
		c := CircleFromEndpointsAndBend(a, b, 1)
		assert.InDelta(t, 1, c.Radius, 1e-9)
		assert.True(t, CoordsEqual(XY(0, 0), c.Center))
	})
}

func TestThreeCircleTangent(t *testing.T) {
	t.Run("symmetric unit circles", func(t *testing.T) {
		// Three unit circles whose centers sit at distance 2 from the origin.
		// The circle externally tangent to all three is the unit circle at the
		// origin; the enclosing solution comes out with a negative radius.
		var cs [3]Circle
		for i, deg := range []float64{90, 210, 330} {
			cs[i] = NewCircle(1, FromAngle(deg*math.Pi/180).Times(2))
		}
		sols := ThreeCircleTangent(cs[0], cs[1], cs[2])
		require.Len(t, sols, 2)
		assert.InDelta(t, -3, sols[0].Radius, 1e-9)
		assert.True(t, CoordsEqual(XY(0, 0), sols[0].Center))
		assert.InDelta(t, 1, sols[1].Radius, 1e-9)
		assert.True(t, CoordsEqual(XY(0, 0), sols[1].Center))
	})

	t.Run("mixed radii", func(t *testing.T) {
		a := NewCircle(60, XY(100, -50))
		b := NewCircle(70, XY(-100, -50))
		c := NewCircle(150, XY(0, 100))
		sols := ThreeCircleTangent(a, b, c)
		require.NotEmpty(t, sols)
		for _, s := range sols {
			for _, in := range []Circle{a, b, c} {
				// Each root satisfies the squared tangency condition against
				// every input.
				d := s.Center.DistanceFrom(in.Center)
				assert.InDelta(t, math.Abs(s.Radius+in.Radius), d, 1e-6)
			}
		}
	})

	t.Run("collinear centers are unsolvable", func(t *testing.T) {
		a := NewCircle(1, XY(-3, 0))
		b := NewCircle(2, XY(0, 0))
		c := NewCircle(1, XY(3, 0))
		assert.Empty(t, ThreeCircleTangent(a, b, c))
	})
}
