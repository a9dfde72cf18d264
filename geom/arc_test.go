package geom

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArcFromAngles(t *testing.T) {
	t.Run("ccw quarter", func(t *testing.T) {
		a := ArcFromAnglesCCW(0, math.Pi/2, 10, XY(0, 0))
		assert.InDelta(t, math.Pi/2, a.Span, 1e-12)
		assert.InDelta(t, math.Pi/4, a.Mid, 1e-12)
		assert.True(t, CoordsEqual(XY(10, 0), a.StartPoint()))
		assert.True(t, CoordsEqual(XY(0, 10), a.EndPoint()))
	})

	t.Run("cw quarter", func(t *testing.T) {
		a := ArcFromAnglesCW(math.Pi/2, 0, 10, XY(0, 0))
		assert.InDelta(t, -math.Pi/2, a.Span, 1e-12)
		assert.True(t, CoordsEqual(XY(0, 10), a.StartPoint()))
		assert.True(t, CoordsEqual(XY(10, 0), a.EndPoint()))
	})

	t.Run("cw crossing zero", func(t *testing.T) {
		a := ArcFromAnglesCW(1, -1, 5, XY(0, 0))
		assert.InDelta(t, -2, a.Span, 1e-12)
		assert.InDelta(t, 0, a.Mid, 1e-12)
	})
}

func TestArcFromBendAndEndpoints(t *testing.T) {
	a, b := XY(-50, 10), XY(40, 30)
	for _, bend := range []float64{0.3, 0.7, 1.2, -0.5, -1.2} {
		bend := bend
		t.Run(fmt.Sprintf("bend %g", bend), func(t *testing.T) {
			arc := ArcFromBendAndEndpoints(a, b, bend)
			require.True(t, arc.Valid())
			assert.True(t, CoordsEqual(a, arc.StartPoint()), "start %v", arc.StartPoint())
			assert.True(t, CoordsEqual(b, arc.EndPoint()), "end %v", arc.EndPoint())

			// The midpoint bulges |bend| radii off the chord, on the side the
			// sign picks.
			mid := arc.MidPoint()
			height := math.Abs(Det(b.Minus(a).Unit(), mid.Minus(Midpoint(a, b))))
			assert.InDelta(t, math.Abs(bend)*arc.Radius, height, 1e-9)
			side := Det(b.Minus(a), mid.Minus(a))
			assert.Equal(t, bend > 0, side > 0)

			// Positive bend means clockwise traversal about the center.
			assert.Equal(t, bend > 0, arc.Span < 0)
		})
	}
}

func TestArcInSpan(t *testing.T) {
	ccw := ArcFromAnglesCCW(0, math.Pi, 5, XY(0, 0))
	assert.True(t, ccw.InSpan(XY(5, 0)))
	assert.True(t, ccw.InSpan(XY(0, 5)))
	assert.True(t, ccw.InSpan(XY(-5, 0)))
	assert.False(t, ccw.InSpan(XY(0, -5)))

	cw := ArcFromAnglesCW(0, math.Pi, 5, XY(0, 0))
	assert.True(t, cw.InSpan(XY(5, 0)))
	assert.True(t, cw.InSpan(XY(0, -5)))
	assert.True(t, cw.InSpan(XY(-5, 0)))
	assert.False(t, cw.InSpan(XY(0, 5)))
}

func TestArcValid(t *testing.T) {
	good := ArcFromAnglesCCW(0, 1, 5, XY(0, 0))
	assert.True(t, good.Valid())
	assert.False(t, good.WithRadius(0).Valid())
	assert.False(t, good.WithSpan(0).Valid())
	assert.False(t, good.WithRadius(math.NaN()).Valid())
	assert.False(t, Arc{Mid: math.Inf(1), Span: 1, Radius: 5}.Valid())
}

func TestArcIntersect(t *testing.T) {
	// Circles at (0,0) and (6,0), both radius 5, cross at (3, +-4). The first
	// arc covers only the upper crossing; the second covers both.
	upper := ArcFromAnglesCCW(0, math.Pi, 5, XY(0, 0))
	left := ArcFromAnglesCCW(math.Pi/2, 3*math.Pi/2, 5, XY(6, 0))

	ps := upper.Intersect(left)
	require.Len(t, ps, 1)
	assert.True(t, CoordsEqual(XY(3, 4), ps[0]))

	// Same circles, but the first arc's span misses both crossings.
	miss := ArcFromAnglesCCW(math.Pi+0.5, math.Pi+1, 5, XY(0, 0))
	assert.Empty(t, miss.Intersect(left))

	// Invalid arcs never intersect.
	assert.Empty(t, upper.WithRadius(0).Intersect(left))
}

func TestArcDistanceToPoint(t *testing.T) {
	arc := ArcFromAnglesCCW(0, math.Pi, 5, XY(0, 0))
	// Radial hit inside the span.
	assert.InDelta(t, 5, arc.DistanceToPoint(XY(0, 10)), 1e-9)
	assert.InDelta(t, 2, arc.DistanceToPoint(XY(0, 3)), 1e-9)
	// Outside the span the nearest endpoint wins.
	assert.InDelta(t, math.Sqrt(125), arc.DistanceToPoint(XY(0, -10)), 1e-9)
	// On the arc itself.
	assert.InDelta(t, 0, arc.DistanceToPoint(XY(-5, 0)), 1e-9)
}
