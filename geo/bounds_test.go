package geo_test

import (
	"math/rand/v2"
	"testing"

	"deedles.dev/telluris/geo"
	"deedles.dev/telluris/geo/geotest"
	"github.com/stretchr/testify/require"
)

func TestWorldContainsAllValidCoordinates(t *testing.T) {
	geotest.Check(t, func(t *testing.T, r *rand.Rand) {
		require.True(t, geo.World().Contains(geotest.Geographic(r)))
	})
}

func TestSurface(t *testing.T) {
	s := geo.Surface()
	require.Equal(t, geo.New(geo.MinLat, geo.MinLon, 0), s.Min())
	require.Equal(t, geo.New(geo.MaxLat, geo.MaxLon, 0), s.Max())
	require.Equal(t, 0.0, s.Height())
}

func TestNewBoundsRejectsInvertedCorners(t *testing.T) {
	lo, hi := geo.New(-10, -20, 0), geo.New(10, 20, 100)
	require.NotPanics(t, func() { geo.NewBounds(lo, hi) })
	require.NotPanics(t, func() { geo.NewBounds(lo, lo) })

	geotest.RequireContractViolation(t, func() { geo.NewBounds(hi, lo) })
	geotest.RequireContractViolation(t, func() { geo.NewBounds(geo.New(11, -20, 0), hi) })
	geotest.RequireContractViolation(t, func() { geo.NewBounds(geo.New(-10, 21, 0), hi) })
	geotest.RequireContractViolation(t, func() { geo.NewBounds(geo.New(-10, -20, 101), hi) })
}

func TestAccessors(t *testing.T) {
	b := geo.NewBounds(geo.New(-10, -20, -100), geo.New(30, 40, 900))
	require.Equal(t, -20.0, b.West())
	require.Equal(t, 40.0, b.East())
	require.Equal(t, -10.0, b.South())
	require.Equal(t, 30.0, b.North())
	require.Equal(t, -100.0, b.Floor())
	require.Equal(t, 900.0, b.Top())
	require.Equal(t, 60.0, b.SpanLon())
	require.Equal(t, 40.0, b.SpanLat())
	require.Equal(t, 1000.0, b.Height())
	require.Equal(t, geo.New(10, 10, 400), b.Center())
}

func TestContainsItsCorners(t *testing.T) {
	geotest.Check(t, func(t *testing.T, r *rand.Rand) {
		g := geotest.Bounds(r)
		for _, lat := range []float64{g.South(), g.North()} {
			for _, lon := range []float64{g.West(), g.East()} {
				for _, elev := range []float64{g.Floor(), g.Top()} {
					require.True(t, g.Contains(geo.New(lat, lon, elev)))
				}
			}
		}
	})
}

func TestShrinkThenGrowProducesTheSameBounds(t *testing.T) {
	geotest.Check(t, func(t *testing.T, r *rand.Rand) {
		g := geotest.Bounds(r)
		x := g.SpanLon() * 0.5 * r.Float64()
		y := g.SpanLat() * 0.5 * r.Float64()

		geotest.RequireBoundsInDelta(t, g, g.Shrink(x, y).Grow(x, y), 0.001)
	})
}

func TestShrinkCollapsesToCenter(t *testing.T) {
	b := geo.NewBounds(geo.New(-10, -20, 0), geo.New(10, 20, 100))

	s := b.Shrink(30, 1)
	require.Equal(t, 0.0, s.West())
	require.Equal(t, 0.0, s.East())
	require.Equal(t, -9.0, s.South())
	require.Equal(t, 9.0, s.North())
	require.Equal(t, b.Floor(), s.Floor())
	require.Equal(t, b.Top(), s.Top())

	s = b.Shrink(1, 15)
	require.Equal(t, -19.0, s.West())
	require.Equal(t, 19.0, s.East())
	require.Equal(t, 0.0, s.South())
	require.Equal(t, 0.0, s.North())

	s = b.Shrink(20, 10)
	require.Equal(t, 0.0, s.SpanLon())
	require.Equal(t, 0.0, s.SpanLat())
}

func TestShrinkNeverInverts(t *testing.T) {
	geotest.Check(t, func(t *testing.T, r *rand.Rand) {
		g := geotest.Bounds(r)
		s := g.Shrink(400*r.Float64(), 200*r.Float64())
		require.LessOrEqual(t, s.West(), s.East())
		require.LessOrEqual(t, s.South(), s.North())
		require.Equal(t, g.Floor(), s.Floor())
		require.Equal(t, g.Top(), s.Top())
	})
}

func TestShrinkRejectsNegativeAmounts(t *testing.T) {
	geotest.RequireContractViolation(t, func() { geo.World().Shrink(-1, 0) })
	geotest.RequireContractViolation(t, func() { geo.World().Shrink(0, -1) })
}

func TestGrow(t *testing.T) {
	b := geo.NewBounds(geo.New(-10, -20, 0), geo.New(10, 20, 100))

	g := b.Grow(5, 2)
	require.Equal(t, geo.NewBounds(geo.New(-12, -25, 0), geo.New(12, 25, 100)), g)

	g = b.Grow(500, 500)
	require.Equal(t, geo.MinLon, g.West())
	require.Equal(t, geo.MaxLon, g.East())
	require.Equal(t, geo.MinLat, g.South())
	require.Equal(t, geo.MaxLat, g.North())
	require.Equal(t, b.Floor(), g.Floor())
	require.Equal(t, b.Top(), g.Top())

	geotest.RequireContractViolation(t, func() { b.Grow(-1, 0) })
	geotest.RequireContractViolation(t, func() { b.Grow(0, -1) })
}

func TestGrowStaysInWorld(t *testing.T) {
	geotest.Check(t, func(t *testing.T, r *rand.Rand) {
		g := geotest.Bounds(r).Grow(400*r.Float64(), 200*r.Float64())
		require.True(t, geo.World().Contains(g.Min()))
		require.True(t, geo.World().Contains(g.Max()))
	})
}

func TestSampleInTheUnitRangeNeverReturnsAnOutsidePoint(t *testing.T) {
	geotest.Check(t, func(t *testing.T, r *rand.Rand) {
		g := geotest.Bounds(r)
		p := g.Sample(geotest.Unit(r))
		require.True(t, g.Contains(p), "%v not in %v", p, g)
	})
}

func TestSampleEndpointsAreExact(t *testing.T) {
	geotest.Check(t, func(t *testing.T, r *rand.Rand) {
		g := geotest.Bounds(r)
		require.Equal(t, g.Min(), g.Sample(0, 0, 0))
		require.Equal(t, g.Max(), g.Sample(1, 1, 1))
		require.True(t, g.Contains(g.Center()))
	})
}

func TestSampleExtrapolates(t *testing.T) {
	b := geo.NewBounds(geo.New(0, 0, 0), geo.New(10, 10, 10))
	p := b.Sample(2, -1, 1.5)
	require.Equal(t, 20.0, p.Lon())
	require.Equal(t, -10.0, p.Lat())
	require.Equal(t, 15.0, p.Elevation())
	require.False(t, b.Contains(p))
}

func TestExpandProducesCorrectValues(t *testing.T) {
	geotest.Check(t, func(t *testing.T, r *rand.Rand) {
		r1, r2 := geotest.Bounds(r), geotest.Bounds(r)
		r3 := r1.Expand(r2)

		require.InDelta(t, max(r1.North(), r2.North()), r3.North(), 0.001)
		require.InDelta(t, max(r1.East(), r2.East()), r3.East(), 0.001)
		require.InDelta(t, max(r1.Top(), r2.Top()), r3.Top(), 0.001)
		require.InDelta(t, min(r1.South(), r2.South()), r3.South(), 0.001)
		require.InDelta(t, min(r1.West(), r2.West()), r3.West(), 0.001)
		require.InDelta(t, min(r1.Floor(), r2.Floor()), r3.Floor(), 0.001)

		require.Equal(t, r3, geo.Union(r2, r1))
	})
}

func TestFlattenBounds(t *testing.T) {
	geotest.Check(t, func(t *testing.T, r *rand.Rand) {
		g := geotest.Bounds(r)
		f := g.Flatten()
		require.Equal(t, g.Min().Flatten(), f.Min())
		require.Equal(t, g.Max().Flatten(), f.Max())
	})
}

func TestContainsIsInclusive(t *testing.T) {
	b := geo.NewBounds(geo.New(0, 0, 0), geo.New(10, 10, 10))

	tests := []struct {
		name  string
		p     geo.Geographic
		in    bool
		faces geo.Faces
	}{
		{"center", geo.New(5, 5, 5), true, geo.FaceNone},
		{"west face", geo.New(5, 0, 5), true, geo.FaceWest},
		{"north east edge", geo.New(10, 10, 5), true, geo.FaceNorth | geo.FaceEast},
		{"top corner", geo.New(0, 10, 10), true, geo.FaceSouth | geo.FaceEast | geo.FaceTop},
		{"outside", geo.New(11, 5, 5), false, geo.FaceNone},
		{"below", geo.New(5, 5, -1), false, geo.FaceNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.in, b.Contains(tt.p))
			require.Equal(t, tt.faces, b.Faces(tt.p))
		})
	}
}

func TestIntersectsIsStrict(t *testing.T) {
	b := geo.NewBounds(geo.New(0, 0, 0), geo.New(10, 10, 10))

	tests := []struct {
		name  string
		other geo.Bounds
		want  bool
	}{
		{"self", b, true},
		{"overlap", geo.NewBounds(geo.New(5, 5, 5), geo.New(15, 15, 15)), true},
		{"inside", geo.NewBounds(geo.New(2, 2, 2), geo.New(3, 3, 3)), true},
		{"touching east face", geo.NewBounds(geo.New(0, 10, 0), geo.New(10, 20, 10)), false},
		{"touching top face", geo.NewBounds(geo.New(0, 0, 10), geo.New(10, 10, 20)), false},
		{"touching corner", geo.NewBounds(geo.New(10, 10, 10), geo.New(20, 20, 20)), false},
		{"disjoint", geo.NewBounds(geo.New(20, 20, 0), geo.New(30, 30, 10)), false},
		{"flat inside", geo.NewBounds(geo.New(2, 2, 0), geo.New(3, 3, 0)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, b.Intersects(tt.other))
			require.Equal(t, tt.want, tt.other.Intersects(b))
		})
	}

	shared := geo.New(5, 10, 5)
	east := geo.NewBounds(geo.New(0, 10, 0), geo.New(10, 20, 10))
	require.True(t, b.Contains(shared) && east.Contains(shared))
}

func TestFacesString(t *testing.T) {
	require.Equal(t, "none", geo.FaceNone.String())
	require.Equal(t, "west", geo.FaceWest.String())
	require.Equal(t, "south|north|top", (geo.FaceTop | geo.FaceSouth | geo.FaceNorth).String())
}
