package geo

import "fmt"

// Bounds is an axis-aligned volume in geographic space, delimited by
// a south-west-floor corner and a north-east-top corner. Bounds always
// satisfy Min() <= Max() on every axis.
type Bounds struct {
	min, max Geographic
}

// World returns bounds encompassing the whole supported domain.
// Coordinates outside of it are unsupported.
func World() Bounds {
	return Bounds{
		min: Geographic{latitude: MinLat, longitude: MinLon, elevation: MinElevation},
		max: Geographic{latitude: MaxLat, longitude: MaxLon, elevation: MaxElevation},
	}
}

// Surface returns bounds encompassing the whole ellipsoid surface.
func Surface() Bounds {
	return World().Flatten()
}

// NewBounds returns the bounds delimited by min and max. Every
// component of min must be less than or equal to the corresponding
// component of max.
func NewBounds(min, max Geographic) Bounds {
	Contract(min.latitude <= max.latitude, "new bounds", "south %v above north %v", min.latitude, max.latitude)
	Contract(min.longitude <= max.longitude, "new bounds", "west %v east of east %v", min.longitude, max.longitude)
	Contract(min.elevation <= max.elevation, "new bounds", "floor %v above top %v", min.elevation, max.elevation)

	return Bounds{min: min, max: max}
}

// Min returns the south-west-floor corner of b.
func (b Bounds) Min() Geographic { return b.min }

// Max returns the north-east-top corner of b.
func (b Bounds) Max() Geographic { return b.max }

// West returns the western edge, or minimal longitude, of b.
func (b Bounds) West() float64 { return b.min.longitude }

// East returns the eastern edge, or maximal longitude, of b.
func (b Bounds) East() float64 { return b.max.longitude }

// South returns the southern edge, or minimal latitude, of b.
func (b Bounds) South() float64 { return b.min.latitude }

// North returns the northern edge, or maximal latitude, of b.
func (b Bounds) North() float64 { return b.max.latitude }

// Floor returns the minimal elevation of b.
func (b Bounds) Floor() float64 { return b.min.elevation }

// Top returns the maximal elevation of b.
func (b Bounds) Top() float64 { return b.max.elevation }

// SpanLon returns the difference in degrees between the eastern and
// western edges.
func (b Bounds) SpanLon() float64 { return b.East() - b.West() }

// SpanLat returns the difference in degrees between the northern and
// southern edges.
func (b Bounds) SpanLat() float64 { return b.North() - b.South() }

// Height returns the difference in meters between the top and the
// floor.
func (b Bounds) Height() float64 { return b.Top() - b.Floor() }

// Flatten returns b with both corners set at zero elevation.
func (b Bounds) Flatten() Bounds {
	return Bounds{min: b.min.Flatten(), max: b.max.Flatten()}
}

// Expand returns the smallest bounds containing both b and other.
func (b Bounds) Expand(other Bounds) Bounds {
	return Bounds{
		min: Geographic{
			latitude:  min(b.South(), other.South()),
			longitude: min(b.West(), other.West()),
			elevation: min(b.Floor(), other.Floor()),
		},
		max: Geographic{
			latitude:  max(b.North(), other.North()),
			longitude: max(b.East(), other.East()),
			elevation: max(b.Top(), other.Top()),
		},
	}
}

// Union returns the smallest bounds containing both a and b.
func Union(a, b Bounds) Bounds {
	return a.Expand(b)
}

// Grow moves the western and eastern edges of b outwards by
// horizontal degrees and the southern and northern edges by vertical
// degrees. Edges stop at the limits of the domain. Elevations are
// untouched.
//
// Both amounts must be non-negative, as for Shrink: a negative amount
// could invert b and is reported as a contract violation instead of
// being applied.
func (b Bounds) Grow(horizontal, vertical float64) Bounds {
	Contract(horizontal >= 0, "grow", "negative horizontal amount %v", horizontal)
	Contract(vertical >= 0, "grow", "negative vertical amount %v", vertical)

	b.min.latitude = clamp(b.min.latitude-vertical, MinLat, MaxLat)
	b.max.latitude = clamp(b.max.latitude+vertical, MinLat, MaxLat)
	b.min.longitude = clamp(b.min.longitude-horizontal, MinLon, MaxLon)
	b.max.longitude = clamp(b.max.longitude+horizontal, MinLon, MaxLon)
	return b
}

// Shrink moves the western and eastern edges of b inwards by
// horizontal degrees and the southern and northern edges by vertical
// degrees. Elevations are untouched. Both amounts must be
// non-negative.
//
// If two opposite edges would cross each other, both are placed on the
// center line of b on that axis instead, so the result has a zero span
// on that axis but is never inverted.
func (b Bounds) Shrink(horizontal, vertical float64) Bounds {
	Contract(horizontal >= 0, "shrink", "negative horizontal amount %v", horizontal)
	Contract(vertical >= 0, "shrink", "negative vertical amount %v", vertical)

	center := b.Center()
	south, north := b.South()+vertical, b.North()-vertical
	if south > north {
		south, north = center.latitude, center.latitude
	}
	west, east := b.West()+horizontal, b.East()-horizontal
	if west > east {
		west, east = center.longitude, center.longitude
	}

	b.min.latitude, b.max.latitude = south, north
	b.min.longitude, b.max.longitude = west, east
	return b
}

// Sample returns the point at the normalized coordinates (x, y, z) of
// b, where x runs from west to east, y from south to north and z from
// floor to top. Coordinates in [0, 1] yield points inside of b. Other
// values extrapolate and are not checked, so callers that need a point
// inside of b must clamp them first.
func (b Bounds) Sample(x, y, z float64) Geographic {
	return Geographic{
		latitude:  lerp(b.South(), b.North(), y),
		longitude: lerp(b.West(), b.East(), x),
		elevation: lerp(b.Floor(), b.Top(), z),
	}
}

// Center returns the geographic center of b.
func (b Bounds) Center() Geographic {
	return b.Sample(0.5, 0.5, 0.5)
}

// Contains reports whether p lies inside of b. Points on the faces of
// b are contained.
func (b Bounds) Contains(p Geographic) bool {
	return inRange(p.latitude, b.South(), b.North()) &&
		inRange(p.longitude, b.West(), b.East()) &&
		inRange(p.elevation, b.Floor(), b.Top())
}

// Intersects reports whether b and other share a volume. Bounds that
// only touch along a face or an edge do not intersect.
func (b Bounds) Intersects(other Bounds) bool {
	return (b.West() < other.East()) &&
		(b.East() > other.West()) &&
		(b.South() < other.North()) &&
		(b.North() > other.South()) &&
		(b.Floor() < other.Top()) &&
		(b.Top() > other.Floor())
}

// Faces returns the faces of b that p lies on. It returns FaceNone if
// p is strictly inside of b or not contained in it at all.
func (b Bounds) Faces(p Geographic) Faces {
	if !b.Contains(p) {
		return FaceNone
	}

	var faces Faces
	if p.longitude == b.West() {
		faces |= FaceWest
	}
	if p.longitude == b.East() {
		faces |= FaceEast
	}
	if p.latitude == b.South() {
		faces |= FaceSouth
	}
	if p.latitude == b.North() {
		faces |= FaceNorth
	}
	if p.elevation == b.Floor() {
		faces |= FaceFloor
	}
	if p.elevation == b.Top() {
		faces |= FaceTop
	}
	return faces
}

// InDelta reports whether both corners of b are within delta of the
// corresponding corners of other.
func (b Bounds) InDelta(other Bounds, delta float64) bool {
	return b.min.InDelta(other.min, delta) && b.max.InDelta(other.max, delta)
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%v, %v]", b.min, b.max)
}
