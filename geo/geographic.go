package geo

import "fmt"

// Geographic is a point relative to the reference ellipsoid: a
// latitude measured from the equator, a longitude measured from the
// prime meridian, and an elevation above the ellipsoid surface.
//
// The zero value is the point at 0°N 0°E on the surface.
type Geographic struct {
	latitude  float64
	longitude float64
	elevation float64
}

// New returns the point at the given latitude and longitude, in
// degrees, and elevation, in meters. Each value must lie in its domain
// as given by the Min* and Max* constants.
func New(lat, lon, elevation float64) Geographic {
	Contract(inRange(lat, MinLat, MaxLat), "new", "latitude %v out of [%v, %v]", lat, MinLat, MaxLat)
	Contract(inRange(lon, MinLon, MaxLon), "new", "longitude %v out of [%v, %v]", lon, MinLon, MaxLon)
	Contract(inRange(elevation, MinElevation, MaxElevation), "new", "elevation %v out of [%v, %v]", elevation, MinElevation, MaxElevation)

	return Geographic{
		latitude:  lat,
		longitude: lon,
		elevation: elevation,
	}
}

// Lat returns the latitude in degrees.
func (p Geographic) Lat() float64 { return p.latitude }

// Lon returns the longitude in degrees.
func (p Geographic) Lon() float64 { return p.longitude }

// Elevation returns the elevation in meters.
func (p Geographic) Elevation() float64 { return p.elevation }

// Flatten returns p projected onto the ellipsoid surface, that is
// with an elevation of exactly zero.
func (p Geographic) Flatten() Geographic {
	p.elevation = 0
	return p
}

// Raise returns p with its elevation raised by delta meters, or
// lowered if delta is negative. The result saturates at MinElevation
// and MaxElevation instead of leaving the domain.
func (p Geographic) Raise(delta float64) Geographic {
	p.elevation = clamp(p.elevation+delta, MinElevation, MaxElevation)
	return p
}

// InDelta reports whether every component of p is within delta of the
// corresponding component of q.
func (p Geographic) InDelta(q Geographic, delta float64) bool {
	return inDelta(p.latitude, q.latitude, delta) &&
		inDelta(p.longitude, q.longitude, delta) &&
		inDelta(p.elevation, q.elevation, delta)
}

func (p Geographic) String() string {
	return fmt.Sprintf("(%v, %v, %vm)", p.latitude, p.longitude, p.elevation)
}
