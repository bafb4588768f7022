package spatialref

import (
	"math"

	"deedles.dev/telluris/geo"
)

// Semi-axes of the WGS 84 ellipsoid, in meters.
const (
	WGS84SemiMajorAxis = 6_378_137.0
	WGS84SemiMinorAxis = 6_356_752.314_245
)

// Ellipsoid is an oblate spheroid approximating the shape of a body.
type Ellipsoid struct {
	// SemiMajorAxis is the equatorial radius in meters.
	SemiMajorAxis float64

	// SemiMinorAxis is the polar radius in meters.
	SemiMinorAxis float64
}

// WGS84 is the reference ellipsoid of the World Geodetic System 1984.
var WGS84 = Ellipsoid{
	SemiMajorAxis: WGS84SemiMajorAxis,
	SemiMinorAxis: WGS84SemiMinorAxis,
}

func (e Ellipsoid) radiiSquared() dvec3 {
	a2 := e.SemiMajorAxis * e.SemiMajorAxis
	return dvec3{a2, a2, e.SemiMinorAxis * e.SemiMinorAxis}
}

var _ Reference = ECEF{}

// ECEF is the Earth-centered, Earth-fixed reference.
//
// Internally, the pole lies on the positive Z axis, the intersection
// of the prime meridian and the equator (0°N 0°E) on the positive X
// axis and 0°N 90°E on the positive Y axis. Returned vectors have
// their Y and Z axes swapped so that the pole points up (positive Y)
// in render space and 0°N 90°E lies on the positive Z axis.
//
// The zero value uses the WGS84 ellipsoid.
type ECEF struct {
	Ellipsoid Ellipsoid
}

// NewECEF returns an ECEF reference on the ellipsoid e.
func NewECEF(e Ellipsoid) ECEF {
	return ECEF{Ellipsoid: e}
}

func (r ECEF) ellipsoid() Ellipsoid {
	if r.Ellipsoid == (Ellipsoid{}) {
		return WGS84
	}
	return r.Ellipsoid
}

// Convert returns the position of p relative to the center of the
// ellipsoid.
func (r ECEF) Convert(p geo.Geographic) Vec3 {
	// See "3D Engine Design for Virtual Globes", Cozzi and Ring,
	// section 2.3.
	n := direction(p)
	k := r.ellipsoid().radiiSquared().mul(n)
	gamma := math.Sqrt(k.dot(n))
	surface := k.scale(1 / gamma)

	return surface.add(n.scale(p.Elevation())).render()
}

// Normal returns the unit vector n pointing away from the surface at
// the latitude and longitude of p, narrowed to single precision. The
// elevation of p is ignored.
//
// Unlike the positions returned by Convert, n is expressed in the
// ellipsoid frame, with the pole on the positive Z axis. It is the
// geodetic surface normal at the foot of p, which is not in general
// parallel to the position returned by Convert except on the poles and
// the equator.
func (r ECEF) Normal(p geo.Geographic) Vec3 {
	n := direction(p)
	return Vec3{X: float32(n.x), Y: float32(n.y), Z: float32(n.z)}
}

// RenderNormal is the same as [ECEF.Normal] except that the result has
// its Y and Z axes swapped like the positions returned by Convert, so
// that it lies in the same render-space frame.
func (r ECEF) RenderNormal(p geo.Geographic) Vec3 {
	return direction(p).render()
}

func direction(p geo.Geographic) dvec3 {
	lat, lon := radians(p.Lat()), radians(p.Lon())
	sinLat, cosLat := math.Sincos(lat)
	sinLon, cosLon := math.Sincos(lon)

	return dvec3{
		x: cosLat * cosLon,
		y: cosLat * sinLon,
		z: sinLat,
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
