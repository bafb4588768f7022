// Package spatialref converts geographic coordinates into the
// Cartesian frame used for rendering.
package spatialref

import (
	"fmt"
	"math"

	"deedles.dev/telluris/geo"
)

// Reference provides transformations from geographic coordinates to
// Cartesian coordinates. Implementations must be safe for concurrent
// use.
type Reference interface {
	// Convert returns the Cartesian position of geo.
	Convert(geo.Geographic) Vec3

	// Normal returns the unit vector pointing up at geo, in the frame
	// of the implementation rather than in render space.
	Normal(geo.Geographic) Vec3
}

// ConvertAll converts every point of src with r and stores the results
// in the matching elements of dst, which must be at least as long as
// src.
func ConvertAll[R Reference](r R, dst []Vec3, src []geo.Geographic) {
	geo.Contract(len(dst) >= len(src), "convert all", "output of length %v cannot hold %v positions", len(dst), len(src))

	for i, p := range src {
		dst[i] = r.Convert(p)
	}
}

// Vec3 is a single-precision vector, as consumed by the GPU.
type Vec3 struct {
	X, Y, Z float32
}

// V3 is shorthand for Vec3{X: x, Y: y, Z: z}.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Sub returns v-w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Dot returns the dot product of v and w, computed in double
// precision.
func (v Vec3) Dot(w Vec3) float64 {
	return float64(v.X)*float64(w.X) + float64(v.Y)*float64(w.Y) + float64(v.Z)*float64(w.Z)
}

// Length returns the length of v, computed in double precision.
func (v Vec3) Length() float64 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return math.Sqrt(x*x + y*y + z*z)
}

// InDelta reports whether every component of v is within delta of the
// corresponding component of w.
func (v Vec3) InDelta(w Vec3, delta float32) bool {
	d := v.Sub(w)
	return (d.X <= delta) && (d.X >= -delta) &&
		(d.Y <= delta) && (d.Y >= -delta) &&
		(d.Z <= delta) && (d.Z >= -delta)
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// dvec3 is the double-precision vector used for intermediate results.
type dvec3 struct {
	x, y, z float64
}

func (v dvec3) add(w dvec3) dvec3 { return dvec3{v.x + w.x, v.y + w.y, v.z + w.z} }

func (v dvec3) mul(w dvec3) dvec3 { return dvec3{v.x * w.x, v.y * w.y, v.z * w.z} }

func (v dvec3) scale(s float64) dvec3 { return dvec3{v.x * s, v.y * s, v.z * s} }

func (v dvec3) dot(w dvec3) float64 { return v.x*w.x + v.y*w.y + v.z*w.z }

// render narrows v to single precision and swaps its Y and Z axes so
// that the polar axis points up in render space.
func (v dvec3) render() Vec3 {
	return Vec3{X: float32(v.x), Y: float32(v.z), Z: float32(v.y)}
}
