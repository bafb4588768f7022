// Package geo provides geographic coordinates and axis-aligned
// geographic volumes.
//
// Angles are expressed in degrees and elevations in meters above (or
// below) the reference ellipsoid. Every type in this package is an
// immutable value: operations return new values instead of modifying
// their receivers, so values may be copied and shared between
// goroutines freely.
//
// Preconditions documented on functions are contracts. Violating one
// is a programming error and causes a panic with a *ContractError
// rather than a returned error.
package geo

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Domain limits of the supported coordinates.
const (
	// MinLat is the southernmost latitude.
	MinLat = -90.0
	// MaxLat is the northernmost latitude.
	MaxLat = 90.0
	// MinLon is the westernmost longitude.
	MinLon = -180.0
	// MaxLon is the easternmost longitude.
	MaxLon = 180.0

	// MinElevation is the deepest supported elevation, roughly the
	// bottom of the deepest ocean trench.
	MinElevation = -11_000.0
	// MaxElevation is the highest supported elevation, well above the
	// geostationary orbit.
	MaxElevation = 50_000_000.0
)

// ContractError is the panic value used when a caller violates the
// precondition of an operation.
type ContractError struct {
	Op  string
	Msg string
}

func (err *ContractError) Error() string {
	return fmt.Sprintf("geo: %v: %v", err.Op, err.Msg)
}

// Contract panics with a *ContractError built from op and the
// formatted message if ok is false.
func Contract(ok bool, op, format string, args ...any) {
	if ok {
		return
	}
	panic(&ContractError{Op: op, Msg: fmt.Sprintf(format, args...)})
}

// Faces is a bitmask representing zero or more faces of a Bounds.
type Faces uint32

const (
	FaceNone Faces = 0
	FaceWest Faces = 1 << (iota - 1)
	FaceEast
	FaceSouth
	FaceNorth
	FaceFloor
	FaceTop
)

func (f Faces) String() string {
	if f == FaceNone {
		return "none"
	}

	names := [...]string{"west", "east", "south", "north", "floor", "top"}
	var buf []byte
	for i, name := range names {
		if f&(1<<i) == 0 {
			continue
		}
		if len(buf) > 0 {
			buf = append(buf, '|')
		}
		buf = append(buf, name...)
	}
	return string(buf)
}

// lerp interpolates from a to b. For t in [0, 1] the result never
// rounds outside of [a, b], and t of 0 and 1 yield a and b exactly.
func lerp[T constraints.Float](a, b, t T) T {
	if t <= 0.5 {
		return a + (b-a)*t
	}
	return b - (b-a)*(1-t)
}

func clamp[T constraints.Float](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

func inDelta[T constraints.Float](a, b, delta T) bool {
	d := a - b
	return (d <= delta) && (d >= -delta)
}

// inRange reports whether v lies in [lo, hi]. NaN is never in range.
func inRange[T constraints.Float](v, lo, hi T) bool {
	return (v >= lo) && (v <= hi)
}
