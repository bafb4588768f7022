// Package geotest provides helpers for testing code that uses package
// geo, mostly generators of random but valid values for property
// tests.
package geotest

import (
	"math/rand/v2"
	"testing"

	"deedles.dev/telluris/geo"
	"github.com/stretchr/testify/require"
)

// Iterations is the number of random cases a property test should
// check.
const Iterations = 500

// Rand returns a deterministic source of randomness for t. The seed is
// derived from the test name so that failures are reproducible.
func Rand(t testing.TB) *rand.Rand {
	var seed uint64
	for _, c := range t.Name() {
		seed = seed*31 + uint64(c)
	}
	t.Logf("seed: %v", seed)
	return rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))
}

// Check runs prop Iterations times with values drawn from r.
func Check(t *testing.T, prop func(t *testing.T, r *rand.Rand)) {
	t.Helper()

	r := Rand(t)
	for range Iterations {
		prop(t, r)
		if t.Failed() {
			return
		}
	}
}

func between(r *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Geographic returns a random point of the valid domain.
func Geographic(r *rand.Rand) geo.Geographic {
	return geo.New(
		between(r, geo.MinLat, geo.MaxLat),
		between(r, geo.MinLon, geo.MaxLon),
		between(r, geo.MinElevation, geo.MaxElevation),
	)
}

// Bounds returns random valid bounds. The corners are two random
// points sorted component-wise.
func Bounds(r *rand.Rand) geo.Bounds {
	a, b := Geographic(r), Geographic(r)
	return geo.NewBounds(
		geo.New(min(a.Lat(), b.Lat()), min(a.Lon(), b.Lon()), min(a.Elevation(), b.Elevation())),
		geo.New(max(a.Lat(), b.Lat()), max(a.Lon(), b.Lon()), max(a.Elevation(), b.Elevation())),
	)
}

// Unit returns a random normalized coordinate triplet in [0, 1).
func Unit(r *rand.Rand) (x, y, z float64) {
	return r.Float64(), r.Float64(), r.Float64()
}

// RequireInDelta fails t immediately if any component of actual is
// further than delta from the one of expected.
func RequireInDelta(t testing.TB, expected, actual geo.Geographic, delta float64) {
	t.Helper()
	require.Truef(t, expected.InDelta(actual, delta), "expected %v, got %v (delta %v)", expected, actual, delta)
}

// RequireBoundsInDelta fails t immediately if any corner of actual is
// further than delta from the one of expected.
func RequireBoundsInDelta(t testing.TB, expected, actual geo.Bounds, delta float64) {
	t.Helper()
	require.Truef(t, expected.InDelta(actual, delta), "expected %v, got %v (delta %v)", expected, actual, delta)
}

// RequireContractViolation fails t unless f panics with a
// *geo.ContractError.
func RequireContractViolation(t testing.TB, f func()) {
	t.Helper()

	var v any
	func() {
		defer func() { v = recover() }()
		f()
	}()

	require.NotNil(t, v, "expected a contract violation")
	require.IsType(t, (*geo.ContractError)(nil), v)
}
