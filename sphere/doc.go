// Package sphere provides the geographic primitives used across spherenav:
// coordinate points, point-to-point connections, celestial bodies with their
// mean radii, and great-circle (haversine) distance between coordinates.
//
// Overview:
//
//   - Point is a latitude/longitude pair in degrees. Equality is exact field
//     equality with no epsilon tolerance; two points that differ by any amount
//     of floating-point noise are distinct.
//   - Connection joins two Points. Direction carries no semantic weight: the
//     cost of a Connection is symmetric.
//   - Body enumerates the eight solar-system planets and maps each to a fixed
//     mean radius in kilometers. RadiusKm is total over the enumeration.
//   - Cost computes the haversine great-circle distance between two Points for
//     a given body radius. Travel is assumed to occur at constant radius; there
//     is no altitude term.
//
// Formula:
//
//	a = sin²(Δφ/2) + cos φ₁ ⋅ cos φ₂ ⋅ sin²(Δλ/2)
//	c = 2 ⋅ atan2(√a, √(1−a))
//	distance = R ⋅ c
//
// where φ is latitude, λ is longitude (both in radians) and R is the body
// radius. For Earth, R = 6371 km.
//
// Complexity: all operations are O(1) pure functions; the package holds no
// state beyond the radius table.
//
// Errors (sentinel):
//
//   - ErrUnknownBody — ParseBody received a name outside the enumeration.
//
// See https://en.wikipedia.org/wiki/Haversine_formula for the derivation.
package sphere
