package sphere

import "math"

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180

// Cost returns the great-circle distance between a and b along the surface of
// a sphere with the given radius, via the haversine formula:
//
//	hav = sin²(Δφ/2) + cos φ₁ ⋅ cos φ₂ ⋅ sin²(Δλ/2)
//	c   = 2 ⋅ atan2(√hav, √(1−hav))
//	d   = radius ⋅ c
//
// The result is in the unit of radiusKm, is never negative, and is symmetric
// in a and b. Cost(p, p, r) == 0 for any p and r. Altitude differences are
// not modeled: travel is assumed to occur at constant radius.
//
// Complexity: O(1).
func Cost(a, b Point, radiusKm float64) float64 {
	// 1) Convert the latitude/longitude deltas and both latitudes to radians.
	dLat := (b.Lat - a.Lat) * degToRad
	dLng := (b.Lng - a.Lng) * degToRad
	lat1 := a.Lat * degToRad
	lat2 := b.Lat * degToRad

	// 2) Haversine of the central angle.
	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	hav := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	// 3) Invert to the central angle and scale by the radius.
	c := 2 * math.Atan2(math.Sqrt(hav), math.Sqrt(1-hav))

	return radiusKm * c
}

// Cost returns the great-circle length of the connection on a sphere of the
// given radius. Equivalent to Cost(c.Start, c.Finish, radiusKm).
func (c Connection) Cost(radiusKm float64) float64 {
	return Cost(c.Start, c.Finish, radiusKm)
}
