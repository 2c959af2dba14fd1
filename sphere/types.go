// Package sphere defines coordinate and connection value types.
// This file declares Point and Connection; the Body enumeration lives in
// body.go and the distance computation in haversine.go.
package sphere

import "fmt"

// Point is a geographic coordinate on the surface of a celestial body.
//
// Lat is the angle between the position and the equator, in degrees,
// meaningful over [-90, 90]. Lng is the angle between the position and the
// prime meridian, in degrees, meaningful over [-180, 180]. Point is an
// immutable value type: construct a new one instead of mutating.
type Point struct {
	Lat float64 // latitude, degrees
	Lng float64 // longitude, degrees
}

// NewPoint returns the Point at the given latitude and longitude, in degrees.
func NewPoint(lat, lng float64) Point {
	return Point{Lat: lat, Lng: lng}
}

// Equal reports whether p and q are the same coordinate.
// Equality is exact: no epsilon tolerance is applied.
func (p Point) Equal(q Point) bool {
	return p.Lat == q.Lat && p.Lng == q.Lng
}

// String renders the point as "Point(lat, lng)".
func (p Point) String() string {
	return fmt.Sprintf("Point(%v, %v)", p.Lat, p.Lng)
}

// Connection joins two Points. Direction carries no semantic weight; a
// Connection from A to B costs exactly as much as one from B to A.
//
// A Connection whose endpoints are equal is a self-loop and is rejected by
// graph construction (vertexgraph.Build).
type Connection struct {
	Start  Point
	Finish Point
}

// NewConnection returns the Connection between start and finish.
func NewConnection(start, finish Point) Connection {
	return Connection{Start: start, Finish: finish}
}

// Equal reports whether c and d join the same ordered endpoint pair.
func (c Connection) Equal(d Connection) bool {
	return c.Start.Equal(d.Start) && c.Finish.Equal(d.Finish)
}

// String renders the connection as "Connection(Point(...), Point(...))".
func (c Connection) String() string {
	return fmt.Sprintf("Connection(%s, %s)", c.Start, c.Finish)
}
