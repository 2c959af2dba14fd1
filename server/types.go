// Package server defines the request/response shapes of the HTTP API and the
// caller-level validation sentinel.
package server

import (
	"errors"

	"github.com/astrorover/spherenav/sphere"
)

// ErrInvalidParameter indicates a request payload failed caller-level
// validation: a missing coordinate, or one outside the legal latitude or
// longitude range. It maps to HTTP 400.
var ErrInvalidParameter = errors.New("server: invalid parameter")

// pointPayload is one coordinate in a request body. Pointer fields
// distinguish an absent value from a legitimate zero.
type pointPayload struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
}

// toPoint converts a validated payload coordinate.
func (p *pointPayload) toPoint() sphere.Point {
	return sphere.NewPoint(*p.Lat, *p.Lng)
}

// routeRequest is the POST /api/route payload.
type routeRequest struct {
	Start  *pointPayload `json:"start" validate:"required"`
	Finish *pointPayload `json:"finish" validate:"required"`
}

// pointJSON is a coordinate in a response.
type pointJSON struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// segmentJSON is one leg of a returned route.
type segmentJSON struct {
	Start  pointJSON `json:"start"`
	Finish pointJSON `json:"finish"`
	CostKm float64   `json:"cost_km"`
}

// routeResponse is the POST /api/route response body.
type routeResponse struct {
	Found    bool          `json:"found"`
	Body     string        `json:"body"`
	Segments []segmentJSON `json:"segments,omitempty"`
	TotalKm  float64       `json:"total_km"`
}

// bodyJSON is one entry of the GET /api/bodies response.
type bodyJSON struct {
	Name     string  `json:"name"`
	RadiusKm float64 `json:"radius_km"`
}

// errorResponse is the body of any non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}
