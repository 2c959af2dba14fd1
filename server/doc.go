// Package server exposes a route network over a small JSON HTTP API.
//
// Endpoints:
//
//   - POST /api/route  — body {"start": {"lat", "lng"}, "finish": {"lat", "lng"}};
//     responds with the optimal segment sequence, its total length, and a
//     found flag. A query with no route is a normal 200 response with
//     found=false, never an error status.
//   - GET  /api/bodies — the enumerated celestial bodies with their radii.
//   - GET  /metrics    — Prometheus metrics (query counts by outcome, latency).
//
// Request payloads are validated before they reach the core: coordinates must
// be present and within latitude [-90, 90] and longitude [-180, 180]. A
// violation is the caller-level InvalidParameter kind (ErrInvalidParameter)
// and maps to HTTP 400. The core packages never raise it.
//
// The handler holds one immutable graph built at startup; requests only read
// it, so no locking is involved (see vertexgraph for the concurrency
// contract).
package server
