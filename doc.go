// Package spherenav computes minimum-cost routes between geographic points on
// the surface of a celestial body, where cost is great-circle distance and
// the navigable topology is a caller-supplied set of point-to-point
// connections.
//
// The module is organized as small, focused packages:
//
//	sphere/      — coordinate points, connections, celestial bodies, haversine cost
//	vertexgraph/ — indexed adjacency graph built from raw connections + nearest-node locator
//	pathfind/    — Dijkstra shortest-path search with path reconstruction
//	routefile/   — YAML route-network loader
//	server/      — JSON HTTP API over a built graph
//	cmd/         — spherenav (CLI) and spherenav-server entrypoints
//
// Typical use:
//
//	network, err := routefile.Load("routes.yaml")
//	if err != nil { ... }
//	graph, err := network.Build()
//	if err != nil { ... }
//	path, found := pathfind.FindShortestPath(start, finish, graph)
//
// Graphs are built once and immutable thereafter; any number of concurrent
// queries may run against the same graph without coordination. Construction
// failures (empty connection set, self-loop connections) are terminal for
// that build attempt, while an absent route at query time is a normal result,
// not an error.
package spherenav
