// Package pathfind computes minimum-cost routes over a vertexgraph.Graph
// using Dijkstra's algorithm, and reconstructs the ordered connection
// sequence forming the optimal path.
//
// Overview:
//
//   - FindShortestPath is the single entry point: it resolves two raw query
//     points to their nearest graph nodes, applies degeneracy checks, runs a
//     single-source search, and returns the route as an ordered sequence of
//     sphere.Connection values running start→finish.
//   - Absence of a route is a normal, representable result — (nil, false) —
//     never an error. It is returned when the query points are equal, the
//     graph is nil or empty, both points resolve to the same nearest node, or
//     the graph is disconnected between the two resolved nodes.
//
// Algorithm:
//
//   - Classic Dijkstra with a container/heap min-heap and the lazy
//     decrease-key strategy: improved distances push duplicate heap entries,
//     and stale entries are skipped when popped. Relaxation uses strict <, so
//     an equal-cost alternative never displaces a recorded predecessor.
//   - The search stops as soon as the finish node is settled, or when the
//     heap drains (finish unreachable).
//   - Tie-break is deterministic: when several unsettled nodes share the
//     minimum cost, the one with the lowest node index is settled first. This
//     keeps predecessor chains reproducible across runs; total path cost does
//     not depend on it.
//
// Each invocation owns its private search state (cost, predecessor and
// settled tables), so concurrent queries against the same immutable graph
// need no coordination.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for V nodes and E relations.
//   - Space: O(V + E) (heap entries under lazy decrease-key).
//
// Path reconstruction walks predecessor links from finish back to start and
// reverses the emitted segments. A missing predecessor mid-walk is an
// algorithm-invariant violation (every settled non-start node has one) and
// panics rather than returning an error.
package pathfind
