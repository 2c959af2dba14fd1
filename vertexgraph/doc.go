// Package vertexgraph builds and queries the indexed adjacency graph at the
// heart of spherenav.
//
// Overview:
//
//   - Build consumes an unordered list of sphere.Connection values and a
//     celestial body, and produces an immutable Graph: a growable arena of
//     nodes plus per-node adjacency expressed as integer indices into that
//     same arena. No pointers between nodes, no ownership cycles.
//   - Node identity is coordinate identity: two connections that mention the
//     same exact coordinate share one node. Deduplication is exact-equality
//     based — coordinates differing by floating-point noise are distinct
//     nodes. This is a deliberate, documented property, not a defect.
//   - The adjacency relation is symmetric: if node i records (j, c), node j
//     records (i, c) with the same cost. Re-inserting the same logical edge is
//     idempotent.
//   - Nearest locates the graph node closest (by great-circle distance) to an
//     arbitrary query point via a linear scan.
//
// Construction validates before any mutation: an empty connection list, or any
// connection whose endpoints are equal (a self-loop), fails with
// ErrDataItemIncorrect and no partial graph is returned.
//
// Once built, a Graph is read-only. It holds no per-query state, so any number
// of concurrent readers may query it without locking, provided construction is
// not interleaved with queries.
//
// Complexity:
//
//   - Build: O(C·N) time for C connections and N distinct coordinates (node
//     lookup is a linear scan over the arena), O(N + C) space.
//   - Nearest: O(N) time, O(1) space.
//
// Errors (sentinel):
//
//   - ErrDataItemIncorrect — the connection set cannot form a graph: it is
//     empty, or it contains a self-loop connection.
package vertexgraph
