package vertexgraph

import (
	"math"

	"github.com/astrorover/spherenav/sphere"
)

// Nearest returns the index of the graph node with minimum great-circle
// distance to query, measured on the graph's body radius. Ties resolve to the
// first-encountered minimum in node-insertion order.
//
// The graph must contain at least one node; Build guarantees this for any
// graph it returns. On an empty graph Nearest returns -1, which callers that
// construct Graph values by other means must guard against (see
// pathfind.FindShortestPath).
//
// Complexity: O(N) over the node count.
func (g *Graph) Nearest(query sphere.Point) int {
	index := -1
	best := math.Inf(1)
	radius := g.body.RadiusKm()
	var d float64
	for i := range g.nodes {
		d = sphere.Cost(query, g.nodes[i].Coordinates, radius)
		if d < best {
			best = d
			index = i
		}
	}

	return index
}
