package vertexgraph

import (
	"fmt"

	"github.com/astrorover/spherenav/sphere"
)

// Build constructs a Graph from the given connection list for the given body.
//
// Validation happens before any mutation:
//
//   - an empty connection list fails with ErrDataItemIncorrect;
//   - any connection whose endpoints are equal (a self-loop) fails with
//     ErrDataItemIncorrect, wrapped with the offending connection.
//
// Construction then proceeds per connection, in input order:
//
//  1. Resolve each endpoint to a node index by exact coordinate equality,
//     appending a fresh node on first sight.
//  2. Compute the edge cost as the haversine distance on the body's radius.
//  3. Record the (finish, cost) relation on the start node and the symmetric
//     (start, cost) relation on the finish node, skipping either insert if a
//     relation to that neighbor already exists.
//
// The resulting graph has exactly one node per distinct coordinate and a
// symmetric adjacency relation. It may be disconnected; Build does not require
// connectivity.
func Build(connections []sphere.Connection, body sphere.Body) (*Graph, error) {
	// 1) Validate before mutating anything.
	if len(connections) == 0 {
		return nil, fmt.Errorf("%w: connection list is empty", ErrDataItemIncorrect)
	}
	for _, c := range connections {
		if c.Start.Equal(c.Finish) {
			return nil, fmt.Errorf("%w: self-loop connection %s", ErrDataItemIncorrect, c)
		}
	}

	// 2) Consume the connections in input order.
	g := &Graph{body: body}
	radius := body.RadiusKm()
	var startIdx, finishIdx int
	var cost float64
	for _, c := range connections {
		// Resolve endpoints to arena indices, appending on first sight.
		startIdx = g.resolve(c.Start)
		finishIdx = g.resolve(c.Finish)

		// Symmetric cost, computed once per connection.
		cost = c.Cost(radius)

		// Idempotent symmetric insert.
		g.addRelation(startIdx, finishIdx, cost)
		g.addRelation(finishIdx, startIdx, cost)
	}

	return g, nil
}

// resolve returns the arena index of the node holding p, appending a new node
// with an empty adjacency list if no node holds p yet. Lookup is by exact
// coordinate equality.
func (g *Graph) resolve(p sphere.Point) int {
	for i := range g.nodes {
		if g.nodes[i].Coordinates.Equal(p) {
			return i
		}
	}
	g.nodes = append(g.nodes, Node{Coordinates: p})

	return len(g.nodes) - 1
}

// addRelation records a (to, cost) relation on node from unless a relation to
// that neighbor already exists.
func (g *Graph) addRelation(from, to int, cost float64) {
	for _, r := range g.nodes[from].Relations {
		if r.To == to {
			return
		}
	}
	g.nodes[from].Relations = append(g.nodes[from].Relations, Relation{To: to, Cost: cost})
}
