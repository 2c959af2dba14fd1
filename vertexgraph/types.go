// Package vertexgraph defines the Graph, Node, and Relation types and the
// sentinel errors raised by graph construction.
package vertexgraph

import (
	"errors"

	"github.com/astrorover/spherenav/sphere"
)

// ErrDataItemIncorrect indicates the connection set handed to Build cannot
// form a graph: it is empty, or it contains a self-loop connection.
// Construction failures are terminal for that build attempt; no partial graph
// is ever returned.
var ErrDataItemIncorrect = errors.New("vertexgraph: data set is incorrect")

// Relation is one adjacency entry: the index of a neighboring node in the
// same arena, and the great-circle cost of the edge to it.
type Relation struct {
	// To is the neighbor's position in the node arena.
	To int

	// Cost is the symmetric edge cost in kilometers.
	Cost float64
}

// Node is one vertex of the graph: its coordinate and its adjacency list.
// Relations are ordered by insertion; indices reference the owning Graph's
// arena.
type Node struct {
	Coordinates sphere.Point
	Relations   []Relation
}

// Graph is the indexed, undirected, weighted adjacency structure built from
// raw connections. It is immutable after Build: all accessors are read-only
// and return copies of internal slices.
type Graph struct {
	body  sphere.Body
	nodes []Node
}

// Body returns the celestial body the graph was built for.
func (g *Graph) Body() sphere.Body { return g.body }

// NodeCount returns the number of distinct coordinates in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Node returns a copy of the node at index i. The returned Relations slice is
// the caller's to keep; mutating it does not affect the graph.
// Panics if i is out of range, as slice indexing does.
func (g *Graph) Node(i int) Node {
	n := g.nodes[i]
	relations := make([]Relation, len(n.Relations))
	copy(relations, n.Relations)

	return Node{Coordinates: n.Coordinates, Relations: relations}
}

// Relations returns the adjacency entries of node i without copying the
// coordinate. The slice is a copy; the caller may keep it.
func (g *Graph) Relations(i int) []Relation {
	relations := make([]Relation, len(g.nodes[i].Relations))
	copy(relations, g.nodes[i].Relations)

	return relations
}
