// Package pathfind implements the shortest-path search over a vertex graph.
package pathfind

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/astrorover/spherenav/sphere"
	"github.com/astrorover/spherenav/vertexgraph"
)

// noPredecessor marks a node whose shortest path has not recorded a parent.
const noPredecessor = -1

// FindShortestPath returns the minimum-cost route between two raw query
// points over g, as an ordered sequence of connections running start→finish,
// consecutive segments sharing an endpoint.
//
// The boolean result distinguishes a found route from absence. Absence is a
// normal result, never an error, and is returned when:
//
//   - start equals finish (exact coordinate equality);
//   - g is nil or has no nodes;
//   - both query points resolve to the same nearest graph node ("already
//     there");
//   - the graph is disconnected between the two resolved nodes.
//
// Complexity: O((V + E) log V) time, O(V + E) space per call; the call owns
// all of its search state, so concurrent queries on the same graph are safe.
func FindShortestPath(start, finish sphere.Point, g *vertexgraph.Graph) ([]sphere.Connection, bool) {
	// 1) Degenerate queries never reach the solver.
	if start.Equal(finish) {
		return nil, false
	}
	if g == nil || g.NodeCount() == 0 {
		return nil, false
	}

	// 2) Resolve both raw points to graph nodes.
	startIdx := g.Nearest(start)
	finishIdx := g.Nearest(finish)
	if startIdx == finishIdx {
		// Both points collapse onto one node: treated as "already there".
		return nil, false
	}

	// 3) Single-source search with private state.
	r := newRunner(g, startIdx)
	if !r.run(finishIdx) {
		return nil, false
	}

	// 4) Reconstruct the segment sequence from the predecessor table.
	return r.reconstruct(startIdx, finishIdx), true
}

// runner holds the transient state of a single Dijkstra execution. All tables
// are indexed by node position in the graph arena and discarded after path
// reconstruction.
type runner struct {
	g       *vertexgraph.Graph
	dist    []float64 // node index → best known cost from the source
	prev    []int     // node index → predecessor on the best path, or noPredecessor
	settled []bool    // node index → cost finalized
	pq      pathPQ    // lazy min-heap of (node, cost) entries
}

// newRunner allocates the search tables, seeds the source at cost zero, and
// primes the heap.
func newRunner(g *vertexgraph.Graph, source int) *runner {
	n := g.NodeCount()
	r := &runner{
		g:       g,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		settled: make([]bool, n),
		pq:      make(pathPQ, 0, n),
	}

	// 1) Every node starts unreachable with no predecessor.
	for i := 0; i < n; i++ {
		r.dist[i] = math.Inf(1)
		r.prev[i] = noPredecessor
	}

	// 2) The source is at distance zero.
	r.dist[source] = 0

	// 3) Prime the heap with the source entry.
	heap.Init(&r.pq)
	heap.Push(&r.pq, pathItem{node: source, cost: 0})

	return r
}

// run executes the main Dijkstra loop until finish is settled or the heap
// drains. It reports whether finish was reached.
func (r *runner) run(finish int) bool {
	var item pathItem
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest entry; the heap tie-breaks equal costs by
		//    lowest node index, so settlement order is deterministic.
		item = heap.Pop(&r.pq).(pathItem)

		// 2) Skip stale entries left behind by lazy decrease-key.
		if r.settled[item.node] {
			continue
		}

		// 3) Settle: the recorded cost for this node is now final.
		r.settled[item.node] = true
		if item.node == finish {
			return true
		}

		// 4) Relax every relation out of the settled node.
		r.relax(item.node)
	}

	// Heap drained without settling finish: disconnected components.
	return false
}

// relax attempts to improve the recorded cost of every unsettled neighbor of
// u. Strictly better candidates update the cost and predecessor tables and
// push a fresh heap entry; equal candidates are ignored.
func (r *runner) relax(u int) {
	var candidate float64
	for _, rel := range r.g.Relations(u) {
		if r.settled[rel.To] {
			continue
		}
		candidate = r.dist[u] + rel.Cost
		if candidate >= r.dist[rel.To] {
			continue
		}
		r.dist[rel.To] = candidate
		r.prev[rel.To] = u
		heap.Push(&r.pq, pathItem{node: rel.To, cost: candidate})
	}
}

// reconstruct walks predecessor links from finish back to start, emitting one
// connection per hop, then reverses the sequence so it runs start→finish.
//
// A missing predecessor mid-walk means the settled-node invariant was broken;
// that is a contract violation, so reconstruct panics instead of returning an
// error.
func (r *runner) reconstruct(start, finish int) []sphere.Connection {
	path := make([]sphere.Connection, 0, r.g.NodeCount())
	cur := finish
	var parent int
	for cur != start {
		parent = r.prev[cur]
		if parent == noPredecessor {
			panic(fmt.Sprintf("pathfind: settled node %d has no predecessor", cur))
		}
		path = append(path, sphere.NewConnection(
			r.g.Node(parent).Coordinates,
			r.g.Node(cur).Coordinates,
		))
		cur = parent
	}

	// Emitted finish→start; flip to start→finish.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// pathItem is one heap entry: a node and the cost at which it was pushed.
type pathItem struct {
	node int
	cost float64
}

// pathPQ is a min-heap of pathItem ordered by cost ascending, then node index
// ascending. The index tie-break is what makes settlement order — and hence
// predecessor chains under symmetric ties — deterministic.
type pathPQ []pathItem

func (pq pathPQ) Len() int { return len(pq) }

func (pq pathPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].node < pq[j].node
}

func (pq pathPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new entry; called by heap.Push.
func (pq *pathPQ) Push(x interface{}) { *pq = append(*pq, x.(pathItem)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *pathPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
