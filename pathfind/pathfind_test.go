// Package pathfind_test exercises the route facade: degeneracy checks,
// optimal-path selection, reconstruction order, and disconnected graphs.
package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrorover/spherenav/pathfind"
	"github.com/astrorover/spherenav/sphere"
	"github.com/astrorover/spherenav/vertexgraph"
)

// chain returns the connections (p0,p1), (p1,p2), ... over the given points.
func chain(points ...sphere.Point) []sphere.Connection {
	out := make([]sphere.Connection, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		out = append(out, sphere.NewConnection(points[i-1], points[i]))
	}

	return out
}

func mustBuild(t *testing.T, connections []sphere.Connection) *vertexgraph.Graph {
	t.Helper()
	g, err := vertexgraph.Build(connections, sphere.Earth)
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// Degenerate queries: absence, never an error.
// ------------------------------------------------------------------------

func TestFindShortestPath_EqualQueryPoints(t *testing.T) {
	g := mustBuild(t, chain(sphere.NewPoint(0, 0), sphere.NewPoint(1, 0)))

	p := sphere.NewPoint(5, 5)
	path, found := pathfind.FindShortestPath(p, p, g)
	assert.False(t, found)
	assert.Nil(t, path)
}

func TestFindShortestPath_NilGraph(t *testing.T) {
	path, found := pathfind.FindShortestPath(sphere.NewPoint(0, 0), sphere.NewPoint(1, 1), nil)
	assert.False(t, found)
	assert.Nil(t, path)
}

func TestFindShortestPath_SameNearestNode(t *testing.T) {
	// Single far-away connection; two close-but-unequal query points far
	// outside the graph collapse onto the same nearest node.
	g := mustBuild(t, chain(sphere.NewPoint(0, 0), sphere.NewPoint(50, 50)))

	a := sphere.NewPoint(10.0001, 10)
	b := sphere.NewPoint(10.0002, 10)
	require.False(t, a.Equal(b))

	path, found := pathfind.FindShortestPath(a, b, g)
	assert.False(t, found)
	assert.Nil(t, path)
}

// ------------------------------------------------------------------------
// Optimal-path selection and reconstruction.
// ------------------------------------------------------------------------

func TestFindShortestPath_SingleEdge(t *testing.T) {
	a := sphere.NewPoint(54.35, 18.6667)
	b := sphere.NewPoint(54.4167, 13.4333)
	g := mustBuild(t, []sphere.Connection{sphere.NewConnection(a, b)})

	path, found := pathfind.FindShortestPath(a, b, g)
	require.True(t, found)
	require.Len(t, path, 1)
	assert.True(t, path[0].Start.Equal(a))
	assert.True(t, path[0].Finish.Equal(b))
}

func TestFindShortestPath_PrefersCheaperMultiHop(t *testing.T) {
	// Two candidate routes from A to C: two short equatorial hops via B, or
	// a long detour via D far to the north. The B route must win.
	a := sphere.NewPoint(0, 0)
	b := sphere.NewPoint(0, 5)
	c := sphere.NewPoint(0, 10)
	d := sphere.NewPoint(60, 5)

	connections := append(chain(a, b, c), chain(a, d, c)...)
	g := mustBuild(t, connections)

	path, found := pathfind.FindShortestPath(a, c, g)
	require.True(t, found)
	require.Len(t, path, 2)
	assert.True(t, path[0].Start.Equal(a))
	assert.True(t, path[0].Finish.Equal(b))
	assert.True(t, path[1].Start.Equal(b))
	assert.True(t, path[1].Finish.Equal(c))
}

// TestFindShortestPath_GridScenario builds three chains out of the origin:
// one along latitude to (10,0), one along longitude to (0,10), and a diagonal
// of unit steps to (10,10). The optimal route to (10,10) is the diagonal
// chain, segment for segment.
func TestFindShortestPath_GridScenario(t *testing.T) {
	var connections []sphere.Connection
	latChain := make([]sphere.Point, 11)
	lngChain := make([]sphere.Point, 11)
	diagonal := make([]sphere.Point, 11)
	for i := 0; i <= 10; i++ {
		latChain[i] = sphere.NewPoint(float64(i), 0)
		lngChain[i] = sphere.NewPoint(0, float64(i))
		diagonal[i] = sphere.NewPoint(float64(i), float64(i))
	}
	connections = append(connections, chain(latChain...)...)
	connections = append(connections, chain(lngChain...)...)
	connections = append(connections, chain(diagonal...)...)

	g := mustBuild(t, connections)

	path, found := pathfind.FindShortestPath(sphere.NewPoint(0, 0), sphere.NewPoint(10, 10), g)
	require.True(t, found)
	require.Len(t, path, 10)
	for i, seg := range path {
		assert.True(t, seg.Start.Equal(diagonal[i]), "segment %d start", i)
		assert.True(t, seg.Finish.Equal(diagonal[i+1]), "segment %d finish", i)
	}
}

func TestFindShortestPath_ConsecutiveSegmentsShareEndpoints(t *testing.T) {
	g := mustBuild(t, chain(
		sphere.NewPoint(0, 0),
		sphere.NewPoint(1, 1),
		sphere.NewPoint(2, 1),
		sphere.NewPoint(3, 2),
	))

	path, found := pathfind.FindShortestPath(sphere.NewPoint(0, 0), sphere.NewPoint(3, 2), g)
	require.True(t, found)
	require.Len(t, path, 3)
	for i := 1; i < len(path); i++ {
		assert.True(t, path[i-1].Finish.Equal(path[i].Start), "segments %d and %d", i-1, i)
	}
}

func TestFindShortestPath_QueryPointsOffGraph(t *testing.T) {
	// Raw query points need not be graph nodes: they resolve to the nearest
	// node first, and the returned route runs between resolved nodes.
	a := sphere.NewPoint(0, 0)
	b := sphere.NewPoint(0, 5)
	c := sphere.NewPoint(0, 10)
	g := mustBuild(t, chain(a, b, c))

	path, found := pathfind.FindShortestPath(sphere.NewPoint(0.2, -0.3), sphere.NewPoint(0.1, 10.4), g)
	require.True(t, found)
	require.Len(t, path, 2)
	assert.True(t, path[0].Start.Equal(a))
	assert.True(t, path[1].Finish.Equal(c))
}

// ------------------------------------------------------------------------
// Disconnection and determinism.
// ------------------------------------------------------------------------

func TestFindShortestPath_DisconnectedComponents(t *testing.T) {
	connections := []sphere.Connection{
		sphere.NewConnection(sphere.NewPoint(0, 0), sphere.NewPoint(1, 0)),
		sphere.NewConnection(sphere.NewPoint(50, 50), sphere.NewPoint(51, 50)),
	}
	g := mustBuild(t, connections)

	path, found := pathfind.FindShortestPath(sphere.NewPoint(0, 0), sphere.NewPoint(50, 50), g)
	assert.False(t, found)
	assert.Nil(t, path)
}

// TestFindShortestPath_DeterministicTieBreak pins the documented tie-break:
// with two exactly equal-cost routes (a diamond symmetric about the equator),
// the route through the lower-indexed intermediate node wins.
func TestFindShortestPath_DeterministicTieBreak(t *testing.T) {
	a := sphere.NewPoint(0, -10)
	north := sphere.NewPoint(10, 0)
	south := sphere.NewPoint(-10, 0)
	c := sphere.NewPoint(0, 10)

	// Insertion order fixes node indices: a=0, north=1, c=2, south=3.
	connections := []sphere.Connection{
		sphere.NewConnection(a, north),
		sphere.NewConnection(north, c),
		sphere.NewConnection(a, south),
		sphere.NewConnection(south, c),
	}
	g := mustBuild(t, connections)

	for run := 0; run < 5; run++ {
		path, found := pathfind.FindShortestPath(a, c, g)
		require.True(t, found)
		require.Len(t, path, 2)
		assert.True(t, path[0].Finish.Equal(north), "tie must settle the lower node index first")
	}
}
