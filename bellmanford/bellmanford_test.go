package bellmanford_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph/bellmanford"
	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/dijkstra"
	"github.com/katalvlaran/digraph/paths"
)

func TestDistances_Validation(t *testing.T) {
	_, _, err := bellmanford.Distances(nil, "A")
	require.ErrorIs(t, err, bellmanford.ErrNilGraph)

	g := core.NewGraph()
	_, _, err = bellmanford.Distances(g, "missing")
	require.ErrorIs(t, err, bellmanford.ErrVertexNotFound)
}

func TestDistances_NegativeEdges(t *testing.T) {
	// A→B(4), A→C(2), C→B(-1): the detour through C undercuts the direct
	// edge, something Dijkstra's greedy settling would miss.
	g := core.NewGraph()
	g.AddEdge("A", "B", 4)
	g.AddEdge("A", "C", 2)
	g.AddEdge("C", "B", -1)

	dist, prev, err := bellmanford.Distances(g, "A")
	require.NoError(t, err)
	require.Equal(t, int64(0), dist["A"])
	require.Equal(t, int64(2), dist["C"])
	require.Equal(t, int64(1), dist["B"])
	require.Equal(t, "C", prev["B"])
}

func TestDistances_NegativeCycle(t *testing.T) {
	// A→B(-3), B→A(1) loops with total weight -2; every extra pass keeps
	// improving, so the final verification pass must report the cycle.
	g := core.NewGraph()
	g.AddEdge("A", "B", -3)
	g.AddEdge("B", "A", 1)

	_, _, err := bellmanford.Distances(g, "A")
	require.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
}

func TestDistances_NegativeSelfLoop(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "A", -1)

	_, _, err := bellmanford.Distances(g, "A")
	require.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
}

func TestDistances_UnreachableNegativeCycleIgnored(t *testing.T) {
	// The X↔Y cycle is disconnected from A; relaxation never reaches it,
	// so distances from A stay well-defined.
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("X", "Y", -5)
	g.AddEdge("Y", "X", 2)

	dist, _, err := bellmanford.Distances(g, "A")
	require.NoError(t, err)
	require.Equal(t, int64(1), dist["B"])
	require.Equal(t, bellmanford.Unreachable, dist["X"])
	require.Equal(t, bellmanford.Unreachable, dist["Y"])
}

func TestShortestPath_NegativeDetour(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 4)
	g.AddEdge("A", "C", 2)
	g.AddEdge("C", "B", -1)
	g.AddEdge("B", "D", 3)

	path, err := bellmanford.ShortestPath(g, "A", "D")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C", "B", "D"}, path)
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddVertex("Z", nil)

	_, err := bellmanford.ShortestPath(g, "A", "Z")
	require.ErrorIs(t, err, paths.ErrPathNotFound)
}

func TestShortestPath_AgreesWithDijkstraOnNonNegative(t *testing.T) {
	// On a non-negative graph both algorithms must settle identical totals.
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 4)
	g.AddEdge("C", "D", 1)

	bfDist, _, err := bellmanford.Distances(g, "A")
	require.NoError(t, err)
	dkDist, _, err := dijkstra.Distances(g, "A")
	require.NoError(t, err)
	for _, id := range g.VertexIDs() {
		require.Equal(t, dkDist[id], bfDist[id], "distance mismatch at %s", id)
	}

	bfPath, err := bellmanford.ShortestPath(g, "A", "D")
	require.NoError(t, err)
	dkPath, err := dijkstra.ShortestPath(g, "A", "D")
	require.NoError(t, err)
	require.Equal(t, dkPath, bfPath)
}

func TestDistances_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("Solo", nil)

	dist, prev, err := bellmanford.Distances(g, "Solo")
	require.NoError(t, err)
	require.Equal(t, int64(0), dist["Solo"])
	require.Equal(t, "", prev["Solo"])
}
