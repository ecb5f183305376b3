// Package dijkstra_test validates Dijkstra over the core store: input
// validation, distance/predecessor correctness, tie-breaking, lazy-heap
// behavior, and agreement with unweighted BFS on unit-weight graphs.
package dijkstra_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/digraph/bfs"
	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/dijkstra"
	"github.com/katalvlaran/digraph/paths"
)

func TestDistances_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Distances(nil, "A")
	if !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestDistances_SourceNotFound(t *testing.T) {
	g := core.NewGraph()
	_, _, err := dijkstra.Distances(g, "X")
	if !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("Expected ErrVertexNotFound, got %v", err)
	}
}

func TestDistances_DirectedTriangle(t *testing.T) {
	// A→B(1), B→C(2), A→C(5): best route to C is through B.
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	dist, prev, err := dijkstra.Distances(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if dist["A"] != 0 || dist["B"] != 1 || dist["C"] != 3 {
		t.Errorf("Unexpected distances: %v", dist)
	}
	if prev["B"] != "A" {
		t.Errorf("prev[B] = %q; want %q", prev["B"], "A")
	}
	if prev["C"] != "B" {
		t.Errorf("prev[C] = %q; want %q", prev["C"], "B")
	}
}

func TestDistances_DirectionRespected(t *testing.T) {
	// The only edge points B→A; from A nothing else is reachable.
	g := core.NewGraph()
	g.AddEdge("B", "A", 1)

	dist, _, err := dijkstra.Distances(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if dist["A"] != 0 {
		t.Errorf("dist[A] = %d; want 0", dist["A"])
	}
	if dist["B"] != dijkstra.Unreachable {
		t.Errorf("dist[B] = %d; want Unreachable", dist["B"])
	}
}

func TestDistances_StaleHeapEntriesSkipped(t *testing.T) {
	// C is queued twice (via the heavy direct edge, then the cheap detour);
	// the stale entry must be discarded on pop without re-relaxing.
	g := core.NewGraph()
	g.AddEdge("A", "C", 10)
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "D", 1)

	dist, prev, err := dijkstra.Distances(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if dist["C"] != 2 {
		t.Errorf("dist[C] = %d; want 2", dist["C"])
	}
	if dist["D"] != 3 {
		t.Errorf("dist[D] = %d; want 3", dist["D"])
	}
	if prev["C"] != "B" {
		t.Errorf("prev[C] = %q; want %q", prev["C"], "B")
	}
}

func TestShortestPath_DiamondScenario(t *testing.T) {
	// A→B(1), B→C(2), A→C(4), C→D(1): [A B C D] with total 4 beats the
	// A→C shortcut's total 5.
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 4)
	g.AddEdge("C", "D", 1)

	path, err := dijkstra.ShortestPath(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"A", "B", "C", "D"}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("ShortestPath = %v; want %v", path, want)
	}

	dist, _, _ := dijkstra.Distances(g, "A")
	if dist["D"] != 4 {
		t.Errorf("dist[D] = %d; want 4", dist["D"])
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddVertex("Z", nil)

	_, err := dijkstra.ShortestPath(g, "A", "Z")
	if !errors.Is(err, paths.ErrPathNotFound) {
		t.Fatalf("Expected ErrPathNotFound, got %v", err)
	}
}

func TestShortestPath_StartEqualsEnd(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("Solo", nil)

	path, err := dijkstra.ShortestPath(g, "Solo", "Solo")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(path, []string{"Solo"}) {
		t.Errorf("ShortestPath(Solo,Solo) = %v; want [Solo]", path)
	}
}

func TestShortestPath_AgreesWithBFSOnUnitWeights(t *testing.T) {
	// With all weights = 1, minimum total weight and fewest edges coincide,
	// so both algorithms must return paths of equal length.
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "D", 1)
	g.AddEdge("A", "E", 1)
	g.AddEdge("E", "D", 1)
	g.AddEdge("B", "D", 1)

	dPath, err := dijkstra.ShortestPath(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	bPath, err := bfs.ShortestPath(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if len(dPath) != len(bPath) {
		t.Errorf("path lengths differ: dijkstra %v vs bfs %v", dPath, bPath)
	}
}

func TestDistances_ZeroWeightEdges(t *testing.T) {
	// Zero weights are legal for Dijkstra (non-negative precondition).
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)

	dist, _, err := dijkstra.Distances(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if dist["C"] != 0 {
		t.Errorf("dist[C] = %d; want 0", dist["C"])
	}
}
