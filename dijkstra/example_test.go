package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/dijkstra"
)

// ExampleShortestPath routes around an expensive direct edge: A→C costs 4,
// but A→B→C costs only 3, so the cheap detour wins and extends to D.
func ExampleShortestPath() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 4)
	g.AddEdge("C", "D", 1)

	path, err := dijkstra.ShortestPath(g, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [A B C D]
}

// ExampleDistances computes settled distances from a single source and reads
// out selected vertices; unreached ones report dijkstra.Unreachable.
func ExampleDistances() {
	g := core.NewGraph()
	g.AddEdge("hub", "east", 7)
	g.AddEdge("hub", "west", 2)
	g.AddEdge("west", "east", 3)
	g.AddVertex("island", nil)

	dist, _, err := dijkstra.Distances(g, "hub")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("east:", dist["east"])
	fmt.Println("west:", dist["west"])
	fmt.Println("island reachable:", dist["island"] != dijkstra.Unreachable)
	// Output:
	// east: 5
	// west: 2
	// island reachable: false
}
