// Package bfs: unweighted shortest path.

package bfs

import (
	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/paths"
)

// ShortestPath returns the path with the fewest edges from start to end,
// both inclusive. Edge weights are ignored entirely: the graph is treated
// as unweighted, which is this function's precondition for optimality.
//
// The search is a standard mark-on-enqueue BFS recording a backtrack map.
// It stops via an explicit flag check the instant end is first discovered
// (first discovery under BFS order is guaranteed shortest in edge count),
// and delegates to paths.Reconstruct for the ordered result.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input, and
// paths.ErrPathNotFound when end is unreachable (or unknown).
// Complexity: O(V + E).
func ShortestPath(g *core.Graph, start, end string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	parent := make(map[string]string, n)
	visited := make(map[string]bool, n)
	queue := make([]string, 0, n)

	visited[start] = true
	queue = append(queue, start)

	found := start == end
	for len(queue) > 0 && !found {
		cur := queue[0]
		queue = queue[1:]

		neighbors, err := g.NeighborIDs(cur)
		if err != nil {
			return nil, err
		}
		for _, nbr := range neighbors {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			parent[nbr] = cur
			if nbr == end {
				// Explicit early return point: no deeper level can yield
				// a shorter chain once end is discovered.
				found = true
				break
			}
			queue = append(queue, nbr)
		}
	}

	return paths.Reconstruct(parent, start, end)
}
