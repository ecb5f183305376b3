// Package bellmanford implements the Bellman-Ford shortest-path algorithm
// on weighted graphs. It is the only algorithm in this library that accepts
// negative edge weights, provided no negative-weight cycle is reachable
// from the source.
//
// The algorithm performs exactly VertexCount() relaxation passes over all
// edges. Passes 0 .. V-2 perform genuine relaxation: after pass i, every
// shortest path using at most i+1 edges is final. The last pass applies no
// update; finding any edge that still relaxes there proves a reachable
// negative cycle, reported as ErrNegativeCycle.
//
// Complexity: O(V·E) time, O(V) space.
package bellmanford

import (
	"errors"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/paths"
)

// Sentinel errors returned by the Bellman-Ford implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("bellmanford: source vertex not found in graph")

	// ErrNegativeCycle indicates a negative-weight cycle reachable from the
	// source, which makes "shortest path" unbounded below.
	ErrNegativeCycle = errors.New("bellmanford: negative weight cycle detected")
)

// Unreachable is the distance reported for vertices the relaxation passes
// never reached.
const Unreachable int64 = 1<<63 - 1

// Distances computes shortest distances from source to every vertex in g,
// tolerating negative edge weights.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (Unreachable if the
//     vertex was never reached).
//   - prev: predecessor map; prev[v] == "" for the source and for
//     unreachable vertices.
//   - err:  ErrNilGraph or ErrVertexNotFound for invalid input;
//     ErrNegativeCycle when the final verification pass still relaxes.
func Distances(g *core.Graph, source string) (map[string]int64, map[string]string, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, ErrVertexNotFound
	}

	n := g.VertexCount()
	dist := make(map[string]int64, n)
	prev := make(map[string]string, n)
	for v := range g.Vertices() {
		dist[v] = Unreachable
		prev[v] = ""
	}
	dist[source] = 0

	// Exactly n passes: n-1 relaxation rounds plus one verification round.
	for pass := 0; pass < n; pass++ {
		for edge := range g.Edges() {
			// An unreached source cannot improve anything; the guard also
			// keeps Unreachable + weight from overflowing int64.
			if dist[edge.From] == Unreachable {
				continue
			}
			candidate := dist[edge.From] + edge.Weight
			if candidate >= dist[edge.To] {
				continue
			}

			// Still relaxable on the verification pass ⇒ negative cycle.
			if pass == n-1 {
				return nil, nil, ErrNegativeCycle
			}
			dist[edge.To] = candidate
			prev[edge.To] = edge.From
		}
	}

	return dist, prev, nil
}

// ShortestPath returns the minimum-total-weight path from start to end,
// both inclusive, delegating to paths.Reconstruct over the predecessor map
// built by Distances.
//
// Returns ErrNilGraph, ErrVertexNotFound, or ErrNegativeCycle from the
// distance computation, and paths.ErrPathNotFound when end was never
// reached.
func ShortestPath(g *core.Graph, start, end string) ([]string, error) {
	_, prev, err := Distances(g, start)
	if err != nil {
		return nil, err
	}

	return paths.Reconstruct(prev, start, end)
}
