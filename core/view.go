// Package core: non-mutating lazy views over the store.
//
// Vertices, Edges, and IncidentEdges expose the catalog as restartable
// iter.Seq sequences: each call yields a fresh, finite sequence over the
// current state. Enumeration order follows Go map iteration and is not
// guaranteed to be preserved across removals. Mutating the graph while
// ranging over a view is undefined behavior.

package core

import "iter"

// Vertices yields every vertex ID currently in the graph.
// The sequence is lazy, finite, and restartable (fresh on each call).
// Complexity: O(V) to drain.
func (g *Graph) Vertices() iter.Seq[string] {
	return func(yield func(string) bool) {
		for id := range g.vertices {
			if !yield(id) {
				return
			}
		}
	}
}

// Edges yields every directed edge as an Edge value (From, To, Weight).
// The sequence is lazy, finite, and restartable.
// Complexity: O(V + E) to drain.
func (g *Graph) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for from, targets := range g.adjacency {
			for to, w := range targets {
				if !yield(Edge{From: from, To: to, Weight: w}) {
					return
				}
			}
		}
	}
}

// IncidentEdges yields the edges incident to id in the given direction.
//
// Outgoing enumerates adjacency[id] directly; a vertex with no outgoing
// adjacency (or an unknown id) yields an empty sequence, not an error,
// and no adjacency entry is created by the read.
// Incoming scans every vertex's outgoing adjacency for edges targeting id,
// costing O(V + E) to drain.
func (g *Graph) IncidentEdges(id string, dir Direction) iter.Seq[Edge] {
	if dir == Incoming {
		return func(yield func(Edge) bool) {
			for from, targets := range g.adjacency {
				if w, ok := targets[id]; ok {
					if !yield(Edge{From: from, To: id, Weight: w}) {
						return
					}
				}
			}
		}
	}

	return func(yield func(Edge) bool) {
		for to, w := range g.adjacency[id] {
			if !yield(Edge{From: id, To: to, Weight: w}) {
				return
			}
		}
	}
}
