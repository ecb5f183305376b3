// Package core: whole-graph copy and reset helpers.

package core

// Clone returns a deep copy of the Graph: vertices and adjacency are fresh
// maps, so mutations on the clone never touch the original. Payloads are
// shared, not deep-copied.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := NewGraph()
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Payload: v.Payload}
	}
	for from, targets := range g.adjacency {
		ct := make(map[string]int64, len(targets))
		for to, w := range targets {
			ct[to] = w
		}
		clone.adjacency[from] = ct
	}

	return clone
}

// Clear resets the graph to the empty state.
// Complexity: O(1) — old maps are released to the garbage collector.
func (g *Graph) Clear() {
	g.vertices = make(map[string]*Vertex)
	g.adjacency = make(map[string]map[string]int64)
}
