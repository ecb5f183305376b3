// Package core: edge lifecycle and queries.
//
// This file provides AddEdge/HasEdge/RemoveEdge/EdgeWeight, the summed
// EdgeCount, and the sorted NeighborIDs enumeration surface.
// Adjacency is stored as a nested map adjacency[from][to] = weight,
// allowing constant-time existence, insertion, and deletion of edges.

package core

import "sort"

// AddEdge sets the weight of the directed edge from → to, ensuring both
// endpoints exist (auto-inserted with a nil payload if absent). An existing
// edge between the same ordered pair is silently overwritten — the store
// holds at most one edge per pair.
// Returns ErrEmptyVertexID if either endpoint ID is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	// 2) Ensure both endpoints exist without clobbering stored payloads.
	g.ensureVertex(from)
	g.ensureVertex(to)

	// 3) Explicit lookup-or-insert on the mutation path only; read paths
	//    must never create adjacency entries.
	g.adjacency[from][to] = weight

	return nil
}

// HasEdge reports whether the directed edge from → to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	_, ok := g.adjacency[from][to]

	return ok
}

// RemoveEdge deletes the directed edge from → to.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	targets, ok := g.adjacency[from]
	if !ok {
		return ErrEdgeNotFound
	}
	if _, ok = targets[to]; !ok {
		return ErrEdgeNotFound
	}
	delete(targets, to)

	return nil
}

// EdgeWeight returns the weight stored for the directed edge from → to.
// Returns ErrEdgeNotFound if the edge does not exist.
// Complexity: O(1).
func (g *Graph) EdgeWeight(from, to string) (int64, error) {
	w, ok := g.adjacency[from][to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// EdgeCount returns the total number of edges by summing adjacency sizes.
// There is no cached counter; the count is derived on every call.
// Complexity: O(V + E).
func (g *Graph) EdgeCount() int {
	count := 0
	for _, targets := range g.adjacency {
		count += len(targets)
	}

	return count
}

// NeighborIDs returns the destinations of all outgoing edges of id in
// sorted order, giving traversals a reproducible visit sequence.
// Returns ErrVertexNotFound if id does not exist.
// Complexity: O(d·logd), where d is the out-degree of id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	targets := g.adjacency[id] // missing entry reads as empty, never created
	ids := make([]string, 0, len(targets))
	for to := range targets {
		ids = append(ids, to)
	}
	sort.Strings(ids)

	return ids, nil
}
