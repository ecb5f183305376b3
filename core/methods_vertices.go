// Package core: vertex lifecycle and queries.
//
// This file provides AddVertex/HasVertex/RemoveVertex/VertexPayload,
// the O(1) VertexCount, and the sorted VertexIDs enumeration surface.

package core

import "sort"

// AddVertex inserts a vertex with the given ID, or overwrites the payload
// of an existing vertex. Idempotent: re-adding with the same payload leaves
// the graph unchanged.
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, payload any) error {
	// Validate input: empty IDs are not allowed
	if id == "" {
		return ErrEmptyVertexID
	}

	g.vertices[id] = &Vertex{ID: id, Payload: payload}
	// Bootstrap the adjacency entry so every explicitly added vertex has one.
	g.ensureAdj(id)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	_, exists := g.vertices[id]

	return exists
}

// RemoveVertex deletes the vertex, its payload, and every edge where it is
// source or destination.
// Returns ErrEmptyVertexID if id is empty, ErrVertexNotFound if absent.
// Removal is immediate and synchronous; there is no deferred cleanup.
// Complexity: O(V + E) — every other vertex's outgoing adjacency is scanned
// for edges targeting id.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	// Drop all outgoing edges at once.
	delete(g.adjacency, id)

	// Scan remaining adjacency for edges targeting id.
	for _, targets := range g.adjacency {
		delete(targets, id)
	}

	// Drop the payload entry last.
	delete(g.vertices, id)

	return nil
}

// VertexPayload returns the payload stored for id.
// Returns ErrVertexNotFound if the vertex does not exist. A nil payload on
// an existing vertex is a valid result, not an error.
// Complexity: O(1).
func (g *Graph) VertexPayload(id string) (any, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v.Payload, nil
}

// VertexCount returns the total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	return len(g.vertices)
}

// VertexIDs returns all vertex IDs in sorted order.
// Prefer Vertices() for lazy enumeration; use VertexIDs when a
// deterministic snapshot is needed.
// Complexity: O(V·logV)
func (g *Graph) VertexIDs() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// ensureAdj makes adjacency[id] non-nil without touching existing entries.
func (g *Graph) ensureAdj(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]int64)
	}
}

// ensureVertex inserts id with a nil payload only when absent, preserving
// any payload a caller stored earlier. Used by AddEdge endpoint bootstrap.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.vertices[id]; !ok {
		g.vertices[id] = &Vertex{ID: id}
	}
	g.ensureAdj(id)
}
