// Package core defines the central Graph, Vertex, and Edge types and the
// primitives for building and querying directed, weighted graphs.
//
// This file declares Vertex, Edge, Direction, Graph, sentinel errors,
// and the NewGraph constructor.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Payload stores arbitrary user data; it is shared (not deep-copied) by Clone.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Payload is opaque caller data. Endpoints auto-inserted by AddEdge
	// carry a nil Payload.
	Payload any
}

// Edge represents a directed connection From → To with an int64 Weight.
//
// Weights may be negative; algorithm packages document their own weight
// preconditions (Dijkstra requires non-negative, BFS ignores weights).
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of the edge. Zero for unweighted use.
	Weight int64
}

// Direction selects which incident edges of a vertex to enumerate.
type Direction int

const (
	// Outgoing enumerates edges whose source is the given vertex. O(deg(v)).
	Outgoing Direction = iota

	// Incoming enumerates edges whose destination is the given vertex.
	// Requires a full O(V+E) adjacency scan.
	Incoming
)

// Graph is the core in-memory graph data structure.
//
// It is always directed and always carries int64 weights. At most one edge
// exists per ordered (from, to) pair; re-adding overwrites the weight.
// The zero value is not usable; construct with NewGraph.
//
// Graph performs no locking: callers own the concurrency model.
type Graph struct {
	// vertices maps vertex ID → Vertex (payload catalog).
	vertices map[string]*Vertex

	// adjacency[from][to] = weight. Every vertex explicitly added or used
	// as a source has an entry (possibly empty). Read paths never create
	// entries; only AddVertex/AddEdge do.
	adjacency map[string]map[string]int64
}

// NewGraph creates an empty directed, weighted Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]int64),
	}
}
