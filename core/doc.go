// Package core provides the in-memory store for a directed, weighted Graph
// with a minimal, composable API surface.
//
// The Graph G = (V,E) keeps two structures:
//
//   - vertices: vertex ID → *Vertex (identifier plus an opaque payload)
//   - adjacency: nested maps adjacency[from][to] = weight, holding at most
//     one edge per ordered (from, to) pair
//
// Re-adding an edge between the same ordered pair silently overwrites the
// stored weight — the store is not a multigraph. Adding an edge auto-inserts
// missing endpoints with a nil payload; an existing payload is never
// clobbered by AddEdge.
//
// Why use core.Graph?
//
//   - Single type, no configuration explosion — always directed, always
//     weight-carrying (pass 0 for unweighted use).
//   - Lazy views — Vertices(), Edges() and IncidentEdges() are restartable
//     iter.Seq sequences that never allocate the whole catalog.
//   - Deterministic helpers — VertexIDs() and NeighborIDs() return sorted
//     slices so traversal order is reproducible.
//   - Clone support — deep copy of vertices, payloads and adjacency.
//
// Concurrency
//
// The store is deliberately single-threaded: no internal locking is
// provided, and mutating the graph concurrently with an in-flight
// traversal or while ranging over Vertices()/Edges() is undefined
// behavior. Wrap the store yourself if you need synchronization.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
package core
