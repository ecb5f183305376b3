// Package dfs defines types and options for depth-first search traversal,
// including pre-order hooks, depth limiting, neighbor filtering, and
// seeded visited sets for forest chaining.
package dfs

import "errors"

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or
	// DFSIterative.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// MaxDepth, if non-negative, limits exploration to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before
	// descending. Return true to explore that neighbor, false to skip it.
	FilterNeighbor func(id string) bool

	// Visited, if non-nil, seeds the traversal with an externally owned
	// visited set. The traversal augments the same map, enabling chained
	// calls over a forest. When nil, a fresh empty set is allocated at the
	// call boundary — never a shared default.
	Visited map[string]bool
}

// DefaultOptions returns an Options struct with:
//   - No pre-order hook
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - A fresh visited set per call (Visited = nil)
func DefaultOptions() Options {
	return Options{
		OnVisit:        nil,
		MaxDepth:       -1,
		FilterNeighbor: nil,
		Visited:        nil,
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called when a vertex is first discovered.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbor IDs.
// If fn(id) == false, that neighbor is skipped.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// WithVisited returns an Option that seeds the traversal with an external
// visited set; the traversal marks newly reached vertices in the same map.
// Passing nil has no effect (a fresh set is still allocated).
func WithVisited(visited map[string]bool) Option {
	return func(o *Options) {
		if visited != nil {
			o.Visited = visited
		}
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in discovery (pre-order) sequence, each at
	// most once even when the traversal was seeded.
	Order []string

	// Depth maps each vertex ID to its distance (#edges) from the start
	// along the DFS tree that discovered it.
	Depth map[string]int

	// Parent maps each vertex ID to the vertex from which it was first
	// discovered. The start vertex does not appear in this map.
	// (left empty by DFSIterative, which reports reachability only)
	Parent map[string]string

	// Visited flags which vertices were reached. When the traversal was
	// seeded via WithVisited, this is the same (augmented) map.
	Visited map[string]bool
}
