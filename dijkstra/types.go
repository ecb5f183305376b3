// Package dijkstra defines errors and the Unreachable distance marker for
// Dijkstra's shortest-path algorithm on non-negative weighted graphs.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")
)

// Unreachable is the distance reported for vertices the search never
// finalized. Distances are initialized to this value and only lowered by
// relaxation.
const Unreachable int64 = math.MaxInt64
