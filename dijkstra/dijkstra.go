// Package dijkstra implements Dijkstra's shortest-path algorithm on
// weighted graphs with non-negative edge weights.
//
// Dijkstra processes vertices in order of increasing distance from the
// source using a min-heap priority queue, relaxing outgoing edges and
// updating distances. The heap uses "lazy decrease-key": a shorter route
// to an already-queued vertex pushes a duplicate entry, and stale entries
// are discarded when popped (the visited guard makes the re-pop a no-op).
//
// Precondition, not validated: every edge weight must be ≥ 0. On a graph
// with negative weights the result is silently incorrect; callers own
// that discipline; use bellmanford when negative weights are possible.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/paths"
)

// Distances computes shortest distances from source to every vertex in g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (Unreachable if the
//     vertex was never finalized).
//   - prev: predecessor map; prev[v] == u means the shortest path to v
//     arrives through u. prev[v] == "" for the source and for unreachable
//     vertices.
//   - err:  ErrNilGraph or ErrVertexNotFound for invalid input.
//
// Complexity: O(E log V) time, O(V + E) space.
func Distances(g *core.Graph, source string) (map[string]int64, map[string]string, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, ErrVertexNotFound
	}

	r := newRunner(g, source)
	r.process()

	return r.dist, r.prev, nil
}

// ShortestPath returns the minimum-total-weight path from start to end,
// both inclusive, delegating to paths.Reconstruct over the predecessor map
// built by Distances.
//
// Returns ErrNilGraph or ErrVertexNotFound for invalid input, and
// paths.ErrPathNotFound when end was never reached.
func ShortestPath(g *core.Graph, start, end string) ([]string, error) {
	_, prev, err := Distances(g, start)
	if err != nil {
		return nil, err
	}

	return paths.Reconstruct(prev, start, end)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph       // the input graph; read-only here
	dist    map[string]int64  // vertex ID → current best distance from source
	prev    map[string]string // vertex ID → predecessor on the best path
	visited map[string]bool   // vertex ID → distance finalized
	pq      nodePQ            // min-heap with lazy stale entries
}

// newRunner initializes distances to Unreachable, predecessors to empty,
// and seeds the heap with (0, source).
func newRunner(g *core.Graph, source string) *runner {
	n := g.VertexCount()
	r := &runner{
		g:       g,
		dist:    make(map[string]int64, n),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for v := range g.Vertices() {
		r.dist[v] = Unreachable
		r.prev[v] = ""
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	return r
}

// process repeatedly extracts the minimum-distance vertex and relaxes its
// outgoing edges, terminating when the heap empties.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale heap entry: u was already finalized via a shorter route.
		// Skipping here is what keeps a re-pop from re-relaxing u.
		if r.visited[u] {
			continue
		}

		// u's distance is now final.
		r.visited[u] = true
		r.relax(u)
	}
}

// relax attempts to improve the distance of every unvisited neighbor of u.
// Assumes dist[u] is finalized (finite) before the call.
func (r *runner) relax(u string) {
	for edge := range r.g.IncidentEdges(u, core.Outgoing) {
		v := edge.To
		if r.visited[v] {
			continue
		}

		newDist := r.dist[u] + edge.Weight
		// Strictly-better check: "<" avoids duplicate pushes on ties and
		// is what makes equal-weight routes resolve to the first finalized
		// predecessor.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u

		// Lazy decrease-key: push a fresh entry, leave the stale one.
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
