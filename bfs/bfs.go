// Package bfs provides breadth-first search over a core.Graph,
// returning the reachable set, unweighted depths, parent links, and visit
// order, with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// queueItem pairs a vertex ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs queue-based breadth-first search on g starting from startID,
// applying any number of functional Options. A vertex is marked visited at
// enqueue time (standard discipline), so each vertex and edge is handled
// at most once: strictly O(V+E).
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	// Prepare walker with capacity hints
	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(startID, 0, "")
	if err := w.loop(); err != nil {
		return nil, err
	}
	w.res.Visited = w.visited

	return w.res, nil
}

// enqueue marks id visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors retrieves neighbors in sorted order, applies filtering
// and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}

	return nil
}

// BFSLevels runs the level-batched BFS variant: the frontier is processed
// in whole levels, and a vertex is marked visited only when it is
// processed, not when first discovered. A vertex can therefore be pushed
// into the next frontier by more than one predecessor in the same level,
// costing bounded redundant pushes but never changing the final reachable
// set. Keep BFS as the default; this form exists for behavioral parity
// with level-synchronous implementations.
//
// The Result reports Order, Depth (level index), and Visited; Parent links
// are not recorded by this variant.
func BFSLevels(g *core.Graph, startID string) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	res := &Result{
		Order:   make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Visited: make(map[string]bool, n),
	}

	frontier := []string{startID}
	for level := 0; len(frontier) > 0; level++ {
		var next []string
		for _, id := range frontier {
			if !res.Visited[id] {
				res.Order = append(res.Order, id)
				res.Depth[id] = level
			}
			// Visited here means the vertex's neighbors have been expanded.
			res.Visited[id] = true

			neighbors, err := g.NeighborIDs(id)
			if err != nil {
				return nil, fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, id, err)
			}
			for _, nbr := range neighbors {
				if !res.Visited[nbr] {
					// Duplicates within a level are tolerated on purpose.
					next = append(next, nbr)
				}
			}
		}
		frontier = next
	}

	return res, nil
}
