// Package dfs implements depth-first search on core.Graph without
// call-stack recursion: both variants run on an explicit, growable stack,
// so traversal depth is bounded by memory rather than goroutine stack size.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// frame is one suspended "recursive call" on the explicit stack: a vertex,
// its sorted neighbor list, and the index of the next neighbor to try.
type frame struct {
	id        string
	depth     int
	neighbors []string
	next      int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  Options
	res   *Result
	stack []frame
}

// DFS performs depth-first search on graph g from startID in pre-order,
// descending into neighbors in sorted order: the same discovery sequence
// a recursive implementation over sorted neighbors would produce, but
// executed on an explicit frame stack so deep or degenerate graphs cannot
// overflow the call stack.
//
// WithVisited seeds an externally owned visited set: the start vertex is
// always expanded (its unvisited neighbors explored), already-visited
// neighbors are skipped, and the same map is augmented and returned in
// Result.Visited; chain calls to cover a forest. Without the option a
// fresh set is allocated for this call alone.
//
// Returns ErrGraphNil, ErrStartVertexNotFound, or any OnVisit hook error.
// Complexity: O(V + E) time, O(V) memory.
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	visited := dopts.Visited
	if visited == nil {
		visited = make(map[string]bool, n)
	}
	res := &Result{
		Order:   make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Parent:  make(map[string]string, n),
		Visited: visited,
	}

	w := &dfsWalker{graph: g, opts: dopts, res: res, stack: make([]frame, 0, n)}
	if err := w.run(startID); err != nil {
		return res, err
	}

	return res, nil
}

// run seeds the stack with startID and drains it depth-first.
func (w *dfsWalker) run(startID string) error {
	// The root is always expanded, even when a seeded set already contains
	// it; only its unvisited descendants are entered.
	if err := w.discover(startID, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		f := &w.stack[len(w.stack)-1]
		if f.next >= len(f.neighbors) {
			w.stack = w.stack[:len(w.stack)-1] // frame exhausted
			continue
		}
		nbr := f.neighbors[f.next]
		f.next++

		if w.res.Visited[nbr] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
			continue
		}
		if w.opts.MaxDepth >= 0 && f.depth+1 > w.opts.MaxDepth {
			continue
		}

		w.res.Parent[nbr] = f.id
		if err := w.discover(nbr, f.depth+1); err != nil {
			return err
		}
	}

	return nil
}

// discover marks id visited, records order and depth, fires the pre-order
// hook, and pushes the frame holding id's sorted neighbors.
func (w *dfsWalker) discover(id string, depth int) error {
	if !w.res.Visited[id] {
		w.res.Order = append(w.res.Order, id)
		w.res.Depth[id] = depth
	}
	w.res.Visited[id] = true

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	neighbors, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	w.stack = append(w.stack, frame{id: id, depth: depth, neighbors: neighbors})

	return nil
}

// DFSIterative performs depth-first reachability with a plain stack of
// pending vertices, marking a vertex visited when it is popped. A vertex
// may sit in the stack several times before its first pop; later pops are
// near no-ops. The final reachable set is identical to DFS's, while the
// visit order follows stack (reverse-sorted neighbor) discipline.
//
// The Result reports Order, Depth, and Visited; Parent links are not
// recorded by this variant.
//
// Returns ErrGraphNil or ErrStartVertexNotFound.
// Complexity: O(V + E) time plus bounded duplicate pops, O(V) memory.
func DFSIterative(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	visited := dopts.Visited
	if visited == nil {
		visited = make(map[string]bool, n)
	}
	res := &Result{
		Order:   make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Visited: visited,
	}

	type item struct {
		id    string
		depth int
	}
	stack := []item{{id: startID, depth: 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		first := !res.Visited[top.id]
		if first {
			res.Order = append(res.Order, top.id)
			res.Depth[top.id] = top.depth
		}
		// Mark on pop: duplicates already in the stack become no-ops here.
		res.Visited[top.id] = true

		if first && dopts.OnVisit != nil {
			if err := dopts.OnVisit(top.id); err != nil {
				return res, fmt.Errorf("dfs: OnVisit hook for %q: %w", top.id, err)
			}
		}
		if dopts.MaxDepth >= 0 && top.depth+1 > dopts.MaxDepth {
			continue
		}

		neighbors, err := g.NeighborIDs(top.id)
		if err != nil {
			return res, fmt.Errorf("dfs: neighbors of %q: %w", top.id, err)
		}
		for _, nbr := range neighbors {
			if res.Visited[nbr] {
				continue
			}
			if dopts.FilterNeighbor != nil && !dopts.FilterNeighbor(nbr) {
				continue
			}
			stack = append(stack, item{id: nbr, depth: top.depth + 1})
		}
	}

	return res, nil
}
