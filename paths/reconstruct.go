// Package paths turns a backtrack (predecessor) map produced by a
// shortest-path search into an ordered start → end vertex path.
//
// Every shortest-path package in this library (bfs, dijkstra, bellmanford)
// delegates here: the search records parent links, Reconstruct walks them.
// Reconstruct is pure with respect to the graph: it only reads the map it
// is given.
//
// Errors:
//
//	ErrPathNotFound - the backtrack chain from end does not begin at start,
//	                  which covers both "end unreachable" and "end unknown
//	                  to the search entirely".
package paths

import "errors"

// ErrPathNotFound indicates that no path connects start to end in the
// search that produced the backtrack map.
var ErrPathNotFound = errors.New("paths: no path between start and end")

// Reconstruct walks parent links backwards from end until a vertex with no
// recorded predecessor (missing key or empty string), then reverses the
// chain into start → end order.
//
// Returns ErrPathNotFound unless the chain's first element is exactly
// start. A search seeded at start records no predecessor for start itself,
// so a reachable end always terminates the walk there.
// Complexity: O(L) for a path of L vertices.
func Reconstruct(parent map[string]string, start, end string) ([]string, error) {
	// Walk backwards, collecting end..start.
	chain := []string{end}
	for cur := parent[end]; cur != ""; cur = parent[cur] {
		chain = append(chain, cur)
	}

	// The walk must have ended at start; anything else means end was never
	// reached by the search.
	if chain[len(chain)-1] != start {
		return nil, ErrPathNotFound
	}

	// Reverse in place to get start → end order.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain, nil
}
