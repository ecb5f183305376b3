// Package digraph is an in-memory engine for directed, weighted graphs —
// mutation, reachability traversal, and shortest paths in one small toolkit.
//
// 🚀 What is digraph?
//
//	A focused, single-threaded library that brings together:
//		• Core primitives: create vertices & edges, mutate and query the store
//		• Traversals: BFS (queue-based and level-batched), DFS (pre-order and iterative)
//		• Shortest paths: unweighted BFS, Dijkstra, Bellman-Ford
//		• Negative-cycle detection (Bellman-Ford)
//		• Path reconstruction shared by every shortest-path algorithm
//
// ✨ Why choose digraph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable failures – sentinel errors, no panics, no logging side channels
//   - Pure Go – no cgo, no hidden deps
//   - Lazy views – vertices(), edges() and incident edges as restartable iterators
//
// Everything is organized under focused subpackages:
//
//	core/        — the Graph store: vertices, payloads, weighted adjacency
//	bfs/         — breadth-first reachability & unweighted shortest path
//	dfs/         — depth-first reachability (explicit stack, no recursion limits)
//	dijkstra/    — non-negative weighted shortest path (lazy min-heap)
//	bellmanford/ — general weighted shortest path + negative-cycle detection
//	paths/       — backtrack-map → ordered path reconstruction
//
// Quick ASCII example:
//
//	    A──1──▶B
//	    │      │
//	    4      2
//	    ▼      ▼
//	    C◀─────┘   C──1──▶D
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 2)
//	g.AddEdge("A", "C", 4)
//	g.AddEdge("C", "D", 1)
//	route, _ := dijkstra.ShortestPath(g, "A", "D") // [A B C D]
//
// The store is a single mutable structure with no internal locking; callers
// must not mutate it concurrently with an in-flight traversal. All
// algorithms read the store and leave it untouched.
package digraph
