// Package bfs provides breadth-first search over a core.Graph, returning
// the reachable set, unweighted depths, parent links, and visit order —
// plus an unweighted shortest-path entry point.
//
// What
//
//   - BFS: queue-based traversal, marking vertices visited at enqueue time
//     (standard discipline, strictly O(V+E)). Supports functional hooks at
//     three stages (OnEnqueue, OnDequeue, OnVisit), neighbor filtering via
//     WithFilterNeighbor, and a MaxDepth limit.
//   - BFSLevels: level-batched traversal, marking visited only at
//     processing time. A vertex may be pushed into the next frontier by
//     several same-level predecessors; the redundancy is bounded and the
//     final reachable set is identical. Retained for parity with
//     level-synchronous implementations — prefer BFS.
//   - ShortestPath: fewest-edge path between two vertices, stopping the
//     moment the target is first discovered and reconstructing the route
//     through the paths package.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs and level layering.
//   - Foundation for reachability checks and compatibility testing.
//
// Determinism
//
//	Because core.NeighborIDs returns destinations sorted lexicographically
//	and BFS enqueues neighbors in that order, the visit sequence is fully
//	reproducible.
//
// Weights
//
//	Both traversals and ShortestPath ignore edge weights: the graph is
//	treated as reachability-only. Use dijkstra or bellmanford for
//	weight-aware routing.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) for BFS and ShortestPath; BFSLevels adds a bounded
//     constant factor of redundant frontier pushes.
//   - Memory: O(V) for queue, Depth map, Parent map, visited set.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an invalid Option is supplied (negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails for any vertex.
//   - paths.ErrPathNotFound   from ShortestPath when end is unreachable.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
