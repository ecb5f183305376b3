// Package dfs implements depth-first reachability on core.Graph.
//
// What
//
//   - DFS: pre-order traversal descending into sorted neighbors — the
//     discovery sequence of a recursive implementation, executed on an
//     explicit frame stack so depth is bounded by memory, not by the call
//     stack. Accepts a seeded visited set (WithVisited) that the traversal
//     augments, enabling chained calls over a forest; absent the option, a
//     fresh set is allocated at the call boundary.
//   - DFSIterative: plain pending-vertex stack, marking visited at pop
//     time. A vertex may be pushed more than once before its first pop;
//     the redundancy is bounded and the reachable set is identical.
//   - Hooks and limits: OnVisit (pre-order, may abort with an error),
//     WithMaxDepth, WithFilterNeighbor.
//
// Why
//
//   - Reachability and component discovery without distance bookkeeping.
//   - Deep or degenerate graphs (long chains) traverse safely: neither
//     variant consumes call-stack space proportional to path length.
//
// Both variants treat the graph as reachability-only: edge weights are
// never read.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E), plus bounded duplicate pops in DFSIterative.
//   - Memory: O(V) for the explicit stack and metadata maps.
//
// Errors
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if startID is missing.
//   - any error returned by OnVisit, wrapped with the vertex ID.
package dfs
