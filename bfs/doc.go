// Package bfs provides breadth-first search over a climbgraph.Graph,
// returning unweighted shortest-path distances, parent links, and visit
// order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a source.
//   - Returns a Result containing:
//   - Order:  visit sequence, as arena indices
//   - Dist:   per-node distance from the source (Unreached if untouched)
//   - Parent: per-node predecessor in the BFS tree
//   - Optional early exit the moment a designated target is dequeued
//     (WithTarget) — the forward-mode fast path.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Allows skipping individual edges via WithFilterNeighbor and
//     observing visits via WithOnVisit.
//
// Why
//
//   - Compute unweighted shortest paths in O(V+E) time; with unit edge
//     cost, the depth at first enqueue is already the shortest distance.
//   - One reversed-graph pass answers "nearest of many sources" queries
//     without one traversal per candidate.
//
// State machine
//
//	Each node is Unvisited → Frontier → Visited, monotonically; no node
//	is ever revisited. Traversal ends when the frontier is empty or the
//	target is dequeued, whichever comes first.
//
// Determinism
//
//	climbgraph.Neighbors returns out-neighbors in the fixed offset order
//	chosen at Build time, so the visit sequence is fully reproducible.
//	Distances are invariant to neighbor iteration order regardless.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)   (each node and edge seen at most once)
//   - Memory: O(V)       (queue, Dist, Parent, visited flags)
//
// Usage
//
//	res, err := bfs.Run(g, g.Start(), bfs.WithTarget(g.End()))
//	if err != nil {
//	    // ErrGraphNil, ErrSourceOutOfRange, ErrOptionViolation,
//	    // a context error, or a wrapped OnVisit error
//	}
//	if res.Reached(g.End()) {
//	    fmt.Println(res.Dist[g.End()])
//	}
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrSourceOutOfRange  if src is not a valid arena index.
//   - ErrOptionViolation   for invalid options (negative MaxDepth, bad
//     target index).
//   - ErrUnreached         from Result.PathTo on untouched nodes.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
