// Package climbgraph converts a parsed heightmap.HeightMap into a
// directed, unweighted adjacency structure suitable for breadth-first
// shortest-path search.
//
// What
//
//   - Build: one node per grid cell, held in a dense row-major arena;
//     a directed edge u→v for every 4-adjacent pair satisfying the climb
//     predicate elevation(v) ≤ elevation(u)+1. Descending is always
//     allowed; climbing is capped at +1, so edges are not symmetric.
//   - Reverse: a second immutable Graph with every edge flipped, sharing
//     the node arena. Reversing twice reproduces the original edge set.
//   - LowestNodes: all minimum-elevation nodes, the target set for the
//     reversed "from any trailhead" search.
//
// Why an arena
//
//	Grids produce cyclic adjacency (two same-elevation neighbors form a
//	2-cycle). Storing edges as index pairs into a flat node slice avoids
//	pointer cycles entirely and makes the reversed view a trivial second
//	index-pair list.
//
// Determinism
//
//	Nodes are indexed in sorted row-major order, so node indices and the
//	edge set are a pure function of the grid. Per-node neighbor order
//	follows the fixed N/S/E/W offset table.
//
// Complexity (V = cells, E ≤ 4V)
//
//   - Build:   O(V log V) time (coordinate ordering), O(V+E) memory.
//   - Reverse: O(V+E) time and memory.
//
// Errors
//
//   - ErrNilHeightMap if Build receives nil. Malformed grids (missing
//     markers, bad symbols) never reach this package; heightmap.Parse
//     rejects them upstream.
package climbgraph
