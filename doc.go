// Package hillclimb solves the elevation-grid shortest-path puzzle:
// parse a grid of heights, derive a climb-constrained directed graph,
// and answer two breadth-first shortest-path queries.
//
// 🚀 What is hillclimb?
//
//	A small, focused library that brings together:
//		• heightmap/   — symbol decoding ('a'..'z', 'S', 'E') and grid parsing
//		• climbgraph/  — directed adjacency from the climb predicate
//		                 (step up at most +1, step down freely)
//		• bfs/         — unweighted breadth-first search with options & hooks
//		• root package — the two solve modes, wired end to end
//
// The two modes:
//
//   - ShortestClimb: fewest steps from the Start cell to the End cell.
//   - ShortestFromLowest: fewest steps from any minimum-elevation cell to
//     End, computed as a single reversed-edge BFS from End rather than
//     one traversal per candidate trailhead.
//
// Quick ASCII example (the canonical 5×8 grid):
//
//	Sabqponm
//	abcryxxl
//	accszExk
//	acctuvwj
//	abdefghi
//
//	n, _ := hillclimb.ShortestClimb(grid)       // 31
//	m, _ := hillclimb.ShortestFromLowest(grid)  // 29
//
// Everything is in-memory and immutable after construction: a parsed
// HeightMap never changes, a built Graph never changes, and the reversed
// view is a second derivation, so concurrent solves are safe.
//
// Failure surface: heightmap.ErrUnknownSymbol, heightmap.ErrNoStart,
// heightmap.ErrNoEnd for bad input; hillclimb.ErrNoPath when a traversal
// reaches no valid target. All are sentinels matchable with errors.Is.
package hillclimb
