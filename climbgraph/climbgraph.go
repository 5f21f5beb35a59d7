package climbgraph

import (
	"github.com/katalvlaran/hillclimb/heightmap"
)

// neighborOffsets are the four axis-aligned directions, in N/S/E/W order.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, 1}, {0, -1}}

// Build converts a parsed height map into a directed climb graph.
//
// Every grid cell becomes one node, indexed densely in row-major order so
// the edge set is a pure function of the grid. A directed edge u→v exists
// iff v is 4-directionally adjacent to u and
//
//	elevation(v) ≤ elevation(u) + 1
//
// (descending any amount is free, climbing is capped at +1). The End node
// is never a source of outgoing edges, though it remains a valid target.
//
// Returns ErrNilHeightMap for nil input. Complexity: O(V) time and memory
// beyond the O(V log V) coordinate ordering.
func Build(hm *heightmap.HeightMap) (*Graph, error) {
	if hm == nil {
		return nil, ErrNilHeightMap
	}

	coords := hm.Coords()
	g := &Graph{
		nodes: make([]Node, len(coords)),
		index: make(map[heightmap.Coord]int, len(coords)),
		adj:   make([][]int, len(coords)),
	}
	for i, coord := range coords {
		cell, _ := hm.At(coord)
		g.nodes[i] = Node{Coord: coord, Elevation: cell.Elevation, Role: cell.Role}
		g.index[coord] = i
	}
	g.start = g.index[hm.Start()]
	g.end = g.index[hm.End()]

	for u, node := range g.nodes {
		if node.Role == heightmap.RoleEnd {
			continue // End emits no outgoing edges
		}
		for _, d := range neighborOffsets {
			nc := heightmap.Coord{R: node.Coord.R + d[0], C: node.Coord.C + d[1]}
			v, ok := g.index[nc]
			if !ok {
				continue
			}
			if g.nodes[v].Elevation <= node.Elevation+1 {
				g.adj[u] = append(g.adj[u], v)
			}
		}
	}

	return g, nil
}

// Reverse derives a new Graph with every edge direction flipped.
// The node arena, indices, and Start/End designations are shared with the
// receiver; only the adjacency is rebuilt. The receiver is not modified.
// Complexity: O(V+E).
func (g *Graph) Reverse() *Graph {
	radj := make([][]int, len(g.nodes))
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			radj[v] = append(radj[v], u)
		}
	}
	return &Graph{
		nodes: g.nodes,
		index: g.index,
		adj:   radj,
		start: g.start,
		end:   g.end,
	}
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.nodes) }

// EdgeCount returns the number of directed edges.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	n := 0
	for _, nbrs := range g.adj {
		n += len(nbrs)
	}
	return n
}

// Node returns the node stored at arena index i.
func (g *Graph) Node(i int) Node { return g.nodes[i] }

// IndexOf returns the arena index for coord and whether it exists.
func (g *Graph) IndexOf(coord heightmap.Coord) (int, bool) {
	i, ok := g.index[coord]
	return i, ok
}

// Neighbors returns the out-neighbor indices of node i.
// The returned slice aliases internal storage; callers must not mutate it.
// Complexity: O(1).
func (g *Graph) Neighbors(i int) []int { return g.adj[i] }

// Start returns the arena index of the Start node.
func (g *Graph) Start() int { return g.start }

// End returns the arena index of the End node.
func (g *Graph) End() int { return g.end }

// LowestNodes returns the arena indices of every node at the minimum
// elevation, in ascending index order. These are the candidate trailheads
// for the reversed search.
// Complexity: O(V).
func (g *Graph) LowestNodes() []int {
	var lowest []int
	for i, node := range g.nodes {
		if node.Elevation == heightmap.MinElevation {
			lowest = append(lowest, i)
		}
	}
	return lowest
}

// HasEdge reports whether a directed edge u→v exists.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	for _, nbr := range g.adj[u] {
		if nbr == v {
			return true
		}
	}
	return false
}
