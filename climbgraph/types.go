// Package climbgraph defines core types and sentinel errors
// for the climbgraph subpackage of github.com/katalvlaran/hillclimb.
package climbgraph

import (
	"errors"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Sentinel errors for climbgraph construction.
var (
	// ErrNilHeightMap indicates a nil height map was passed to Build.
	ErrNilHeightMap = errors.New("climbgraph: height map is nil")
)

// Node is one graph vertex: a grid cell pinned to its dense arena index.
type Node struct {
	// Coord is the cell position in the source grid.
	Coord heightmap.Coord

	// Elevation is the cell height, 0..25.
	Elevation int

	// Role tags the node as Start, End, or Plain.
	Role heightmap.Role
}

// Graph is a directed, unweighted adjacency structure over grid cells.
//
// Nodes live in a dense arena indexed row-major over the source grid's
// coordinate set; edges are index pairs stored as per-node adjacency
// slices. A Graph is immutable once built: Reverse derives a second
// immutable Graph rather than mutating in place, so forward and reversed
// views may be traversed concurrently.
type Graph struct {
	nodes []Node
	index map[heightmap.Coord]int
	adj   [][]int
	start int
	end   int
}
