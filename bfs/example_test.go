// File: bfs/example_test.go
package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/climbgraph"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// ExampleRun traverses a short ramp and reads back distances and the
// reconstructed path to the summit.
func ExampleRun() {
	hm, _ := heightmap.Parse("SabcdefghijklmnopqrstuvwxyzE")
	g, _ := climbgraph.Build(hm)

	res, _ := bfs.Run(g, g.Start(), bfs.WithTarget(g.End()))
	fmt.Println("distance to end:", res.Dist[g.End()])

	path, _ := res.PathTo(5)
	fmt.Println("path to column 5:", path)

	// Output:
	// distance to end: 27
	// path to column 5: [0 1 2 3 4 5]
}
