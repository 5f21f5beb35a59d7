package bfs_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/climbgraph"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// buildFlatField assembles an n×n grid of 'a' with S and E in opposite
// corners; every plain cell is mutually connected, so BFS touches the
// whole arena.
func buildFlatField(b *testing.B, n int) *climbgraph.Graph {
	b.Helper()
	row := strings.Repeat("a", n)
	rows := make([]string, n)
	for i := range rows {
		rows[i] = row
	}
	rows[0] = "S" + row[1:]
	rows[n-1] = row[:n-1] + "E"

	hm, err := heightmap.Parse(strings.Join(rows, "\n"))
	if err != nil {
		b.Fatalf("Parse error: %v", err)
	}
	g, err := climbgraph.Build(hm)
	if err != nil {
		b.Fatalf("Build error: %v", err)
	}
	return g
}

// BenchmarkRun_FlatField measures a full drain over a 100×100 grid.
func BenchmarkRun_FlatField(b *testing.B) {
	g := buildFlatField(b, 100)

	b.ReportAllocs()
	b.SetBytes(int64(g.Order() + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Run(g, g.Start())
	}
}

// BenchmarkRun_Ramp measures a long chain with an early target exit
// halfway along.
func BenchmarkRun_Ramp(b *testing.B) {
	// 200 up-down ramp segments stitched into one long corridor
	var sb strings.Builder
	sb.WriteString("S")
	for i := 0; i < 200; i++ {
		sb.WriteString("abcdefghijklmnopqrstuvwxyzyxwvutsrqponmlkjihgfedcb")
	}
	sb.WriteString("aE")
	g := buildRamp(b, sb.String())

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Run(g, g.Start(), bfs.WithTarget(g.Order()/2))
	}
}

func buildRamp(b *testing.B, input string) *climbgraph.Graph {
	b.Helper()
	hm, err := heightmap.Parse(input)
	if err != nil {
		b.Fatalf("Parse error: %v", err)
	}
	g, err := climbgraph.Build(hm)
	if err != nil {
		b.Fatalf("Build error: %v", err)
	}
	return g
}
