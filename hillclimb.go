package hillclimb

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/climbgraph"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// ErrNoPath indicates the requested traversal reached no valid target.
// It is distinct from every heightmap parse error, so callers can tell
// "puzzle has no solution" apart from "bad input".
var ErrNoPath = errors.New("hillclimb: no path found")

// ShortestClimb parses input, builds the climb graph, and returns the
// fewest steps from the Start cell to the End cell.
//
// Returns a heightmap parse error verbatim for malformed input, or
// ErrNoPath when End is unreachable from Start.
func ShortestClimb(input string) (int, error) {
	g, err := buildGraph(input)
	if err != nil {
		return 0, err
	}
	return ForwardDistance(g)
}

// ShortestFromLowest parses input, builds the climb graph, and returns
// the fewest steps from any minimum-elevation cell to the End cell.
//
// Returns a heightmap parse error verbatim for malformed input, or
// ErrNoPath when no minimum-elevation cell can reach End.
func ShortestFromLowest(input string) (int, error) {
	g, err := buildGraph(input)
	if err != nil {
		return 0, err
	}
	return LowestDistance(g)
}

// ForwardDistance runs the forward mode on a prebuilt graph: one BFS
// from Start, exiting early once End is dequeued.
func ForwardDistance(g *climbgraph.Graph) (int, error) {
	res, err := bfs.Run(g, g.Start(), bfs.WithTarget(g.End()))
	if err != nil {
		return 0, err
	}
	if !res.Reached(g.End()) {
		return 0, fmt.Errorf("%w: end unreachable from start", ErrNoPath)
	}
	return res.Dist[g.End()], nil
}

// LowestDistance runs the reverse mode on a prebuilt graph: a single BFS
// from End over the edge-reversed view, then the minimum distance across
// all reached minimum-elevation nodes. One O(V+E) pass answers the
// whole candidate set, instead of one forward traversal per candidate.
func LowestDistance(g *climbgraph.Graph) (int, error) {
	res, err := bfs.Run(g.Reverse(), g.End())
	if err != nil {
		return 0, err
	}
	best := bfs.Unreached
	for _, i := range g.LowestNodes() {
		if d := res.Dist[i]; d != bfs.Unreached && (best == bfs.Unreached || d < best) {
			best = d
		}
	}
	if best == bfs.Unreached {
		return 0, fmt.Errorf("%w: no lowest cell reachable from end", ErrNoPath)
	}
	return best, nil
}

func buildGraph(input string) (*climbgraph.Graph, error) {
	hm, err := heightmap.Parse(input)
	if err != nil {
		return nil, err
	}
	return climbgraph.Build(hm)
}
