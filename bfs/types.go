// Package bfs provides tunable options and error definitions
// for breadth-first search over a climbgraph.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceOutOfRange is returned when the source index is not a
	// valid arena index of the graph.
	ErrSourceOutOfRange = errors.New("bfs: source index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreached is returned by Result.PathTo for nodes the traversal
	// never visited.
	ErrUnreached = errors.New("bfs: node not reached")
)

// NoTarget disables early termination; the traversal drains the frontier.
const NoTarget = -1

// Unreached is the Dist/Parent placeholder for untouched nodes.
const Unreached = -1

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Target, if not NoTarget, stops the traversal the moment that node
	// is dequeued. Its distance is final at that point.
	Target int

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// OnVisit is called when visiting a node. If it returns an error,
	// the traversal aborts and propagates that error.
	OnVisit func(idx, depth int) error

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
// background context, no target, no depth limit, no filtering, no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Target:         NoTarget,
		MaxDepth:       0,
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(_, _ int) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTarget stops the traversal once idx is dequeued.
// Passing NoTarget restores the default drain-everything behavior.
func WithTarget(idx int) Option {
	return func(o *Options) {
		if idx < NoTarget {
			o.err = fmt.Errorf("%w: target index %d", ErrOptionViolation, idx)
			return
		}
		o.Target = idx
	}
}

// WithMaxDepth stops the search at the given depth (exclusive).
//
//	d > 0:  limit to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the traversal.
func WithOnVisit(fn func(idx, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of one BFS traversal:
//   - Order:  node indices in visit sequence.
//   - Dist:   per-node distance (in edges) from the source; Unreached
//     for nodes the frontier never touched.
//   - Parent: per-node predecessor in the BFS tree; Unreached for the
//     source and untouched nodes.
type Result struct {
	Order  []int
	Dist   []int
	Parent []int
}

// Reached reports whether the traversal assigned idx a distance.
func (r *Result) Reached(idx int) bool {
	return idx >= 0 && idx < len(r.Dist) && r.Dist[idx] != Unreached
}

// PathTo reconstructs the node-index path from the source to dest.
// Returns ErrUnreached if dest was never assigned a distance.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d", ErrUnreached, dest)
	}
	path := []int{}
	for cur := dest; cur != Unreached; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
