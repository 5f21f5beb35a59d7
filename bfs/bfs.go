// Package bfs provides breadth-first search over a climbgraph.Graph,
// returning unweighted shortest-path distances, parent links, and visit
// order.
//
// BFS explores nodes in increasing distance from a source node, with
// optional early target exit, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/climbgraph"
)

// queueItem pairs a node index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state for one Run call.
type walker struct {
	graph   *climbgraph.Graph
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// Run performs breadth-first search on g starting from node index src,
// applying any number of functional Options.
//
// Every node is Unvisited until enqueued, on the frontier until dequeued,
// and never revisited afterward; since all edges cost one, the depth at
// first enqueue is the shortest distance. The traversal terminates when
// the frontier drains or, if WithTarget was given, the moment the target
// is dequeued.
//
// Returns ErrGraphNil or ErrSourceOutOfRange for invalid input,
// ErrOptionViolation for bad options, a context error on cancellation,
// or any user-supplied hook error.
func Run(g *climbgraph.Graph, src int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Order()
	if src < 0 || src >= n {
		return nil, fmt.Errorf("%w: %d (graph order %d)", ErrSourceOutOfRange, src, n)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Dist:   newFilled(n, Unreached),
			Parent: newFilled(n, Unreached),
		},
	}

	// Seed frontier with the source (no parent)
	w.enqueue(src, 0, Unreached)

	return w.res, w.loop()
}

// newFilled allocates a length-n int slice with every element set to v.
func newFilled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// enqueue marks idx visited at depth d, records distance and parent,
// and adds it to the frontier.
func (w *walker) enqueue(idx, d, parent int) {
	w.visited[idx] = true
	w.res.Dist[idx] = d
	w.res.Parent[idx] = parent
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop processes the frontier until empty, target hit, error, or
// cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.idx)
		if err := w.opts.OnVisit(item.idx, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.idx, err)
		}
		if item.idx == w.opts.Target {
			return nil // target dequeued; its distance is final
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// unseen out-neighbor of item.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.idx) {
		if !w.opts.FilterNeighbor(item.idx, nbr) {
			continue
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.idx)
		}
	}
}
