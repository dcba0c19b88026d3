// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"
)

// walker holds the mutable state of a single traversal.
type walker struct {
	graph Graph
	opts  Options
	queue []int
	res   *Result
}

// BFS performs a breadth-first traversal of g starting at start.
// Returns ErrGraphNil, ErrOptionViolation or ErrStartNotFound on invalid
// input, the context error on cancellation, or the OnVisit error verbatim
// wrapped with the node id.
func BFS(g Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	n := g.NumNodes()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

func (w *walker) enqueue(id, depth, parent int) {
	w.res.Depth[id] = depth
	w.res.Parent[id] = parent
	w.queue = append(w.queue, id)
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		id := w.queue[0]
		w.queue = w.queue[1:]
		depth := w.res.Depth[id]
		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}

		next := depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.Neighbors(id) {
			if w.res.Depth[nbr] >= 0 || !w.opts.FilterNeighbor(id, nbr) {
				continue
			}
			w.enqueue(nbr, next, id)
		}
	}

	return nil
}

// Reachable reports whether target can be reached from source.
// Unknown ids are simply unreachable.
func Reachable(g Graph, source, target int) bool {
	if g == nil || !g.HasNode(source) || !g.HasNode(target) {
		return false
	}
	res, err := BFS(g, source)
	if err != nil {
		return false
	}

	return res.Reached(target)
}

// Connected reports whether every node of g is reachable from node 0.
// The empty graph is not connected; a single node is.
func Connected(g Graph) bool {
	if g == nil || g.NumNodes() == 0 {
		return false
	}
	res, err := BFS(g, 0)
	if err != nil {
		return false
	}

	return len(res.Order) == g.NumNodes()
}
