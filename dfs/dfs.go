// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
)

// walker encapsulates state during DFS.
type walker struct {
	graph Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g from start. On abort by context or
// hook it returns the partial result with the error.
func DFS(g Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}
	cfg := DefaultOptions()
	for _, fn := range opts {
		fn(&cfg)
	}

	n := g.NumNodes()
	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	w := &walker{graph: g, opts: cfg, res: res}
	if err := w.traverse(start, 0); err != nil {
		return res, err
	}
	return res, nil
}

func (w *walker) traverse(id, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, nid := range w.graph.Neighbors(id) {
			if w.res.Depth[nid] >= 0 {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id, nid) {
				continue
			}
			w.res.Parent[nid] = id
			if err := w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
