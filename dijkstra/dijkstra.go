// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/netpath/network"
)

// Dijkstra computes shortest distances from source to every node of nw under
// weight.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance to v (+Inf if unreachable).
//   - prev: prev[v] is v's predecessor on a shortest path; -1 for the source
//     and for unreachable nodes.
//   - err:  ErrNilGraph, ErrNilWeight, ErrVertexNotFound or ErrNegativeWeight.
func Dijkstra(nw *network.Network, source int, weight WeightFunc, opts ...Option) ([]float64, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if nw == nil {
		return nil, nil, ErrNilGraph
	}
	if weight == nil {
		return nil, nil, ErrNilWeight
	}
	if !nw.HasNode(source) {
		return nil, nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}

	// Evaluate every edge weight once; reject negatives before searching.
	edges := nw.Edges()
	w := make([]float64, len(edges))
	for _, e := range edges {
		x := weight(e)
		if x < 0 || math.IsNaN(x) {
			return nil, nil, fmt.Errorf("%w: edge %d-%d weight=%v", ErrNegativeWeight, e.U, e.V, x)
		}
		w[e.ID] = x
	}

	r := newRunner(nw, cfg, w)
	r.run(source)

	return r.dist, r.prev, nil
}

// ShortestPath returns the minimum-weight path from source to target and its
// total weight. An unreachable target yields ErrNoPath. The result is always a
// simple path; source == target yields the single-node path with weight 0.
func ShortestPath(nw *network.Network, source, target int, weight WeightFunc, opts ...Option) (network.Path, float64, error) {
	if nw != nil && !nw.HasNode(target) {
		return nil, 0, fmt.Errorf("%w: target %d", ErrVertexNotFound, target)
	}
	dist, prev, err := Dijkstra(nw, source, weight, opts...)
	if err != nil {
		return nil, 0, err
	}
	if math.IsInf(dist[target], 1) {
		return nil, 0, fmt.Errorf("%w: %d → %d", ErrNoPath, source, target)
	}

	var path network.Path
	for v := target; v != -1; v = prev[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	nw      *network.Network
	options Options
	weights []float64 // edge id → weight
	dist    []float64
	prev    []int
	visited []bool
	pq      nodePQ
}

func newRunner(nw *network.Network, cfg Options, weights []float64) *runner {
	n := nw.NumNodes()
	r := &runner{
		nw:      nw,
		options: cfg,
		weights: weights,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = math.Inf(1)
		r.prev[v] = -1
	}
	return r
}

// run is the main loop: pop the closest unfinalized node, stop past
// MaxDistance, relax its edges.
func (r *runner) run(source int) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax tries to improve every neighbor of the finalized node u.
func (r *runner) relax(u int) {
	nbrs := r.nw.Neighbors(u)
	eids := r.nw.NeighborEdges(u)
	for i, v := range nbrs {
		if r.visited[v] {
			continue
		}
		w := r.weights[eids[i]]
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem is a node and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
