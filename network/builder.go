// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"
)

// Builder assembles a Network from explicit nodes and edges. The resulting
// network is not required to be connected. Errors are sticky: the first
// failure is reported by Build and later calls are ignored.
type Builder struct {
	nodes []Node
	edges []Edge
	pairs map[[2]int]struct{}
	err   error
}

// NewBuilder starts a network over n nodes. Every node defaults to zero
// processing delay and reliability 1, so it adds nothing to path metrics
// until SetNode says otherwise.
func NewBuilder(n int) *Builder {
	b := &Builder{pairs: make(map[[2]int]struct{})}
	if n < 1 {
		b.err = fmt.Errorf("%w: n=%d", ErrTooFewNodes, n)
		return b
	}
	b.nodes = make([]Node, n)
	for i := range b.nodes {
		b.nodes[i] = Node{ID: i, Reliability: 1}
	}
	return b
}

// SetNode assigns the attributes of node id.
func (b *Builder) SetNode(id int, processingDelay, reliability float64) *Builder {
	if b.err != nil {
		return b
	}
	if id < 0 || id >= len(b.nodes) {
		b.err = fmt.Errorf("%w: %d", ErrNodeNotFound, id)
		return b
	}
	if !nonNegative(processingDelay) || !probability(reliability) {
		b.err = fmt.Errorf("%w: node %d delay=%v reliability=%v", ErrInvalidAttribute, id, processingDelay, reliability)
		return b
	}
	b.nodes[id] = Node{
		ID:              id,
		ProcessingDelay: processingDelay,
		Reliability:     reliability,
		ReliabilityCost: -math.Log(reliability),
	}
	return b
}

// AddEdge links u and v. Bandwidth must be positive, delay non-negative and
// reliability in (0,1].
func (b *Builder) AddEdge(u, v int, bandwidth, delay, reliability float64) *Builder {
	if b.err != nil {
		return b
	}
	switch {
	case u < 0 || u >= len(b.nodes):
		b.err = fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	case v < 0 || v >= len(b.nodes):
		b.err = fmt.Errorf("%w: %d", ErrNodeNotFound, v)
	case u == v:
		b.err = fmt.Errorf("%w: %d", ErrSelfLoop, u)
	case !(bandwidth > 0) || math.IsInf(bandwidth, 1) || !nonNegative(delay) || !probability(reliability):
		b.err = fmt.Errorf("%w: edge %d-%d bandwidth=%v delay=%v reliability=%v",
			ErrInvalidAttribute, u, v, bandwidth, delay, reliability)
	}
	if b.err != nil {
		return b
	}
	if u > v {
		u, v = v, u
	}
	key := [2]int{u, v}
	if _, dup := b.pairs[key]; dup {
		b.err = fmt.Errorf("%w: %d-%d", ErrDuplicateEdge, u, v)
		return b
	}
	b.pairs[key] = struct{}{}
	b.edges = append(b.edges, newEdge(u, v, bandwidth, delay, reliability))
	return b
}

// Build returns the assembled network or the first recorded error.
func (b *Builder) Build() (*Network, error) {
	if b.err != nil {
		return nil, b.err
	}
	nodes := make([]Node, len(b.nodes))
	copy(nodes, b.nodes)
	edges := make([]Edge, len(b.edges))
	copy(edges, b.edges)
	nw := newNetwork(nodes, edges)
	nw.attempts = 1
	return nw, nil
}

func newEdge(u, v int, bandwidth, delay, reliability float64) Edge {
	return Edge{
		U:               u,
		V:               v,
		Bandwidth:       bandwidth,
		Delay:           delay,
		Reliability:     reliability,
		ReliabilityCost: -math.Log(reliability),
		ResourceCost:    ResourceScale / bandwidth,
	}
}

func nonNegative(x float64) bool {
	return x >= 0 && !math.IsInf(x, 1)
}

func probability(x float64) bool {
	return x > 0 && x <= 1
}
