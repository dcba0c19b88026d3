// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"sort"
)

// Network is an immutable undirected simple graph with fixed-field
// node and edge attributes. Build one with Generate or NewBuilder.
type Network struct {
	nodes []Node
	edges []Edge

	// adj[u] lists u's neighbors in ascending id order; adjEdge[u][i] is the
	// edge index joining u and adj[u][i].
	adj     [][]int
	adjEdge [][]int

	seed     int64 // seed that produced the accepted topology (Generate only)
	attempts int   // topology samples drawn before acceptance (Generate only)
}

// newNetwork indexes nodes and edges. Edges must already be validated.
func newNetwork(nodes []Node, edges []Edge) *Network {
	n := len(nodes)
	nw := &Network{
		nodes:   nodes,
		edges:   edges,
		adj:     make([][]int, n),
		adjEdge: make([][]int, n),
	}
	for i := range edges {
		e := &edges[i]
		e.ID = i
		nw.adj[e.U] = append(nw.adj[e.U], e.V)
		nw.adjEdge[e.U] = append(nw.adjEdge[e.U], i)
		nw.adj[e.V] = append(nw.adj[e.V], e.U)
		nw.adjEdge[e.V] = append(nw.adjEdge[e.V], i)
	}
	for u := 0; u < n; u++ {
		sort.Sort(byNeighbor{ids: nw.adj[u], edges: nw.adjEdge[u]})
	}

	return nw
}

// byNeighbor sorts a neighbor list and its parallel edge list together.
type byNeighbor struct {
	ids   []int
	edges []int
}

func (b byNeighbor) Len() int           { return len(b.ids) }
func (b byNeighbor) Less(i, j int) bool { return b.ids[i] < b.ids[j] }
func (b byNeighbor) Swap(i, j int) {
	b.ids[i], b.ids[j] = b.ids[j], b.ids[i]
	b.edges[i], b.edges[j] = b.edges[j], b.edges[i]
}

// NumNodes returns N; node ids are 0..N-1.
func (nw *Network) NumNodes() int { return len(nw.nodes) }

// NumEdges returns the number of undirected edges.
func (nw *Network) NumEdges() int { return len(nw.edges) }

// HasNode reports whether id names a node of nw.
func (nw *Network) HasNode(id int) bool { return id >= 0 && id < len(nw.nodes) }

// Node returns the attributes of node id.
func (nw *Network) Node(id int) (Node, error) {
	if !nw.HasNode(id) {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	return nw.nodes[id], nil
}

// Nodes returns a copy of all nodes, ordered by id.
func (nw *Network) Nodes() []Node {
	out := make([]Node, len(nw.nodes))
	copy(out, nw.nodes)
	return out
}

// Edges returns a copy of all edges, ordered by edge id.
func (nw *Network) Edges() []Edge {
	out := make([]Edge, len(nw.edges))
	copy(out, nw.edges)
	return out
}

// EdgeByID returns the edge with dense index id.
func (nw *Network) EdgeByID(id int) (Edge, bool) {
	if id < 0 || id >= len(nw.edges) {
		return Edge{}, false
	}
	return nw.edges[id], true
}

// Neighbors returns the ids adjacent to id in ascending order, or nil for an
// unknown id. The slice is shared; callers must not modify it.
func (nw *Network) Neighbors(id int) []int {
	if !nw.HasNode(id) {
		return nil
	}
	return nw.adj[id]
}

// NeighborEdges returns the edge indexes parallel to Neighbors(id).
// The slice is shared; callers must not modify it.
func (nw *Network) NeighborEdges(id int) []int {
	if !nw.HasNode(id) {
		return nil
	}
	return nw.adjEdge[id]
}

// Degree returns the number of neighbors of id (0 for unknown ids).
func (nw *Network) Degree(id int) int {
	return len(nw.Neighbors(id))
}

// Edge returns the link between u and v in either orientation.
func (nw *Network) Edge(u, v int) (Edge, bool) {
	if !nw.HasNode(u) || !nw.HasNode(v) {
		return Edge{}, false
	}
	nbrs := nw.adj[u]
	i := sort.SearchInts(nbrs, v)
	if i < len(nbrs) && nbrs[i] == v {
		return nw.edges[nw.adjEdge[u][i]], true
	}
	return Edge{}, false
}

// Seed returns the seed that produced the accepted topology. It differs from
// the requested seed when earlier samples were disconnected.
func (nw *Network) Seed() int64 { return nw.seed }

// Attempts returns how many topologies Generate sampled (1 on first success).
func (nw *Network) Attempts() int { return nw.attempts }

// CheckQuery validates the endpoints of a (source, target) query: both must
// exist and differ.
func (nw *Network) CheckQuery(source, target int) error {
	if !nw.HasNode(source) {
		return fmt.Errorf("%w: source %d", ErrNodeNotFound, source)
	}
	if !nw.HasNode(target) {
		return fmt.Errorf("%w: target %d", ErrNodeNotFound, target)
	}
	if source == target {
		return fmt.Errorf("%w: %d", ErrSameEndpoints, source)
	}
	return nil
}
