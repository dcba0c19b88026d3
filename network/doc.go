// SPDX-License-Identifier: MIT

// Package network is the cost model shared by every path optimizer: an
// immutable, undirected, simple graph whose nodes and edges carry fixed
// physical attributes, plus the functions that turn a path into metrics and
// a weighted cost.
//
// Attributes
//
//	Node: ProcessingDelay ∈ [0.5, 2.0] ms, Reliability ∈ [0.95, 0.999].
//	Edge: Bandwidth ∈ [100, 1000] Mbps, Delay ∈ [3, 15] ms,
//	      Reliability ∈ [0.95, 0.999].
//	Derived (precomputed once): ReliabilityCost = -ln(Reliability) for nodes
//	and edges, ResourceCost = 1000 / Bandwidth for edges.
//
// Cost model
//
//	For a path p0..pk (k ≥ 1) the metrics sum every traversed edge plus every
//	intermediate node p1..p(k-1); the source and target never contribute their
//	own attributes. The weighted cost is
//
//	    wDelay·Delay + wReliability·ReliabilityCost + wResource·ResourceCost
//
//	and is a pure function of (path, weights, graph). Paths shorter than two
//	nodes, or paths using a missing edge, are degenerate: every metric is +Inf.
//
// Construction
//
//   - Generate(n, p, opts...) samples Erdős–Rényi G(n,p) topologies until one is
//     connected, with a bounded number of attempts, then draws attributes from
//     a stream seeded by the caller (reproducible for a fixed seed).
//   - NewBuilder(n) assembles explicit topologies (rings, fixtures, imports).
//
// Concurrency
//
//	A *Network is never mutated after construction, so any number of optimizers
//	may read it from concurrent goroutines. Slices returned by Neighbors are
//	shared and must be treated as read-only.
package network
