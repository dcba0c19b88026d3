// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// network.Network with caller-supplied, non-negative float64 edge weights.
//
// Edge weights are not stored in the network: a WeightFunc maps every edge to
// its cost for one run. This lets the same immutable network be searched
// under physical weightings (delay, weighted cost) or under throw-away random
// weightings.
//
// Randomized shortest paths
//
//	RandomizedPath draws an i.i.d. uniform(0,1) weight for every edge and
//	returns the shortest path under that weighting. Because a shortest path
//	never revisits a node, the result is always a simple path, and repeated
//	draws yield topologically diverse candidates cheaply. The path optimizers
//	use it to seed populations and to re-route mutated tails.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - Weights are evaluated once per edge up front, so negative weights fail
//     fast and a WeightFunc is never consulted twice for the same edge.
//   - Edges with weight ≥ InfEdgeThreshold are impassable.
//   - Exploration stops once the heap minimum exceeds MaxDistance.
//   - Lazy decrease-key: duplicates are pushed and stale entries skipped.
package dijkstra
