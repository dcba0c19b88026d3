// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over any graph that exposes
// integer node ids and a neighbor list, returning hop distances, parent
// links and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: node → distance (edges) from start, -1 when unreached
//   - Parent: node → predecessor in the BFS tree, -1 for the root and unreached nodes
//   - Hooks: OnVisit (may abort with an error).
//   - Neighbor filtering via WithFilterNeighbor, depth limit via WithMaxDepth.
//   - Cancellation via WithContext, checked once per dequeued node.
//
// Why
//
//   - Connectivity checks during topology generation (Connected).
//   - Reachability checks for (source, target) pairs (Reachable).
//
// Determinism
//
//	Neighbors are enqueued in the order returned by Graph.Neighbors, so for a
//	graph with sorted adjacency the visit sequence is fully reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
