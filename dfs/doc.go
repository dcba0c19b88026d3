// SPDX-License-Identifier: MIT

// Package dfs implements depth-first traversal and simple-path enumeration on
// graphs with dense integer node ids.
//
// Key features:
//   - DFS(g, start, opts...): pre-order and post-order hooks, depth limit,
//     neighbor filter and cancellation via context.Context
//   - SimplePaths(g, s, t, fn): backtracking enumeration of every simple
//     s→t path, in neighbor order, until fn returns false
//
// Complexity:
//
//   - DFS:         O(V + E) time, O(V) memory.
//   - SimplePaths: exponential in the worst case; intended for small graphs
//     such as test oracles.
//
// Errors:
//
//   - ErrGraphNil          if g is nil.
//   - ErrStartNotFound     if the start (or target) id is unknown.
//   - context.Canceled     if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
