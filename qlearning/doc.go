// SPDX-License-Identifier: MIT

// Package qlearning trains a tabular Q-learning agent whose states are nodes
// and whose actions are moves to a neighbor, then extracts a path greedily.
//
// Training
//
// Each episode starts at the source and takes at most StepFactor·N steps:
//
//   - action choice is ε-greedy; among equal Q-values the action is drawn
//     uniformly at random;
//   - reaching the target ends the episode with reward 1000/max(cost, 1e-4),
//     where cost is the weighted cost of the walked path, and no bootstrap;
//   - any other move updates Q(s,a) += α·(γ·max Q(next) − Q(s,a));
//   - revisiting a node or reaching a dead end ends the episode.
//
// Extraction
//
// BestPath walks from the source to the unvisited neighbor with the highest
// Q-value (ties go to the lowest id). It fails, yielding network.NoRoute(),
// on a dead end, when the best Q-value is exactly 0, or after more than N
// steps. A trained agent does not always yield a path.
//
// Concurrency
//
//	An Agent owns its Q-table and random stream and is not safe for
//	concurrent use; the network it reads may be shared.
package qlearning
