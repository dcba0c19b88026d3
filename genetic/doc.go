// SPDX-License-Identifier: MIT

// Package genetic searches for a low-cost simple path with a generational
// evolutionary algorithm over a population of candidate paths.
//
// Lifecycle
//
//	Uninitialized → Populated → Evolving(generation 0..G-1) → Converged
//
// Operators
//
//   - Seeding: shortest path under i.i.d. uniform random edge weights
//     (dijkstra.RandomizedPath), deduplicated, with a budget of 5·P attempts.
//   - Fitness: network.WeightedCost; lower is better, the population is kept
//     sorted ascending.
//   - Selection: k-way tournament (k = 5 by default).
//   - Crossover: splice two parents at a random common interior node; any
//     child with a repeated node is replaced by its parent.
//   - Mutation: with probability m, re-route from a random interior cut node to
//     the target under fresh random weights; non-simple results are dropped.
//   - Replacement: the e best candidates survive unchanged (e = 2 by default),
//     the rest is refilled by selection → crossover → mutation.
//
// Every candidate in every generation is a simple path from source to target.
// Because elites survive, the best cost never increases across generations
// when e ≥ 1. "No path" is a normal outcome: Run returns network.NoRoute()
// with a nil error.
//
// Concurrency
//
//	An Optimizer owns its population and random stream and is not safe for
//	concurrent use; the network it reads may be shared.
package genetic
