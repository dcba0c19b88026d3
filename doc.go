// Package netpath finds low-cost routes through synthetic communication
// networks where every node and link carries delay, reliability and
// bandwidth attributes.
//
// What is netpath?
//
//	A small toolkit that brings together:
//		• Environment: random connected networks and a three-objective cost model
//		• Traversals: BFS, DFS and simple-path enumeration
//		• Shortest paths: Dijkstra with pluggable edge weights
//		• Evolutionary search: tournament selection, crossover, mutation, elitism
//		• Q-learning: ε-greedy training and greedy path extraction
//		• Benchmarking: timed repeated runs, CSV/SQLite reports, Prometheus metrics
//
// The cost of a path is
//
//	wDelay·delay + wRel·(−Σ ln reliability) + wRes·Σ 1000/bandwidth
//
// and lower is better. "No path" is a value (network.NoRoute(): empty path,
// +Inf cost), never an error.
//
// Under the hood, everything is organized under these subpackages:
//
//	network/     Network, Builder, Generate, PathMetrics, WeightedCost
//	bfs/         breadth-first traversal, reachability, connectivity
//	dfs/         depth-first traversal, simple-path enumeration
//	dijkstra/    shortest paths under arbitrary non-negative edge weights
//	genetic/     evolutionary path search
//	qlearning/   tabular Q-learning agent
//	benchmark/   repeated timed comparison of both optimizers
//	report/      CSV and SQLite persistence of benchmark records
//	cmd/netpath  command-line front end
//
// Quick start:
//
//	nw, _ := network.Generate(50, 0.2, network.WithSeed(42))
//	w := network.Weights{Delay: 0.34, Reliability: 0.33, Resource: 0.33}
//	o, _ := genetic.New(nw, 0, 49, w)
//	route, _ := o.Run(ctx)
//	fmt.Println(route.Path, route.Cost)
package netpath
