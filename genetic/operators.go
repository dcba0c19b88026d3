// SPDX-License-Identifier: MIT

package genetic

import (
	"slices"

	"github.com/katalvlaran/netpath/dijkstra"
	"github.com/katalvlaran/netpath/network"
)

// tournament samples min(k, len(population)) distinct candidates and returns
// the cheapest; ties go to the first sampled.
func (o *Optimizer) tournament() network.Route {
	pop := o.population
	k := min(o.opts.TournamentSize, len(pop))
	picks := o.rng.Perm(len(pop))[:k]

	best := pop[picks[0]]
	for _, i := range picks[1:] {
		if pop[i].Cost < best.Cost {
			best = pop[i]
		}
	}
	return best
}

// Crossover splices two parents at a random node both visit, excluding the
// source and the target:
//
//	child1 = p1[:i1] ++ p2[i2:]
//	child2 = p2[:i2] ++ p1[i1:]
//
// Parents without a common interior node are returned unchanged. A child that
// repeats a node is replaced by its own parent, so both results are simple
// whenever the parents are.
func (o *Optimizer) Crossover(p1, p2 network.Path) (network.Path, network.Path) {
	inP2 := make(map[int]int, len(p2))
	for i, v := range p2 {
		inP2[v] = i
	}
	var common []int
	for _, v := range p1 {
		if v == o.source || v == o.target {
			continue
		}
		if _, ok := inP2[v]; ok {
			common = append(common, v)
		}
	}
	if len(common) == 0 {
		return p1, p2
	}

	pivot := common[o.rng.Intn(len(common))]
	i1, i2 := p1.Index(pivot), inP2[pivot]

	c1 := network.Path(slices.Concat(p1[:i1], p2[i2:]))
	c2 := network.Path(slices.Concat(p2[:i2], p1[i1:]))
	if !c1.IsSimple() {
		c1 = p1
	}
	if !c2.IsSimple() {
		c2 = p2
	}
	return c1, c2
}

// Mutate, with probability MutationRate, keeps the prefix of path up to a
// random interior cut node and re-routes from there to the target under
// fresh random edge weights. Paths shorter than three nodes, unreachable
// tails and non-simple results leave path unchanged.
func (o *Optimizer) Mutate(path network.Path) network.Path {
	if o.rng.Float64() >= o.opts.MutationRate || len(path) < 3 {
		return path
	}
	cut := 1 + o.rng.Intn(len(path)-2)
	tail, err := dijkstra.RandomizedPath(o.nw, path[cut], o.target, o.rng)
	if err != nil {
		return path
	}
	mutated := network.Path(slices.Concat(path[:cut], tail))
	if !mutated.IsSimple() {
		return path
	}
	return mutated
}
