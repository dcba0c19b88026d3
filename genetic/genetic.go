// SPDX-License-Identifier: MIT

package genetic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"

	"github.com/katalvlaran/netpath/dijkstra"
	"github.com/katalvlaran/netpath/internal/rng"
	"github.com/katalvlaran/netpath/internal/validation"
	"github.com/katalvlaran/netpath/network"
)

// Optimizer evolves a population of simple source→target paths.
type Optimizer struct {
	nw      *network.Network
	source  int
	target  int
	weights network.Weights
	opts    Options
	rng     *rand.Rand
	log     *slog.Logger

	population []network.Route
	generation int
	state      State
}

// New validates the query and options and returns an Optimizer in
// StateUninitialized.
//
// Errors: ErrNilNetwork, network.ErrNodeNotFound, network.ErrSameEndpoints,
// network.ErrInvalidWeights, ErrInvalidOptions.
func New(nw *network.Network, source, target int, w network.Weights, opts ...Option) (*Optimizer, error) {
	if nw == nil {
		return nil, ErrNilNetwork
	}
	if err := nw.CheckQuery(source, target); err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validation.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return &Optimizer{
		nw:      nw,
		source:  source,
		target:  target,
		weights: w,
		opts:    cfg,
		rng:     rng.New(cfg.Seed),
		log: cfg.Logger.With(
			"algorithm", "genetic",
			"source", source,
			"target", target,
		),
		state: StateUninitialized,
	}, nil
}

// Run seeds the population and evolves it for exactly Generations
// generations, returning the best candidate of the final population.
// An unreachable target yields network.NoRoute() and a nil error.
//
// Run may be called again; each call starts from a fresh population but
// continues the optimizer's random stream. If ctx is cancelled between
// generations, Run stops and returns the best route so far with ctx.Err().
func (o *Optimizer) Run(ctx context.Context) (network.Route, error) {
	o.generation = 0
	o.initialize()
	if len(o.population) == 0 {
		o.state = StateConverged
		o.log.Info("target unreachable")
		return network.NoRoute(), nil
	}
	o.log.Debug("population seeded", "size", len(o.population), "best_cost", o.population[0].Cost)

	o.state = StateEvolving
	for g := 0; g < o.opts.Generations; g++ {
		if err := ctx.Err(); err != nil {
			o.log.Warn("evolution interrupted", "generation", g, "err", err)
			return o.Best(), err
		}
		o.evolve()
		o.generation = g + 1
		if o.opts.OnGeneration != nil {
			o.opts.OnGeneration(g, o.Population())
		}
		o.log.Debug("generation done", "generation", g, "best_cost", o.population[0].Cost)
	}
	o.state = StateConverged

	best := o.Best()
	o.log.Info("evolution finished",
		"generations", o.generation,
		"best_cost", best.Cost,
		"hops", len(best.Path)-1,
	)
	return best, nil
}

// Best returns the lowest-cost candidate of the current population, or
// network.NoRoute() when the population is empty.
func (o *Optimizer) Best() network.Route {
	if len(o.population) == 0 {
		return network.NoRoute()
	}
	best := o.population[0]
	return network.Route{Path: best.Path.Clone(), Cost: best.Cost}
}

// Population returns a copy of the current population sorted by cost.
func (o *Optimizer) Population() []network.Route {
	out := make([]network.Route, len(o.population))
	for i, c := range o.population {
		out[i] = network.Route{Path: c.Path.Clone(), Cost: c.Cost}
	}
	return out
}

// Generation returns the number of completed generations.
func (o *Optimizer) Generation() int { return o.generation }

// State returns the lifecycle stage.
func (o *Optimizer) State() State { return o.state }

// initialize fills the population with distinct randomized shortest paths,
// giving up after initAttemptFactor·PopulationSize tries.
func (o *Optimizer) initialize() {
	size := o.opts.PopulationSize
	budget := initAttemptFactor * size
	seen := make(map[string]struct{}, size)
	pop := make([]network.Route, 0, size)

	for attempt := 0; attempt < budget && len(pop) < size; attempt++ {
		path, err := dijkstra.RandomizedPath(o.nw, o.source, o.target, o.rng)
		if errors.Is(err, dijkstra.ErrNoPath) {
			// reachability does not depend on the weights
			break
		}
		if err != nil {
			continue
		}
		key := path.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		pop = append(pop, o.evaluate(path))
	}

	sortPopulation(pop)
	o.population = pop
	o.state = StatePopulated
}

// evolve replaces the population with the elites plus offspring bred by
// tournament selection, crossover and mutation.
func (o *Optimizer) evolve() {
	size := o.opts.PopulationSize
	elite := min(o.opts.EliteCount, len(o.population))

	next := make([]network.Route, 0, size)
	next = append(next, o.population[:elite]...)
	for len(next) < size {
		a, b := o.tournament(), o.tournament()
		c1, c2 := o.Crossover(a.Path, b.Path)
		next = append(next, o.evaluate(o.Mutate(c1)))
		if len(next) < size {
			next = append(next, o.evaluate(o.Mutate(c2)))
		}
	}

	sortPopulation(next)
	o.population = next
}

func (o *Optimizer) evaluate(path network.Path) network.Route {
	return network.Route{Path: path, Cost: o.nw.WeightedCost(path, o.weights)}
}

// sortPopulation orders candidates by ascending cost, keeping the relative
// order of ties.
func sortPopulation(pop []network.Route) {
	sort.SliceStable(pop, func(i, j int) bool { return pop[i].Cost < pop[j].Cost })
}
