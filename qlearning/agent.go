// SPDX-License-Identifier: MIT

package qlearning

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/netpath/internal/rng"
	"github.com/katalvlaran/netpath/internal/validation"
	"github.com/katalvlaran/netpath/network"
)

// Agent learns Q-values for routing from a fixed source to a fixed target.
type Agent struct {
	nw      *network.Network
	source  int
	target  int
	weights network.Weights
	opts    Options
	rng     *rand.Rand
	log     *slog.Logger

	table *QTable
	stats Stats

	// per-episode scratch
	visited []bool
	path    network.Path
	ties    []int
}

// New validates the query and options and returns an Agent with an all-zero
// Q-table.
//
// Errors: ErrNilNetwork, network.ErrNodeNotFound, network.ErrSameEndpoints,
// network.ErrInvalidWeights, ErrInvalidOptions.
func New(nw *network.Network, source, target int, w network.Weights, opts ...Option) (*Agent, error) {
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
	return &Agent{
		nw:      nw,
		source:  source,
		target:  target,
		weights: w,
		opts:    cfg,
		rng:     rng.New(cfg.Seed),
		log: cfg.Logger.With(
			"algorithm", "qlearning",
			"source", source,
			"target", target,
		),
		table:   newQTable(nw),
		visited: make([]bool, nw.NumNodes()),
	}, nil
}

// Train runs Episodes episodes. Repeated calls keep refining the same table.
// Cancellation is checked between episodes; the table keeps what was learned.
func (a *Agent) Train(ctx context.Context) error {
	for ep := 0; ep < a.opts.Episodes; ep++ {
		if err := ctx.Err(); err != nil {
			a.log.Warn("training interrupted", "episode", ep, "err", err)
			return err
		}
		reached := a.episode()
		a.stats.Episodes++
		if reached {
			a.stats.Successes++
		}
		if a.opts.OnEpisode != nil {
			a.opts.OnEpisode(ep, reached)
		}
		if (ep+1)%logEvery == 0 {
			a.log.Debug("training progress",
				"episodes", a.stats.Episodes,
				"successes", a.stats.Successes,
				"q_source", a.table.Max(a.source),
			)
		}
	}
	a.log.Info("training finished", "episodes", a.stats.Episodes, "successes", a.stats.Successes)
	return nil
}

// Run trains and then extracts the greedy path.
func (a *Agent) Run(ctx context.Context) (network.Route, error) {
	if err := a.Train(ctx); err != nil {
		return a.BestPath(), err
	}
	return a.BestPath(), nil
}

// BestPath follows the highest unvisited Q-value from the source. It returns
// network.NoRoute() on a dead end, when the best Q-value is 0, or when the
// walk exceeds N steps.
func (a *Agent) BestPath() network.Route {
	n := a.nw.NumNodes()
	visited := make([]bool, n)
	visited[a.source] = true
	path := network.Path{a.source}

	for state := a.source; state != a.target; {
		nbrs := a.table.nbrs[state]
		if len(nbrs) == 0 {
			return network.NoRoute()
		}
		best, bestQ := -1, math.Inf(-1)
		for i, next := range nbrs {
			if visited[next] {
				continue
			}
			if q := a.table.q[state][i]; q > bestQ {
				best, bestQ = i, q
			}
		}
		if best < 0 || bestQ == 0 {
			return network.NoRoute()
		}
		state = nbrs[best]
		visited[state] = true
		path = append(path, state)
		if len(path) > n {
			return network.NoRoute()
		}
	}

	return network.Route{Path: path, Cost: a.nw.WeightedCost(path, a.weights)}
}

// Table exposes the learned Q-values.
func (a *Agent) Table() *QTable { return a.table }

// Stats reports the training counters.
func (a *Agent) Stats() Stats { return a.stats }

// episode runs one training episode and reports whether it reached the
// target.
func (a *Agent) episode() bool {
	clear(a.visited)
	a.visited[a.source] = true
	a.path = append(a.path[:0], a.source)
	state := a.source
	maxSteps := a.opts.StepFactor * a.nw.NumNodes()

	for step := 0; step < maxSteps; step++ {
		i, ok := a.chooseAction(state)
		if !ok {
			return false
		}
		next := a.table.nbrs[state][i]
		q := &a.table.q[state][i]

		if next == a.target {
			a.path = append(a.path, next)
			cost := math.Max(a.nw.WeightedCost(a.path, a.weights), MinRewardCost)
			*q += a.opts.Alpha * (TerminalReward/cost - *q)
			return true
		}

		*q += a.opts.Alpha * (a.opts.Gamma*a.table.Max(next) - *q)
		state = next
		a.path = append(a.path, next)
		if a.visited[next] {
			return false
		}
		a.visited[next] = true
	}
	return false
}

// chooseAction returns the index of the chosen neighbor of state, or false
// when state has none.
func (a *Agent) chooseAction(state int) (int, bool) {
	row := a.table.q[state]
	if len(row) == 0 {
		return 0, false
	}
	if a.rng.Float64() < a.opts.Epsilon {
		return a.rng.Intn(len(row)), true
	}

	best := math.Inf(-1)
	a.ties = a.ties[:0]
	for i, v := range row {
		switch {
		case v > best:
			best = v
			a.ties = append(a.ties[:0], i)
		case v == best:
			a.ties = append(a.ties, i)
		}
	}
	return a.ties[a.rng.Intn(len(a.ties))], true
}
