// SPDX-License-Identifier: MIT

package benchmark

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/netpath/bfs"
	"github.com/katalvlaran/netpath/dijkstra"
	"github.com/katalvlaran/netpath/genetic"
	"github.com/katalvlaran/netpath/internal/ctxlog"
	"github.com/katalvlaran/netpath/internal/metrics"
	"github.com/katalvlaran/netpath/internal/rng"
	"github.com/katalvlaran/netpath/network"
	"github.com/katalvlaran/netpath/qlearning"
	"github.com/katalvlaran/netpath/report"
)

// Algorithm names used in records and metric labels.
const (
	AlgorithmGenetic   = "genetic"
	AlgorithmQLearning = "qlearning"
	AlgorithmReference = "dijkstra"
)

// ErrNilNetwork indicates Run was called without a network.
var ErrNilNetwork = errors.New("benchmark: network is nil")

// Case is one (source, destination) query.
type Case struct {
	ID          int // 1-based
	Source      int
	Destination int
}

// Result is the outcome of a benchmark run.
type Result struct {
	RunID   string
	Cases   []Case
	Records []report.Record
	Elapsed time.Duration
}

// Completed returns the records of runs that finished. After an aborted Run
// the slots of unfinished runs are zero-valued and are left out.
func (r *Result) Completed() []report.Record {
	out := make([]report.Record, 0, len(r.Records))
	for _, rec := range r.Records {
		if rec.Algorithm != "" {
			out = append(out, rec)
		}
	}
	return out
}

// solver is the common surface of genetic.Optimizer and qlearning.Agent.
type solver interface {
	Run(ctx context.Context) (network.Route, error)
}

// job is one timed optimizer run; slot is its position in Result.Records.
type job struct {
	slot      int
	c         Case
	algorithm string
	repeat    int
	seed      int64
}

// Run executes the benchmark described by cfg on nw. The logger is taken
// from ctx; reg may be nil.
//
// A cancelled context stops the pool; Run then returns the partial result
// with ctx's error, and the records of unfinished runs stay zero-valued.
func Run(ctx context.Context, nw *network.Network, cfg Config, reg *metrics.Registry) (*Result, error) {
	if nw == nil {
		return nil, ErrNilNetwork
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		RunID: report.NewRunID(),
		Cases: SampleCases(nw.NumNodes(), cfg.Cases, cfg.Seed),
	}
	log := ctxlog.FromContext(ctx).With("run_id", res.RunID)
	if reg != nil {
		reg.SetNetwork(nw.NumNodes(), nw.NumEdges())
	}
	for _, c := range res.Cases {
		if !bfs.Reachable(nw, c.Source, c.Destination) {
			log.Warn("case has no route", "case", c.ID, "source", c.Source, "destination", c.Destination)
		}
	}

	jobs := plan(res.Cases, cfg)
	res.Records = make([]report.Record, len(jobs))
	log.Info("benchmark started",
		"cases", len(res.Cases),
		"repeats", cfg.Repeats,
		"runs", len(jobs),
		"workers", cfg.Workers,
	)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for _, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			rec, err := execute(gctx, nw, cfg, j, log)
			if err != nil {
				return err
			}
			rec.RunID = res.RunID
			res.Records[j.slot] = rec
			if reg != nil {
				reg.RecordRun(j.algorithm, rec.Found(), time.Duration(rec.TimeMS*float64(time.Millisecond)), rec.Cost, max(rec.PathLength-1, 0))
			}
			return nil
		})
	}
	err := g.Wait()
	res.Elapsed = time.Since(start)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		log.Warn("benchmark aborted", "err", err, "elapsed", res.Elapsed)
		return res, err
	}

	log.Info("benchmark finished", "elapsed", res.Elapsed)
	return res, nil
}

// SampleCases draws count queries with source ≠ destination from a stream
// seeded with seed. The same pair may be drawn twice. Networks with fewer
// than two nodes yield no cases.
func SampleCases(n, count int, seed int64) []Case {
	if n < 2 {
		return nil
	}
	r := rand.New(rand.NewSource(seed))
	cases := make([]Case, count)
	for i := range cases {
		s := r.Intn(n)
		d := r.Intn(n)
		for d == s {
			d = r.Intn(n)
		}
		cases[i] = Case{ID: i + 1, Source: s, Destination: d}
	}
	return cases
}

// plan lays jobs out by case, then algorithm, then repeat. Optimizer seeds
// are derived from cfg.Seed and the slot so results do not depend on
// scheduling.
func plan(cases []Case, cfg Config) []job {
	var jobs []job
	add := func(c Case, algorithm string, repeat int) {
		slot := len(jobs)
		var seed int64
		if cfg.Seed != 0 {
			seed = rng.Derive(cfg.Seed, uint64(slot))
		}
		jobs = append(jobs, job{slot: slot, c: c, algorithm: algorithm, repeat: repeat, seed: seed})
	}
	for _, c := range cases {
		for r := 1; r <= cfg.Repeats; r++ {
			add(c, AlgorithmGenetic, r)
		}
		for r := 1; r <= cfg.Repeats; r++ {
			add(c, AlgorithmQLearning, r)
		}
		if cfg.Reference {
			add(c, AlgorithmReference, 1)
		}
	}
	return jobs
}

// execute builds the optimizer for j, runs it and times the whole thing,
// construction included.
func execute(ctx context.Context, nw *network.Network, cfg Config, j job, log *slog.Logger) (report.Record, error) {
	start := time.Now()
	route, err := solve(ctx, nw, cfg, j, log)
	elapsed := time.Since(start)
	if err != nil {
		return report.Record{}, fmt.Errorf("%s case %d repeat %d: %w", j.algorithm, j.c.ID, j.repeat, err)
	}

	log.Debug("run finished",
		"case", j.c.ID,
		"algorithm", j.algorithm,
		"repeat", j.repeat,
		"cost", route.Cost,
		"elapsed", elapsed,
	)
	return report.Record{
		TestID:      j.c.ID,
		Source:      j.c.Source,
		Destination: j.c.Destination,
		Algorithm:   j.algorithm,
		Repeat:      j.repeat,
		TimeMS:      float64(elapsed.Microseconds()) / 1000,
		Cost:        route.Cost,
		PathLength:  len(route.Path),
	}, nil
}

func solve(ctx context.Context, nw *network.Network, cfg Config, j job, log *slog.Logger) (network.Route, error) {
	var (
		s   solver
		err error
	)
	switch j.algorithm {
	case AlgorithmGenetic:
		s, err = genetic.New(nw, j.c.Source, j.c.Destination, cfg.Weights,
			genetic.WithPopulationSize(cfg.Genetic.Population),
			genetic.WithGenerations(cfg.Genetic.Generations),
			genetic.WithMutationRate(cfg.Genetic.MutationRate),
			genetic.WithSeed(j.seed),
			genetic.WithLogger(log),
		)
	case AlgorithmQLearning:
		s, err = qlearning.New(nw, j.c.Source, j.c.Destination, cfg.Weights,
			qlearning.WithEpisodes(cfg.QLearning.Episodes),
			qlearning.WithAlpha(cfg.QLearning.Alpha),
			qlearning.WithGamma(cfg.QLearning.Gamma),
			qlearning.WithEpsilon(cfg.QLearning.Epsilon),
			qlearning.WithSeed(j.seed),
			qlearning.WithLogger(log),
		)
	case AlgorithmReference:
		return reference(nw, j.c, cfg.Weights)
	default:
		return network.NoRoute(), fmt.Errorf("unknown algorithm %q", j.algorithm)
	}
	if err != nil {
		return network.NoRoute(), err
	}
	return s.Run(ctx)
}

// reference routes along per-edge weighted costs and prices the result with
// the full cost model.
func reference(nw *network.Network, c Case, w network.Weights) (network.Route, error) {
	path, _, err := dijkstra.ShortestPath(nw, c.Source, c.Destination, dijkstra.AttributeWeight(w))
	if errors.Is(err, dijkstra.ErrNoPath) {
		return network.NoRoute(), nil
	}
	if err != nil {
		return network.NoRoute(), err
	}
	return nw.Evaluate(path, w), nil
}
