// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/katalvlaran/netpath/benchmark"
	"github.com/katalvlaran/netpath/genetic"
	"github.com/katalvlaran/netpath/network"
	"github.com/katalvlaran/netpath/qlearning"
)

func runRoute(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("route", flag.ContinueOnError)
	nf := addNetworkFlags(fs)
	source := fs.Int("source", -1, "source node id")
	target := fs.Int("target", -1, "target node id")
	algo := fs.String("algo", "both", "optimizer: genetic|qlearning|both")
	wDelay := fs.Float64("w-delay", 0.33, "delay weight")
	wRel := fs.Float64("w-rel", 0.33, "reliability weight")
	wRes := fs.Float64("w-res", 0.34, "resource weight")
	pop := fs.Int("pop", genetic.DefaultPopulationSize, "GA population size")
	gens := fs.Int("gens", genetic.DefaultGenerations, "GA generations")
	mutation := fs.Float64("mutation", genetic.DefaultMutationRate, "GA mutation rate")
	episodes := fs.Int("episodes", qlearning.DefaultEpisodes, "Q-learning episodes")
	alpha := fs.Float64("alpha", qlearning.DefaultAlpha, "Q-learning rate")
	gamma := fs.Float64("gamma", qlearning.DefaultGamma, "Q-learning discount")
	epsilon := fs.Float64("epsilon", qlearning.DefaultEpsilon, "Q-learning exploration rate")
	optSeed := fs.Int64("opt-seed", 0, "optimizer seed (0 = random)")
	level := logFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	set := flagsSet(fs)
	if !set["source"] || !set["target"] {
		return fmt.Errorf("%w: -source and -target", errMissingFlag)
	}
	ctx, logger, err := withLogger(ctx, *level)
	if err != nil {
		return err
	}

	var algorithms []string
	switch *algo {
	case benchmark.AlgorithmGenetic, benchmark.AlgorithmQLearning:
		algorithms = []string{*algo}
	case "both":
		algorithms = []string{benchmark.AlgorithmGenetic, benchmark.AlgorithmQLearning}
	default:
		return fmt.Errorf("unknown -algo %q", *algo)
	}

	nw, err := nf.build(logger)
	if err != nil {
		return err
	}
	w := network.Weights{Delay: *wDelay, Reliability: *wRel, Resource: *wRes}

	for _, name := range algorithms {
		var (
			route network.Route
			start = time.Now()
		)
		switch name {
		case benchmark.AlgorithmGenetic:
			o, err := genetic.New(nw, *source, *target, w,
				genetic.WithPopulationSize(*pop),
				genetic.WithGenerations(*gens),
				genetic.WithMutationRate(*mutation),
				genetic.WithSeed(*optSeed),
				genetic.WithLogger(logger),
			)
			if err != nil {
				return err
			}
			if route, err = o.Run(ctx); err != nil {
				return err
			}
		case benchmark.AlgorithmQLearning:
			a, err := qlearning.New(nw, *source, *target, w,
				qlearning.WithEpisodes(*episodes),
				qlearning.WithAlpha(*alpha),
				qlearning.WithGamma(*gamma),
				qlearning.WithEpsilon(*epsilon),
				qlearning.WithSeed(*optSeed),
				qlearning.WithLogger(logger),
			)
			if err != nil {
				return err
			}
			if route, err = a.Run(ctx); err != nil {
				return err
			}
		}
		printRoute(nw, name, route, time.Since(start))
	}
	return nil
}

func printRoute(nw *network.Network, name string, route network.Route, elapsed time.Duration) {
	if !route.Found() {
		fmt.Fprintf(stdout, "%s: no path (%s)\n", name, elapsed.Round(time.Millisecond))
		return
	}
	m := nw.PathMetrics(route.Path)
	fmt.Fprintf(stdout, "%s: %s cost=%.4f hops=%d delay=%.2fms reliability=%.4f resource=%.3f (%s)\n",
		name, route.Path, route.Cost, len(route.Path)-1,
		m.Delay, m.Reliability(), m.ResourceCost, elapsed.Round(time.Millisecond))
}
