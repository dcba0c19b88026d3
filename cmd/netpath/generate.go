// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/katalvlaran/netpath/network"
)

// networkFlags are shared by every command that generates a network.
type networkFlags struct {
	nodes *int
	prob  *float64
	seed  *int64
}

func addNetworkFlags(fs *flag.FlagSet) networkFlags {
	return networkFlags{
		nodes: fs.Int("nodes", 50, "number of nodes"),
		prob:  fs.Float64("p", 0.2, "link probability"),
		seed:  fs.Int64("seed", network.DefaultSeed, "generation seed"),
	}
}

func (f networkFlags) build(logger *slog.Logger) (*network.Network, error) {
	return network.Generate(*f.nodes, *f.prob, network.WithSeed(*f.seed), network.WithLogger(logger))
}

func runGenerate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	nf := addNetworkFlags(fs)
	list := fs.Bool("edges", false, "list every link")
	level := logFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	_, logger, err := withLogger(ctx, *level)
	if err != nil {
		return err
	}

	nw, err := nf.build(logger)
	if err != nil {
		return err
	}

	degrees := 0
	for id := 0; id < nw.NumNodes(); id++ {
		degrees += nw.Degree(id)
	}
	fmt.Fprintf(stdout, "network: %s nodes, %s links, mean degree %s\n",
		humanize.Comma(int64(nw.NumNodes())),
		humanize.Comma(int64(nw.NumEdges())),
		humanize.FtoaWithDigits(float64(degrees)/float64(nw.NumNodes()), 2),
	)
	fmt.Fprintf(stdout, "seed %d, topology seed %d, %s\n",
		*nf.seed, nw.Seed(), english.Plural(nw.Attempts(), "attempt", "attempts"))

	if *list {
		for _, e := range nw.Edges() {
			fmt.Fprintf(stdout, "%d-%d bw=%.1f delay=%.2f rel=%.4f\n", e.U, e.V, e.Bandwidth, e.Delay, e.Reliability)
		}
	}
	return nil
}
