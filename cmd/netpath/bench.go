// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/netpath/benchmark"
	"github.com/katalvlaran/netpath/internal/metrics"
	"github.com/katalvlaran/netpath/network"
	"github.com/katalvlaran/netpath/report"
)

func runBench(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML benchmark config (defaults apply when empty)")
	nodes := fs.Int("nodes", 0, "override config nodes")
	prob := fs.Float64("p", 0, "override config link probability")
	seed := fs.Int64("seed", 0, "override config seed")
	cases := fs.Int("cases", 0, "override config cases")
	repeats := fs.Int("repeats", 0, "override config repeats")
	workers := fs.Int("workers", 0, "override config workers")
	reference := fs.Bool("reference", false, "add a Dijkstra reference run per case")
	outDir := fs.String("out", ".", "directory for the CSV report")
	dbPath := fs.String("db", "", "also store records in this sqlite database")
	metricsPath := fs.String("metrics", "", "write Prometheus metrics to this textfile")
	level := logFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	ctx, logger, err := withLogger(ctx, *level)
	if err != nil {
		return err
	}

	cfg := benchmark.DefaultConfig()
	if *configPath != "" {
		if cfg, err = benchmark.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	set := flagsSet(fs)
	if set["nodes"] {
		cfg.Nodes = *nodes
	}
	if set["p"] {
		cfg.Probability = *prob
	}
	if set["seed"] {
		cfg.Seed = *seed
	}
	if set["cases"] {
		cfg.Cases = *cases
	}
	if set["repeats"] {
		cfg.Repeats = *repeats
	}
	if set["workers"] {
		cfg.Workers = *workers
	}
	if set["reference"] {
		cfg.Reference = *reference
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	nw, err := network.Generate(cfg.Nodes, cfg.Probability, network.WithSeed(cfg.Seed), network.WithLogger(logger))
	if err != nil {
		return err
	}
	reg := metrics.NewRegistry()

	res, runErr := benchmark.Run(ctx, nw, cfg, reg)
	if res == nil {
		return runErr
	}
	out := benchOutputs{dir: *outDir, db: *dbPath, metrics: *metricsPath}
	csvPath, err := saveResults(ctx, res, reg, out)
	if runErr != nil {
		logger.Warn("benchmark interrupted, partial results saved", "records", len(res.Completed()), "report", csvPath)
		return errors.Join(runErr, err)
	}
	if err != nil {
		return err
	}

	printSummary(res, nw, csvPath)
	return nil
}

type benchOutputs struct {
	dir     string
	db      string
	metrics string
}

// saveResults writes the completed records of res to a new CSV report and,
// when configured, to SQLite and a metrics textfile. It runs on a context
// detached from cancellation so an interrupted benchmark still keeps what
// it finished.
func saveResults(ctx context.Context, res *benchmark.Result, reg *metrics.Registry, out benchOutputs) (string, error) {
	ctx = context.WithoutCancel(ctx)
	records := res.Completed()

	if err := os.MkdirAll(out.dir, 0o755); err != nil {
		return "", err
	}
	csvPath := filepath.Join(out.dir, report.Name(time.Now()))
	if err := report.AppendCSV(csvPath, records); err != nil {
		return "", err
	}
	if out.db != "" {
		store := report.NewSQLiteStore(out.db)
		if err := store.Init(ctx); err != nil {
			return csvPath, err
		}
		defer func() {
			_ = store.Close()
		}()
		if err := store.SaveRecords(ctx, records); err != nil {
			return csvPath, err
		}
	}
	if out.metrics != "" && reg != nil {
		if err := reg.WriteTextfile(out.metrics); err != nil {
			return csvPath, err
		}
	}
	return csvPath, nil
}

func printSummary(res *benchmark.Result, nw *network.Network, csvPath string) {
	fmt.Fprintf(stdout, "run %s: %s cases on %s nodes / %s links, %s runs in %s\n",
		res.RunID,
		humanize.Comma(int64(len(res.Cases))),
		humanize.Comma(int64(nw.NumNodes())),
		humanize.Comma(int64(nw.NumEdges())),
		humanize.Comma(int64(len(res.Records))),
		res.Elapsed.Round(time.Millisecond),
	)
	fmt.Fprintf(stdout, "%-10s %6s %7s %12s %12s %12s\n", "algorithm", "runs", "found", "mean ms", "mean cost", "best cost")
	for _, s := range benchmark.Summarize(res.Records) {
		fmt.Fprintf(stdout, "%-10s %6d %6.0f%% %12s %12.4f %12.4f\n",
			s.Algorithm, s.Runs, 100*s.FoundRatio(),
			humanize.FtoaWithDigits(s.MeanTimeMS, 2), s.MeanCost, s.BestCost)
	}
	size := "?"
	if fi, err := os.Stat(csvPath); err == nil {
		size = humanize.Bytes(uint64(fi.Size()))
	}
	fmt.Fprintf(stdout, "report written to %s (%s)\n", csvPath, size)
}
