// SPDX-License-Identifier: MIT

// Command netpath generates synthetic networks, routes single queries with
// the evolutionary and Q-learning optimizers and benchmarks them.
//
//	netpath generate -nodes 50 -p 0.2
//	netpath route -source 0 -target 17 -algo both
//	netpath bench -config bench.yaml -out reports -db runs.db
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/netpath/internal/ctxlog"
)

// stdout receives command output; tests swap it.
var stdout io.Writer = os.Stdout

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "generate":
		return runGenerate(ctx, args[1:])
	case "route":
		return runRoute(ctx, args[1:])
	case "bench":
		return runBench(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: netpath <generate|route|bench> [flags]", msg)
}

// logFlag registers the shared -log-level flag.
func logFlag(fs *flag.FlagSet) *string {
	return fs.String("log-level", "warn", "log level: debug|info|warn|error")
}

// withLogger builds a stderr text logger at level and stores it in ctx.
func withLogger(ctx context.Context, level string) (context.Context, *slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return ctx, nil, fmt.Errorf("invalid -log-level %q: %w", level, err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	return ctxlog.WithLogger(ctx, logger), logger, nil
}

// flagsSet reports which flags were given on the command line.
func flagsSet(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

var errMissingFlag = errors.New("missing required flag")
