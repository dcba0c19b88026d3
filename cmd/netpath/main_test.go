package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netpath/benchmark"
	"github.com/katalvlaran/netpath/report"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = orig })
	return &buf
}

func TestRun_Usage(t *testing.T) {
	err := run(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage: netpath")

	err = run(context.Background(), []string{"fly"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command: fly")
}

func TestRunGenerate(t *testing.T) {
	out := capture(t)
	require.NoError(t, run(context.Background(), []string{"generate", "-nodes", "8", "-p", "1", "-edges"}))

	text := out.String()
	assert.Contains(t, text, "network: 8 nodes, 28 links, mean degree 7")
	assert.Contains(t, text, "1 attempt")
	assert.Equal(t, 2+28, strings.Count(text, "\n"))
}

func TestRunRoute(t *testing.T) {
	out := capture(t)
	args := []string{"route",
		"-nodes", "10", "-p", "0.5", "-source", "0", "-target", "9",
		"-gens", "5", "-pop", "10", "-episodes", "200", "-opt-seed", "3",
	}
	require.NoError(t, run(context.Background(), args))
	text := out.String()
	assert.Contains(t, text, "genetic: 0 → ")
	assert.Contains(t, text, "qlearning: ")

	err := run(context.Background(), []string{"route", "-source", "1"})
	require.ErrorIs(t, err, errMissingFlag)

	err = run(context.Background(), []string{"route", "-source", "1", "-target", "1"})
	require.Error(t, err)

	err = run(context.Background(), []string{"route", "-source", "0", "-target", "1", "-algo", "astar"})
	require.Error(t, err)
}

func TestRunBench(t *testing.T) {
	out := capture(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bench.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
nodes: 10
probability: 0.5
cases: 2
repeats: 1
workers: 2
genetic:
  population: 8
  generations: 3
qlearning:
  episodes: 50
`), 0o644))

	dbPath := filepath.Join(dir, "runs.db")
	promPath := filepath.Join(dir, "netpath.prom")
	args := []string{"bench",
		"-config", cfgPath,
		"-seed", "5",
		"-reference",
		"-out", dir,
		"-db", dbPath,
		"-metrics", promPath,
	}
	require.NoError(t, run(context.Background(), args))

	matches, err := filepath.Glob(filepath.Join(dir, "report_*.csv"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	records, err := report.ReadCSV(matches[0])
	require.NoError(t, err)
	require.Len(t, records, 2*(1+1+1))

	store := report.NewSQLiteStore(dbPath)
	require.NoError(t, store.Init(context.Background()))
	t.Cleanup(func() { _ = store.Close() })
	stored, err := store.Records(context.Background(), records[0].RunID)
	require.NoError(t, err)
	assert.Len(t, stored, len(records))

	prom, err := os.ReadFile(promPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "netpath_runs_total")

	text := out.String()
	assert.Contains(t, text, "run "+records[0].RunID)
	assert.Contains(t, text, "dijkstra")
	assert.Contains(t, text, "report written to")
}

func TestSaveResults_InterruptedRun(t *testing.T) {
	dir := t.TempDir()
	res := &benchmark.Result{
		RunID: report.NewRunID(),
		Records: []report.Record{
			{TestID: 1, Source: 0, Destination: 3, Algorithm: benchmark.AlgorithmGenetic, Repeat: 1, TimeMS: 1.5, Cost: 2, PathLength: 3},
			{}, // never started
		},
	}
	res.Records[0].RunID = res.RunID

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dbPath := filepath.Join(dir, "runs.db")
	csvPath, err := saveResults(ctx, res, nil, benchOutputs{dir: dir, db: dbPath})
	require.NoError(t, err)

	records, err := report.ReadCSV(csvPath)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, benchmark.AlgorithmGenetic, records[0].Algorithm)

	store := report.NewSQLiteStore(dbPath)
	require.NoError(t, store.Init(context.Background()))
	t.Cleanup(func() { _ = store.Close() })
	stored, err := store.Records(context.Background(), res.RunID)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}
