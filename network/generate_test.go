package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netpath/bfs"
	"github.com/katalvlaran/netpath/network"
)

func TestGenerate_Validation(t *testing.T) {
	_, err := network.Generate(0, 0.5)
	assert.ErrorIs(t, err, network.ErrTooFewNodes)

	_, err = network.Generate(5, -0.1)
	assert.ErrorIs(t, err, network.ErrInvalidProbability)

	_, err = network.Generate(5, 1.1)
	assert.ErrorIs(t, err, network.ErrInvalidProbability)

	assert.Panics(t, func() { network.WithMaxAttempts(0) })
	assert.Panics(t, func() { network.WithLogger(nil) })
}

// TestGenerate_ConnectedSimpleInRange checks the structural and attribute
// invariants over several seeds.
func TestGenerate_ConnectedSimpleInRange(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 2024} {
		nw, err := network.Generate(40, 0.15, network.WithSeed(seed))
		require.NoError(t, err, "seed %d", seed)
		require.True(t, bfs.Connected(nw), "seed %d", seed)
		require.GreaterOrEqual(t, nw.Attempts(), 1)

		seen := make(map[[2]int]bool)
		for _, e := range nw.Edges() {
			require.NotEqual(t, e.U, e.V, "self-loop")
			require.Less(t, e.U, e.V)
			require.False(t, seen[[2]int{e.U, e.V}], "parallel edge %d-%d", e.U, e.V)
			seen[[2]int{e.U, e.V}] = true

			require.GreaterOrEqual(t, e.Bandwidth, network.MinBandwidth)
			require.LessOrEqual(t, e.Bandwidth, network.MaxBandwidth)
			require.GreaterOrEqual(t, e.Delay, network.MinLinkDelay)
			require.LessOrEqual(t, e.Delay, network.MaxLinkDelay)
			require.GreaterOrEqual(t, e.Reliability, network.MinReliability)
			require.LessOrEqual(t, e.Reliability, network.MaxReliability)
			require.InDelta(t, network.ResourceScale/e.Bandwidth, e.ResourceCost, 1e-12)
			require.Greater(t, e.ReliabilityCost, 0.0)
		}
		for _, n := range nw.Nodes() {
			require.GreaterOrEqual(t, n.ProcessingDelay, network.MinProcessingDelay)
			require.LessOrEqual(t, n.ProcessingDelay, network.MaxProcessingDelay)
			require.GreaterOrEqual(t, n.Reliability, network.MinReliability)
			require.LessOrEqual(t, n.Reliability, network.MaxReliability)
		}
	}
}

// TestGenerate_Reproducible checks that a fixed seed reproduces the network.
func TestGenerate_Reproducible(t *testing.T) {
	a, err := network.Generate(30, 0.2, network.WithSeed(99))
	require.NoError(t, err)
	b, err := network.Generate(30, 0.2, network.WithSeed(99))
	require.NoError(t, err)

	assert.Equal(t, a.Edges(), b.Edges())
	assert.Equal(t, a.Nodes(), b.Nodes())
	assert.Equal(t, a.Seed(), b.Seed())
}

// TestGenerate_BoundedRetry: p=0 can never connect two or more nodes.
func TestGenerate_BoundedRetry(t *testing.T) {
	_, err := network.Generate(10, 0, network.WithMaxAttempts(5))
	assert.ErrorIs(t, err, network.ErrGenerationExhausted)
}

// TestGenerate_Extremes covers the trivial single node and the complete graph.
func TestGenerate_Extremes(t *testing.T) {
	single, err := network.Generate(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, single.NumNodes())
	assert.Zero(t, single.NumEdges())

	full, err := network.Generate(8, 1)
	require.NoError(t, err)
	assert.Equal(t, 8*7/2, full.NumEdges())
	assert.Equal(t, 1, full.Attempts())
}

// TestGenerate_SeedPerturbation: a sparse graph usually needs several samples;
// the accepted seed is the requested one advanced by attempts-1.
func TestGenerate_SeedPerturbation(t *testing.T) {
	nw, err := network.Generate(30, 0.08, network.WithSeed(5), network.WithMaxAttempts(10000))
	require.NoError(t, err)
	assert.Equal(t, int64(5)+int64(nw.Attempts()-1), nw.Seed())
}
