// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/netpath/bfs"
)

// Generate samples a connected random network over n nodes in which every
// unordered pair is linked independently with probability p.
//
// Topology attempt k (k = 0, 1, ...) is drawn from seed+k; disconnected
// samples are discarded. After maxAttempts failures Generate returns
// ErrGenerationExhausted instead of looping forever on hopeless (n, p).
// Node and edge attributes are then drawn once from a stream seeded with the
// requested seed, so a fixed seed reproduces the whole network.
//
// Complexity: O(attempts · n²) trials plus O(n + E) per connectivity check.
func Generate(n int, p float64, opts ...GenerateOption) (*Network, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewNodes, n)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: p=%v not in [0,1]", ErrInvalidProbability, p)
	}
	cfg := newGenerateConfig(opts...)
	log := cfg.logger.With("nodes", n, "probability", p)
	log.Info("generating network", "seed", cfg.seed)

	var (
		pairs [][2]int
		seed  = cfg.seed
		nw    *Network
	)
	for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
		pairs = samplePairs(n, p, rand.New(rand.NewSource(seed)))
		nw = newNetwork(placeholderNodes(n), pairsToEdges(pairs))
		if bfs.Connected(nw) {
			nw.seed = seed
			nw.attempts = attempt
			break
		}
		log.Debug("topology disconnected, resampling", "attempt", attempt, "seed", seed)
		nw = nil
		seed++
	}
	if nw == nil {
		return nil, fmt.Errorf("%w: n=%d p=%v after %d attempts", ErrGenerationExhausted, n, p, cfg.maxAttempts)
	}

	assignAttributes(nw, rand.New(rand.NewSource(cfg.seed)))
	log.Info("network ready", "edges", nw.NumEdges(), "attempts", nw.attempts, "topology_seed", nw.seed)

	return nw, nil
}

// samplePairs runs the Bernoulli trials in a stable order: i ascending, then
// j > i ascending.
func samplePairs(n int, p float64, rng *rand.Rand) [][2]int {
	var pairs [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

func placeholderNodes(n int) []Node {
	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i] = Node{ID: i, Reliability: 1}
	}
	return nodes
}

func pairsToEdges(pairs [][2]int) []Edge {
	edges := make([]Edge, len(pairs))
	for i, pr := range pairs {
		edges[i] = Edge{U: pr[0], V: pr[1]}
	}
	return edges
}

// assignAttributes draws node attributes in id order, then edge attributes
// in edge-index order, precomputing the derived costs.
func assignAttributes(nw *Network, rng *rand.Rand) {
	for i := range nw.nodes {
		rel := uniform(rng, MinReliability, MaxReliability)
		nw.nodes[i] = Node{
			ID:              i,
			ProcessingDelay: uniform(rng, MinProcessingDelay, MaxProcessingDelay),
			Reliability:     rel,
			ReliabilityCost: -math.Log(rel),
		}
	}
	for i := range nw.edges {
		e := &nw.edges[i]
		bw := uniform(rng, MinBandwidth, MaxBandwidth)
		delay := uniform(rng, MinLinkDelay, MaxLinkDelay)
		rel := uniform(rng, MinReliability, MaxReliability)
		*e = newEdge(e.U, e.V, bw, delay, rel)
		e.ID = i
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
