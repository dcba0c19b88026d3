// SPDX-License-Identifier: MIT

package dijkstra

import (
	"math/rand"

	"github.com/katalvlaran/netpath/network"
)

// RandomWeights draws one uniform [0,1) weight per edge of nw from rng, in
// edge-id order, and returns them as a WeightFunc. The draw happens here, so
// the returned function is deterministic and may be reused.
func RandomWeights(nw *network.Network, rng *rand.Rand) WeightFunc {
	w := make([]float64, nw.NumEdges())
	for i := range w {
		w[i] = rng.Float64()
	}
	return func(e network.Edge) float64 { return w[e.ID] }
}

// RandomizedPath returns the shortest path from source to target under a fresh
// random weighting. The result is simple by construction. Unreachable targets
// yield ErrNoPath.
func RandomizedPath(nw *network.Network, source, target int, rng *rand.Rand) (network.Path, error) {
	if nw == nil {
		return nil, ErrNilGraph
	}
	path, _, err := ShortestPath(nw, source, target, RandomWeights(nw, rng))
	return path, err
}

// DelayWeight weighs edges by link delay.
func DelayWeight(e network.Edge) float64 { return e.Delay }

// AttributeWeight weighs every edge by its own share of the weighted cost
// (link delay, reliability cost and resource cost). Node processing terms are
// ignored, so the resulting path is a heuristic reference, not an optimum of
// network.WeightedCost.
func AttributeWeight(w network.Weights) WeightFunc {
	return func(e network.Edge) float64 {
		return w.Delay*e.Delay + w.Reliability*e.ReliabilityCost + w.Resource*e.ResourceCost
	}
}
