package genetic_test

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/netpath/dijkstra"
	"github.com/katalvlaran/netpath/genetic"
	"github.com/katalvlaran/netpath/network"
)

// validPath reports whether p is a simple s→t walk along existing links.
func validPath(nw *network.Network, p network.Path, s, t int) bool {
	if len(p) < 2 || p[0] != s || p[len(p)-1] != t || !p.IsSimple() {
		return false
	}
	for i := 0; i+1 < len(p); i++ {
		if _, ok := nw.Edge(p[i], p[i+1]); !ok {
			return false
		}
	}
	return true
}

// TestOperatorsPreservePaths checks that crossover and mutation map valid
// simple paths to valid simple paths on generated networks.
func TestOperatorsPreservePaths(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	const n = 18
	w := network.Weights{Delay: 0.34, Reliability: 0.33, Resource: 0.33}

	setup := func(seed int64) (*network.Network, *genetic.Optimizer, *rand.Rand, bool) {
		nw, err := network.Generate(n, 0.25, network.WithSeed(seed))
		if err != nil {
			return nil, nil, nil, false
		}
		o, err := genetic.New(nw, 0, n-1, w, genetic.WithSeed(seed), genetic.WithMutationRate(1))
		if err != nil {
			return nil, nil, nil, false
		}
		return nw, o, rand.New(rand.NewSource(seed)), true
	}

	properties.Property("crossover children are simple source-target paths", prop.ForAll(
		func(seed int64) bool {
			nw, o, rng, ok := setup(seed)
			if !ok {
				return false
			}
			p1, err1 := dijkstra.RandomizedPath(nw, 0, n-1, rng)
			p2, err2 := dijkstra.RandomizedPath(nw, 0, n-1, rng)
			if err1 != nil || err2 != nil {
				return false
			}
			c1, c2 := o.Crossover(p1, p2)
			return validPath(nw, c1, 0, n-1) && validPath(nw, c2, 0, n-1)
		},
		gen.Int64Range(1, 1<<20),
	))

	properties.Property("mutants are simple source-target paths", prop.ForAll(
		func(seed int64) bool {
			nw, o, rng, ok := setup(seed)
			if !ok {
				return false
			}
			p, err := dijkstra.RandomizedPath(nw, 0, n-1, rng)
			if err != nil {
				return false
			}
			for i := 0; i < 5; i++ {
				p = o.Mutate(p)
				if !validPath(nw, p, 0, n-1) {
					return false
				}
			}
			return true
		},
		gen.Int64Range(1, 1<<20),
	))

	properties.TestingRun(t)
}
