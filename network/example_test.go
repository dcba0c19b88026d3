package network_test

import (
	"fmt"

	"github.com/katalvlaran/netpath/network"
)

// ExampleNetwork_PathMetrics evaluates a two-hop path on a hand-built network.
func ExampleNetwork_PathMetrics() {
	nw, _ := network.NewBuilder(3).
		SetNode(1, 1.0, 0.99).
		AddEdge(0, 1, 500, 5, 0.99).
		AddEdge(1, 2, 250, 10, 0.99).
		Build()

	p := network.Path{0, 1, 2}
	m := nw.PathMetrics(p)
	fmt.Printf("delay=%.1f resource=%.1f\n", m.Delay, m.ResourceCost)
	fmt.Printf("cost=%.1f\n", nw.WeightedCost(p, network.Weights{Delay: 1}))
	// Output:
	// delay=16.0 resource=6.0
	// cost=16.0
}

// ExampleGenerate samples a reproducible random network.
func ExampleGenerate() {
	nw, err := network.Generate(20, 0.3, network.WithSeed(42))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(nw.NumNodes())
	// Output: 20
}
