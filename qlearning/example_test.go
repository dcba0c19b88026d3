package qlearning_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/netpath/network"
	"github.com/katalvlaran/netpath/qlearning"
)

func ExampleAgent_Run() {
	nw, _ := network.NewBuilder(3).
		AddEdge(0, 1, 500, 10, 0.99).
		AddEdge(1, 2, 500, 10, 0.99).
		AddEdge(0, 2, 500, 5, 0.99).
		Build()

	agent, _ := qlearning.New(nw, 0, 2, network.Weights{Delay: 1},
		qlearning.WithSeed(3),
		qlearning.WithEpisodes(2000),
		qlearning.WithEpsilon(0.3),
	)
	route, _ := agent.Run(context.Background())
	fmt.Println(route.Path, route.Cost)
	// Output: 0 → 2 5
}
