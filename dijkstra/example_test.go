package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/netpath/dijkstra"
	"github.com/katalvlaran/netpath/network"
)

// ExampleShortestPath finds the lowest-delay route across a triangle.
func ExampleShortestPath() {
	nw, _ := network.NewBuilder(3).
		AddEdge(0, 1, 500, 10, 0.99).
		AddEdge(1, 2, 500, 2, 0.99).
		AddEdge(0, 2, 500, 5, 0.99).
		Build()

	path, d, err := dijkstra.ShortestPath(nw, 0, 1, dijkstra.DelayWeight)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path, d)
	// Output: 0 → 2 → 1 7
}
