package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/netpath/bfs"
)

// ExampleBFS walks a small star and prints the hop distances.
func ExampleBFS() {
	g := newAdj(4, [][2]int{{0, 1}, {0, 2}, {2, 3}})
	res, _ := bfs.BFS(g, 0)
	fmt.Println(res.Order)
	fmt.Println(res.Depth)
	// Output:
	// [0 1 2 3]
	// [0 1 1 2]
}
