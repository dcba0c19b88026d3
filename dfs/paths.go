// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
)

// SimplePaths calls fn with every simple path from source to target, in the
// lexicographic order induced by neighbor order, until fn returns false. The
// slice passed to fn is reused between calls; copy it to keep it. It returns
// the number of paths reported.
//
// source == target yields the single path [source].
func SimplePaths(g Graph, source, target int, fn func(path []int) bool) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.HasNode(source) {
		return 0, fmt.Errorf("%w: source %d", ErrStartNotFound, source)
	}
	if !g.HasNode(target) {
		return 0, fmt.Errorf("%w: target %d", ErrStartNotFound, target)
	}

	var (
		onPath = make([]bool, g.NumNodes())
		path   = []int{source}
		count  int
		stop   bool
	)
	var extend func(u int)
	extend = func(u int) {
		if u == target {
			count++
			stop = !fn(path)
			return
		}
		for _, v := range g.Neighbors(u) {
			if onPath[v] {
				continue
			}
			onPath[v] = true
			path = append(path, v)
			extend(v)
			path = path[:len(path)-1]
			onPath[v] = false
			if stop {
				return
			}
		}
	}
	onPath[source] = true
	extend(source)

	return count, nil
}
