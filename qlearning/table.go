// SPDX-License-Identifier: MIT

package qlearning

import (
	"sort"

	"github.com/katalvlaran/netpath/network"
)

// QTable stores Q(s,a) for every node s and neighbor a. Row s is parallel to
// the sorted neighbor list of s, so an action is addressed by its position.
type QTable struct {
	nbrs [][]int
	q    [][]float64
}

func newQTable(nw *network.Network) *QTable {
	n := nw.NumNodes()
	t := &QTable{nbrs: make([][]int, n), q: make([][]float64, n)}
	for s := 0; s < n; s++ {
		t.nbrs[s] = nw.Neighbors(s)
		t.q[s] = make([]float64, len(t.nbrs[s]))
	}
	return t
}

// Value returns Q(s,a), or 0 when a is not a neighbor of s.
func (t *QTable) Value(s, a int) float64 {
	i := t.index(s, a)
	if i < 0 {
		return 0
	}
	return t.q[s][i]
}

// Max returns the largest Q-value of s, or 0 when s has no actions.
func (t *QTable) Max(s int) float64 {
	if s < 0 || s >= len(t.q) || len(t.q[s]) == 0 {
		return 0
	}
	best := t.q[s][0]
	for _, v := range t.q[s][1:] {
		if v > best {
			best = v
		}
	}
	return best
}

// Row returns a copy of the Q-values of s keyed by neighbor id.
func (t *QTable) Row(s int) map[int]float64 {
	if s < 0 || s >= len(t.q) {
		return nil
	}
	out := make(map[int]float64, len(t.q[s]))
	for i, a := range t.nbrs[s] {
		out[a] = t.q[s][i]
	}
	return out
}

func (t *QTable) index(s, a int) int {
	if s < 0 || s >= len(t.nbrs) {
		return -1
	}
	nbrs := t.nbrs[s]
	i := sort.SearchInts(nbrs, a)
	if i < len(nbrs) && nbrs[i] == a {
		return i
	}
	return -1
}
