// SPDX-License-Identifier: MIT

package network

import (
	"math"
)

// PathMetrics accumulates delay, reliability cost and resource cost along
// path. Every edge contributes its delay, reliability cost and resource cost;
// every intermediate node (neither first nor last) contributes its
// processing delay and reliability cost.
//
// Paths with fewer than two nodes, unknown ids or a missing edge are
// degenerate and yield +Inf for all three metrics. Cycles are not checked.
func (nw *Network) PathMetrics(path Path) Metrics {
	if len(path) < 2 {
		return degenerateMetrics()
	}
	var m Metrics
	last := len(path) - 1
	for i := 0; i < last; i++ {
		e, ok := nw.Edge(path[i], path[i+1])
		if !ok {
			return degenerateMetrics()
		}
		m.Delay += e.Delay
		m.ReliabilityCost += e.ReliabilityCost
		m.ResourceCost += e.ResourceCost

		if i+1 < last {
			v := nw.nodes[path[i+1]]
			m.Delay += v.ProcessingDelay
			m.ReliabilityCost += v.ReliabilityCost
		}
	}
	return m
}

// WeightedCost returns w.Delay·Delay + w.Reliability·ReliabilityCost +
// w.Resource·ResourceCost for path. Degenerate paths cost +Inf regardless of
// the weights (a zero weight never turns +Inf into NaN). Lower is better.
func (nw *Network) WeightedCost(path Path, w Weights) float64 {
	m := nw.PathMetrics(path)
	if m.Degenerate() {
		return math.Inf(1)
	}
	return w.Delay*m.Delay + w.Reliability*m.ReliabilityCost + w.Resource*m.ResourceCost
}

// Evaluate wraps path and its weighted cost into a Route; degenerate paths
// yield NoRoute.
func (nw *Network) Evaluate(path Path, w Weights) Route {
	cost := nw.WeightedCost(path, w)
	if math.IsInf(cost, 1) {
		return NoRoute()
	}
	return Route{Path: path.Clone(), Cost: cost}
}
