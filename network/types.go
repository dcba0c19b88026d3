// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"math"
)

// Sentinel errors for network construction and queries.
var (
	// ErrTooFewNodes indicates a node count below one.
	ErrTooFewNodes = errors.New("network: node count must be at least 1")

	// ErrInvalidProbability indicates a connection probability outside [0,1].
	ErrInvalidProbability = errors.New("network: probability out of range")

	// ErrGenerationExhausted indicates that no connected topology was sampled
	// within the permitted number of attempts.
	ErrGenerationExhausted = errors.New("network: no connected topology within attempt budget")

	// ErrNodeNotFound indicates an operation referenced a non-existent node id.
	ErrNodeNotFound = errors.New("network: node not found")

	// ErrSelfLoop indicates an edge from a node to itself.
	ErrSelfLoop = errors.New("network: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge between the same pair of nodes.
	ErrDuplicateEdge = errors.New("network: parallel edge not allowed")

	// ErrInvalidAttribute indicates a physically meaningless attribute value.
	ErrInvalidAttribute = errors.New("network: invalid attribute")

	// ErrInvalidWeights indicates an unusable weight vector.
	ErrInvalidWeights = errors.New("network: invalid weights")

	// ErrSameEndpoints indicates a query whose source equals its target.
	ErrSameEndpoints = errors.New("network: source and target must differ")
)

// Attribute ranges used by Generate. Values are drawn uniformly.
const (
	MinProcessingDelay = 0.5
	MaxProcessingDelay = 2.0
	MinReliability     = 0.95
	MaxReliability     = 0.999
	MinBandwidth       = 100.0
	MaxBandwidth       = 1000.0
	MinLinkDelay       = 3.0
	MaxLinkDelay       = 15.0

	// ResourceScale converts bandwidth (Mbps) into resource cost: 1000/bandwidth.
	ResourceScale = 1000.0
)

// Node is a network element with its processing attributes.
type Node struct {
	ID              int
	ProcessingDelay float64 // ms
	Reliability     float64 // probability in (0,1]
	ReliabilityCost float64 // -ln(Reliability)
}

// Edge is an undirected link. U < V always holds; ID is a dense index
// 0..NumEdges()-1 usable as a slice offset.
type Edge struct {
	ID              int
	U, V            int
	Bandwidth       float64 // Mbps
	Delay           float64 // ms
	Reliability     float64 // probability in (0,1]
	ReliabilityCost float64 // -ln(Reliability)
	ResourceCost    float64 // ResourceScale / Bandwidth
}

// Other returns the endpoint of e opposite to id.
func (e Edge) Other(id int) int {
	if e.U == id {
		return e.V
	}
	return e.U
}

// Metrics are the three additive objectives of a path.
type Metrics struct {
	Delay           float64
	ReliabilityCost float64
	ResourceCost    float64
}

// degenerateMetrics is returned for paths that cannot be evaluated.
func degenerateMetrics() Metrics {
	inf := math.Inf(1)
	return Metrics{Delay: inf, ReliabilityCost: inf, ResourceCost: inf}
}

// Degenerate reports whether m describes an unevaluable path.
func (m Metrics) Degenerate() bool {
	return math.IsInf(m.Delay, 1) || math.IsInf(m.ReliabilityCost, 1) || math.IsInf(m.ResourceCost, 1)
}

// Reliability converts the accumulated reliability cost back into the
// end-to-end success probability of the path.
func (m Metrics) Reliability() float64 {
	return math.Exp(-m.ReliabilityCost)
}

// Route is the outcome of a search: a path and its weighted cost.
// A route without a path is the explicit "no path" result and carries +Inf.
type Route struct {
	Path Path
	Cost float64
}

// NoRoute returns the "no path found" result.
func NoRoute() Route {
	return Route{Path: nil, Cost: math.Inf(1)}
}

// Found reports whether r holds a usable path.
func (r Route) Found() bool {
	return len(r.Path) > 0 && !math.IsInf(r.Cost, 1)
}
