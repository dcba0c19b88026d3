// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/netpath/network"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *network.Network was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilWeight indicates that no WeightFunc was supplied.
	ErrNilWeight = errors.New("dijkstra: weight function is nil")

	// ErrVertexNotFound indicates that a source or target id is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that the weight function produced a
	// negative (or NaN) weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that the target is unreachable from the source
	// under the given weighting and thresholds.
	ErrNoPath = errors.New("dijkstra: no path between source and target")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// WeightFunc assigns the traversal cost of an edge for one run.
type WeightFunc func(e network.Edge) float64

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – vertices farther than this are not explored. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ this are impassable. Default +Inf.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold. Panics if max < 0.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks edges with weight ≥ threshold as impassable.
// Panics if threshold <= 0.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
