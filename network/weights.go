// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"
)

// WeightSumTolerance is the accepted deviation of Weights.Sum() from 1.
const WeightSumTolerance = 0.01

// Weights are the non-negative coefficients of the three objectives.
type Weights struct {
	Delay       float64 `yaml:"delay" validate:"gte=0"`
	Reliability float64 `yaml:"reliability" validate:"gte=0"`
	Resource    float64 `yaml:"resource" validate:"gte=0"`
}

// Sum returns Delay + Reliability + Resource.
func (w Weights) Sum() float64 {
	return w.Delay + w.Reliability + w.Resource
}

// Validate checks that every weight is finite and non-negative and that the
// weights sum to 1 within WeightSumTolerance. Cost evaluation itself never
// validates; optimizers call Validate at construction.
func (w Weights) Validate() error {
	for _, c := range []struct {
		name string
		v    float64
	}{
		{"delay", w.Delay},
		{"reliability", w.Reliability},
		{"resource", w.Resource},
	} {
		if math.IsNaN(c.v) || math.IsInf(c.v, 0) || c.v < 0 {
			return fmt.Errorf("%w: %s weight %v must be finite and non-negative", ErrInvalidWeights, c.name, c.v)
		}
	}
	if s := w.Sum(); math.Abs(s-1) > WeightSumTolerance {
		return fmt.Errorf("%w: weights sum to %.4f, want 1±%.2f", ErrInvalidWeights, s, WeightSumTolerance)
	}
	return nil
}

// String renders w as "(delay=0.33 rel=0.33 res=0.34)".
func (w Weights) String() string {
	return fmt.Sprintf("(delay=%.2f rel=%.2f res=%.2f)", w.Delay, w.Reliability, w.Resource)
}
