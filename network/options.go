// SPDX-License-Identifier: MIT

package network

import (
	"log/slog"
)

// Generation defaults.
const (
	DefaultSeed        int64 = 42
	DefaultMaxAttempts       = 100
)

// GenerateOption customizes Generate.
type GenerateOption func(*generateConfig)

type generateConfig struct {
	seed        int64
	maxAttempts int
	logger      *slog.Logger
}

func newGenerateConfig(opts ...GenerateOption) generateConfig {
	cfg := generateConfig{
		seed:        DefaultSeed,
		maxAttempts: DefaultMaxAttempts,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed fixes the seed for topology and attribute sampling.
func WithSeed(seed int64) GenerateOption {
	return func(c *generateConfig) { c.seed = seed }
}

// WithMaxAttempts bounds the number of topologies sampled while looking for a
// connected one. Panics if k < 1.
func WithMaxAttempts(k int) GenerateOption {
	if k < 1 {
		panic("network: WithMaxAttempts(k<1)")
	}
	return func(c *generateConfig) { c.maxAttempts = k }
}

// WithLogger routes generation progress to logger. Panics on nil.
func WithLogger(logger *slog.Logger) GenerateOption {
	if logger == nil {
		panic("network: WithLogger(nil)")
	}
	return func(c *generateConfig) { c.logger = logger }
}
